package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	regdto "kampusku_backend/internals/features/registration/dto"
	helper "kampusku_backend/internals/helpers"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

// POST /api/u/registration/search
// Body berisi konfigurasi filter; semua filter opsional, komposisi AND.
func (ctl *RegistrationController) SearchCourses(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var body regdto.CourseSearchRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	body.Normalize()
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !body.SearchCourseType.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "search_course_type tidak dikenal")
	}

	entries, err := ctl.Service.SearchCourses(c.UserContext(), studentID, body)
	if err != nil {
		log.Printf("[SearchCourses] student=%s err=%v", studentID, err)
		return helper.JsonFromServiceError(c, err, "Mahasiswa tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"page_index": body.PageIndex,
		"page_size":  body.PageSize,
		"entries":    entries,
	})
}
