package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regdto "kampusku_backend/internals/features/registration/dto"
	"kampusku_backend/internals/features/registration/service"
	helper "kampusku_backend/internals/helpers"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

type RegistrationController struct {
	DB       *gorm.DB
	Service  *service.RegistrationService
	Validate *validator.Validate
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{
		DB:       db,
		Service:  service.NewRegistrationService(db),
		Validate: validator.New(),
	}
}

// POST /api/u/registration/enroll
func (ctl *RegistrationController) Enroll(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var body regdto.EnrollRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctl.Service.Enroll(c.UserContext(), studentID, body.SectionID)
	if err != nil {
		log.Printf("[Enroll] student=%s section=%s err=%v", studentID, body.SectionID, err)
		return helper.JsonFromServiceError(c, err, "Mahasiswa tidak ditemukan")
	}

	resp := regdto.EnrollResponse{Result: result, SectionID: body.SectionID}
	if result == regdto.EnrollSuccess {
		return helper.JsonOK(c, "Berhasil mendaftar section", resp)
	}
	// outcome selain SUCCESS tetap 200: ini hasil keputusan, bukan error
	return helper.JsonOK(c, "Pendaftaran ditolak: "+string(result), resp)
}

// POST /api/u/registration/drop
func (ctl *RegistrationController) Drop(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var body regdto.DropRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.Drop(c.UserContext(), studentID, body.SectionID); err != nil {
		log.Printf("[Drop] student=%s section=%s err=%v", studentID, body.SectionID, err)
		return helper.JsonFromServiceError(c, err, "Enrollment tidak ditemukan")
	}
	return helper.JsonOK(c, "Berhasil drop section", fiber.Map{"section_id": body.SectionID})
}

// GET /api/u/registration/prerequisites/:course_id
func (ctl *RegistrationController) PassedPrerequisites(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}
	courseID := c.Params("course_id")
	if courseID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id wajib")
	}

	ok, err := ctl.Service.PassedPrerequisites(c.UserContext(), studentID, courseID)
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Course tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"course_id": courseID, "passed_prerequisites": ok})
}
