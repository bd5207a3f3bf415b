package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	regdto "kampusku_backend/internals/features/registration/dto"
	helper "kampusku_backend/internals/helpers"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

// POST /api/a/registration/grades  (admin)
func (ctl *RegistrationController) SetGrade(c *fiber.Ctx) error {
	var body regdto.SetGradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.SetGrade(c.UserContext(), body.StudentID, body.SectionID, body.Grade); err != nil {
		log.Printf("[SetGrade] student=%s section=%s err=%v", body.StudentID, body.SectionID, err)
		return helper.JsonFromServiceError(c, err, "Enrollment tidak ditemukan")
	}
	return helper.JsonOK(c, "Nilai tersimpan", fiber.Map{
		"student_id": body.StudentID,
		"section_id": body.SectionID,
	})
}

// POST /api/a/registration/import  (admin, migrasi riwayat)
func (ctl *RegistrationController) ImportEnrollment(c *fiber.Ctx) error {
	var body regdto.ImportEnrollmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.ImportEnrollment(c.UserContext(), body.StudentID, body.SectionID, body.Grade); err != nil {
		log.Printf("[ImportEnrollment] student=%s section=%s err=%v", body.StudentID, body.SectionID, err)
		return helper.JsonFromServiceError(c, err, "Section tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Riwayat enrollment tersimpan", fiber.Map{
		"student_id": body.StudentID,
		"section_id": body.SectionID,
	})
}

// GET /api/u/registration/grades?semester_id=...
func (ctl *RegistrationController) MyGrades(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var semesterID *uuid.UUID
	if raw := c.Query("semester_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "semester_id tidak valid")
		}
		semesterID = &id
	}

	grades, err := ctl.Service.EnrolledCoursesWithGrades(c.UserContext(), studentID, semesterID)
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Mahasiswa tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", grades)
}
