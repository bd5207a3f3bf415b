package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	semdto "kampusku_backend/internals/features/academics/semesters/dto"
	semmodel "kampusku_backend/internals/features/academics/semesters/model"
	helper "kampusku_backend/internals/helpers"
)

type SemesterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSemesterController(db *gorm.DB) *SemesterController {
	return &SemesterController{DB: db, Validate: validator.New()}
}

// POST /api/a/semesters
func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	var body semdto.SemesterCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	body.SemesterName = strings.TrimSpace(body.SemesterName)
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	begin, _ := time.Parse("2006-01-02", body.BeginDate)
	end, _ := time.Parse("2006-01-02", body.EndDate)
	if !end.After(begin) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date harus setelah begin_date")
	}

	sem := semmodel.SemesterModel{
		SemesterName:      body.SemesterName,
		SemesterBeginDate: begin,
		SemesterEndDate:   end,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&sem).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Semester tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Semester dibuat", sem)
}

// GET /api/public/semesters/:id
func (ctl *SemesterController) GetByID(c *fiber.Ctx) error {
	semID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "semester_id tidak valid")
	}
	var sem semmodel.SemesterModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&sem, "semester_id = ?", semID).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Semester tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", sem)
}

// DELETE /api/a/semesters/:id
// Tolak kalau sudah ada section yang menunjuk semester ini.
func (ctl *SemesterController) Delete(c *fiber.Ctx) error {
	semID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "semester_id tidak valid")
	}

	var sections int64
	if err := ctl.DB.Table("course_sections").
		Where("course_section_semester_id = ?", semID).Count(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check sections")
	}
	if sections > 0 {
		return helper.JsonFromServiceError(c, helper.ErrInvalidState, "")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&semmodel.SemesterModel{}, "semester_id = ?", semID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete semester")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Semester tidak ditemukan")
	}
	return helper.JsonOK(c, "Semester dihapus", fiber.Map{"semester_id": semID})
}

// GET /api/public/semesters
func (ctl *SemesterController) List(c *fiber.Ctx) error {
	var sems []semmodel.SemesterModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("semester_begin_date DESC").Find(&sems).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list semesters")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"semesters": sems})
}
