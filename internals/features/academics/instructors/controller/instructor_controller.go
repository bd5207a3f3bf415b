package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	instrdto "kampusku_backend/internals/features/academics/instructors/dto"
	instrmodel "kampusku_backend/internals/features/academics/instructors/model"
	helper "kampusku_backend/internals/helpers"
)

type InstructorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInstructorController(db *gorm.DB) *InstructorController {
	return &InstructorController{DB: db, Validate: validator.New()}
}

// POST /api/a/instructors
func (ctl *InstructorController) Create(c *fiber.Ctx) error {
	var body instrdto.InstructorCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	body.FirstName = strings.TrimSpace(body.FirstName)
	body.LastName = strings.TrimSpace(body.LastName)
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	instr := instrmodel.InstructorModel{
		InstructorFullName: helper.ComposeFullName(body.FirstName, body.LastName),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&instr).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Instructor tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Instructor dibuat", instr)
}

// GET /api/u/instructors
func (ctl *InstructorController) List(c *fiber.Ctx) error {
	var instrs []instrmodel.InstructorModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("instructor_full_name ASC").Find(&instrs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list instructors")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"instructors": instrs})
}

// GET /api/u/instructors/:id/sections?semester_id=
// Section yang diajar instructor pada satu semester (nama lengkap
// "CourseName[SectionName]" mengikuti format tampilan jadwal).
func (ctl *InstructorController) ListInstructedSections(c *fiber.Ctx) error {
	instrID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "instructor_id tidak valid")
	}
	semesterID, err := uuid.Parse(c.Query("semester_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "semester_id wajib dan harus uuid")
	}

	type sectionRow struct {
		SectionID   uuid.UUID `json:"section_id"`
		CourseID    string    `json:"course_id"`
		CourseName  string    `json:"course_name"`
		SectionName string    `json:"section_name"`
	}
	var rows []sectionRow
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("section_classes").
		Distinct().
		Select(`course_sections.course_section_id AS section_id,
			courses.course_id AS course_id,
			courses.course_name AS course_name,
			course_sections.course_section_name AS section_name`).
		Joins("JOIN course_sections ON course_sections.course_section_id = section_classes.section_class_section_id").
		Joins("JOIN courses ON courses.course_id = course_sections.course_section_course_id").
		Where("section_classes.section_class_instructor_id = ?", instrID).
		Where("course_sections.course_section_semester_id = ?", semesterID).
		Order("course_id ASC, section_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list instructed sections")
	}

	type entry struct {
		sectionRow
		FullName string `json:"full_name"`
	}
	entries := make([]entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, entry{
			sectionRow: r,
			FullName:   r.CourseName + "[" + r.SectionName + "]",
		})
	}
	return helper.JsonOK(c, "OK", fiber.Map{"instructor_id": instrID, "sections": entries})
}
