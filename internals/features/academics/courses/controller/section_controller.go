package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	coursedto "kampusku_backend/internals/features/academics/courses/dto"
	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	helper "kampusku_backend/internals/helpers"
)

type SectionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db, Validate: validator.New()}
}

// POST /api/a/sections
// Section baru selalu mulai dengan left = total.
func (ctl *SectionController) Create(c *fiber.Ctx) error {
	var body coursedto.SectionCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&coursemodel.CourseModel{}).
		Where("course_id = ?", body.CourseID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check course")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	section := coursemodel.CourseSectionModel{
		CourseSectionCourseID:      body.CourseID,
		CourseSectionSemesterID:    body.SemesterID,
		CourseSectionName:          body.SectionName,
		CourseSectionTotalCapacity: *body.TotalCapacity,
		CourseSectionLeftCapacity:  *body.TotalCapacity,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&section).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Section tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Section dibuat", section)
}

// GET /api/u/sections?course_id=&semester_id=
func (ctl *SectionController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&coursemodel.CourseSectionModel{})
	if cid := c.Query("course_id"); cid != "" {
		q = q.Where("course_section_course_id = ?", cid)
	}
	if sid := c.Query("semester_id"); sid != "" {
		semID, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "semester_id tidak valid")
		}
		q = q.Where("course_section_semester_id = ?", semID)
	}

	var sections []coursemodel.CourseSectionModel
	if err := q.Order("course_section_course_id ASC, course_section_name ASC").
		Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list sections")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"sections": sections})
}

// GET /api/u/sections/:id/course
func (ctl *SectionController) GetCourse(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
	}

	var section coursemodel.CourseSectionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&section, "course_section_id = ?", sectionID).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Section tidak ditemukan")
	}
	var course coursemodel.CourseModel
	if err := ctl.DB.First(&course, "course_id = ?", section.CourseSectionCourseID).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Course tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"course": course, "section": section})
}

// DELETE /api/a/sections/:id
// Tolak kalau sudah ada mahasiswa terdaftar: drop dulu lewat registration.
func (ctl *SectionController) Delete(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
	}

	err = helper.RunTxWithRetry(ctl.DB.WithContext(c.UserContext()), func(tx *gorm.DB) error {
		var enrolled int64
		if err := tx.Table("takes").Where("takes_section_id = ?", sectionID).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled > 0 {
			return helper.ErrInvalidState
		}
		if err := tx.Delete(&coursemodel.SectionClassModel{},
			"section_class_section_id = ?", sectionID).Error; err != nil {
			return err
		}
		res := tx.Delete(&coursemodel.CourseSectionModel{}, "course_section_id = ?", sectionID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrEntityNotFound
		}
		return nil
	})
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Section tidak ditemukan")
	}
	return helper.JsonOK(c, "Section dihapus", fiber.Map{"section_id": sectionID})
}

// POST /api/a/section-classes
func (ctl *SectionController) CreateClass(c *fiber.Ctx) error {
	var body coursedto.SectionClassCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&coursemodel.CourseSectionModel{}).
		Where("course_section_id = ?", body.SectionID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check section")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
	}

	class := coursemodel.SectionClassModel{
		SectionClassSectionID:    body.SectionID,
		SectionClassInstructorID: body.InstructorID,
		SectionClassDayOfWeek:    body.DayOfWeek,
		SectionClassWeekList:     pq.Int64Array(body.WeekList),
		SectionClassBegin:        body.ClassBegin,
		SectionClassEnd:          body.ClassEnd,
		SectionClassLocation:     body.Location,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Section tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Jadwal kelas dibuat", class)
}

// DELETE /api/a/section-classes/:id
func (ctl *SectionController) DeleteClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&coursemodel.SectionClassModel{}, "section_class_id = ?", classID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal kelas tidak ditemukan")
	}
	return helper.JsonOK(c, "Jadwal kelas dihapus", fiber.Map{"class_id": classID})
}

// GET /api/u/sections/:id/classes
// Pertemuan milik section berikut nama pengajarnya.
func (ctl *SectionController) ListClasses(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
	}

	type classRow struct {
		SectionClassID       uuid.UUID `json:"section_class_id"`
		InstructorID         uuid.UUID `json:"instructor_id"`
		InstructorFullName   string    `json:"instructor_full_name"`
		SectionClassDay      int       `json:"day_of_week"`
		SectionClassBegin    int       `json:"class_begin"`
		SectionClassEnd      int       `json:"class_end"`
		SectionClassLocation string    `json:"location"`
	}
	var rows []classRow
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("section_classes").
		Select(`section_classes.section_class_id AS section_class_id,
			instructors.instructor_id AS instructor_id,
			instructors.instructor_full_name AS instructor_full_name,
			section_classes.section_class_day_of_week AS section_class_day,
			section_classes.section_class_begin AS section_class_begin,
			section_classes.section_class_end AS section_class_end,
			section_classes.section_class_location AS section_class_location`).
		Joins("JOIN instructors ON instructors.instructor_id = section_classes.section_class_instructor_id").
		Where("section_classes.section_class_section_id = ?", sectionID).
		Order("section_classes.section_class_day_of_week ASC, section_classes.section_class_begin ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list classes")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"classes": rows})
}

// GET /api/a/courses/:id/students?semester_id=
// Mahasiswa yang terdaftar pada course di satu semester (semua section digabung).
func (ctl *SectionController) ListEnrolledStudents(c *fiber.Ctx) error {
	courseID := c.Params("id")
	semesterID, err := uuid.Parse(c.Query("semester_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "semester_id wajib dan harus uuid")
	}

	type studentRow struct {
		StudentID       uuid.UUID `json:"student_id"`
		StudentFullName string    `json:"student_full_name"`
		SectionName     string    `json:"section_name"`
	}
	var rows []studentRow
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("takes").
		Select(`students.student_id AS student_id,
			students.student_full_name AS student_full_name,
			course_sections.course_section_name AS section_name`).
		Joins("JOIN course_sections ON course_sections.course_section_id = takes.takes_section_id").
		Joins("JOIN students ON students.student_id = takes.takes_student_id").
		Where("course_sections.course_section_course_id = ?", courseID).
		Where("course_sections.course_section_semester_id = ?", semesterID).
		Order("students.student_full_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list enrolled students")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"course_id": courseID, "students": rows})
}
