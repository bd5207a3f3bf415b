package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	majordto "kampusku_backend/internals/features/academics/majors/dto"
	majormodel "kampusku_backend/internals/features/academics/majors/model"
	helper "kampusku_backend/internals/helpers"
)

type MajorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMajorController(db *gorm.DB) *MajorController {
	return &MajorController{DB: db, Validate: validator.New()}
}

// POST /api/a/majors
func (ctl *MajorController) Create(c *fiber.Ctx) error {
	var body majordto.MajorCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	body.MajorName = strings.TrimSpace(body.MajorName)
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Table("departments").
		Where("department_id = ?", body.DepartmentID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check department")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Department tidak ditemukan")
	}

	major := majormodel.MajorModel{
		MajorName:         body.MajorName,
		MajorDepartmentID: body.DepartmentID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&major).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Major tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Major dibuat", major)
}

// GET /api/u/majors
func (ctl *MajorController) List(c *fiber.Ctx) error {
	var majors []majormodel.MajorModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("major_name ASC").Find(&majors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list majors")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"majors": majors})
}

// GET /api/public/majors/:id
func (ctl *MajorController) GetByID(c *fiber.Ctx) error {
	majorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "major_id tidak valid")
	}
	var major majormodel.MajorModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&major, "major_id = ?", majorID).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Major tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", major)
}

// DELETE /api/a/majors/:id
// Tolak kalau masih punya mahasiswa; baris kurikulum ikut terhapus.
func (ctl *MajorController) Delete(c *fiber.Ctx) error {
	majorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "major_id tidak valid")
	}

	err = helper.RunTxWithRetry(ctl.DB.WithContext(c.UserContext()), func(tx *gorm.DB) error {
		var students int64
		if err := tx.Table("students").
			Where("student_major_id = ?", majorID).Count(&students).Error; err != nil {
			return err
		}
		if students > 0 {
			return helper.ErrInvalidState
		}
		res := tx.Delete(&majormodel.MajorModel{}, "major_id = ?", majorID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrEntityNotFound
		}
		return tx.Delete(&majormodel.MajorCourseModel{},
			"major_course_major_id = ?", majorID).Error
	})
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Major tidak ditemukan")
	}
	return helper.JsonOK(c, "Major dihapus", fiber.Map{"major_id": majorID})
}

// POST /api/a/majors/:id/courses
// Masukkan course ke kurikulum major (wajib/pilihan).
func (ctl *MajorController) AddCourse(c *fiber.Ctx) error {
	majorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "major_id tidak valid")
	}
	var body majordto.MajorCourseRequest
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

	mc := majormodel.MajorCourseModel{
		MajorCourseMajorID:  majorID,
		MajorCourseCourseID: body.CourseID,
		MajorCourseKind:     body.Kind,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&mc).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Major tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Course ditambahkan ke kurikulum", mc)
}

// DELETE /api/a/majors/:id/courses/:course_id
func (ctl *MajorController) RemoveCourse(c *fiber.Ctx) error {
	majorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "major_id tidak valid")
	}
	courseID := c.Params("course_id")

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&majormodel.MajorCourseModel{},
			"major_course_major_id = ? AND major_course_course_id = ?", majorID, courseID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to remove course from curriculum")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ada di kurikulum major ini")
	}
	return helper.JsonOK(c, "Course dihapus dari kurikulum", fiber.Map{
		"major_id":  majorID,
		"course_id": courseID,
	})
}

// GET /api/u/majors/:id/courses?kind=compulsory|elective
func (ctl *MajorController) ListCourses(c *fiber.Ctx) error {
	majorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "major_id tidak valid")
	}

	type courseRow struct {
		CourseID   string                     `json:"course_id"`
		CourseName string                     `json:"course_name"`
		Kind       majormodel.MajorCourseKind `json:"kind"`
	}
	q := ctl.DB.WithContext(c.UserContext()).
		Table("major_courses").
		Select(`courses.course_id AS course_id,
			courses.course_name AS course_name,
			major_courses.major_course_kind AS kind`).
		Joins("JOIN courses ON courses.course_id = major_courses.major_course_course_id").
		Where("major_courses.major_course_major_id = ?", majorID)
	if kind := c.Query("kind"); kind != "" {
		if kind != string(majormodel.MajorCourseCompulsory) && kind != string(majormodel.MajorCourseElective) {
			return helper.JsonError(c, fiber.StatusBadRequest, "kind harus compulsory atau elective")
		}
		q = q.Where("major_courses.major_course_kind = ?", kind)
	}

	var rows []courseRow
	if err := q.Order("courses.course_id ASC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list curriculum")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"major_id": majorID, "courses": rows})
}
