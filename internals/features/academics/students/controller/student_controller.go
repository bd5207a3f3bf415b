package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	majormodel "kampusku_backend/internals/features/academics/majors/model"
	studentdto "kampusku_backend/internals/features/academics/students/dto"
	studentmodel "kampusku_backend/internals/features/academics/students/model"
	helper "kampusku_backend/internals/helpers"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var body studentdto.StudentCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	body.FirstName = strings.TrimSpace(body.FirstName)
	body.LastName = strings.TrimSpace(body.LastName)
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&majormodel.MajorModel{}).
		Where("major_id = ?", body.MajorID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check major")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Major tidak ditemukan")
	}

	enrolled, _ := time.Parse("2006-01-02", body.EnrolledDate)
	student := studentmodel.StudentModel{
		StudentFullName:     helper.ComposeFullName(body.FirstName, body.LastName),
		StudentEnrolledDate: enrolled,
		StudentMajorID:      body.MajorID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Student tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Student dibuat", student)
}

// GET /api/a/students (paginated, admin)
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "student_full_name", "asc", helper.AdminOpts)
	order, err := p.SafeOrderClause(map[string]string{
		"student_full_name": "student_full_name",
		"enrolled_date":     "student_enrolled_date",
	}, "student_full_name")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak valid")
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&studentmodel.StudentModel{})
	if mid := c.Query("major_id"); mid != "" {
		majorID, err := uuid.Parse(mid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "major_id tidak valid")
		}
		q = q.Where("student_major_id = ?", majorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}
	var students []studentmodel.StudentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list students")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"students": students,
		"meta":     helper.BuildMeta(total, p),
	})
}

// GET /api/u/students/me
// Profil mahasiswa dari token, berikut major dan department-nya.
func (ctl *StudentController) Me(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var student studentmodel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Student tidak ditemukan")
	}

	type majorRow struct {
		MajorID        uuid.UUID `json:"major_id"`
		MajorName      string    `json:"major_name"`
		DepartmentID   uuid.UUID `json:"department_id"`
		DepartmentName string    `json:"department_name"`
	}
	var major majorRow
	if err := ctl.DB.
		Table("majors").
		Select(`majors.major_id AS major_id,
			majors.major_name AS major_name,
			departments.department_id AS department_id,
			departments.department_name AS department_name`).
		Joins("JOIN departments ON departments.department_id = majors.major_department_id").
		Where("majors.major_id = ?", student.StudentMajorID).
		Scan(&major).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load major")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"student": student, "major": major})
}
