package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	deptdto "kampusku_backend/internals/features/academics/departments/dto"
	deptmodel "kampusku_backend/internals/features/academics/departments/model"
	majormodel "kampusku_backend/internals/features/academics/majors/model"
	helper "kampusku_backend/internals/helpers"
)

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, Validate: validator.New()}
}

// POST /api/a/departments
func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var body deptdto.DepartmentCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	body.DepartmentName = strings.TrimSpace(body.DepartmentName)
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	dept := deptmodel.DepartmentModel{DepartmentName: body.DepartmentName}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&dept).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Department tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Department dibuat", dept)
}

// GET /api/u/departments
func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	var depts []deptmodel.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("department_name ASC").Find(&depts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list departments")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"departments": depts})
}

// GET /api/public/departments/:id
func (ctl *DepartmentController) GetByID(c *fiber.Ctx) error {
	deptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "department_id tidak valid")
	}
	var dept deptmodel.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&dept, "department_id = ?", deptID).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Department tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dept)
}

// DELETE /api/a/departments/:id
// Tolak kalau masih punya major.
func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	deptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "department_id tidak valid")
	}

	var majors int64
	if err := ctl.DB.Model(&majormodel.MajorModel{}).
		Where("major_department_id = ?", deptID).Count(&majors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check majors")
	}
	if majors > 0 {
		return helper.JsonFromServiceError(c, helper.ErrInvalidState, "")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&deptmodel.DepartmentModel{}, "department_id = ?", deptID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete department")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Department tidak ditemukan")
	}
	return helper.JsonOK(c, "Department dihapus", fiber.Map{"department_id": deptID})
}

// GET /api/public/departments/:id/majors
func (ctl *DepartmentController) ListMajors(c *fiber.Ctx) error {
	deptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "department_id tidak valid")
	}
	var majors []majormodel.MajorModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("major_department_id = ?", deptID).
		Order("major_name ASC").Find(&majors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list majors")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"majors": majors})
}
