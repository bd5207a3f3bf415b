package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deptcontroller "kampusku_backend/internals/features/academics/departments/controller"
)

func DepartmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := deptcontroller.NewDepartmentController(db)

	r.Get("/departments", ctl.List)
	r.Get("/departments/:id", ctl.GetByID)
	r.Get("/departments/:id/majors", ctl.ListMajors)
}

func DepartmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := deptcontroller.NewDepartmentController(db)

	r.Post("/departments", ctl.Create)
	r.Delete("/departments/:id", ctl.Delete)
}
