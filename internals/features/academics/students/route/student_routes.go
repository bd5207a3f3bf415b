package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentcontroller "kampusku_backend/internals/features/academics/students/controller"
)

func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentcontroller.NewStudentController(db)

	r.Get("/students/me", ctl.Me)
}

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentcontroller.NewStudentController(db)

	r.Post("/students", ctl.Create)
	r.Get("/students", ctl.List)
}
