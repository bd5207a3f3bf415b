package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instrcontroller "kampusku_backend/internals/features/academics/instructors/controller"
)

func InstructorUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := instrcontroller.NewInstructorController(db)

	r.Get("/instructors", ctl.List)
	r.Get("/instructors/:id/sections", ctl.ListInstructedSections)
}

func InstructorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := instrcontroller.NewInstructorController(db)

	r.Post("/instructors", ctl.Create)
}
