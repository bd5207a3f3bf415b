package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	semcontroller "kampusku_backend/internals/features/academics/semesters/controller"
)

func SemesterUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := semcontroller.NewSemesterController(db)

	r.Get("/semesters", ctl.List)
	r.Get("/semesters/:id", ctl.GetByID)
}

func SemesterAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := semcontroller.NewSemesterController(db)

	r.Post("/semesters", ctl.Create)
	r.Delete("/semesters/:id", ctl.Delete)
}
