package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regcontroller "kampusku_backend/internals/features/registration/controller"
)

// RegistrationAdminRoutes: jalur administratif nilai (group /api/a)
func RegistrationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := regcontroller.NewRegistrationController(db)

	reg := r.Group("/registration")
	reg.Post("/grades", ctl.SetGrade)
	reg.Post("/import", ctl.ImportEnrollment)
}
