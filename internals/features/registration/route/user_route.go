package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regcontroller "kampusku_backend/internals/features/registration/controller"
	middlewares "kampusku_backend/internals/middlewares"
)

// RegistrationUserRoutes: endpoint mahasiswa (group /api/u, sudah ber-JWT)
func RegistrationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := regcontroller.NewRegistrationController(db)

	reg := r.Group("/registration")
	reg.Post("/enroll", middlewares.EnrollRateLimiter(), ctl.Enroll)
	reg.Post("/drop", ctl.Drop)
	reg.Post("/search", ctl.SearchCourses)
	reg.Get("/grades", ctl.MyGrades)
	reg.Get("/prerequisites/:course_id", ctl.PassedPrerequisites)
}
