package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	majorcontroller "kampusku_backend/internals/features/academics/majors/controller"
)

func MajorUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := majorcontroller.NewMajorController(db)

	r.Get("/majors", ctl.List)
	r.Get("/majors/:id", ctl.GetByID)
	r.Get("/majors/:id/courses", ctl.ListCourses)
}

func MajorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := majorcontroller.NewMajorController(db)

	r.Post("/majors", ctl.Create)
	r.Delete("/majors/:id", ctl.Delete)
	r.Post("/majors/:id/courses", ctl.AddCourse)
	r.Delete("/majors/:id/courses/:course_id", ctl.RemoveCourse)
}
