package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursecontroller "kampusku_backend/internals/features/academics/courses/controller"
)

// CourseUserRoutes: katalog course/section untuk mahasiswa (read-only)
func CourseUserRoutes(r fiber.Router, db *gorm.DB) {
	courseCtl := coursecontroller.NewCourseController(db)
	sectionCtl := coursecontroller.NewSectionController(db)

	r.Get("/courses/:id", courseCtl.GetByID)
	r.Get("/sections", sectionCtl.List)
	r.Get("/sections/:id/course", sectionCtl.GetCourse)
	r.Get("/sections/:id/classes", sectionCtl.ListClasses)
}

// CourseAdminRoutes: kelola katalog (course, section, jadwal kelas)
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	courseCtl := coursecontroller.NewCourseController(db)
	sectionCtl := coursecontroller.NewSectionController(db)

	r.Post("/courses", courseCtl.Create)
	r.Get("/courses", courseCtl.List)
	r.Delete("/courses/:id", courseCtl.Delete)
	r.Get("/courses/:id/students", sectionCtl.ListEnrolledStudents)

	r.Post("/sections", sectionCtl.Create)
	r.Delete("/sections/:id", sectionCtl.Delete)
	r.Post("/section-classes", sectionCtl.CreateClass)
	r.Delete("/section-classes/:id", sectionCtl.DeleteClass)
}
