package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseroute "kampusku_backend/internals/features/academics/courses/route"
	deptroute "kampusku_backend/internals/features/academics/departments/route"
	instrroute "kampusku_backend/internals/features/academics/instructors/route"
	majorroute "kampusku_backend/internals/features/academics/majors/route"
	semroute "kampusku_backend/internals/features/academics/semesters/route"
	studentroute "kampusku_backend/internals/features/academics/students/route"
	regroute "kampusku_backend/internals/features/registration/route"
)

// PublicRoutes: katalog yang boleh dilihat tanpa login
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	deptroute.DepartmentUserRoutes(r, db)
	majorroute.MajorUserRoutes(r, db)
	semroute.SemesterUserRoutes(r, db)
}

// UserRoutes: semua endpoint mahasiswa
func UserRoutes(r fiber.Router, db *gorm.DB) {
	courseroute.CourseUserRoutes(r, db)
	instrroute.InstructorUserRoutes(r, db)
	studentroute.StudentUserRoutes(r, db)
	regroute.RegistrationUserRoutes(r, db)
}

// AdminRoutes: endpoint admin akademik
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	deptroute.DepartmentAdminRoutes(r, db)
	majorroute.MajorAdminRoutes(r, db)
	semroute.SemesterAdminRoutes(r, db)
	instrroute.InstructorAdminRoutes(r, db)
	studentroute.StudentAdminRoutes(r, db)
	courseroute.CourseAdminRoutes(r, db)
	regroute.RegistrationAdminRoutes(r, db)
}
