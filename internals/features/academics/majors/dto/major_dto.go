package dto

import (
	"github.com/google/uuid"

	majormodel "kampusku_backend/internals/features/academics/majors/model"
)

type MajorCreateRequest struct {
	MajorName    string    `json:"major_name" form:"major_name" validate:"required,min=1,max=120"`
	DepartmentID uuid.UUID `json:"department_id" form:"department_id" validate:"required"`
}

// MajorCourseRequest mendaftarkan course ke kurikulum major
// sebagai wajib (compulsory) atau pilihan (elective).
type MajorCourseRequest struct {
	CourseID string                     `json:"course_id" form:"course_id" validate:"required"`
	Kind     majormodel.MajorCourseKind `json:"kind" form:"kind" validate:"required,oneof=compulsory elective"`
}
