package dto

import (
	"github.com/google/uuid"

	regmodel "kampusku_backend/internals/features/registration/model"
)

// GradeInput: salah satu dari pass_or_fail / mark, wajib sesuai skema
// penilaian course-nya (dicek service, pelanggaran = invalid state).
type GradeInput struct {
	PassOrFail *regmodel.PassOrFail `json:"pass_or_fail" form:"pass_or_fail" validate:"omitempty,oneof=PASS FAIL"`
	Mark       *int                 `json:"mark" form:"mark" validate:"omitempty,min=0,max=100"`
}

func (g GradeInput) Empty() bool { return g.PassOrFail == nil && g.Mark == nil }

type SetGradeRequest struct {
	StudentID uuid.UUID  `json:"student_id" form:"student_id" validate:"required"`
	SectionID uuid.UUID  `json:"section_id" form:"section_id" validate:"required"`
	Grade     GradeInput `json:"grade"`
}

// ImportEnrollmentRequest: jalur admin untuk memasukkan riwayat ambil
// course (beserta nilai) tanpa melewati mesin pendaftaran — tidak
// memakan kursi, dipakai untuk migrasi data lama.
type ImportEnrollmentRequest struct {
	StudentID uuid.UUID   `json:"student_id" form:"student_id" validate:"required"`
	SectionID uuid.UUID   `json:"section_id" form:"section_id" validate:"required"`
	Grade     *GradeInput `json:"grade"`
}

type EnrolledCourseGrade struct {
	CourseID    string               `json:"course_id"`
	CourseName  string               `json:"course_name"`
	SectionID   uuid.UUID            `json:"section_id"`
	SectionName string               `json:"section_name"`
	SemesterID  uuid.UUID            `json:"semester_id"`
	PassOrFail  *regmodel.PassOrFail `json:"pass_or_fail,omitempty"`
	Mark        *int                 `json:"mark,omitempty"`
}
