package dto

import (
	"github.com/google/uuid"
)

// EnrollResult: enumerasi tertutup hasil keputusan pendaftaran.
// Ini BUKAN error — satu call enroll selalu menghasilkan tepat satu
// outcome (atau error storage), tidak pernah diam-diam no-op.
type EnrollResult string

const (
	EnrollSuccess                   EnrollResult = "SUCCESS"
	EnrollCourseNotFound            EnrollResult = "COURSE_NOT_FOUND"
	EnrollAlreadyEnrolled           EnrollResult = "ALREADY_ENROLLED"
	EnrollAlreadyPassed             EnrollResult = "ALREADY_PASSED"
	EnrollPrerequisitesNotFulfilled EnrollResult = "PREREQUISITES_NOT_FULFILLED"
	EnrollCourseConflictFound       EnrollResult = "COURSE_CONFLICT_FOUND"
	EnrollCourseIsFull              EnrollResult = "COURSE_IS_FULL"
)

type EnrollRequest struct {
	SectionID uuid.UUID `json:"section_id" form:"section_id" validate:"required"`
}

type EnrollResponse struct {
	Result    EnrollResult `json:"result"`
	SectionID uuid.UUID    `json:"section_id"`
}

type DropRequest struct {
	SectionID uuid.UUID `json:"section_id" form:"section_id" validate:"required"`
}
