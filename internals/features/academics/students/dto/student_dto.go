package dto

import "github.com/google/uuid"

type StudentCreateRequest struct {
	FirstName    string    `json:"first_name" form:"first_name" validate:"required,min=1,max=60"`
	LastName     string    `json:"last_name" form:"last_name" validate:"required,min=1,max=60"`
	EnrolledDate string    `json:"enrolled_date" form:"enrolled_date" validate:"required,datetime=2006-01-02"`
	MajorID      uuid.UUID `json:"major_id" form:"major_id" validate:"required"`
}
