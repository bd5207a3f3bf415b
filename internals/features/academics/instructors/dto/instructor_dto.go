package dto

type InstructorCreateRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required,min=1,max=60"`
	LastName  string `json:"last_name" form:"last_name" validate:"required,min=1,max=60"`
}
