package dto

type DepartmentCreateRequest struct {
	DepartmentName string `json:"department_name" form:"department_name" validate:"required,min=1,max=120"`
}
