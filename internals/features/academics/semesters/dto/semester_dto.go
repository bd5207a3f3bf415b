package dto

type SemesterCreateRequest struct {
	SemesterName string `json:"semester_name" form:"semester_name" validate:"required,min=1,max=60"`
	BeginDate    string `json:"begin_date" form:"begin_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" form:"end_date" validate:"required,datetime=2006-01-02"`
}
