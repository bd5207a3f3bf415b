package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	courseservice "kampusku_backend/internals/features/academics/courses/service"
)

/* ----------------- PREREQUISITE (request rekursif) ----------------- */

// PrerequisiteRequest: tepat satu dari course_id / and / or yang terisi.
type PrerequisiteRequest struct {
	CourseID string                `json:"course_id,omitempty"`
	And      []PrerequisiteRequest `json:"and,omitempty"`
	Or       []PrerequisiteRequest `json:"or,omitempty"`
}

var ErrBadPrerequisite = errors.New("prerequisite: isi tepat satu dari course_id/and/or")

// ToNode mengubah request rekursif jadi pohon in-memory.
// Konversi iteratif (stack eksplisit) — kedalaman input tidak dipercaya.
func (r *PrerequisiteRequest) ToNode() (*courseservice.PrereqNode, error) {
	type item struct {
		req  *PrerequisiteRequest
		node *courseservice.PrereqNode
	}
	root := &courseservice.PrereqNode{}
	stack := []item{{req: r, node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		filled := 0
		if strings.TrimSpace(it.req.CourseID) != "" {
			filled++
		}
		if len(it.req.And) > 0 {
			filled++
		}
		if len(it.req.Or) > 0 {
			filled++
		}
		if filled != 1 {
			return nil, ErrBadPrerequisite
		}

		switch {
		case it.req.CourseID != "":
			it.node.Kind = courseservice.PrereqLeaf
			it.node.CourseID = strings.TrimSpace(it.req.CourseID)
		case len(it.req.And) > 0:
			it.node.Kind = courseservice.PrereqAnd
			for i := range it.req.And {
				child := &courseservice.PrereqNode{}
				it.node.Children = append(it.node.Children, child)
				stack = append(stack, item{req: &it.req.And[i], node: child})
			}
		default:
			it.node.Kind = courseservice.PrereqOr
			for i := range it.req.Or {
				child := &courseservice.PrereqNode{}
				it.node.Children = append(it.node.Children, child)
				stack = append(stack, item{req: &it.req.Or[i], node: child})
			}
		}
	}
	return root, nil
}

/* ----------------- COURSE ----------------- */

type CourseCreateRequest struct {
	CourseID        string                    `json:"course_id" form:"course_id" validate:"required,min=1,max=32"`
	CourseName      string                    `json:"course_name" form:"course_name" validate:"required,min=1,max=160"`
	CourseCredit    int                       `json:"course_credit" form:"course_credit" validate:"required,min=1"`
	CourseClassHour int                       `json:"course_class_hour" form:"course_class_hour" validate:"required,min=1"`
	CourseGrading   coursemodel.CourseGrading `json:"course_grading" form:"course_grading" validate:"required"`

	Prerequisite *PrerequisiteRequest `json:"prerequisite,omitempty"`
}

func (r *CourseCreateRequest) Normalize() {
	r.CourseID = strings.TrimSpace(r.CourseID)
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.CourseGrading = coursemodel.CourseGrading(strings.ToUpper(strings.TrimSpace(string(r.CourseGrading))))
}

/* ----------------- SECTION & CLASS ----------------- */

type SectionCreateRequest struct {
	CourseID      string    `json:"course_id" form:"course_id" validate:"required"`
	SemesterID    uuid.UUID `json:"semester_id" form:"semester_id" validate:"required"`
	SectionName   string    `json:"section_name" form:"section_name" validate:"required,min=1,max=100"`
	// pointer supaya kapasitas 0 (section ditutup sejak awal) tetap lolos "required"
	TotalCapacity *int `json:"total_capacity" form:"total_capacity" validate:"required,min=0"`
}

type SectionClassCreateRequest struct {
	SectionID    uuid.UUID `json:"section_id" form:"section_id" validate:"required"`
	InstructorID uuid.UUID `json:"instructor_id" form:"instructor_id" validate:"required"`
	DayOfWeek    int       `json:"day_of_week" form:"day_of_week" validate:"required,min=1,max=7"`
	WeekList     []int64   `json:"week_list" form:"week_list" validate:"required,min=1"`
	ClassBegin   int       `json:"class_begin" form:"class_begin" validate:"required,min=1"`
	ClassEnd     int       `json:"class_end" form:"class_end" validate:"required,gtefield=ClassBegin"`
	Location     string    `json:"location" form:"location" validate:"required,min=1,max=100"`
}
