package dto

import (
	"strings"

	"github.com/google/uuid"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
)

// CourseType: klasifikasi course relatif terhadap major mahasiswa
type CourseType string

const (
	CourseTypeAll             CourseType = "ALL"
	CourseTypeMajorCompulsory CourseType = "MAJOR_COMPULSORY"
	CourseTypeMajorElective   CourseType = "MAJOR_ELECTIVE"
	CourseTypeCrossMajor      CourseType = "CROSS_MAJOR"
	CourseTypePublic          CourseType = "PUBLIC"
)

func (t CourseType) Valid() bool {
	switch t {
	case CourseTypeAll, CourseTypeMajorCompulsory, CourseTypeMajorElective,
		CourseTypeCrossMajor, CourseTypePublic:
		return true
	}
	return false
}

// CourseSearchRequest: semua filter opsional, komposisinya konjungtif —
// filter yang tidak diisi tidak membatasi apa pun.
type CourseSearchRequest struct {
	SemesterID uuid.UUID `json:"semester_id" form:"semester_id" validate:"required"`

	SearchCID        *string `json:"search_cid" form:"search_cid"`
	SearchName       *string `json:"search_name" form:"search_name"`
	SearchInstructor *string `json:"search_instructor" form:"search_instructor"`

	SearchDayOfWeek      *int     `json:"search_day_of_week" form:"search_day_of_week" validate:"omitempty,min=1,max=7"`
	SearchClassTime      *int     `json:"search_class_time" form:"search_class_time" validate:"omitempty,min=1"`
	SearchClassLocations []string `json:"search_class_locations" form:"search_class_locations"`

	SearchCourseType CourseType `json:"search_course_type" form:"search_course_type"`

	IgnoreFull                 bool `json:"ignore_full" form:"ignore_full"`
	IgnoreConflict             bool `json:"ignore_conflict" form:"ignore_conflict"`
	IgnorePassed               bool `json:"ignore_passed" form:"ignore_passed"`
	IgnoreMissingPrerequisites bool `json:"ignore_missing_prerequisites" form:"ignore_missing_prerequisites"`

	PageSize  int `json:"page_size" form:"page_size" validate:"required,min=1,max=200"`
	PageIndex int `json:"page_index" form:"page_index" validate:"min=0"`
}

func (r *CourseSearchRequest) Normalize() {
	trimPtr := func(pp **string) {
		if *pp == nil {
			return
		}
		s := strings.TrimSpace(**pp)
		if s == "" {
			*pp = nil
			return
		}
		*pp = &s
	}
	trimPtr(&r.SearchCID)
	trimPtr(&r.SearchName)
	trimPtr(&r.SearchInstructor)

	locs := r.SearchClassLocations[:0]
	for _, l := range r.SearchClassLocations {
		if l = strings.TrimSpace(l); l != "" {
			locs = append(locs, l)
		}
	}
	r.SearchClassLocations = locs

	if r.SearchCourseType == "" {
		r.SearchCourseType = CourseTypeAll
	} else {
		r.SearchCourseType = CourseType(strings.ToUpper(strings.TrimSpace(string(r.SearchCourseType))))
	}
}

type SectionClassEntry struct {
	ClassID            uuid.UUID `json:"class_id"`
	InstructorID       uuid.UUID `json:"instructor_id"`
	InstructorFullName string    `json:"instructor_full_name"`
	DayOfWeek          int       `json:"day_of_week"`
	WeekList           []int64   `json:"week_list"`
	ClassBegin         int       `json:"class_begin"`
	ClassEnd           int       `json:"class_end"`
	Location           string    `json:"location"`
}

// CourseSearchEntry: satu baris hasil pencarian. ConflictCourseNames
// terisi (terurut, unik) hanya bila ignore_conflict tidak aktif.
type CourseSearchEntry struct {
	CourseID      string                    `json:"course_id"`
	CourseName    string                    `json:"course_name"`
	CourseCredit  int                       `json:"course_credit"`
	CourseGrading coursemodel.CourseGrading `json:"course_grading"`

	SectionID     uuid.UUID `json:"section_id"`
	SectionName   string    `json:"section_name"`
	TotalCapacity int       `json:"total_capacity"`
	LeftCapacity  int       `json:"left_capacity"`

	Classes []SectionClassEntry `json:"classes"`

	ConflictCourseNames []string `json:"conflict_course_names,omitempty"`
}
