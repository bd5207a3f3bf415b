package model

import (
	"time"
)

type CourseGrading string

const (
	GradingPassOrFail       CourseGrading = "PASS_OR_FAIL"
	GradingHundredMarkScore CourseGrading = "HUNDRED_MARK_SCORE"
)

func (g CourseGrading) Valid() bool {
	return g == GradingPassOrFail || g == GradingHundredMarkScore
}

// CourseModel: mata kuliah. ID string (kode MK) dipakai sebagai PK,
// immutable setelah dirujuk section.
type CourseModel struct {
	CourseID        string        `gorm:"column:course_id;type:varchar(32);primaryKey" json:"course_id"`
	CourseName      string        `gorm:"column:course_name;type:varchar(160);not null" json:"course_name"`
	CourseCredit    int           `gorm:"column:course_credit;not null" json:"course_credit"`
	CourseClassHour int           `gorm:"column:course_class_hour;not null" json:"course_class_hour"`
	CourseGrading   CourseGrading `gorm:"column:course_grading;type:varchar(24);not null" json:"course_grading"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;not null;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string { return "courses" }
