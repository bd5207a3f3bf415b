package model

import (
	"time"

	"github.com/google/uuid"
)

type MajorCourseKind string

const (
	MajorCourseCompulsory MajorCourseKind = "compulsory"
	MajorCourseElective   MajorCourseKind = "elective"
)

// MajorCourseModel memetakan course ke kurikulum sebuah major
// (wajib prodi / pilihan prodi). Course tanpa baris di tabel ini
// dianggap mata kuliah umum (public).
type MajorCourseModel struct {
	MajorCourseMajorID  uuid.UUID       `gorm:"column:major_course_major_id;type:uuid;primaryKey" json:"major_course_major_id"`
	MajorCourseCourseID string          `gorm:"column:major_course_course_id;type:varchar(32);primaryKey" json:"major_course_course_id"`
	MajorCourseKind     MajorCourseKind `gorm:"column:major_course_kind;type:varchar(16);not null" json:"major_course_kind"`

	MajorCourseCreatedAt time.Time `gorm:"column:major_course_created_at;not null;autoCreateTime" json:"major_course_created_at"`
}

func (MajorCourseModel) TableName() string { return "major_courses" }
