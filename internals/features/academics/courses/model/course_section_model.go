package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseSectionModel: satu penawaran course pada satu semester dengan
// kuota kursinya sendiri. Invariant 0 <= left <= total dijaga oleh
// registration service (decrement terjaga + release ter-cap).
type CourseSectionModel struct {
	CourseSectionID         uuid.UUID `gorm:"column:course_section_id;type:uuid;primaryKey" json:"course_section_id"`
	CourseSectionCourseID   string    `gorm:"column:course_section_course_id;type:varchar(32);not null;index" json:"course_section_course_id"`
	CourseSectionSemesterID uuid.UUID `gorm:"column:course_section_semester_id;type:uuid;not null;index" json:"course_section_semester_id"`
	CourseSectionName       string    `gorm:"column:course_section_name;type:varchar(100);not null" json:"course_section_name"`

	CourseSectionTotalCapacity int `gorm:"column:course_section_total_capacity;not null" json:"course_section_total_capacity"`
	CourseSectionLeftCapacity  int `gorm:"column:course_section_left_capacity;not null" json:"course_section_left_capacity"`

	CourseSectionCreatedAt time.Time `gorm:"column:course_section_created_at;not null;autoCreateTime" json:"course_section_created_at"`
	CourseSectionUpdatedAt time.Time `gorm:"column:course_section_updated_at;not null;autoUpdateTime" json:"course_section_updated_at"`
}

func (CourseSectionModel) TableName() string { return "course_sections" }

func (m *CourseSectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseSectionID == uuid.Nil {
		m.CourseSectionID = uuid.New()
	}
	return nil
}
