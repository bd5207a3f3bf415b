package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID           uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`
	StudentFullName     string    `gorm:"column:student_full_name;type:varchar(120);not null" json:"student_full_name"`
	StudentEnrolledDate time.Time `gorm:"column:student_enrolled_date;not null" json:"student_enrolled_date"`
	StudentMajorID      uuid.UUID `gorm:"column:student_major_id;type:uuid;not null;index" json:"student_major_id"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
