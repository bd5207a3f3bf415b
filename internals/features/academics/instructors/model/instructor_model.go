package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstructorModel struct {
	InstructorID       uuid.UUID `gorm:"column:instructor_id;type:uuid;primaryKey" json:"instructor_id"`
	InstructorFullName string    `gorm:"column:instructor_full_name;type:varchar(120);not null" json:"instructor_full_name"`

	InstructorCreatedAt time.Time `gorm:"column:instructor_created_at;not null;autoCreateTime" json:"instructor_created_at"`
	InstructorUpdatedAt time.Time `gorm:"column:instructor_updated_at;not null;autoUpdateTime" json:"instructor_updated_at"`
}

func (InstructorModel) TableName() string { return "instructors" }

func (m *InstructorModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstructorID == uuid.Nil {
		m.InstructorID = uuid.New()
	}
	return nil
}
