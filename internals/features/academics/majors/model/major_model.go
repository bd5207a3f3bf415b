package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MajorModel struct {
	MajorID           uuid.UUID `gorm:"column:major_id;type:uuid;primaryKey" json:"major_id"`
	MajorName         string    `gorm:"column:major_name;type:varchar(120);not null" json:"major_name"`
	MajorDepartmentID uuid.UUID `gorm:"column:major_department_id;type:uuid;not null;index" json:"major_department_id"`

	MajorCreatedAt time.Time `gorm:"column:major_created_at;not null;autoCreateTime" json:"major_created_at"`
	MajorUpdatedAt time.Time `gorm:"column:major_updated_at;not null;autoUpdateTime" json:"major_updated_at"`
}

func (MajorModel) TableName() string { return "majors" }

func (m *MajorModel) BeforeCreate(tx *gorm.DB) error {
	if m.MajorID == uuid.Nil {
		m.MajorID = uuid.New()
	}
	return nil
}
