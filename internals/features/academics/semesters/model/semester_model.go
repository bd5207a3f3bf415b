package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SemesterModel struct {
	SemesterID        uuid.UUID `gorm:"column:semester_id;type:uuid;primaryKey" json:"semester_id"`
	SemesterName      string    `gorm:"column:semester_name;type:varchar(60);not null" json:"semester_name"`
	SemesterBeginDate time.Time `gorm:"column:semester_begin_date;not null" json:"semester_begin_date"`
	SemesterEndDate   time.Time `gorm:"column:semester_end_date;not null" json:"semester_end_date"`

	SemesterCreatedAt time.Time `gorm:"column:semester_created_at;not null;autoCreateTime" json:"semester_created_at"`
	SemesterUpdatedAt time.Time `gorm:"column:semester_updated_at;not null;autoUpdateTime" json:"semester_updated_at"`
}

func (SemesterModel) TableName() string { return "semesters" }

func (m *SemesterModel) BeforeCreate(tx *gorm.DB) error {
	if m.SemesterID == uuid.Nil {
		m.SemesterID = uuid.New()
	}
	return nil
}
