package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SectionClassModel: satu pertemuan terjadwal milik section
// (section bisa punya beberapa pertemuan, mis. kuliah + praktikum).
// Begin/End adalah slot waktu ordinal inklusif pada skala kampus.
type SectionClassModel struct {
	SectionClassID           uuid.UUID `gorm:"column:section_class_id;type:uuid;primaryKey" json:"section_class_id"`
	SectionClassSectionID    uuid.UUID `gorm:"column:section_class_section_id;type:uuid;not null;index" json:"section_class_section_id"`
	SectionClassInstructorID uuid.UUID `gorm:"column:section_class_instructor_id;type:uuid;not null;index" json:"section_class_instructor_id"`

	SectionClassDayOfWeek int           `gorm:"column:section_class_day_of_week;not null" json:"section_class_day_of_week"` // 1=Senin .. 7=Minggu
	SectionClassWeekList  pq.Int64Array `gorm:"column:section_class_week_list;type:int[];not null" json:"section_class_week_list"`
	SectionClassBegin     int           `gorm:"column:section_class_begin;not null" json:"section_class_begin"`
	SectionClassEnd       int           `gorm:"column:section_class_end;not null" json:"section_class_end"`
	SectionClassLocation  string        `gorm:"column:section_class_location;type:varchar(100);not null" json:"section_class_location"`

	SectionClassCreatedAt time.Time `gorm:"column:section_class_created_at;not null;autoCreateTime" json:"section_class_created_at"`
}

func (SectionClassModel) TableName() string { return "section_classes" }

func (m *SectionClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.SectionClassID == uuid.Nil {
		m.SectionClassID = uuid.New()
	}
	return nil
}
