package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PassOrFail string

const (
	GradePass PassOrFail = "PASS"
	GradeFail PassOrFail = "FAIL"
)

// Ambang lulus untuk skema nilai angka
const PassMark = 60

// TakesModel: relasi mahasiswa ↔ section. Dibuat oleh enroll, dihapus
// oleh drop (hanya selama belum dinilai). Kolom nilai saling eksklusif
// mengikuti skema penilaian course-nya (dijaga service, bukan DB).
type TakesModel struct {
	TakesID        uuid.UUID `gorm:"column:takes_id;type:uuid;primaryKey" json:"takes_id"`
	TakesStudentID uuid.UUID `gorm:"column:takes_student_id;type:uuid;not null;uniqueIndex:uq_takes_student_section;index" json:"takes_student_id"`
	TakesSectionID uuid.UUID `gorm:"column:takes_section_id;type:uuid;not null;uniqueIndex:uq_takes_student_section;index" json:"takes_section_id"`

	// Nilai: salah satu saja yang terisi, sesuai grading course
	TakesPassOrFail *PassOrFail `gorm:"column:takes_pass_or_fail;type:varchar(8)" json:"takes_pass_or_fail,omitempty"`
	TakesMark       *int        `gorm:"column:takes_mark;type:smallint" json:"takes_mark,omitempty"`

	// Snapshot course+section saat enroll (hint tampilan, bukan sumber
	// kebenaran — selalu ditulis ulang di dalam transaksi enroll)
	TakesCourseSnapshot datatypes.JSONMap `gorm:"column:takes_course_snapshot;type:jsonb" json:"takes_course_snapshot,omitempty"`

	TakesCreatedAt time.Time `gorm:"column:takes_created_at;not null;autoCreateTime" json:"takes_created_at"`
	TakesUpdatedAt time.Time `gorm:"column:takes_updated_at;not null;autoUpdateTime" json:"takes_updated_at"`
}

func (TakesModel) TableName() string { return "takes" }

func (m *TakesModel) BeforeCreate(tx *gorm.DB) error {
	if m.TakesID == uuid.Nil {
		m.TakesID = uuid.New()
	}
	return nil
}

// Graded: baris sudah membawa nilai (drop tidak diizinkan lagi)
func (m *TakesModel) Graded() bool {
	return m.TakesPassOrFail != nil || m.TakesMark != nil
}

// Passed: lulus menurut skema masing-masing (PASS, atau mark >= 60)
func (m *TakesModel) Passed() bool {
	if m.TakesPassOrFail != nil {
		return *m.TakesPassOrFail == GradePass
	}
	if m.TakesMark != nil {
		return *m.TakesMark >= PassMark
	}
	return false
}
