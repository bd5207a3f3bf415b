package model

import (
	"github.com/lib/pq"
)

// Nilai kolom val untuk node gabungan; selain ini val berisi course_id (leaf).
const (
	PrereqNodeAnd = "AND"
	PrereqNodeOr  = "OR"
)

// CoursePrerequisiteNodeModel: satu node pohon prasyarat dalam bentuk
// flat (idx 0 = root, ptr = indeks anak). Encoding ini hanya hidup di
// storage; di memori pohon direkonstruksi jadi tagged union
// (lihat courses/service.PrereqNode).
type CoursePrerequisiteNodeModel struct {
	PrerequisiteCourseID string        `gorm:"column:prerequisite_course_id;type:varchar(32);primaryKey" json:"prerequisite_course_id"`
	PrerequisiteIdx      int           `gorm:"column:prerequisite_idx;primaryKey" json:"prerequisite_idx"`
	PrerequisiteVal      string        `gorm:"column:prerequisite_val;type:varchar(32);not null" json:"prerequisite_val"`
	PrerequisitePtr      pq.Int64Array `gorm:"column:prerequisite_ptr;type:int[]" json:"prerequisite_ptr,omitempty"`
}

func (CoursePrerequisiteNodeModel) TableName() string { return "course_prerequisites" }
