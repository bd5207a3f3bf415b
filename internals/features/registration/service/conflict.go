package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
)

type ConflictKind int

const (
	ConflictNone ConflictKind = iota
	ConflictCourseDuplicate
	ConflictTimeOverlap
)

// SectionTimetable: agregat section + course + seluruh pertemuannya,
// bahan mentah deteksi konflik (murni in-memory, tanpa akses DB).
type SectionTimetable struct {
	SectionID   uuid.UUID
	CourseID    string
	CourseName  string
	SectionName string
	Classes     []coursemodel.SectionClassModel
}

// FullName: format tampilan "NamaCourse[NamaSection]"
func (t SectionTimetable) FullName() string {
	return fmt.Sprintf("%s[%s]", t.CourseName, t.SectionName)
}

// ClassifyConflict menentukan jenis konflik kandidat terhadap enrollment
// berjalan. Duplikasi course diperiksa lebih dulu, lalu bentrok waktu.
// Catatan degenerate yang dipertahankan: section yang pertemuannya
// saling bentrok dengan dirinya sendiri tetap TIME_OVERLAP — section
// semacam itu memang tidak bisa diambil.
func ClassifyConflict(candidate SectionTimetable, enrolled []SectionTimetable) ConflictKind {
	for _, e := range enrolled {
		if e.CourseID == candidate.CourseID {
			return ConflictCourseDuplicate
		}
	}

	// bentrok internal antar pertemuan kandidat sendiri (pasangan berbeda)
	for i := 0; i < len(candidate.Classes); i++ {
		for j := i + 1; j < len(candidate.Classes); j++ {
			if meetingsOverlap(candidate.Classes[i], candidate.Classes[j]) {
				return ConflictTimeOverlap
			}
		}
	}

	for _, e := range enrolled {
		if sectionsOverlap(candidate, e) {
			return ConflictTimeOverlap
		}
	}
	return ConflictNone
}

// ConflictingFullNames mengumpulkan nama tampilan section yang bentrok
// dengan kandidat (mode anotasi untuk search): de-dup + sort.
func ConflictingFullNames(candidate SectionTimetable, enrolled []SectionTimetable) []string {
	seen := make(map[string]struct{})
	for _, e := range enrolled {
		if e.CourseID == candidate.CourseID || sectionsOverlap(candidate, e) {
			seen[e.FullName()] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func sectionsOverlap(a, b SectionTimetable) bool {
	for _, ca := range a.Classes {
		for _, cb := range b.Classes {
			if meetingsOverlap(ca, cb) {
				return true
			}
		}
	}
	return false
}

// meetingsOverlap: bentrok iff ada minggu yang sama, hari sama, dan
// interval slot [begin,end] beririsan (batas inklusif).
func meetingsOverlap(a, b coursemodel.SectionClassModel) bool {
	if a.SectionClassDayOfWeek != b.SectionClassDayOfWeek {
		return false
	}
	if a.SectionClassBegin > b.SectionClassEnd || b.SectionClassBegin > a.SectionClassEnd {
		return false
	}
	for _, wa := range a.SectionClassWeekList {
		for _, wb := range b.SectionClassWeekList {
			if wa == wb {
				return true
			}
		}
	}
	return false
}
