package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
)

func meeting(day int, weeks []int64, begin, end int) coursemodel.SectionClassModel {
	return coursemodel.SectionClassModel{
		SectionClassDayOfWeek: day,
		SectionClassWeekList:  pq.Int64Array(weeks),
		SectionClassBegin:     begin,
		SectionClassEnd:       end,
	}
}

func timetable(courseID, courseName, sectionName string, classes ...coursemodel.SectionClassModel) SectionTimetable {
	return SectionTimetable{
		SectionID:   uuid.New(),
		CourseID:    courseID,
		CourseName:  courseName,
		SectionName: sectionName,
		Classes:     classes,
	}
}

func TestMeetingsOverlapBoundaries(t *testing.T) {
	tests := []struct {
		name string
		a, b coursemodel.SectionClassModel
		want bool
	}{
		{"irisan sebagian [1,3]x[2,4]", meeting(1, []int64{1}, 1, 3), meeting(1, []int64{1}, 2, 4), true},
		{"bersentuhan di batas [1,2]x[2,3]", meeting(1, []int64{1}, 1, 2), meeting(1, []int64{1}, 2, 3), true},
		{"terpisah [1,2]x[3,4]", meeting(1, []int64{1}, 1, 2), meeting(1, []int64{1}, 3, 4), false},
		{"hari beda", meeting(1, []int64{1}, 1, 3), meeting(2, []int64{1}, 1, 3), false},
		{"minggu tidak beririsan", meeting(1, []int64{1, 3}, 1, 3), meeting(1, []int64{2, 4}, 1, 3), false},
		{"minggu beririsan satu", meeting(1, []int64{1, 2}, 1, 3), meeting(1, []int64{2, 9}, 3, 5), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, meetingsOverlap(tc.a, tc.b))
			require.Equal(t, tc.want, meetingsOverlap(tc.b, tc.a)) // simetris
		})
	}
}

func TestClassifyConflictDuplicateWinsOverOverlap(t *testing.T) {
	cand := timetable("IF101", "Dasar Pemrograman", "B", meeting(1, []int64{1}, 1, 3))
	enrolled := []SectionTimetable{
		timetable("IF101", "Dasar Pemrograman", "A", meeting(1, []int64{1}, 2, 4)),
	}
	// course sama DAN waktu bentrok: klasifikasinya tetap duplikat course
	require.Equal(t, ConflictCourseDuplicate, ClassifyConflict(cand, enrolled))
}

func TestClassifyConflictNone(t *testing.T) {
	cand := timetable("IF102", "Logika Matematika", "A", meeting(2, []int64{1}, 1, 2))
	enrolled := []SectionTimetable{
		timetable("IF101", "Dasar Pemrograman", "A", meeting(2, []int64{1}, 3, 4)),
	}
	require.Equal(t, ConflictNone, ClassifyConflict(cand, enrolled))
	require.Equal(t, ConflictNone, ClassifyConflict(cand, nil))
}

func TestClassifyConflictSelfOverlappingSection(t *testing.T) {
	// section yang pertemuannya bentrok dengan dirinya sendiri tidak
	// pernah bisa diambil, bahkan dengan enrollment kosong
	cand := timetable("IF103", "Kalkulus", "A",
		meeting(3, []int64{1}, 1, 3),
		meeting(3, []int64{1}, 2, 5),
	)
	require.Equal(t, ConflictTimeOverlap, ClassifyConflict(cand, nil))
}

func TestConflictingFullNamesDedupAndSorted(t *testing.T) {
	cand := timetable("IF104", "Basis Data", "A",
		meeting(1, []int64{1}, 1, 3),
		meeting(2, []int64{1}, 1, 3),
	)
	enrolled := []SectionTimetable{
		// bentrok lewat dua pertemuan sekaligus: tetap satu nama
		timetable("IF105", "Jaringan", "B",
			meeting(1, []int64{1}, 2, 4),
			meeting(2, []int64{1}, 2, 4),
		),
		timetable("IF101", "Aljabar", "A", meeting(1, []int64{1}, 3, 5)),
		timetable("IF106", "Aman", "A", meeting(5, []int64{1}, 1, 3)),
	}
	require.Equal(t,
		[]string{"Aljabar[A]", "Jaringan[B]"},
		ConflictingFullNames(cand, enrolled))
	require.Nil(t, ConflictingFullNames(cand, nil))
}

func TestSectionFullNameFormat(t *testing.T) {
	tt := timetable("IF101", "Dasar Pemrograman", "A")
	require.Equal(t, "Dasar Pemrograman[A]", tt.FullName())
}
