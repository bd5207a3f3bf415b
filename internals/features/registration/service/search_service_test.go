package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	courseservice "kampusku_backend/internals/features/academics/courses/service"
	instrmodel "kampusku_backend/internals/features/academics/instructors/model"
	majormodel "kampusku_backend/internals/features/academics/majors/model"
	semmodel "kampusku_backend/internals/features/academics/semesters/model"
	studentmodel "kampusku_backend/internals/features/academics/students/model"
	regdto "kampusku_backend/internals/features/registration/dto"
)

// katalog standar untuk test pencarian:
//
//	CS101 Algoritma      — wajib major mahasiswa, Senin slot 1-2, R101
//	CS102 Basis Data     — pilihan major mahasiswa, Selasa slot 3-4, R102
//	EE101 Elektronika    — kurikulum major lain (cross-major), Rabu 1-2
//	PU100 Bahasa Inggris — tanpa baris kurikulum (public), Kamis 1-2
type searchFixture struct {
	sem     semmodel.SemesterModel
	major   majormodel.MajorModel
	student studentmodel.StudentModel
	instr   instrmodel.InstructorModel

	secCS101 coursemodel.CourseSectionModel
	secCS102 coursemodel.CourseSectionModel
	secEE101 coursemodel.CourseSectionModel
	secPU100 coursemodel.CourseSectionModel
}

func newSearchFixture(t *testing.T, db *gorm.DB) searchFixture {
	t.Helper()
	f := searchFixture{}
	f.sem = seedSemester(t, db, "2026 Ganjil")
	f.major = seedMajor(t, db, "Informatika")
	otherMajor := seedMajor(t, db, "Teknik Elektro")
	f.student = seedStudent(t, db, "Budi Santoso", f.major.MajorID)
	f.instr = seedInstructor(t, db, "Siti Rahma")

	seedCourse(t, db, "CS101", "Algoritma", coursemodel.GradingHundredMarkScore)
	seedCourse(t, db, "CS102", "Basis Data", coursemodel.GradingHundredMarkScore)
	seedCourse(t, db, "EE101", "Elektronika", coursemodel.GradingHundredMarkScore)
	seedCourse(t, db, "PU100", "Bahasa Inggris", coursemodel.GradingPassOrFail)

	require.NoError(t, db.Create(&majormodel.MajorCourseModel{
		MajorCourseMajorID: f.major.MajorID, MajorCourseCourseID: "CS101",
		MajorCourseKind: majormodel.MajorCourseCompulsory,
	}).Error)
	require.NoError(t, db.Create(&majormodel.MajorCourseModel{
		MajorCourseMajorID: f.major.MajorID, MajorCourseCourseID: "CS102",
		MajorCourseKind: majormodel.MajorCourseElective,
	}).Error)
	require.NoError(t, db.Create(&majormodel.MajorCourseModel{
		MajorCourseMajorID: otherMajor.MajorID, MajorCourseCourseID: "EE101",
		MajorCourseKind: majormodel.MajorCourseCompulsory,
	}).Error)

	f.secCS101 = seedSection(t, db, "CS101", f.sem.SemesterID, "A", 30)
	f.secCS102 = seedSection(t, db, "CS102", f.sem.SemesterID, "A", 30)
	f.secEE101 = seedSection(t, db, "EE101", f.sem.SemesterID, "A", 30)
	f.secPU100 = seedSection(t, db, "PU100", f.sem.SemesterID, "A", 30)

	seedClass(t, db, f.secCS101.CourseSectionID, f.instr.InstructorID, 1, []int64{1, 2}, 1, 2, "R101")
	seedClass(t, db, f.secCS102.CourseSectionID, f.instr.InstructorID, 2, []int64{1, 2}, 3, 4, "R102")
	seedClass(t, db, f.secEE101.CourseSectionID, f.instr.InstructorID, 3, []int64{1, 2}, 1, 2, "R201")
	seedClass(t, db, f.secPU100.CourseSectionID, f.instr.InstructorID, 4, []int64{1, 2}, 1, 2, "R301")
	return f
}

func baseSearchReq(f searchFixture) regdto.CourseSearchRequest {
	return regdto.CourseSearchRequest{
		SemesterID:       f.sem.SemesterID,
		SearchCourseType: regdto.CourseTypeAll,
		PageSize:         50,
	}
}

func entryCourseIDs(entries []regdto.CourseSearchEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.CourseID)
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestSearchNoFilterReturnsAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	f := newSearchFixture(t, db)

	entries, err := svc.SearchCourses(context.Background(), f.student.StudentID, baseSearchReq(f))
	require.NoError(t, err)
	// urutan deterministik: course_id naik
	require.Equal(t, []string{"CS101", "CS102", "EE101", "PU100"}, entryCourseIDs(entries))
}

func TestSearchSubstringFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	f := newSearchFixture(t, db)
	ctx := context.Background()

	req := baseSearchReq(f)
	req.SearchCID = strPtr("CS1")
	entries, err := svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS101", "CS102"}, entryCourseIDs(entries))

	req = baseSearchReq(f)
	req.SearchName = strPtr("Basis")
	entries, err = svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS102"}, entryCourseIDs(entries))

	req = baseSearchReq(f)
	req.SearchInstructor = strPtr("Rahma")
	entries, err = svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// filter konjungtif: cid cocok tapi nama tidak
	req = baseSearchReq(f)
	req.SearchCID = strPtr("CS1")
	req.SearchName = strPtr("Elektronika")
	entries, err = svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSearchMeetingFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	f := newSearchFixture(t, db)
	ctx := context.Background()

	day := 2
	req := baseSearchReq(f)
	req.SearchDayOfWeek = &day
	entries, err := svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS102"}, entryCourseIDs(entries))

	slot := 4
	req = baseSearchReq(f)
	req.SearchClassTime = &slot
	entries, err = svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS102"}, entryCourseIDs(entries))

	req = baseSearchReq(f)
	req.SearchClassLocations = []string{"R101", "R301"}
	entries, err = svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS101", "PU100"}, entryCourseIDs(entries))
}

func TestSearchCourseTypes(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	f := newSearchFixture(t, db)
	ctx := context.Background()

	tests := []struct {
		kind regdto.CourseType
		want []string
	}{
		{regdto.CourseTypeMajorCompulsory, []string{"CS101"}},
		{regdto.CourseTypeMajorElective, []string{"CS102"}},
		{regdto.CourseTypeCrossMajor, []string{"EE101"}},
		{regdto.CourseTypePublic, []string{"PU100"}},
		{regdto.CourseTypeAll, []string{"CS101", "CS102", "EE101", "PU100"}},
	}
	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			req := baseSearchReq(f)
			req.SearchCourseType = tc.kind
			entries, err := svc.SearchCourses(ctx, f.student.StudentID, req)
			require.NoError(t, err)
			require.Equal(t, tc.want, entryCourseIDs(entries))
		})
	}
}

func TestSearchIgnoreFull(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	f := newSearchFixture(t, db)

	require.NoError(t, db.Model(&coursemodel.CourseSectionModel{}).
		Where("course_section_id = ?", f.secEE101.CourseSectionID).
		Update("course_section_left_capacity", 0).Error)

	req := baseSearchReq(f)
	req.IgnoreFull = true
	entries, err := svc.SearchCourses(context.Background(), f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS101", "CS102", "PU100"}, entryCourseIDs(entries))
}

func TestSearchPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	f := newSearchFixture(t, db)
	ctx := context.Background()

	req := baseSearchReq(f)
	req.PageSize = 3

	page0, err := svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS101", "CS102", "EE101"}, entryCourseIDs(page0))

	req.PageIndex = 1
	page1, err := svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"PU100"}, entryCourseIDs(page1))

	// lewat akhir: halaman kosong yang valid, bukan error
	req.PageIndex = 2
	page2, err := svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Empty(t, page2)
}

func TestSearchConflictAnnotationAndExclusion(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	f := newSearchFixture(t, db)
	ctx := context.Background()

	// ambil CS101 (Senin 1-2); MA101 Senin 2-3 akan bentrok waktu
	res, err := svc.Enroll(ctx, f.student.StudentID, f.secCS101.CourseSectionID)
	require.NoError(t, err)
	require.Equal(t, regdto.EnrollSuccess, res)

	seedCourse(t, db, "MA101", "Kalkulus", coursemodel.GradingHundredMarkScore)
	secMA := seedSection(t, db, "MA101", f.sem.SemesterID, "A", 30)
	seedClass(t, db, secMA.CourseSectionID, f.instr.InstructorID, 1, []int64{1}, 2, 3, "R401")

	// mode anotasi: hasil tetap muncul, nama section bentrok terlampir
	entries, err := svc.SearchCourses(ctx, f.student.StudentID, baseSearchReq(f))
	require.NoError(t, err)
	byID := make(map[string]regdto.CourseSearchEntry, len(entries))
	for _, e := range entries {
		byID[e.CourseID] = e
	}
	require.Equal(t, []string{"Algoritma[A]"}, byID["MA101"].ConflictCourseNames)
	// section lain dari course yang sedang diambil: duplikat course
	require.Equal(t, []string{"Algoritma[A]"}, byID["CS101"].ConflictCourseNames)
	require.Empty(t, byID["CS102"].ConflictCourseNames)

	// mode eksklusi: yang bentrok gugur dari hasil
	req := baseSearchReq(f)
	req.IgnoreConflict = true
	entries, err = svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS102", "EE101", "PU100"}, entryCourseIDs(entries))
}

func TestSearchIgnorePassedAndPrerequisites(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	f := newSearchFixture(t, db)
	ctx := context.Background()

	// CS102 butuh CS101; mahasiswa belum lulus apa pun
	rows := courseservice.FlattenPrereqTree("CS102", &courseservice.PrereqNode{
		Kind: courseservice.PrereqLeaf, CourseID: "CS101",
	})
	require.NoError(t, db.Create(&rows).Error)

	req := baseSearchReq(f)
	req.IgnoreMissingPrerequisites = true
	entries, err := svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS101", "EE101", "PU100"}, entryCourseIDs(entries))

	// luluskan CS101 lewat section semester lalu
	oldSem := seedSemester(t, db, "2025 Genap")
	oldSec := seedSection(t, db, "CS101", oldSem.SemesterID, "A", 30)
	seedGradedTake(t, db, f.student.StudentID, oldSec.CourseSectionID, nil, intPtr(90))

	entries, err = svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS101", "CS102", "EE101", "PU100"}, entryCourseIDs(entries))

	// ignore_passed menggugurkan course yang sudah lulus
	req = baseSearchReq(f)
	req.IgnorePassed = true
	entries, err = svc.SearchCourses(ctx, f.student.StudentID, req)
	require.NoError(t, err)
	require.Equal(t, []string{"CS102", "EE101", "PU100"}, entryCourseIDs(entries))
}

func TestSearchEntryCarriesClassDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	f := newSearchFixture(t, db)

	req := baseSearchReq(f)
	req.SearchCID = strPtr("CS101")
	entries, err := svc.SearchCourses(context.Background(), f.student.StudentID, req)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	require.Equal(t, "Algoritma", e.CourseName)
	require.Equal(t, "A", e.SectionName)
	require.Equal(t, 30, e.TotalCapacity)
	require.Len(t, e.Classes, 1)
	require.Equal(t, "Siti Rahma", e.Classes[0].InstructorFullName)
	require.Equal(t, []int64{1, 2}, e.Classes[0].WeekList)
	require.Equal(t, "R101", e.Classes[0].Location)
}
