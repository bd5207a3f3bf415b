package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	regdto "kampusku_backend/internals/features/registration/dto"
	regmodel "kampusku_backend/internals/features/registration/model"
	helper "kampusku_backend/internals/helpers"
)

func TestSetGradeRespectsGradingScheme(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	ctx := context.Background()

	sem := seedSemester(t, db, "2026 Ganjil")
	major := seedMajor(t, db, "Informatika")
	student := seedStudent(t, db, "Budi Santoso", major.MajorID)
	seedCourse(t, db, "IF101", "Dasar Pemrograman", coursemodel.GradingHundredMarkScore)
	seedCourse(t, db, "PU100", "Bahasa Inggris", coursemodel.GradingPassOrFail)
	secMark := seedSection(t, db, "IF101", sem.SemesterID, "A", 30)
	secPOF := seedSection(t, db, "PU100", sem.SemesterID, "A", 30)

	res, err := svc.Enroll(ctx, student.StudentID, secMark.CourseSectionID)
	require.NoError(t, err)
	require.Equal(t, regdto.EnrollSuccess, res)
	res, err = svc.Enroll(ctx, student.StudentID, secPOF.CourseSectionID)
	require.NoError(t, err)
	require.Equal(t, regdto.EnrollSuccess, res)

	// jenis nilai salah = invalid state, tidak ditulis diam-diam
	err = svc.SetGrade(ctx, student.StudentID, secMark.CourseSectionID,
		regdto.GradeInput{PassOrFail: pofPtr(regmodel.GradePass)})
	require.ErrorIs(t, err, helper.ErrInvalidState)

	err = svc.SetGrade(ctx, student.StudentID, secPOF.CourseSectionID,
		regdto.GradeInput{Mark: intPtr(80)})
	require.ErrorIs(t, err, helper.ErrInvalidState)

	// dua-duanya terisi juga ditolak
	err = svc.SetGrade(ctx, student.StudentID, secMark.CourseSectionID,
		regdto.GradeInput{PassOrFail: pofPtr(regmodel.GradePass), Mark: intPtr(80)})
	require.ErrorIs(t, err, helper.ErrInvalidState)

	// nilai kosong ditolak
	err = svc.SetGrade(ctx, student.StudentID, secMark.CourseSectionID, regdto.GradeInput{})
	require.ErrorIs(t, err, helper.ErrInvalidState)

	// jenis benar: tersimpan
	require.NoError(t, svc.SetGrade(ctx, student.StudentID, secMark.CourseSectionID,
		regdto.GradeInput{Mark: intPtr(85)}))
	require.NoError(t, svc.SetGrade(ctx, student.StudentID, secPOF.CourseSectionID,
		regdto.GradeInput{PassOrFail: pofPtr(regmodel.GradePass)}))

	var take regmodel.TakesModel
	require.NoError(t, db.First(&take,
		"takes_student_id = ? AND takes_section_id = ?",
		student.StudentID, secMark.CourseSectionID).Error)
	require.NotNil(t, take.TakesMark)
	require.Equal(t, 85, *take.TakesMark)
	require.Nil(t, take.TakesPassOrFail)
}

func TestSetGradeWithoutEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	sem := seedSemester(t, db, "2026 Ganjil")
	major := seedMajor(t, db, "Informatika")
	student := seedStudent(t, db, "Budi Santoso", major.MajorID)
	seedCourse(t, db, "IF101", "Dasar Pemrograman", coursemodel.GradingHundredMarkScore)
	sec := seedSection(t, db, "IF101", sem.SemesterID, "A", 30)

	err := svc.SetGrade(context.Background(), student.StudentID, sec.CourseSectionID,
		regdto.GradeInput{Mark: intPtr(70)})
	require.ErrorIs(t, err, helper.ErrEntityNotFound)
}

func TestImportEnrollmentDoesNotConsumeSeat(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	ctx := context.Background()

	sem := seedSemester(t, db, "2025 Genap")
	major := seedMajor(t, db, "Informatika")
	student := seedStudent(t, db, "Budi Santoso", major.MajorID)
	seedCourse(t, db, "IF101", "Dasar Pemrograman", coursemodel.GradingHundredMarkScore)
	sec := seedSection(t, db, "IF101", sem.SemesterID, "A", 30)

	grade := regdto.GradeInput{Mark: intPtr(75)}
	require.NoError(t, svc.ImportEnrollment(ctx, student.StudentID, sec.CourseSectionID, &grade))

	// kursi tidak berkurang: import bukan jalur pendaftaran
	require.Equal(t, 30, leftCapacity(t, db, sec.CourseSectionID))

	var take regmodel.TakesModel
	require.NoError(t, db.First(&take,
		"takes_student_id = ? AND takes_section_id = ?",
		student.StudentID, sec.CourseSectionID).Error)
	require.NotNil(t, take.TakesMark)
	require.Equal(t, 75, *take.TakesMark)

	// import ganda menabrak unique (student, section)
	err := svc.ImportEnrollment(ctx, student.StudentID, sec.CourseSectionID, nil)
	require.ErrorIs(t, err, helper.ErrIntegrityViolation)
}

func TestImportEnrollmentValidatesGradeKind(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	sem := seedSemester(t, db, "2025 Genap")
	major := seedMajor(t, db, "Informatika")
	student := seedStudent(t, db, "Budi Santoso", major.MajorID)
	seedCourse(t, db, "PU100", "Bahasa Inggris", coursemodel.GradingPassOrFail)
	sec := seedSection(t, db, "PU100", sem.SemesterID, "A", 30)

	grade := regdto.GradeInput{Mark: intPtr(75)}
	err := svc.ImportEnrollment(context.Background(), student.StudentID, sec.CourseSectionID, &grade)
	require.ErrorIs(t, err, helper.ErrInvalidState)
}

func TestEnrolledCoursesWithGrades(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)
	ctx := context.Background()

	oldSem := seedSemester(t, db, "2025 Genap")
	sem := seedSemester(t, db, "2026 Ganjil")
	major := seedMajor(t, db, "Informatika")
	student := seedStudent(t, db, "Budi Santoso", major.MajorID)

	seedCourse(t, db, "IF101", "Dasar Pemrograman", coursemodel.GradingHundredMarkScore)
	seedCourse(t, db, "IF201", "Struktur Data", coursemodel.GradingHundredMarkScore)
	oldSec := seedSection(t, db, "IF101", oldSem.SemesterID, "A", 30)
	curSec := seedSection(t, db, "IF201", sem.SemesterID, "A", 30)

	seedGradedTake(t, db, student.StudentID, oldSec.CourseSectionID, nil, intPtr(80))
	res, err := svc.Enroll(ctx, student.StudentID, curSec.CourseSectionID)
	require.NoError(t, err)
	require.Equal(t, regdto.EnrollSuccess, res)

	all, err := svc.EnrolledCoursesWithGrades(ctx, student.StudentID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "IF101", all[0].CourseID)
	require.NotNil(t, all[0].Mark)
	require.Equal(t, 80, *all[0].Mark)
	require.Equal(t, "IF201", all[1].CourseID)
	require.Nil(t, all[1].Mark)
	require.Nil(t, all[1].PassOrFail)

	cur, err := svc.EnrolledCoursesWithGrades(ctx, student.StudentID, &sem.SemesterID)
	require.NoError(t, err)
	require.Len(t, cur, 1)
	require.Equal(t, "IF201", cur[0].CourseID)
}
