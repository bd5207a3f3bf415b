package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	deptmodel "kampusku_backend/internals/features/academics/departments/model"
	instrmodel "kampusku_backend/internals/features/academics/instructors/model"
	majormodel "kampusku_backend/internals/features/academics/majors/model"
	semmodel "kampusku_backend/internals/features/academics/semesters/model"
	studentmodel "kampusku_backend/internals/features/academics/students/model"
	regmodel "kampusku_backend/internals/features/registration/model"
)

// newTestDB: sqlite in-memory per test. Nama DB unik supaya dua test
// paralel tidak berbagi schema lewat cache=shared.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&deptmodel.DepartmentModel{},
		&majormodel.MajorModel{},
		&majormodel.MajorCourseModel{},
		&semmodel.SemesterModel{},
		&instrmodel.InstructorModel{},
		&studentmodel.StudentModel{},
		&coursemodel.CourseModel{},
		&coursemodel.CoursePrerequisiteNodeModel{},
		&coursemodel.CourseSectionModel{},
		&coursemodel.SectionClassModel{},
		&regmodel.TakesModel{},
	))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

/* ===== seeder ===== */

func seedSemester(t *testing.T, db *gorm.DB, name string) semmodel.SemesterModel {
	t.Helper()
	sem := semmodel.SemesterModel{SemesterName: name}
	require.NoError(t, db.Create(&sem).Error)
	return sem
}

func seedMajor(t *testing.T, db *gorm.DB, name string) majormodel.MajorModel {
	t.Helper()
	dept := deptmodel.DepartmentModel{DepartmentName: "Dept " + name}
	require.NoError(t, db.Create(&dept).Error)
	major := majormodel.MajorModel{MajorName: name, MajorDepartmentID: dept.DepartmentID}
	require.NoError(t, db.Create(&major).Error)
	return major
}

func seedStudent(t *testing.T, db *gorm.DB, name string, majorID uuid.UUID) studentmodel.StudentModel {
	t.Helper()
	s := studentmodel.StudentModel{StudentFullName: name, StudentMajorID: majorID}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func seedInstructor(t *testing.T, db *gorm.DB, name string) instrmodel.InstructorModel {
	t.Helper()
	i := instrmodel.InstructorModel{InstructorFullName: name}
	require.NoError(t, db.Create(&i).Error)
	return i
}

func seedCourse(t *testing.T, db *gorm.DB, id, name string, grading coursemodel.CourseGrading) coursemodel.CourseModel {
	t.Helper()
	c := coursemodel.CourseModel{
		CourseID:        id,
		CourseName:      name,
		CourseCredit:    3,
		CourseClassHour: 3,
		CourseGrading:   grading,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedSection(t *testing.T, db *gorm.DB, courseID string, semesterID uuid.UUID, name string, capacity int) coursemodel.CourseSectionModel {
	t.Helper()
	s := coursemodel.CourseSectionModel{
		CourseSectionCourseID:      courseID,
		CourseSectionSemesterID:    semesterID,
		CourseSectionName:          name,
		CourseSectionTotalCapacity: capacity,
		CourseSectionLeftCapacity:  capacity,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func seedClass(t *testing.T, db *gorm.DB, sectionID, instructorID uuid.UUID, day int, weeks []int64, begin, end int, location string) coursemodel.SectionClassModel {
	t.Helper()
	c := coursemodel.SectionClassModel{
		SectionClassSectionID:    sectionID,
		SectionClassInstructorID: instructorID,
		SectionClassDayOfWeek:    day,
		SectionClassWeekList:     pq.Int64Array(weeks),
		SectionClassBegin:        begin,
		SectionClassEnd:          end,
		SectionClassLocation:     location,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

// seedGradedTake: riwayat ambil course yang sudah bernilai (lewat
// section lampau), dipakai untuk menguji prasyarat & cek sudah-lulus
func seedGradedTake(t *testing.T, db *gorm.DB, studentID, sectionID uuid.UUID, pof *regmodel.PassOrFail, mark *int) regmodel.TakesModel {
	t.Helper()
	take := regmodel.TakesModel{
		TakesStudentID:  studentID,
		TakesSectionID:  sectionID,
		TakesPassOrFail: pof,
		TakesMark:       mark,
	}
	require.NoError(t, db.Create(&take).Error)
	return take
}

func intPtr(n int) *int { return &n }

func pofPtr(v regmodel.PassOrFail) *regmodel.PassOrFail { return &v }

func leftCapacity(t *testing.T, db *gorm.DB, sectionID uuid.UUID) int {
	t.Helper()
	var sec coursemodel.CourseSectionModel
	require.NoError(t, db.First(&sec, "course_section_id = ?", sectionID).Error)
	return sec.CourseSectionLeftCapacity
}
