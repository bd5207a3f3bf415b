package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	courseservice "kampusku_backend/internals/features/academics/courses/service"
	studentmodel "kampusku_backend/internals/features/academics/students/model"
	regdto "kampusku_backend/internals/features/registration/dto"
	regmodel "kampusku_backend/internals/features/registration/model"
	helper "kampusku_backend/internals/helpers"
)

// sentinel internal: memaksa rollback lalu dipetakan ke outcome COURSE_IS_FULL
var errSectionFull = errors.New("section full")

type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

// Enroll menjalankan satu percobaan pendaftaran dalam SATU transaksi.
// Urutan cek signifikan dan short-circuit:
// keberadaan → duplikat enrollment → sudah lulus → prasyarat → konflik
// → kapasitas → commit. Kapasitas paling akhir karena satu-satunya cek
// yang menulis (guarded decrement), supaya lock dipegang sesingkat
// mungkin. Gagal kapasitas = rollback utuh, baris takes ikut hilang.
func (s *RegistrationService) Enroll(ctx context.Context, studentID, sectionID uuid.UUID) (regdto.EnrollResult, error) {
	var result regdto.EnrollResult

	err := helper.RunTxWithRetry(s.DB.WithContext(ctx), func(tx *gorm.DB) error {
		// mahasiswa harus ada (bukan outcome — ini error entitas)
		var student studentmodel.StudentModel
		if err := tx.First(&student, "student_id = ?", studentID).Error; err != nil {
			return helper.TranslateDBError(err)
		}

		// 1) section + course ada?
		var sec coursemodel.CourseSectionModel
		if err := tx.First(&sec, "course_section_id = ?", sectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result = regdto.EnrollCourseNotFound
				return nil
			}
			return err
		}
		var course coursemodel.CourseModel
		if err := tx.First(&course, "course_id = ?", sec.CourseSectionCourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result = regdto.EnrollCourseNotFound
				return nil
			}
			return err
		}

		// 2) sudah terdaftar di section yang sama persis?
		var cnt int64
		if err := tx.Model(&regmodel.TakesModel{}).
			Where("takes_student_id = ? AND takes_section_id = ?", studentID, sectionID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			result = regdto.EnrollAlreadyEnrolled
			return nil
		}

		// 3) course yang sama sudah pernah lulus?
		completed, err := s.completedCourseIDs(tx, studentID)
		if err != nil {
			return err
		}
		if _, passed := completed[course.CourseID]; passed {
			result = regdto.EnrollAlreadyPassed
			return nil
		}

		// 4) prasyarat terpenuhi?
		root, err := s.loadPrereqTree(tx, course.CourseID)
		if err != nil {
			return err
		}
		if !root.Satisfied(completed) {
			result = regdto.EnrollPrerequisitesNotFulfilled
			return nil
		}

		// 5) konflik course/waktu dengan enrollment semester ini?
		candidate, err := s.sectionTimetable(tx, sec, course.CourseName)
		if err != nil {
			return err
		}
		enrolled, err := s.enrolledTimetables(tx, studentID, sec.CourseSectionSemesterID)
		if err != nil {
			return err
		}
		if ClassifyConflict(candidate, enrolled) != ConflictNone {
			result = regdto.EnrollCourseConflictFound
			return nil
		}

		// 6) reservasi kursi + baris takes, keduanya di transaksi ini.
		// Snapshot course/section ikut ditulis di sini (hint tampilan,
		// di-refresh setiap enroll — bukan sumber kebenaran).
		take := regmodel.TakesModel{
			TakesStudentID: studentID,
			TakesSectionID: sectionID,
			TakesCourseSnapshot: datatypes.JSONMap{
				"course_id":    course.CourseID,
				"course_name":  course.CourseName,
				"section_name": sec.CourseSectionName,
			},
		}
		if err := tx.Create(&take).Error; err != nil {
			return helper.TranslateDBError(err)
		}

		// decrement terjaga: cek non-negatif dan tulis dalam satu
		// statement, aman terhadap reservasi paralel pada section sama
		res := tx.Model(&coursemodel.CourseSectionModel{}).
			Where("course_section_id = ? AND course_section_left_capacity > 0", sectionID).
			UpdateColumn("course_section_left_capacity", gorm.Expr("course_section_left_capacity - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errSectionFull
		}

		result = regdto.EnrollSuccess
		return nil
	})

	if errors.Is(err, errSectionFull) {
		return regdto.EnrollCourseIsFull, nil
	}
	if err != nil {
		return "", err
	}
	return result, nil
}

// Drop membatalkan enrollment: hapus baris takes + kembalikan satu
// kursi, atomik. Enrollment yang sudah dinilai tidak boleh di-drop.
func (s *RegistrationService) Drop(ctx context.Context, studentID, sectionID uuid.UUID) error {
	return helper.RunTxWithRetry(s.DB.WithContext(ctx), func(tx *gorm.DB) error {
		var take regmodel.TakesModel
		if err := tx.First(&take,
			"takes_student_id = ? AND takes_section_id = ?", studentID, sectionID).Error; err != nil {
			return helper.TranslateDBError(err)
		}
		if take.Graded() {
			return helper.ErrInvalidState
		}
		if err := tx.Delete(&take).Error; err != nil {
			return err
		}
		// release ter-cap di total_capacity (tidak pernah melewatinya)
		return tx.Model(&coursemodel.CourseSectionModel{}).
			Where("course_section_id = ?", sectionID).
			UpdateColumn("course_section_left_capacity", gorm.Expr(
				"CASE WHEN course_section_left_capacity < course_section_total_capacity "+
					"THEN course_section_left_capacity + 1 ELSE course_section_left_capacity END")).Error
	})
}

/* =========================================================
   Loader internal (dipakai enroll, drop, search, grade)
========================================================= */

type gradedCourseRow struct {
	CourseID        string
	TakesPassOrFail *regmodel.PassOrFail
	TakesMark       *int
}

// completedCourseIDs: himpunan course yang sudah lulus oleh mahasiswa
// (PASS, atau mark >= 60; FAIL dan mark di bawah ambang tidak dihitung)
func (s *RegistrationService) completedCourseIDs(tx *gorm.DB, studentID uuid.UUID) (map[string]struct{}, error) {
	var rows []gradedCourseRow
	err := tx.Table("takes").
		Select("course_sections.course_section_course_id AS course_id, takes.takes_pass_or_fail, takes.takes_mark").
		Joins("JOIN course_sections ON course_sections.course_section_id = takes.takes_section_id").
		Where("takes.takes_student_id = ?", studentID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		t := regmodel.TakesModel{TakesPassOrFail: r.TakesPassOrFail, TakesMark: r.TakesMark}
		if t.Passed() {
			out[r.CourseID] = struct{}{}
		}
	}
	return out, nil
}

func (s *RegistrationService) loadPrereqTree(tx *gorm.DB, courseID string) (*courseservice.PrereqNode, error) {
	var rows []coursemodel.CoursePrerequisiteNodeModel
	if err := tx.Where("prerequisite_course_id = ?", courseID).
		Order("prerequisite_idx ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return courseservice.DecodePrereqNodes(rows)
}

// PassedPrerequisites: apakah mahasiswa memenuhi prasyarat sebuah course
func (s *RegistrationService) PassedPrerequisites(ctx context.Context, studentID uuid.UUID, courseID string) (bool, error) {
	tx := s.DB.WithContext(ctx)
	var course coursemodel.CourseModel
	if err := tx.First(&course, "course_id = ?", courseID).Error; err != nil {
		return false, helper.TranslateDBError(err)
	}
	root, err := s.loadPrereqTree(tx, courseID)
	if err != nil {
		return false, err
	}
	completed, err := s.completedCourseIDs(tx, studentID)
	if err != nil {
		return false, err
	}
	return root.Satisfied(completed), nil
}

func (s *RegistrationService) sectionTimetable(tx *gorm.DB, sec coursemodel.CourseSectionModel, courseName string) (SectionTimetable, error) {
	var classes []coursemodel.SectionClassModel
	if err := tx.Where("section_class_section_id = ?", sec.CourseSectionID).
		Find(&classes).Error; err != nil {
		return SectionTimetable{}, err
	}
	return SectionTimetable{
		SectionID:   sec.CourseSectionID,
		CourseID:    sec.CourseSectionCourseID,
		CourseName:  courseName,
		SectionName: sec.CourseSectionName,
		Classes:     classes,
	}, nil
}

type enrolledSectionRow struct {
	CourseSectionID       uuid.UUID
	CourseSectionCourseID string
	CourseSectionName     string
	CourseName            string
}

// enrolledTimetables: semua section yang sedang diambil mahasiswa pada
// satu semester, lengkap dengan pertemuannya (satu query utk classes)
func (s *RegistrationService) enrolledTimetables(tx *gorm.DB, studentID, semesterID uuid.UUID) ([]SectionTimetable, error) {
	var rows []enrolledSectionRow
	err := tx.Table("takes").
		Select("course_sections.course_section_id, course_sections.course_section_course_id, "+
			"course_sections.course_section_name, courses.course_name").
		Joins("JOIN course_sections ON course_sections.course_section_id = takes.takes_section_id").
		Joins("JOIN courses ON courses.course_id = course_sections.course_section_course_id").
		Where("takes.takes_student_id = ? AND course_sections.course_section_semester_id = ?", studentID, semesterID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.CourseSectionID)
	}
	var classes []coursemodel.SectionClassModel
	if err := tx.Where("section_class_section_id IN ?", ids).Find(&classes).Error; err != nil {
		return nil, err
	}
	bySection := make(map[uuid.UUID][]coursemodel.SectionClassModel, len(rows))
	for _, c := range classes {
		bySection[c.SectionClassSectionID] = append(bySection[c.SectionClassSectionID], c)
	}

	out := make([]SectionTimetable, 0, len(rows))
	for _, r := range rows {
		out = append(out, SectionTimetable{
			SectionID:   r.CourseSectionID,
			CourseID:    r.CourseSectionCourseID,
			CourseName:  r.CourseName,
			SectionName: r.CourseSectionName,
			Classes:     bySection[r.CourseSectionID],
		})
	}
	return out, nil
}
