package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	regdto "kampusku_backend/internals/features/registration/dto"
	regmodel "kampusku_backend/internals/features/registration/model"
	helper "kampusku_backend/internals/helpers"
)

// validateGradeKind: jenis nilai wajib cocok dengan skema penilaian
// course (pass/fail vs angka). Salah jenis = invalid state, tidak
// pernah ditelan diam-diam.
func validateGradeKind(grading coursemodel.CourseGrading, g regdto.GradeInput) error {
	if g.PassOrFail != nil && g.Mark != nil {
		return helper.ErrInvalidState
	}
	switch grading {
	case coursemodel.GradingPassOrFail:
		if g.Mark != nil {
			return helper.ErrInvalidState
		}
	case coursemodel.GradingHundredMarkScore:
		if g.PassOrFail != nil {
			return helper.ErrInvalidState
		}
	}
	return nil
}

// SetGrade menulis nilai untuk enrollment yang sudah ada (jalur
// administratif; drop tidak pernah mengubah nilai).
func (s *RegistrationService) SetGrade(ctx context.Context, studentID, sectionID uuid.UUID, grade regdto.GradeInput) error {
	if grade.Empty() {
		return helper.ErrInvalidState
	}
	return helper.RunTxWithRetry(s.DB.WithContext(ctx), func(tx *gorm.DB) error {
		var take regmodel.TakesModel
		if err := tx.First(&take,
			"takes_student_id = ? AND takes_section_id = ?", studentID, sectionID).Error; err != nil {
			return helper.TranslateDBError(err)
		}

		grading, err := s.gradingForSection(tx, sectionID)
		if err != nil {
			return err
		}
		if err := validateGradeKind(grading, grade); err != nil {
			return err
		}

		return tx.Model(&take).Updates(map[string]interface{}{
			"takes_pass_or_fail": grade.PassOrFail,
			"takes_mark":         grade.Mark,
		}).Error
	})
}

// ImportEnrollment menyisipkan riwayat ambil course (opsional bernilai)
// tanpa melewati mesin pendaftaran dan TANPA memakan kursi — khusus
// migrasi data semester lampau.
func (s *RegistrationService) ImportEnrollment(ctx context.Context, studentID, sectionID uuid.UUID, grade *regdto.GradeInput) error {
	return helper.RunTxWithRetry(s.DB.WithContext(ctx), func(tx *gorm.DB) error {
		var sec coursemodel.CourseSectionModel
		if err := tx.First(&sec, "course_section_id = ?", sectionID).Error; err != nil {
			return helper.TranslateDBError(err)
		}

		take := regmodel.TakesModel{
			TakesStudentID: studentID,
			TakesSectionID: sectionID,
		}
		if grade != nil && !grade.Empty() {
			grading, err := s.gradingForSection(tx, sectionID)
			if err != nil {
				return err
			}
			if err := validateGradeKind(grading, *grade); err != nil {
				return err
			}
			take.TakesPassOrFail = grade.PassOrFail
			take.TakesMark = grade.Mark
		}
		return helper.TranslateDBError(tx.Create(&take).Error)
	})
}

// EnrolledCoursesWithGrades: daftar course yang diambil mahasiswa
// beserta nilainya; semesterID nil = seluruh semester.
func (s *RegistrationService) EnrolledCoursesWithGrades(ctx context.Context, studentID uuid.UUID, semesterID *uuid.UUID) ([]regdto.EnrolledCourseGrade, error) {
	q := s.DB.WithContext(ctx).Table("takes").
		Select("course_sections.course_section_course_id AS course_id, courses.course_name, "+
			"course_sections.course_section_id AS section_id, "+
			"course_sections.course_section_name AS section_name, "+
			"course_sections.course_section_semester_id AS semester_id, "+
			"takes.takes_pass_or_fail AS pass_or_fail, takes.takes_mark AS mark").
		Joins("JOIN course_sections ON course_sections.course_section_id = takes.takes_section_id").
		Joins("JOIN courses ON courses.course_id = course_sections.course_section_course_id").
		Where("takes.takes_student_id = ?", studentID).
		Order("course_sections.course_section_course_id ASC")
	if semesterID != nil {
		q = q.Where("course_sections.course_section_semester_id = ?", *semesterID)
	}

	var out []regdto.EnrolledCourseGrade
	if err := q.Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RegistrationService) gradingForSection(tx *gorm.DB, sectionID uuid.UUID) (coursemodel.CourseGrading, error) {
	var course coursemodel.CourseModel
	err := tx.Joins("JOIN course_sections ON course_sections.course_section_course_id = courses.course_id").
		Where("course_sections.course_section_id = ?", sectionID).
		First(&course).Error
	if err != nil {
		return "", helper.TranslateDBError(err)
	}
	return course.CourseGrading, nil
}
