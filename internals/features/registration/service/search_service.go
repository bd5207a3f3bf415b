package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	instructormodel "kampusku_backend/internals/features/academics/instructors/model"
	majormodel "kampusku_backend/internals/features/academics/majors/model"
	studentmodel "kampusku_backend/internals/features/academics/students/model"
	regdto "kampusku_backend/internals/features/registration/dto"
	helper "kampusku_backend/internals/helpers"
)

// baris hasil join section × course untuk pencarian
type searchRow struct {
	CourseSectionID            uuid.UUID
	CourseSectionCourseID      string
	CourseSectionName          string
	CourseSectionTotalCapacity int
	CourseSectionLeftCapacity  int
	CourseName                 string
	CourseCredit               int
	CourseGrading              coursemodel.CourseGrading
}

// SearchCourses menyusun halaman hasil pencarian section untuk satu
// mahasiswa. Filter SQL disusun sebagai predikat terpisah (konjungtif,
// tanpa rakit string) — lihat applySearchScopes. Filter yang butuh
// evaluasi di memori (passed / prasyarat / konflik) dijalankan SETELAH
// fetch dan SEBELUM paging, supaya offset konsisten dengan hasil akhir.
func (s *RegistrationService) SearchCourses(ctx context.Context, studentID uuid.UUID, req regdto.CourseSearchRequest) ([]regdto.CourseSearchEntry, error) {
	tx := s.DB.WithContext(ctx)

	var student studentmodel.StudentModel
	if err := tx.First(&student, "student_id = ?", studentID).Error; err != nil {
		return nil, helper.TranslateDBError(err)
	}

	q := tx.Table("course_sections").
		Select("course_sections.course_section_id, course_sections.course_section_course_id, "+
			"course_sections.course_section_name, course_sections.course_section_total_capacity, "+
			"course_sections.course_section_left_capacity, "+
			"courses.course_name, courses.course_credit, courses.course_grading").
		Joins("JOIN courses ON courses.course_id = course_sections.course_section_course_id").
		Where("course_sections.course_section_semester_id = ?", req.SemesterID)

	q = applySearchScopes(q, student.StudentMajorID, req)

	// determinisme antar halaman: course id → course name → section name
	q = q.Order("courses.course_id ASC").
		Order("courses.course_name ASC").
		Order("course_sections.course_section_name ASC")

	var rows []searchRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	// ===== filter in-memory (sebelum paging) =====

	var completed map[string]struct{}
	if req.IgnorePassed || req.IgnoreMissingPrerequisites {
		var err error
		completed, err = s.completedCourseIDs(tx, studentID)
		if err != nil {
			return nil, err
		}
	}

	// memo evaluasi prasyarat per course dalam satu request
	prereqOK := make(map[string]bool)
	passesPrereq := func(courseID string) (bool, error) {
		if ok, seen := prereqOK[courseID]; seen {
			return ok, nil
		}
		root, err := s.loadPrereqTree(tx, courseID)
		if err != nil {
			return false, err
		}
		ok := root.Satisfied(completed)
		prereqOK[courseID] = ok
		return ok, nil
	}

	// timetable enrollment selalu dibutuhkan: untuk menggugurkan hasil
	// (ignore_conflict) ataupun untuk anotasi konflik
	enrolled, err := s.enrolledTimetables(tx, studentID, req.SemesterID)
	if err != nil {
		return nil, err
	}

	// classes seluruh kandidat dalam satu query, dikelompokkan per section
	classesBySection, err := s.classesForSections(tx, rows)
	if err != nil {
		return nil, err
	}

	var matches []searchMatch
	for _, r := range rows {
		if req.IgnorePassed {
			if _, passed := completed[r.CourseSectionCourseID]; passed {
				continue
			}
		}
		if req.IgnoreMissingPrerequisites {
			ok, err := passesPrereq(r.CourseSectionCourseID)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		cand := SectionTimetable{
			SectionID:   r.CourseSectionID,
			CourseID:    r.CourseSectionCourseID,
			CourseName:  r.CourseName,
			SectionName: r.CourseSectionName,
			Classes:     classesBySection[r.CourseSectionID],
		}
		if req.IgnoreConflict {
			if ClassifyConflict(cand, enrolled) != ConflictNone {
				continue
			}
			matches = append(matches, searchMatch{row: r, timetable: cand})
			continue
		}
		// mode anotasi: konflik tidak menggugurkan hasil
		matches = append(matches, searchMatch{
			row:       r,
			timetable: cand,
			conflicts: ConflictingFullNames(cand, enrolled),
		})
	}

	// ===== paging: offset = page_size × page_index =====
	offset := req.PageSize * req.PageIndex
	if offset >= len(matches) {
		return []regdto.CourseSearchEntry{}, nil
	}
	end := offset + req.PageSize
	if end > len(matches) {
		end = len(matches)
	}
	page := matches[offset:end]

	return s.buildSearchEntries(tx, page)
}

// applySearchScopes: tiap filter opsional = satu predikat independen,
// digabung AND. Substring pakai LIKE dengan parameter bind (bukan
// konkatenasi SQL), subquery EXISTS untuk atribut pertemuan/instruktur.
func applySearchScopes(q *gorm.DB, majorID uuid.UUID, req regdto.CourseSearchRequest) *gorm.DB {
	if req.SearchCID != nil {
		q = q.Where("courses.course_id LIKE ?", "%"+*req.SearchCID+"%")
	}
	if req.SearchName != nil {
		q = q.Where("courses.course_name LIKE ?", "%"+*req.SearchName+"%")
	}
	if req.SearchInstructor != nil {
		q = q.Where("EXISTS (SELECT 1 FROM section_classes "+
			"JOIN instructors ON instructors.instructor_id = section_classes.section_class_instructor_id "+
			"WHERE section_classes.section_class_section_id = course_sections.course_section_id "+
			"AND instructors.instructor_full_name LIKE ?)", "%"+*req.SearchInstructor+"%")
	}
	if req.SearchDayOfWeek != nil {
		q = q.Where("EXISTS (SELECT 1 FROM section_classes "+
			"WHERE section_classes.section_class_section_id = course_sections.course_section_id "+
			"AND section_classes.section_class_day_of_week = ?)", *req.SearchDayOfWeek)
	}
	if req.SearchClassTime != nil {
		q = q.Where("EXISTS (SELECT 1 FROM section_classes "+
			"WHERE section_classes.section_class_section_id = course_sections.course_section_id "+
			"AND section_classes.section_class_begin <= ? AND ? <= section_classes.section_class_end)",
			*req.SearchClassTime, *req.SearchClassTime)
	}
	if len(req.SearchClassLocations) > 0 {
		q = q.Where("EXISTS (SELECT 1 FROM section_classes "+
			"WHERE section_classes.section_class_section_id = course_sections.course_section_id "+
			"AND section_classes.section_class_location IN ?)", req.SearchClassLocations)
	}
	if req.IgnoreFull {
		q = q.Where("course_sections.course_section_left_capacity > 0")
	}

	switch req.SearchCourseType {
	case regdto.CourseTypeMajorCompulsory:
		q = q.Where("EXISTS (SELECT 1 FROM major_courses "+
			"WHERE major_courses.major_course_course_id = courses.course_id "+
			"AND major_courses.major_course_major_id = ? AND major_courses.major_course_kind = ?)",
			majorID, majormodel.MajorCourseCompulsory)
	case regdto.CourseTypeMajorElective:
		q = q.Where("EXISTS (SELECT 1 FROM major_courses "+
			"WHERE major_courses.major_course_course_id = courses.course_id "+
			"AND major_courses.major_course_major_id = ? AND major_courses.major_course_kind = ?)",
			majorID, majormodel.MajorCourseElective)
	case regdto.CourseTypeCrossMajor:
		// masuk kurikulum major lain, tapi bukan kurikulum major mahasiswa
		q = q.Where("EXISTS (SELECT 1 FROM major_courses "+
			"WHERE major_courses.major_course_course_id = courses.course_id "+
			"AND major_courses.major_course_major_id <> ?)", majorID).
			Where("NOT EXISTS (SELECT 1 FROM major_courses "+
				"WHERE major_courses.major_course_course_id = courses.course_id "+
				"AND major_courses.major_course_major_id = ?)", majorID)
	case regdto.CourseTypePublic:
		q = q.Where("NOT EXISTS (SELECT 1 FROM major_courses " +
			"WHERE major_courses.major_course_course_id = courses.course_id)")
	}
	return q
}

func (s *RegistrationService) classesForSections(tx *gorm.DB, rows []searchRow) (map[uuid.UUID][]coursemodel.SectionClassModel, error) {
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
	out := make(map[uuid.UUID][]coursemodel.SectionClassModel)
	for _, c := range classes {
		out[c.SectionClassSectionID] = append(out[c.SectionClassSectionID], c)
	}
	return out, nil
}

type searchMatch struct {
	row       searchRow
	timetable SectionTimetable
	conflicts []string
}

func (s *RegistrationService) buildSearchEntries(tx *gorm.DB, page []searchMatch) ([]regdto.CourseSearchEntry, error) {
	// nama instruktur untuk seluruh class di halaman ini, satu query
	instructorIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, m := range page {
		for _, c := range m.timetable.Classes {
			if _, ok := seen[c.SectionClassInstructorID]; !ok {
				seen[c.SectionClassInstructorID] = struct{}{}
				instructorIDs = append(instructorIDs, c.SectionClassInstructorID)
			}
		}
	}
	names := make(map[uuid.UUID]string, len(instructorIDs))
	if len(instructorIDs) > 0 {
		var instructors []instructormodel.InstructorModel
		if err := tx.Where("instructor_id IN ?", instructorIDs).Find(&instructors).Error; err != nil {
			return nil, err
		}
		for _, i := range instructors {
			names[i.InstructorID] = i.InstructorFullName
		}
	}

	entries := make([]regdto.CourseSearchEntry, 0, len(page))
	for _, m := range page {
		entry := regdto.CourseSearchEntry{
			CourseID:            m.row.CourseSectionCourseID,
			CourseName:          m.row.CourseName,
			CourseCredit:        m.row.CourseCredit,
			CourseGrading:       m.row.CourseGrading,
			SectionID:           m.row.CourseSectionID,
			SectionName:         m.row.CourseSectionName,
			TotalCapacity:       m.row.CourseSectionTotalCapacity,
			LeftCapacity:        m.row.CourseSectionLeftCapacity,
			ConflictCourseNames: m.conflicts,
		}
		for _, c := range m.timetable.Classes {
			entry.Classes = append(entry.Classes, regdto.SectionClassEntry{
				ClassID:            c.SectionClassID,
				InstructorID:       c.SectionClassInstructorID,
				InstructorFullName: names[c.SectionClassInstructorID],
				DayOfWeek:          c.SectionClassDayOfWeek,
				WeekList:           []int64(c.SectionClassWeekList),
				ClassBegin:         c.SectionClassBegin,
				ClassEnd:           c.SectionClassEnd,
				Location:           c.SectionClassLocation,
			})
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
