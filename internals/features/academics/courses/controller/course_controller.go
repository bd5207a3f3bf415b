package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coursedto "kampusku_backend/internals/features/academics/courses/dto"
	coursemodel "kampusku_backend/internals/features/academics/courses/model"
	courseservice "kampusku_backend/internals/features/academics/courses/service"
	helper "kampusku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

// POST /api/a/courses
// Course + pohon prasyarat (flat) ditulis dalam satu transaksi.
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var body coursedto.CourseCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	body.Normalize()
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !body.CourseGrading.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_grading harus PASS_OR_FAIL atau HUNDRED_MARK_SCORE")
	}

	var prereqRows []coursemodel.CoursePrerequisiteNodeModel
	if body.Prerequisite != nil {
		root, err := body.Prerequisite.ToNode()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		prereqRows = courseservice.FlattenPrereqTree(body.CourseID, root)
	}

	course := coursemodel.CourseModel{
		CourseID:        body.CourseID,
		CourseName:      body.CourseName,
		CourseCredit:    body.CourseCredit,
		CourseClassHour: body.CourseClassHour,
		CourseGrading:   body.CourseGrading,
	}

	err := helper.RunTxWithRetry(ctl.DB.WithContext(c.UserContext()), func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return helper.TranslateDBError(err)
		}
		if len(prereqRows) > 0 {
			if err := tx.Create(&prereqRows).Error; err != nil {
				return helper.TranslateDBError(err)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[CourseCreate] id=%s err=%v", body.CourseID, err)
		return helper.JsonFromServiceError(c, err, "Course tidak ditemukan")
	}
	return helper.JsonOKWithCode(c, fiber.StatusCreated, "Course dibuat", course)
}

// GET /api/a/courses
func (ctl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "course_id", "asc", helper.AdminOpts)
	order, err := p.SafeOrderClause(map[string]string{
		"course_id":   "course_id",
		"course_name": "course_name",
	}, "course_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak valid")
	}

	var total int64
	if err := ctl.DB.Model(&coursemodel.CourseModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count courses")
	}

	var courses []coursemodel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order(order).Limit(p.Limit()).Offset(p.Offset()).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list courses")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"courses": courses,
		"meta":    helper.BuildMeta(total, p),
	})
}

// GET /api/u/courses/:id
// Detail course plus pohon prasyaratnya (bentuk nested, bukan baris flat).
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	courseID := c.Params("id")

	var course coursemodel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonFromServiceError(c, helper.TranslateDBError(err), "Course tidak ditemukan")
	}

	var rows []coursemodel.CoursePrerequisiteNodeModel
	if err := ctl.DB.
		Where("prerequisite_course_id = ?", courseID).
		Order("prerequisite_idx ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load prerequisites")
	}
	root, err := courseservice.DecodePrereqNodes(rows)
	if err != nil {
		log.Printf("[CourseGet] id=%s prerequisite korup: %v", courseID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "prerequisite data corrupt")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"course":       course,
		"prerequisite": renderPrereq(root),
	})
}

func renderPrereq(n *courseservice.PrereqNode) interface{} {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case courseservice.PrereqLeaf:
		return fiber.Map{"course_id": n.CourseID}
	default:
		children := make([]interface{}, 0, len(n.Children))
		for _, ch := range n.Children {
			children = append(children, renderPrereq(ch))
		}
		if n.Kind == courseservice.PrereqAnd {
			return fiber.Map{"and": children}
		}
		return fiber.Map{"or": children}
	}
}

// DELETE /api/a/courses/:id
// Prasyarat & section ikut terhapus (cascade milik course).
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if courseID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id wajib")
	}

	err := helper.RunTxWithRetry(ctl.DB.WithContext(c.UserContext()), func(tx *gorm.DB) error {
		res := tx.Delete(&coursemodel.CourseModel{}, "course_id = ?", courseID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrEntityNotFound
		}
		if err := tx.Delete(&coursemodel.CoursePrerequisiteNodeModel{},
			"prerequisite_course_id = ?", courseID).Error; err != nil {
			return err
		}

		// hapus section milik course beserta class-nya
		var sectionIDs []uuid.UUID
		if err := tx.Model(&coursemodel.CourseSectionModel{}).
			Where("course_section_course_id = ?", courseID).
			Pluck("course_section_id", &sectionIDs).Error; err != nil {
			return err
		}
		if len(sectionIDs) > 0 {
			if err := tx.Delete(&coursemodel.SectionClassModel{},
				"section_class_section_id IN ?", sectionIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&coursemodel.CourseSectionModel{},
				"course_section_id IN ?", sectionIDs).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Course tidak ditemukan")
	}
	return helper.JsonOK(c, "Course dihapus", fiber.Map{"course_id": courseID})
}
