package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci locals yang di-hydrate oleh middleware AuthJWT
const (
	LocRole      = "role"
	LocUserID    = "user_id"
	LocStudentID = "student_id"
)

// GetStudentIDFromToken mengambil student_id dari locals (hasil parse JWT)
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocStudentID).(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Konteks mahasiswa tidak ditemukan")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "student_id pada token tidak valid")
	}
	return id, nil
}
