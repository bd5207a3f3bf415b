package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// JsonFromServiceError memetakan taksonomi error service ke response HTTP
func JsonFromServiceError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, ErrEntityNotFound):
		return JsonError(c, fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, ErrIntegrityViolation):
		return JsonError(c, fiber.StatusConflict, "Data melanggar constraint (duplikat / referensi tidak valid)")
	case errors.Is(err, ErrInvalidState):
		return JsonError(c, fiber.StatusConflict, "Operasi tidak diizinkan pada state saat ini")
	default:
		return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}
