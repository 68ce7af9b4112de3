package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"recruitment/interview-assistant/internal/services"
)

// ErrorHandler renders every error that reaches Fiber as {"error", "code"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

// toFiberError maps domain errors onto HTTP status codes. Unknown errors
// become 500 with their message.
func toFiberError(err error) error {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrUnsupportedFormat):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrIndexDisabled):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	default:
		log.Printf("❌ Request failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

func idParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}
