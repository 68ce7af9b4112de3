package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recruitment/interview-assistant/internal/models"
	"recruitment/interview-assistant/internal/services"
)

type RoleHandler struct {
	interview services.InterviewService
}

func NewRoleHandler(interview services.InterviewService) *RoleHandler {
	return &RoleHandler{interview: interview}
}

// HandleList handles GET /roles
func (h *RoleHandler) HandleList(c *fiber.Ctx) error {
	roles, err := h.interview.ListRoles()
	if err != nil {
		return toFiberError(err)
	}
	return c.JSON(roles)
}

// HandleCreate handles POST /roles
func (h *RoleHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	role, err := h.interview.CreateRole(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return toFiberError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(role)
}

// HandleGet handles GET /roles/:id
func (h *RoleHandler) HandleGet(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	role, err := h.interview.GetRole(id)
	if err != nil {
		return toFiberError(err)
	}
	return c.JSON(role)
}

// HandleUpdate handles PUT /roles/:id. Only the question list is replaced.
func (h *RoleHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if _, err := h.interview.UpdateRoleQuestions(id, req.Questions); err != nil {
		return toFiberError(err)
	}

	return c.JSON(models.SuccessResponse{Success: true})
}

// HandleDelete handles DELETE /roles/:id
func (h *RoleHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.interview.DeleteRole(id); err != nil {
		return toFiberError(err)
	}

	return c.JSON(models.SuccessResponse{Success: true})
}
