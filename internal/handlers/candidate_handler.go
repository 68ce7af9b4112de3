package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recruitment/interview-assistant/internal/models"
	"recruitment/interview-assistant/internal/services"
)

type CandidateHandler struct {
	interview services.InterviewService
}

func NewCandidateHandler(interview services.InterviewService) *CandidateHandler {
	return &CandidateHandler{interview: interview}
}

// HandleList handles GET /candidates, best scores first.
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	candidates, err := h.interview.ListCandidates()
	if err != nil {
		return toFiberError(err)
	}
	return c.JSON(candidates)
}

// HandleGet handles GET /candidates/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	candidate, err := h.interview.GetCandidate(id)
	if err != nil {
		return toFiberError(err)
	}
	return c.JSON(candidate)
}

// HandleDelete handles DELETE /candidates/:id
func (h *CandidateHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.interview.DeleteCandidate(c.UserContext(), id); err != nil {
		return toFiberError(err)
	}

	return c.JSON(models.SuccessResponse{Success: true})
}

// HandleSearch handles GET /candidates/search?q=&limit=
func (h *CandidateHandler) HandleSearch(c *fiber.Ctx) error {
	hits, err := h.interview.SearchCandidates(c.UserContext(), c.Query("q"), c.QueryInt("limit", 0))
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(fiber.Map{
		"results": hits,
	})
}
