package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recruitment/interview-assistant/internal/services"
)

type ReportHandler struct {
	interview services.InterviewService
	renderer  services.ReportRenderer
}

func NewReportHandler(interview services.InterviewService, renderer services.ReportRenderer) *ReportHandler {
	return &ReportHandler{
		interview: interview,
		renderer:  renderer,
	}
}

// HandleDownload handles GET /report/:candidate_id
func (h *ReportHandler) HandleDownload(c *fiber.Ctx) error {
	id, err := idParam(c, "candidate_id")
	if err != nil {
		return err
	}

	candidate, err := h.interview.GetCandidate(id)
	if err != nil {
		return toFiberError(err)
	}

	report, err := h.renderer.Render(candidate)
	if err != nil {
		return toFiberError(err)
	}

	c.Attachment(report.Filename)
	c.Set(fiber.HeaderContentType, services.ReportContentType)
	return c.Send(report.Content)
}
