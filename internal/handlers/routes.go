package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recruitment/interview-assistant/internal/models"
)

// Handlers groups everything mounted under /api.
type Handlers struct {
	Roles      *RoleHandler
	Candidates *CandidateHandler
	Interview  *InterviewHandler
	Reports    *ReportHandler
}

var endpoints = []string{
	"GET /api/health",
	"GET /api/roles",
	"POST /api/roles",
	"GET /api/roles/:id",
	"PUT /api/roles/:id",
	"DELETE /api/roles/:id",
	"GET /api/candidates",
	"GET /api/candidates/search",
	"GET /api/candidates/:id",
	"DELETE /api/candidates/:id",
	"POST /api/upload-cv",
	"POST /api/generate-personal-questions",
	"POST /api/prepare-candidate",
	"POST /api/transcribe",
	"POST /api/analyze-interview",
	"GET /api/report/:candidate_id",
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status:  "ok",
			Message: "Backend is running",
		})
	})

	api.Get("/roles", h.Roles.HandleList)
	api.Post("/roles", h.Roles.HandleCreate)
	api.Get("/roles/:id", h.Roles.HandleGet)
	api.Put("/roles/:id", h.Roles.HandleUpdate)
	api.Delete("/roles/:id", h.Roles.HandleDelete)

	api.Get("/candidates", h.Candidates.HandleList)
	api.Get("/candidates/search", h.Candidates.HandleSearch)
	api.Get("/candidates/:id", h.Candidates.HandleGet)
	api.Delete("/candidates/:id", h.Candidates.HandleDelete)

	api.Post("/upload-cv", h.Interview.HandleUploadCV)
	api.Post("/generate-personal-questions", h.Interview.HandleGeneratePersonalQuestions)
	api.Post("/prepare-candidate", h.Interview.HandlePrepareCandidate)
	api.Post("/transcribe", h.Interview.HandleTranscribe)
	api.Post("/analyze-interview", h.Interview.HandleAnalyzeInterview)

	api.Get("/report/:candidate_id", h.Reports.HandleDownload)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Interview Assistant API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}
