package handlers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"recruitment/interview-assistant/internal/models"
	"recruitment/interview-assistant/internal/services"
)

type InterviewHandler struct {
	interview   services.InterviewService
	extractor   services.DocumentExtractor
	transcriber services.TranscriptionService
	maxFileSize int64
}

func NewInterviewHandler(
	interview services.InterviewService,
	extractor services.DocumentExtractor,
	transcriber services.TranscriptionService,
	maxFileSize int64,
) *InterviewHandler {
	return &InterviewHandler{
		interview:   interview,
		extractor:   extractor,
		transcriber: transcriber,
		maxFileSize: maxFileSize,
	}
}

// HandleUploadCV handles POST /upload-cv. It takes either a multipart "file"
// (.pdf, .docx, .txt) or a JSON body {"cv_text"}.
func (h *InterviewHandler) HandleUploadCV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var req models.UploadCVRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.CVText) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No file or CV text provided",
			})
		}
		return c.JSON(models.UploadCVResponse{CVText: req.CVText})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read uploaded file")
	}

	text, err := h.extractor.Extract(data, fileHeader.Filename)
	if err != nil {
		var extractErr *services.ExtractionError
		if errors.As(err, &extractErr) {
			// The message stands in for the CV text so the client flow keeps going.
			return c.JSON(models.UploadCVResponse{CVText: text, ExtractionError: true})
		}
		return toFiberError(err)
	}

	return c.JSON(models.UploadCVResponse{CVText: text})
}

// HandleGeneratePersonalQuestions handles POST /generate-personal-questions
func (h *InterviewHandler) HandleGeneratePersonalQuestions(c *fiber.Ctx) error {
	var req models.GeneratePersonalQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	questions, err := h.interview.GeneratePersonalQuestions(c.UserContext(), req.CVText, req.RoleName, req.RoleDescription)
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(models.QuestionsResponse{Questions: questions})
}

// HandlePrepareCandidate handles POST /prepare-candidate
func (h *InterviewHandler) HandlePrepareCandidate(c *fiber.Ctx) error {
	var req models.PrepareCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	candidate, err := h.interview.PrepareCandidate(c.UserContext(), req.RoleID, req.CVText, req.PersonalQuestions)
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(models.PrepareCandidateResponse{
		CandidateID:  candidate.ID,
		AllQuestions: candidate.AllQuestions,
	})
}

// HandleTranscribe handles POST /transcribe with a multipart "file".
func (h *InterviewHandler) HandleTranscribe(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No audio file provided",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Audio file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to open uploaded file")
	}
	defer file.Close()

	transcript, err := h.transcriber.Transcribe(c.UserContext(), file, fileHeader.Filename)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.TranscribeResponse{Transcript: transcript})
}

// HandleAnalyzeInterview handles POST /analyze-interview
func (h *InterviewHandler) HandleAnalyzeInterview(c *fiber.Ctx) error {
	var req models.AnalyzeInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.CandidateID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidate_id is required",
		})
	}

	analysis, total, err := h.interview.AnalyzeInterview(c.UserContext(), req.CandidateID, req.CandidateName, req.Transcript)
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(models.AnalyzeInterviewResponse{
		Analysis:   analysis,
		TotalScore: total,
	})
}
