package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"recruitment/interview-assistant/internal/models"
)

const (
	fallbackTranscriptChars = 500
	fallbackAssessment      = "The analysis could not be completed due to a technical error."
)

// ResponseParser decodes model output into typed results. It never returns
// an error: every decode or shape failure yields the call site's default.
type ResponseParser struct{}

func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// ParseRoleQuestions falls back to the bundled six-question set.
func (rp *ResponseParser) ParseRoleQuestions(raw string) []models.Question {
	questions, err := decodeQuestions(raw)
	if err != nil {
		log.Printf("⚠️  Using default role questions: %v", err)
		return DefaultRoleQuestions()
	}
	return questions
}

// ParsePersonalQuestions falls back to the bundled four-question set.
func (rp *ResponseParser) ParsePersonalQuestions(raw string) []models.Question {
	questions, err := decodeQuestions(raw)
	if err != nil {
		log.Printf("⚠️  Using default personal questions: %v", err)
		return DefaultPersonalQuestions()
	}
	return questions
}

// ParseAnalysis decodes an analysis and aligns it to questions, one entry per
// question in order. On failure it returns FallbackAnalysis.
func (rp *ResponseParser) ParseAnalysis(raw string, questions []models.Question, transcript string) *models.AnalysisResult {
	var result models.AnalysisResult
	if err := decodeJSON(raw, &result); err != nil {
		log.Printf("⚠️  Using fallback analysis: %v", err)
		return FallbackAnalysis(questions, transcript)
	}

	if result.Questions == nil && len(questions) > 0 {
		log.Println("⚠️  Using fallback analysis: response has no questions list")
		return FallbackAnalysis(questions, transcript)
	}

	result.Questions = alignAssessments(result.Questions, questions)
	return &result
}

// FallbackAnalysis is the zero-score result used when the model call or its
// decoding fails.
func FallbackAnalysis(questions []models.Question, transcript string) *models.AnalysisResult {
	summary := transcript
	if len([]rune(transcript)) > fallbackTranscriptChars {
		summary = truncateRunes(transcript, fallbackTranscriptChars) + "..."
	}

	assessments := make([]models.QuestionAssessment, len(questions))
	for i, q := range questions {
		assessments[i] = models.QuestionAssessment{
			Question:   q.Question,
			Score:      0,
			Summary:    "Could not be analyzed",
			Assessment: "Technical error",
			Quote:      "",
		}
	}

	return &models.AnalysisResult{
		OverallAssessment:    fallbackAssessment,
		SummarizedTranscript: summary,
		Questions:            assessments,
	}
}

func decodeQuestions(raw string) ([]models.Question, error) {
	var questions []models.Question
	if err := decodeJSON(raw, &questions); err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, errors.New("empty question list")
	}

	for i, q := range questions {
		if !q.Valid() {
			return nil, fmt.Errorf("question %d is missing category or text", i+1)
		}
	}

	return questions, nil
}

// decodeJSON strips a markdown fence and unmarshals. If that fails it retries
// on the outermost JSON object or array found in the raw text.
func decodeJSON(raw string, target interface{}) error {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return errors.New("empty response")
	}

	err := json.Unmarshal([]byte(cleaned), target)
	if err == nil {
		return nil
	}

	salvaged := extractJSON(raw)
	if salvaged != cleaned {
		if retryErr := json.Unmarshal([]byte(salvaged), target); retryErr == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to unmarshal JSON: %w", err)
}

// stripCodeFence removes a leading ``` fence, the closing fence and a "json"
// language tag.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	if end := strings.LastIndex(body, "```"); end != -1 {
		body = body[:end]
	}

	if len(body) >= 4 && strings.EqualFold(body[:4], "json") {
		body = body[4:]
	}

	return strings.TrimSpace(body)
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	hasObj := startObj != -1 && endObj > startObj
	hasArr := startArr != -1 && endArr > startArr

	switch {
	case hasObj && (!hasArr || startObj < startArr):
		return text[startObj : endObj+1]
	case hasArr:
		return text[startArr : endArr+1]
	}

	return strings.TrimSpace(text)
}

// alignAssessments returns exactly one assessment per question, in question
// order. Entries are matched by question text first; leftover entries then go
// to the unmatched questions in order. A question left over after that gets a
// zero-score placeholder.
func alignAssessments(parsed []models.QuestionAssessment, questions []models.Question) []models.QuestionAssessment {
	out := make([]models.QuestionAssessment, len(questions))
	used := make([]bool, len(parsed))
	matched := make([]bool, len(questions))

	for i, q := range questions {
		key := normalizeQuestionText(q.Question)
		if key == "" {
			continue
		}
		for j, a := range parsed {
			if !used[j] && normalizeQuestionText(a.Question) == key {
				out[i] = a
				used[j] = true
				matched[i] = true
				break
			}
		}
	}

	next := 0
	for i, q := range questions {
		if !matched[i] {
			for next < len(parsed) && used[next] {
				next++
			}
			if next < len(parsed) {
				out[i] = parsed[next]
				used[next] = true
			} else {
				out[i] = models.QuestionAssessment{
					Score:      0,
					Summary:    "Not covered in the analysis",
					Assessment: "No assessment available",
				}
			}
		}
		out[i].Question = q.Question
		out[i].Score = models.ClampScore(int(out[i].Score))
	}

	return out
}

func normalizeQuestionText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
