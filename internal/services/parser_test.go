package services

import (
	"reflect"
	"strings"
	"testing"

	"recruitment/interview-assistant/internal/models"
)

const questionsJSON = `[
  {"category": "Technical competence", "question": "Describe your stack."},
  {"category": "Leadership", "question": "How do you lead?"}
]`

func TestParseQuestionsFencedEqualsPlain(t *testing.T) {
	parser := NewResponseParser()

	plain := parser.ParseRoleQuestions(questionsJSON)
	variants := []string{
		"```json\n" + questionsJSON + "\n```",
		"```JSON\n" + questionsJSON + "\n```",
		"```\n" + questionsJSON + "\n```",
		"  \n```json\n" + questionsJSON + "\n```\n  ",
		"Here are the questions:\n```json\n" + questionsJSON + "\n```\nGood luck!",
	}

	if len(plain) != 2 {
		t.Fatalf("expected 2 questions from plain JSON, got %d", len(plain))
	}
	for i, raw := range variants {
		got := parser.ParseRoleQuestions(raw)
		if !reflect.DeepEqual(got, plain) {
			t.Errorf("variant %d: expected %+v, got %+v", i, plain, got)
		}
	}
}

func TestParseQuestionsFallbacks(t *testing.T) {
	parser := NewResponseParser()

	bad := []string{
		"",
		"I cannot help with that.",
		"```json\n{not json\n```",
		"[]",
		`[{"category": "", "question": "missing category"}]`,
		`{"category": "x", "question": "object instead of array"}`,
	}

	for _, raw := range bad {
		role := parser.ParseRoleQuestions(raw)
		if !reflect.DeepEqual(role, DefaultRoleQuestions()) {
			t.Errorf("role fallback not used for %q", raw)
		}
		personal := parser.ParsePersonalQuestions(raw)
		if !reflect.DeepEqual(personal, DefaultPersonalQuestions()) {
			t.Errorf("personal fallback not used for %q", raw)
		}
	}
}

func testQuestions() []models.Question {
	return []models.Question{
		{Category: "Technical", Question: "Describe your stack."},
		{Category: "Leadership", Question: "How do you lead?"},
		{Category: "Personal", Question: "Why this role?"},
	}
}

func TestParseAnalysisMalformedUsesFallback(t *testing.T) {
	parser := NewResponseParser()
	questions := testQuestions()

	for _, raw := range []string{"", "not json at all", "```json\n{\"overall_assessment\": \n```", `{"overall_assessment": "ok"}`} {
		result := parser.ParseAnalysis(raw, questions, "short transcript")
		if len(result.Questions) != len(questions) {
			t.Fatalf("%q: expected %d assessments, got %d", raw, len(questions), len(result.Questions))
		}
		for i, q := range result.Questions {
			if q.Score != 0 {
				t.Errorf("%q: question %d expected score 0, got %d", raw, i, q.Score)
			}
			if q.Question != questions[i].Question {
				t.Errorf("%q: question %d not echoed: %q", raw, i, q.Question)
			}
		}
		if result.TotalScore() != 0 {
			t.Errorf("%q: fallback total should be 0, got %d", raw, result.TotalScore())
		}
	}
}

func TestFallbackAnalysisTruncatesTranscript(t *testing.T) {
	long := strings.Repeat("å", 600)

	result := FallbackAnalysis(testQuestions(), long)
	want := strings.Repeat("å", 500) + "..."
	if result.SummarizedTranscript != want {
		t.Errorf("expected 500 characters plus marker, got %d runes", len([]rune(result.SummarizedTranscript)))
	}

	short := FallbackAnalysis(nil, "kort")
	if short.SummarizedTranscript != "kort" {
		t.Errorf("short transcript should be kept verbatim, got %q", short.SummarizedTranscript)
	}
	if short.Questions == nil || len(short.Questions) != 0 {
		t.Errorf("expected empty question list, got %+v", short.Questions)
	}
	if !strings.Contains(result.OverallAssessment, "could not be completed") {
		t.Errorf("unexpected overall assessment: %q", result.OverallAssessment)
	}
}

func TestParseAnalysisAlignsToQuestions(t *testing.T) {
	parser := NewResponseParser()
	questions := testQuestions()

	// Out of order, one answer missing, text differs only in case/spacing.
	raw := "```json\n" + `{
  "overall_assessment": "Strong candidate.",
  "summarized_transcript": "Talked about Go.",
  "questions": [
    {"question": "why this role?", "score": 3, "summary": "Motivated", "assessment": "Fine", "quote": ""},
    {"question": "Describe   your stack.", "score": 4.6, "summary": "Go", "assessment": "Good", "quote": "Go all the way"}
  ]
}` + "\n```"

	result := parser.ParseAnalysis(raw, questions, "transcript")
	if len(result.Questions) != 3 {
		t.Fatalf("expected 3 assessments, got %d", len(result.Questions))
	}

	if result.Questions[0].Score != 5 || result.Questions[0].Quote != "Go all the way" {
		t.Errorf("question 1 not matched by text: %+v", result.Questions[0])
	}
	if result.Questions[1].Score != 0 || result.Questions[1].Question != "How do you lead?" {
		t.Errorf("question 2 should be a zero placeholder: %+v", result.Questions[1])
	}
	if result.Questions[2].Score != 3 || result.Questions[2].Question != "Why this role?" {
		t.Errorf("question 3 not matched: %+v", result.Questions[2])
	}
	if result.TotalScore() != 8 {
		t.Errorf("expected total 8, got %d", result.TotalScore())
	}
	if result.OverallAssessment != "Strong candidate." {
		t.Errorf("overall assessment lost: %q", result.OverallAssessment)
	}
}

func TestParseAnalysisMatchesByPosition(t *testing.T) {
	parser := NewResponseParser()
	questions := testQuestions()

	raw := `{"overall_assessment": "ok", "summarized_transcript": "s", "questions": [
		{"question": "Q1 paraphrased", "score": 2},
		{"question": "Q2 paraphrased", "score": "4"},
		{"question": "Q3 paraphrased", "score": 7}
	]}`

	result := parser.ParseAnalysis(raw, questions, "")
	got := []models.Score{result.Questions[0].Score, result.Questions[1].Score, result.Questions[2].Score}
	want := []models.Score{2, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected scores %v, got %v", want, got)
	}
	for i := range questions {
		if result.Questions[i].Question != questions[i].Question {
			t.Errorf("question %d text should be the stored one, got %q", i, result.Questions[i].Question)
		}
	}
}

func TestParseAnalysisReorderedAndReworded(t *testing.T) {
	parser := NewResponseParser()
	questions := []models.Question{
		{Category: "Technical competence", Question: "Describe your Go experience"},
		{Category: "Leadership", Question: "How do you lead?"},
	}

	raw := `{"overall_assessment": "ok", "summarized_transcript": "s", "questions": [
		{"question": "How do you lead a team?", "score": 4, "summary": "Coaching"},
		{"question": "Describe your Go experience", "score": 5, "summary": "Ten years"}
	]}`

	result := parser.ParseAnalysis(raw, questions, "")
	if len(result.Questions) != 2 {
		t.Fatalf("expected 2 assessments, got %d", len(result.Questions))
	}
	if result.Questions[0].Score != 5 || result.Questions[0].Summary != "Ten years" {
		t.Errorf("question 1 not matched by text: %+v", result.Questions[0])
	}
	if result.Questions[1].Score != 4 || result.Questions[1].Summary != "Coaching" {
		t.Errorf("question 2 should take the leftover assessment: %+v", result.Questions[1])
	}
	if result.Questions[1].Question != "How do you lead?" {
		t.Errorf("question 2 text should be the stored one, got %q", result.Questions[1].Question)
	}
	if result.TotalScore() != 9 {
		t.Errorf("expected total 9, got %d", result.TotalScore())
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"[1]":                    "[1]",
		"```json\n[1]\n```":      "[1]",
		"```\n{\"a\":1}\n```":    `{"a":1}`,
		"  ```json [2] ```  ":    "[2]",
		"```json\n[3]":           "[3]",
	}
	for in, want := range cases {
		if got := stripCodeFence(in); got != want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}
