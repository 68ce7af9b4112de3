package services

import (
	"strings"
	"testing"
)

func TestRoleQuestionsPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildRoleQuestionsPrompt("Ops Lead", "")
	if !strings.Contains(prompt, `"Ops Lead"`) {
		t.Error("prompt should name the role")
	}
	if !strings.Contains(prompt, "No specific role description provided.") {
		t.Error("empty description should use the placeholder")
	}
	for _, c := range RoleQuestionCategories {
		if !strings.Contains(prompt, c) {
			t.Errorf("prompt missing category %q", c)
		}
	}
	if !strings.Contains(prompt, "ONLY with a JSON array") {
		t.Error("prompt should demand a bare JSON array")
	}

	if again := pb.BuildRoleQuestionsPrompt("Ops Lead", ""); again != prompt {
		t.Error("prompt must be deterministic")
	}
}

func TestPersonalQuestionsPromptTruncatesCV(t *testing.T) {
	pb := NewPromptBuilder()

	cv := strings.Repeat("a", MaxCVPromptChars) + "TAIL-MARKER"
	prompt := pb.BuildPersonalQuestionsPrompt(cv, "Developer", "Backend work")

	if strings.Contains(prompt, "TAIL-MARKER") {
		t.Error("CV text beyond the limit must be cut")
	}
	if !strings.Contains(prompt, strings.Repeat("a", MaxCVPromptChars)) {
		t.Error("first characters of the CV must be kept")
	}
	if !strings.Contains(prompt, "generate 4 personal interview questions") {
		t.Error("prompt should request four questions")
	}
}

func TestAnalysisPromptListsEveryQuestion(t *testing.T) {
	pb := NewPromptBuilder()
	questions := testQuestions()
	transcript := "Interviewer: Hi.\nCandidate: Hello!"

	prompt := pb.BuildAnalysisPrompt(questions, transcript, "Developer")

	for i, q := range questions {
		line := strings.Join([]string{"", "[" + q.Category + "]", q.Question}, " ")
		if !strings.Contains(prompt, line) {
			t.Errorf("question %d missing from prompt: %q", i+1, line)
		}
	}
	if !strings.Contains(prompt, transcript) {
		t.Error("transcript must be embedded verbatim")
	}
	for _, anchor := range ScoreRubric {
		if !strings.Contains(prompt, anchor) {
			t.Errorf("rubric anchor missing: %q", anchor)
		}
	}
	if !strings.Contains(prompt, "Include all 3 questions") {
		t.Error("prompt should demand all questions be answered")
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("åäö", 2); got != "åä" {
		t.Errorf("expected rune-safe cut, got %q", got)
	}
	if got := truncateRunes("abc", 10); got != "abc" {
		t.Errorf("short strings should be unchanged, got %q", got)
	}
}
