package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"recruitment/interview-assistant/internal/models"
)

// MaxCVPromptChars bounds how much CV text is sent for personal questions.
const MaxCVPromptChars = 5000

// RoleQuestionCategories are the six topics every role question set spans.
var RoleQuestionCategories = []string{
	"Technical competence and experience",
	"Leadership and change",
	"Team building and collaboration",
	"Business acumen and customer relations",
	"Innovation, AI and digitalization",
	"Sustainability and future outlook",
}

// ScoreRubric holds the anchor text for each score level, highest first.
var ScoreRubric = []string{
	"5: Exceptional - deep understanding, concrete examples, strategic thinking",
	"4: Strong - clear competence, relevant examples",
	"3: Acceptable - basic understanding, lacks depth",
	"2: Weak - vague or insufficient",
	"1: Very weak - no relevant understanding",
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildRoleQuestionsPrompt creates prompt for the six role questions
func (pb *PromptBuilder) BuildRoleQuestionsPrompt(roleName, description string) string {
	if strings.TrimSpace(description) == "" {
		description = "No specific role description provided."
	}

	var categories strings.Builder
	for i, c := range RoleQuestionCategories {
		fmt.Fprintf(&categories, "%d. %s\n", i+1, c)
	}

	return fmt.Sprintf(`You are a recruitment expert. Generate %d interview questions for the role "%s".

ROLE DESCRIPTION:
%s

The questions must cover these categories (adapt them to the role):
%s
Answer ONLY with a JSON array of %d objects. Each object must have:
- "category": the category name
- "question": the question itself

Example format:
[
  {"category": "Technical competence", "question": "Tell us about your technical background..."},
  ...
]

Answer ONLY with the JSON array, nothing else.`,
		RoleQuestionCount, roleName, description, categories.String(), RoleQuestionCount)
}

// BuildPersonalQuestionsPrompt creates prompt for CV-based questions
func (pb *PromptBuilder) BuildPersonalQuestionsPrompt(cvText, roleName, description string) string {
	if strings.TrimSpace(description) == "" {
		description = "Not specified"
	}

	return fmt.Sprintf(`You are a recruitment expert. Analyze this CV and generate %d personal interview questions.

Role: %s
Role description: %s

CV:
%s

Generate %d specific questions based on:
- The candidate's previous experience
- Gaps or interesting points in the CV
- How the candidate's background matches the role
- Specific projects or achievements worth exploring further

Answer ONLY with a JSON array of %d objects:
[
  {"category": "Personal", "question": "Your question here..."},
  ...
]

Answer ONLY with the JSON array, nothing else.`,
		PersonalQuestionCount, roleName, description, truncateRunes(cvText, MaxCVPromptChars),
		PersonalQuestionCount, PersonalQuestionCount)
}

// BuildAnalysisPrompt creates prompt for scoring a transcript against the question list
func (pb *PromptBuilder) BuildAnalysisPrompt(questions []models.Question, transcript, roleName string) string {
	var questionList strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&questionList, "%d. [%s] %s\n", i+1, q.Category, q.Question)
	}

	return fmt.Sprintf(`You are a recruitment expert analyzing an interview for the role "%s".

INTERVIEW QUESTIONS:
%s
INTERVIEW TRANSCRIPT:
%s

TASK:
1. Match the candidate's answers to the right questions (answers may come in a different order)
2. Score each answer on a scale of 1-5:
   - %s

Answer with JSON in exactly this format:
{
  "overall_assessment": "3-4 sentence overall assessment of the candidate",
  "summarized_transcript": "Summary of the whole interview (max 200 words)",
  "questions": [
    {
      "question": "The question text",
      "score": 4,
      "summary": "Short summary of the answer",
      "assessment": "Justification for the score",
      "quote": "A short quote from the candidate (max 20 words)"
    }
  ]
}

IMPORTANT:
- Include all %d questions in the answer
- Answer ONLY with JSON, nothing else`,
		roleName, questionList.String(), transcript, strings.Join(ScoreRubric, "\n   - "), len(questions))
}

// truncateRunes cuts s to at most n characters without splitting a rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
