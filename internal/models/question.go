package models

import "strings"

// Question is one interview question together with its topical label.
type Question struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

// Valid reports whether both the label and the prompt text are present.
func (q Question) Valid() bool {
	return strings.TrimSpace(q.Category) != "" && strings.TrimSpace(q.Question) != ""
}

// ConcatQuestions returns role questions followed by personal questions in a new slice.
func ConcatQuestions(roleQuestions, personalQuestions []Question) []Question {
	all := make([]Question, 0, len(roleQuestions)+len(personalQuestions))
	all = append(all, roleQuestions...)
	all = append(all, personalQuestions...)
	return all
}
