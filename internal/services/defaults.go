package services

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"recruitment/interview-assistant/internal/models"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const (
	RoleQuestionCount     = 6
	PersonalQuestionCount = 4
)

type questionBank struct {
	RoleQuestions     []yamlQuestion `yaml:"role_questions"`
	PersonalQuestions []yamlQuestion `yaml:"personal_questions"`
}

type yamlQuestion struct {
	Category string `yaml:"category"`
	Question string `yaml:"question"`
}

var defaultBank = mustLoadQuestionBank(defaultsYAML)

func mustLoadQuestionBank(data []byte) questionBank {
	bank, err := loadQuestionBank(data)
	if err != nil {
		panic(err)
	}
	return bank
}

func loadQuestionBank(data []byte) (questionBank, error) {
	var bank questionBank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return bank, fmt.Errorf("failed to parse default questions: %w", err)
	}

	if len(bank.RoleQuestions) != RoleQuestionCount {
		return bank, fmt.Errorf("default role questions: expected %d, got %d", RoleQuestionCount, len(bank.RoleQuestions))
	}
	if len(bank.PersonalQuestions) != PersonalQuestionCount {
		return bank, fmt.Errorf("default personal questions: expected %d, got %d", PersonalQuestionCount, len(bank.PersonalQuestions))
	}

	return bank, nil
}

// DefaultRoleQuestions returns a fresh copy of the bundled six-category set.
func DefaultRoleQuestions() []models.Question {
	return toQuestions(defaultBank.RoleQuestions)
}

// DefaultPersonalQuestions returns a fresh copy of the bundled CV question set.
func DefaultPersonalQuestions() []models.Question {
	return toQuestions(defaultBank.PersonalQuestions)
}

func toQuestions(src []yamlQuestion) []models.Question {
	out := make([]models.Question, len(src))
	for i, q := range src {
		out[i] = models.Question{Category: q.Category, Question: q.Question}
	}
	return out
}
