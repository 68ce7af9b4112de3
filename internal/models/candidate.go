package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CandidateStatus string

const (
	StatusCreated     CandidateStatus = "created"
	StatusPrepared    CandidateStatus = "prepared"
	StatusTranscribed CandidateStatus = "transcribed"
	StatusAnalyzed    CandidateStatus = "analyzed"
)

type Candidate struct {
	ID                uint                          `gorm:"primaryKey" json:"id"`
	Name              *string                       `gorm:"type:text" json:"name"`
	RoleID            *uint                         `gorm:"index" json:"role_id"`
	CVText            string                        `gorm:"column:cv_text;type:text" json:"cv_text"`
	PersonalQuestions datatypes.JSONSlice[Question] `json:"personal_questions"`
	AllQuestions      datatypes.JSONSlice[Question] `json:"all_questions"`
	Transcript        *string                       `gorm:"type:text" json:"transcript"`
	Analysis          *AnalysisResult               `gorm:"type:text;serializer:json" json:"analysis"`
	TotalScore        *int                          `json:"total_score"`
	InterviewDate     *time.Time                    `json:"interview_date"`
	CreatedAt         time.Time                     `json:"created_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

func (c *Candidate) BeforeSave(tx *gorm.DB) error {
	c.normalize()
	return nil
}

func (c *Candidate) AfterFind(tx *gorm.DB) error {
	c.normalize()
	if c.Analysis != nil {
		for i := range c.Analysis.Questions {
			c.Analysis.Questions[i].Score = ClampScore(int(c.Analysis.Questions[i].Score))
		}
	}
	return nil
}

func (c *Candidate) normalize() {
	if c.PersonalQuestions == nil {
		c.PersonalQuestions = datatypes.JSONSlice[Question]{}
	}
	if c.AllQuestions == nil {
		c.AllQuestions = datatypes.JSONSlice[Question]{}
	}
}

// Status derives the pipeline stage from which fields have been filled in.
func (c *Candidate) Status() CandidateStatus {
	switch {
	case c.Analysis != nil:
		return StatusAnalyzed
	case c.Transcript != nil && *c.Transcript != "":
		return StatusTranscribed
	case c.CVText != "" || len(c.PersonalQuestions) > 0:
		return StatusPrepared
	default:
		return StatusCreated
	}
}

// DisplayName returns the name set at analysis time, or "" when unset.
func (c *Candidate) DisplayName() string {
	if c.Name == nil {
		return ""
	}
	return *c.Name
}
