package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"recruitment/interview-assistant/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindAll() ([]models.Candidate, error)
	FindByID(id uint) (*models.Candidate, error)
	SaveAnalysis(id uint, data *AnalysisUpdateData) error
	Delete(id uint) error
}

// AnalysisUpdateData holds everything written when an interview is analyzed.
type AnalysisUpdateData struct {
	Name          string
	Transcript    string
	Analysis      *models.AnalysisResult
	TotalScore    int
	InterviewDate time.Time
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// FindAll orders by total score (unscored last), then newest first.
func (r *candidateRepository) FindAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Order("CASE WHEN total_score IS NULL THEN 1 ELSE 0 END").
		Order("total_score DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&candidates).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) FindByID(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("candidate %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// SaveAnalysis overwrites any previous analysis; no history is kept.
func (r *candidateRepository) SaveAnalysis(id uint, data *AnalysisUpdateData) error {
	name := data.Name
	transcript := data.Transcript
	total := data.TotalScore
	date := data.InterviewDate

	result := r.db.Model(&models.Candidate{ID: id}).
		Select("name", "transcript", "analysis", "total_score", "interview_date").
		Updates(&models.Candidate{
			Name:          &name,
			Transcript:    &transcript,
			Analysis:      data.Analysis,
			TotalScore:    &total,
			InterviewDate: &date,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to save analysis: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *candidateRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Candidate{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}
