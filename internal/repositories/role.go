package repositories

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"recruitment/interview-assistant/internal/models"
)

type RoleRepository interface {
	Create(role *models.Role) error
	FindAll() ([]models.Role, error)
	FindByID(id uint) (*models.Role, error)
	FindByIDs(ids []uint) ([]models.Role, error)
	UpdateQuestions(id uint, questions []models.Question) error
	Delete(id uint) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(role *models.Role) error {
	if err := r.db.Create(role).Error; err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *roleRepository) FindAll() ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Order("created_at DESC").Order("id DESC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

func (r *roleRepository) FindByID(id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("id = ?", id).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	return &role, nil
}

func (r *roleRepository) FindByIDs(ids []uint) ([]models.Role, error) {
	var roles []models.Role
	if len(ids) == 0 {
		return roles, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to find roles: %w", err)
	}
	return roles, nil
}

// UpdateQuestions replaces the role's question list. Existing candidates keep
// the list they were prepared with.
func (r *roleRepository) UpdateQuestions(id uint, questions []models.Question) error {
	if questions == nil {
		questions = []models.Question{}
	}

	result := r.db.Model(&models.Role{ID: id}).
		Select("questions").
		Updates(&models.Role{Questions: datatypes.JSONSlice[models.Question](questions)})

	if result.Error != nil {
		return fmt.Errorf("failed to update role questions: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("role %d: %w", id, ErrNotFound)
	}

	return nil
}

// Delete removes the role row only; candidates referencing it are left as is.
func (r *roleRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Role{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}
