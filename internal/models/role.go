package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role struct {
	ID          uint                          `gorm:"primaryKey" json:"id"`
	Name        string                        `gorm:"type:text;not null" json:"name"`
	Description string                        `gorm:"type:text" json:"description"`
	Questions   datatypes.JSONSlice[Question] `json:"questions"`
	CreatedAt   time.Time                     `json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}

func (r *Role) BeforeSave(tx *gorm.DB) error {
	if r.Questions == nil {
		r.Questions = datatypes.JSONSlice[Question]{}
	}
	return nil
}

func (r *Role) AfterFind(tx *gorm.DB) error {
	if r.Questions == nil {
		r.Questions = datatypes.JSONSlice[Question]{}
	}
	return nil
}
