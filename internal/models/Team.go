package models

import (
	"gorm.io/gorm"
)

type Team struct {
	gorm.Model

	EventID    uint   `json:"event_id" gorm:"index"`
	Name       string `json:"name" binding:"required"`
	AccessCode string `json:"access_code"`

	Assignments []TeamAssignment `gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"assignments,omitempty"`
}
