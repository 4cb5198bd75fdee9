package models

import (
	"gorm.io/gorm"
)

// Checklist phases and statuses.
const (
	PhasePreEvent = "pre_event"
	PhaseDayOf    = "day_of"

	ChecklistDraft = "draft"
	ChecklistReady = "ready"
)

// Checklist groups operational tasks for one phase of one event.
// There is at most one checklist per (event, phase).
type Checklist struct {
	gorm.Model

	EventID uint   `json:"event_id" gorm:"index;uniqueIndex:idx_checklist_phase"`
	Phase   string `json:"phase" gorm:"uniqueIndex:idx_checklist_phase"`
	Status  string `json:"status" gorm:"default:draft"`

	Tasks []ChecklistTask `gorm:"foreignKey:ChecklistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tasks,omitempty"`
}
