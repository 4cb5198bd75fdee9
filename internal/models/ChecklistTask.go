package models

import (
	"gorm.io/gorm"
)

// Task statuses an operator can set between generator runs.
const (
	TaskOpen = "open"
	TaskDone = "done"
)

// ChecklistTask is one operational to-do derived from event data.
// TaskKey is the deterministic composite identity (event_phase_subject_kind);
// regeneration upserts on it, so reruns update descriptive fields in place and
// never duplicate rows. Status belongs to the operator and is not overwritten.
type ChecklistTask struct {
	gorm.Model

	ChecklistID uint   `json:"checklist_id" gorm:"index"`
	TaskKey     string `json:"task_key" gorm:"uniqueIndex"`
	Phase       string `json:"phase"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StationID   *uint  `json:"station_id"`
	MissionID   *uint  `json:"mission_id"`
	Status      string `json:"status" gorm:"default:open"`
	Required    bool   `json:"required" gorm:"default:true"`
	SortOrder   int    `json:"sort_order"`
}
