package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Mission is a playable challenge belonging to an event, optionally anchored
// to a station. Its requirement flags feed the schedule simulator and the
// checklist generator; nothing in this codebase mutates them after creation.
type Mission struct {
	gorm.Model

	EventID   uint   `json:"event_id" gorm:"index"`
	StationID *uint  `json:"station_id" gorm:"index"`
	Title     string `json:"title" binding:"required"`
	Enabled   bool   `json:"enabled" gorm:"default:true"`

	RequiresVideo bool `json:"requires_video"`
	RequiresPhoto bool `json:"requires_photo"`
	RequiresActor bool `json:"requires_actor"`

	// Physical props the operator must stage before the event
	PropRequirements pq.StringArray `json:"prop_requirements" gorm:"type:text[]"`
}
