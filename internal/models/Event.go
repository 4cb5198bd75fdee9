package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a single scheduled hunt run by an organization.
// Stations, missions, teams and checklists all hang off an event.
type Event struct {
	gorm.Model

	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	ScheduledAt *time.Time `json:"scheduled_at"`

	// Optional play-area polygon stored as WKB (SRID 4326).
	// Provide GeoJSON on create/update; serialized back to GeoJSON in responses.
	Area []byte `gorm:"type:bytea" json:"-"`

	// Associations
	Stations   []Station   `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stations,omitempty"`
	Missions   []Mission   `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"missions,omitempty"`
	Teams      []Team      `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"teams,omitempty"`
	Checklists []Checklist `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"checklists,omitempty"`
}
