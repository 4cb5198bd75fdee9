package models

import (
	"time"

	"gorm.io/gorm"
)

// Travel modes accepted by the matrix builder.
const (
	ModeWalking = "walking"
	ModeCycling = "cycling"
	ModeDriving = "driving"
)

// TravelEdge is one directed entry of the travel matrix: estimated time and
// distance from one station to another for a given mode. Edges are rewritten
// wholesale per (event, mode); there is no per-edge refresh.
type TravelEdge struct {
	gorm.Model

	EventID       uint      `json:"event_id" gorm:"index;uniqueIndex:idx_travel_edge_key"`
	Mode          string    `json:"mode" gorm:"uniqueIndex:idx_travel_edge_key"`
	FromStationID uint      `json:"from_station_id" gorm:"uniqueIndex:idx_travel_edge_key"`
	ToStationID   uint      `json:"to_station_id" gorm:"uniqueIndex:idx_travel_edge_key"`
	Seconds       float64   `json:"seconds"`
	Meters        float64   `json:"meters"`
	Provider      string    `json:"provider"` // "osrm" or "haversine"
	ComputedAt    time.Time `json:"computed_at"`
}
