package models

import (
	"gorm.io/gorm"
)

// Station is a physical location within an event where missions take place.
// Coordinates are optional; stations without them are left out of travel
// matrix and route computations.
type Station struct {
	gorm.Model

	EventID     uint     `json:"event_id" gorm:"index"`
	DisplayName string   `json:"display_name" binding:"required"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`

	// Free-text note for the operator hiding the QR code here
	HidingSpotNote string `json:"hiding_spot_note"`
}

// HasCoordinates reports whether the station can participate in travel math.
func (s *Station) HasCoordinates() bool {
	return s.Lat != nil && s.Lng != nil
}
