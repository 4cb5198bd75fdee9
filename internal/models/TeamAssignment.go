package models

import (
	"gorm.io/gorm"
)

// TeamAssignment gives one mission at one station to one team.
// A team may hold many assignments; the schedule simulator reads them as a
// snapshot and never writes them back.
type TeamAssignment struct {
	gorm.Model

	TeamID    uint `json:"team_id" gorm:"index"`
	MissionID uint `json:"mission_id" gorm:"index"`
	StationID uint `json:"station_id" gorm:"index"`
}
