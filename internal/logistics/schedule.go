package logistics

import "math"

// Per-mission dwell time heuristic, in seconds.
const (
	baseMissionSeconds = 180
	videoSeconds       = 600
	photoSeconds       = 180
	actorSeconds       = 300
	perPropSeconds     = 120
)

// MissionSpec is the subset of a mission the duration heuristic needs.
type MissionSpec struct {
	RequiresVideo bool
	RequiresPhoto bool
	RequiresActor bool
	PropCount     int
}

// MissionSeconds estimates how long one team dwells on one mission.
func MissionSeconds(m MissionSpec) float64 {
	seconds := float64(baseMissionSeconds)
	if m.RequiresVideo {
		seconds += videoSeconds
	}
	if m.RequiresPhoto {
		seconds += photoSeconds
	}
	if m.RequiresActor {
		seconds += actorSeconds
	}
	seconds += float64(perPropSeconds * m.PropCount)
	return seconds
}

// TeamSchedule is the simulated plan for one team.
type TeamSchedule struct {
	TeamID                   uint    `json:"team_id"`
	TeamName                 string  `json:"team_name"`
	StationOrder             []uint  `json:"station_order"`
	TotalSeconds             float64 `json:"total_seconds"`
	EstimatedDurationMinutes float64 `json:"estimated_duration_minutes"`
}

// SimulateTeam estimates one team's end-to-end play time: travel between its
// assigned stations in nearest-neighbor order plus the dwell time of every
// assigned mission. Team routes are short, so no 2-opt refinement is applied.
func SimulateTeam(teamID uint, teamName string, stationIDs []uint, dwellSeconds float64, cost CostFunc) TeamSchedule {
	order := NearestNeighborOrder(stationIDs, cost)
	travelSeconds, _ := RouteSeconds(order, cost)
	total := travelSeconds + dwellSeconds

	return TeamSchedule{
		TeamID:                   teamID,
		TeamName:                 teamName,
		StationOrder:             order,
		TotalSeconds:             total,
		EstimatedDurationMinutes: math.Round(total / 60),
	}
}

// AverageDurationMinutes is the mean simulated duration across schedules.
func AverageDurationMinutes(schedules []TeamSchedule) float64 {
	if len(schedules) == 0 {
		return 0
	}
	var sum float64
	for _, s := range schedules {
		sum += s.TotalSeconds
	}
	return math.Round(sum / float64(len(schedules)) / 60)
}
