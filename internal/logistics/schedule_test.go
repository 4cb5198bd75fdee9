package logistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissionSeconds(t *testing.T) {
	assert.Equal(t, 180.0, MissionSeconds(MissionSpec{}))

	// Video + 2 props: 180 + 600 + 2×120 = 1020
	assert.Equal(t, 1020.0, MissionSeconds(MissionSpec{RequiresVideo: true, PropCount: 2}))

	// Everything at once
	assert.Equal(t, 180.0+600+180+300+3*120, MissionSeconds(MissionSpec{
		RequiresVideo: true,
		RequiresPhoto: true,
		RequiresActor: true,
		PropCount:     3,
	}))
}

func TestSimulateTeam(t *testing.T) {
	cost := costFromMap(map[[2]uint]float64{
		{10, 11}: 120,
		{11, 12}: 240,
		{10, 12}: 600,
	})

	// Dwell for two plain missions
	dwell := MissionSeconds(MissionSpec{}) + MissionSeconds(MissionSpec{RequiresPhoto: true})

	s := SimulateTeam(1, "Foxes", []uint{10, 11, 12}, dwell, cost)
	assert.Equal(t, uint(1), s.TeamID)
	assert.Equal(t, "Foxes", s.TeamName)
	assert.Equal(t, []uint{10, 11, 12}, s.StationOrder)
	// travel 120+240 plus dwell 180+360
	assert.Equal(t, 900.0, s.TotalSeconds)
	assert.Equal(t, 15.0, s.EstimatedDurationMinutes)
}

func TestSimulateTeam_SingleStation(t *testing.T) {
	s := SimulateTeam(2, "Owls", []uint{4}, 1020, costFromMap(nil))
	assert.Equal(t, []uint{4}, s.StationOrder)
	assert.Equal(t, 1020.0, s.TotalSeconds)
	assert.Equal(t, 17.0, s.EstimatedDurationMinutes)
}

func TestSimulateTeam_NoTravelData(t *testing.T) {
	// Without edges the stations keep input order and only dwell counts
	s := SimulateTeam(3, "Ravens", []uint{9, 7, 5}, 540, costFromMap(nil))
	assert.Equal(t, []uint{9, 7, 5}, s.StationOrder)
	assert.Equal(t, 540.0, s.TotalSeconds)
}

func TestAverageDurationMinutes(t *testing.T) {
	assert.Equal(t, 0.0, AverageDurationMinutes(nil))

	schedules := []TeamSchedule{
		{TotalSeconds: 600},
		{TotalSeconds: 1200},
	}
	assert.Equal(t, 15.0, AverageDurationMinutes(schedules))
}
