package logistics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quest_logistics/internal/geo"
	"quest_logistics/internal/travel"
)

// scriptedSource fails for configured origins and otherwise returns a fixed
// seconds/meters pair per destination.
type scriptedSource struct {
	name        string
	seconds     float64
	meters      float64
	failOrigins map[geo.Point]bool
	calls       int
}

func (s *scriptedSource) Name() string { return s.name }

func (s *scriptedSource) Estimate(_ context.Context, origin geo.Point, dests []geo.Point) ([]travel.Leg, error) {
	s.calls++
	if s.failOrigins[origin] {
		return nil, errors.New("scripted failure")
	}
	legs := make([]travel.Leg, len(dests))
	for i := range dests {
		legs[i] = travel.Leg{Seconds: s.seconds, Meters: s.meters}
	}
	return legs, nil
}

func stations3() []StationPoint {
	return []StationPoint{
		{ID: 1, Lat: 0, Lng: 0},
		{ID: 2, Lat: 0.00090, Lng: 0},
		{ID: 3, Lat: 0, Lng: 0.00090},
	}
}

func TestExpectedPairCount(t *testing.T) {
	assert.Equal(t, 0, ExpectedPairCount(0))
	assert.Equal(t, 0, ExpectedPairCount(1))
	assert.Equal(t, 6, ExpectedPairCount(3))
	assert.Equal(t, 90, ExpectedPairCount(10))
}

func TestCoverageSufficient(t *testing.T) {
	// 10 stations → 90 expected pairs, 90% is 81
	assert.True(t, CoverageSufficient(81, 10))
	assert.True(t, CoverageSufficient(90, 10))
	assert.False(t, CoverageSufficient(80, 10))
	// Degenerate sets are never "covered"
	assert.False(t, CoverageSufficient(0, 1))
	assert.False(t, CoverageSufficient(5, 0))
}

func TestPlanMatrix_AllFromPrimary(t *testing.T) {
	primary := &scriptedSource{name: "osrm", seconds: 42, meters: 60}
	edges := PlanMatrix(context.Background(), stations3(), primary, travel.StraightLine{})

	require.Len(t, edges, 6)
	assert.Equal(t, 3, primary.calls, "one batch call per origin")
	for _, e := range edges {
		assert.Equal(t, "osrm", e.Provider)
		assert.Equal(t, 42.0, e.Seconds, "provider seconds stored exactly")
		assert.Equal(t, 60.0, e.Meters)
		assert.NotEqual(t, e.FromID, e.ToID)
	}
}

func TestPlanMatrix_PerOriginFallback(t *testing.T) {
	stations := stations3()
	primary := &scriptedSource{
		name: "osrm", seconds: 42, meters: 60,
		failOrigins: map[geo.Point]bool{{Lat: 0, Lng: 0}: true},
	}

	edges := PlanMatrix(context.Background(), stations, primary, travel.StraightLine{})
	require.Len(t, edges, 6)

	byFrom := make(map[uint][]EdgePlan)
	for _, e := range edges {
		byFrom[e.FromID] = append(byFrom[e.FromID], e)
	}

	// Station 1's estimates degraded; the other origins kept provider data
	for _, e := range byFrom[1] {
		assert.Equal(t, "haversine", e.Provider)
		assert.InDelta(t, 100, e.Meters, 1)
		assert.Equal(t, geo.WalkSeconds(e.Meters), e.Seconds)
	}
	for _, from := range []uint{2, 3} {
		for _, e := range byFrom[from] {
			assert.Equal(t, "osrm", e.Provider)
			assert.Equal(t, 42.0, e.Seconds)
		}
	}
}

func TestPlanMatrix_Degenerate(t *testing.T) {
	primary := &scriptedSource{name: "osrm"}
	assert.Empty(t, PlanMatrix(context.Background(), nil, primary, travel.StraightLine{}))
	assert.Empty(t, PlanMatrix(context.Background(), []StationPoint{{ID: 1}}, primary, travel.StraightLine{}))
	assert.Equal(t, 0, primary.calls)
}

func TestSummarize(t *testing.T) {
	edges := []EdgePlan{
		{Seconds: 60}, {Seconds: 120}, {Seconds: 90},
	}
	s := Summarize(3, edges)
	assert.Equal(t, 3, s.StationCount)
	assert.Equal(t, 3, s.PairCount)
	assert.Equal(t, 90.0, s.AverageSeconds)
	assert.Equal(t, 120.0, s.MaxSeconds)

	empty := Summarize(2, nil)
	assert.Equal(t, 0, empty.PairCount)
	assert.Equal(t, 0.0, empty.AverageSeconds)
	assert.Equal(t, 0.0, empty.MaxSeconds)
}
