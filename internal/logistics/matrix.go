package logistics

import (
	"context"
	"math"

	"quest_logistics/internal/geo"
	"quest_logistics/internal/travel"
)

// StationPoint is a geolocated station snapshot fed into matrix planning.
type StationPoint struct {
	ID  uint
	Lat float64
	Lng float64
}

// EdgePlan is one directed travel estimate ready to be persisted.
type EdgePlan struct {
	FromID   uint
	ToID     uint
	Seconds  float64
	Meters   float64
	Provider string
}

// MatrixSummary aggregates a planned edge set.
type MatrixSummary struct {
	StationCount   int
	PairCount      int
	AverageSeconds float64
	MaxSeconds     float64
}

// ExpectedPairCount is the size of a complete directed matrix over n stations.
func ExpectedPairCount(n int) int {
	return n * (n - 1)
}

// CoverageSufficient reports whether an existing edge count already covers
// enough of the expected matrix to skip recomputation.
func CoverageSufficient(existingEdges, stationCount int) bool {
	expected := ExpectedPairCount(stationCount)
	if expected == 0 {
		return false
	}
	return float64(existingEdges) >= 0.9*float64(expected)
}

// PlanMatrix computes the full directed edge set over the given stations.
// Each origin issues one batch request to the primary source; when that call
// fails, only that origin's edges degrade to the fallback source. The
// degradation is per-origin, so one failed request never invalidates the rest
// of the matrix.
func PlanMatrix(ctx context.Context, stations []StationPoint, primary, fallback travel.Source) []EdgePlan {
	edges := make([]EdgePlan, 0, ExpectedPairCount(len(stations)))

	for i, origin := range stations {
		dests := make([]geo.Point, 0, len(stations)-1)
		destIDs := make([]uint, 0, len(stations)-1)
		for j, s := range stations {
			if j == i {
				continue
			}
			dests = append(dests, geo.Point{Lat: s.Lat, Lng: s.Lng})
			destIDs = append(destIDs, s.ID)
		}
		if len(dests) == 0 {
			continue
		}

		from := geo.Point{Lat: origin.Lat, Lng: origin.Lng}
		source := primary
		legs, err := primary.Estimate(ctx, from, dests)
		if err != nil {
			source = fallback
			legs, err = fallback.Estimate(ctx, from, dests)
			if err != nil {
				// Fallback sources are expected to be infallible; if one
				// still fails there is nothing usable for this origin.
				continue
			}
		}

		for k, leg := range legs {
			edges = append(edges, EdgePlan{
				FromID:   origin.ID,
				ToID:     destIDs[k],
				Seconds:  leg.Seconds,
				Meters:   leg.Meters,
				Provider: source.Name(),
			})
		}
	}

	return edges
}

// Summarize computes the result stats for a planned matrix.
func Summarize(stationCount int, edges []EdgePlan) MatrixSummary {
	s := MatrixSummary{
		StationCount: stationCount,
		PairCount:    len(edges),
	}
	if len(edges) == 0 {
		return s
	}

	var sum float64
	for _, e := range edges {
		sum += e.Seconds
		s.MaxSeconds = math.Max(s.MaxSeconds, e.Seconds)
	}
	s.AverageSeconds = math.Round(sum / float64(len(edges)))
	return s
}
