package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"quest_logistics/internal/geo"
)

// Leg is one origin→destination estimate.
type Leg struct {
	Seconds float64
	Meters  float64
}

// Source produces travel estimates from one origin against a batch of
// destinations. Implementations may perform network I/O.
type Source interface {
	Name() string
	Estimate(ctx context.Context, origin geo.Point, destinations []geo.Point) ([]Leg, error)
}

// ErrProvider is returned when the external routing call fails.
// Callers degrade to a fallback source rather than surfacing it.
type ErrProvider struct {
	Reason string
}

func (e *ErrProvider) Error() string {
	return fmt.Sprintf("routing provider failed: %s", e.Reason)
}

type osrmSource struct {
	baseURL    string
	profile    string
	httpClient *http.Client
}

type osrmTableResponse struct {
	Code      string      `json:"code"`
	Durations [][]float64 `json:"durations"`
	Distances [][]float64 `json:"distances"`
}

// NewOSRM creates a routing source backed by an OSRM table endpoint.
// The travel mode is mapped onto the matching OSRM profile.
func NewOSRM(baseURL, mode string) Source {
	profile := "foot"
	switch mode {
	case "driving":
		profile = "driving"
	case "cycling":
		profile = "bike"
	}
	return &osrmSource{
		baseURL: baseURL,
		profile: profile,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *osrmSource) Name() string {
	return "osrm"
}

func (s *osrmSource) Estimate(ctx context.Context, origin geo.Point, destinations []geo.Point) ([]Leg, error) {
	if len(destinations) == 0 {
		return []Leg{}, nil
	}

	coords := make([]string, 0, len(destinations)+1)
	coords = append(coords, fmt.Sprintf("%.6f,%.6f", origin.Lng, origin.Lat))
	dests := make([]string, 0, len(destinations))
	for i, d := range destinations {
		coords = append(coords, fmt.Sprintf("%.6f,%.6f", d.Lng, d.Lat))
		dests = append(dests, fmt.Sprintf("%d", i+1))
	}

	queryURL := fmt.Sprintf("%s/table/v1/%s/%s?annotations=duration,distance&sources=0&destinations=%s",
		s.baseURL, s.profile, strings.Join(coords, ";"), strings.Join(dests, ";"))

	req, err := http.NewRequestWithContext(ctx, "GET", queryURL, nil)
	if err != nil {
		return nil, &ErrProvider{Reason: err.Error()}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Warn("OSRM request failed")
		return nil, &ErrProvider{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logrus.WithField("status", resp.StatusCode).Warn("OSRM returned non-200")
		return nil, &ErrProvider{Reason: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body))}
	}

	var table osrmTableResponse
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, &ErrProvider{Reason: err.Error()}
	}
	if table.Code != "Ok" {
		return nil, &ErrProvider{Reason: fmt.Sprintf("OSRM error: %s", table.Code)}
	}
	if len(table.Durations) < 1 || len(table.Durations[0]) != len(destinations) ||
		len(table.Distances) < 1 || len(table.Distances[0]) != len(destinations) {
		return nil, &ErrProvider{Reason: "malformed table response"}
	}

	legs := make([]Leg, len(destinations))
	for i := range destinations {
		legs[i] = Leg{
			Seconds: table.Durations[0][i],
			Meters:  table.Distances[0][i],
		}
	}
	return legs, nil
}

// StraightLine estimates travel time from great-circle distance at walking
// pace. It never fails and needs no network.
type StraightLine struct{}

func (StraightLine) Name() string {
	return "haversine"
}

func (StraightLine) Estimate(_ context.Context, origin geo.Point, destinations []geo.Point) ([]Leg, error) {
	legs := make([]Leg, len(destinations))
	for i, d := range destinations {
		meters := geo.HaversineMeters(origin, d)
		legs[i] = Leg{
			Seconds: geo.WalkSeconds(meters),
			Meters:  meters,
		}
	}
	return legs, nil
}
