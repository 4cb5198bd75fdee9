package travel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quest_logistics/internal/geo"
)

func TestOSRM_Estimate(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{
			"code":      "Ok",
			"durations": [][]float64{{120.5, 300}},
			"distances": [][]float64{{160, 410}},
		})
	}))
	defer server.Close()

	src := NewOSRM(server.URL, "walking")
	legs, err := src.Estimate(context.Background(),
		geo.Point{Lat: 1, Lng: 2},
		[]geo.Point{{Lat: 1.1, Lng: 2}, {Lat: 1, Lng: 2.1}})
	require.NoError(t, err)
	require.Len(t, legs, 2)

	assert.Equal(t, 120.5, legs[0].Seconds)
	assert.Equal(t, 160.0, legs[0].Meters)
	assert.Equal(t, 300.0, legs[1].Seconds)
	assert.Equal(t, 410.0, legs[1].Meters)

	assert.True(t, strings.Contains(gotPath, "/table/v1/foot/"), "walking maps to the foot profile: %s", gotPath)
	assert.True(t, strings.Contains(gotPath, "sources=0"), "origin pinned as the only source: %s", gotPath)
	assert.True(t, strings.Contains(gotPath, "destinations=1;2"), "destinations follow the origin: %s", gotPath)
}

func TestOSRM_Estimate_ProfileMapping(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"code":      "Ok",
			"durations": [][]float64{{10}},
			"distances": [][]float64{{20}},
		})
	}))
	defer server.Close()

	_, err := NewOSRM(server.URL, "cycling").Estimate(context.Background(),
		geo.Point{}, []geo.Point{{Lat: 0.001}})
	require.NoError(t, err)
	assert.True(t, strings.Contains(gotPath, "/table/v1/bike/"))
}

func TestOSRM_Estimate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewOSRM(server.URL, "walking").Estimate(context.Background(),
		geo.Point{}, []geo.Point{{Lat: 0.001}})
	require.Error(t, err)
	var provErr *ErrProvider
	assert.ErrorAs(t, err, &provErr)
}

func TestOSRM_Estimate_BadCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": "NoTable"})
	}))
	defer server.Close()

	_, err := NewOSRM(server.URL, "walking").Estimate(context.Background(),
		geo.Point{}, []geo.Point{{Lat: 0.001}})
	require.Error(t, err)
}

func TestOSRM_Estimate_EmptyDestinations(t *testing.T) {
	src := NewOSRM("http://unused.invalid", "walking")
	legs, err := src.Estimate(context.Background(), geo.Point{}, nil)
	require.NoError(t, err)
	assert.Empty(t, legs)
}

func TestStraightLine_Estimate(t *testing.T) {
	legs, err := StraightLine{}.Estimate(context.Background(),
		geo.Point{Lat: 0, Lng: 0},
		[]geo.Point{{Lat: 0.00090, Lng: 0}})
	require.NoError(t, err)
	require.Len(t, legs, 1)

	// ~100 m at 1.4 m/s, rounded
	assert.InDelta(t, 100, legs[0].Meters, 1)
	assert.InDelta(t, 71, legs[0].Seconds, 1)
	assert.Equal(t, "haversine", StraightLine{}.Name())
}
