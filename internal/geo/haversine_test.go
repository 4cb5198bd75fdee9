package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters_ZeroDistance(t *testing.T) {
	p := Point{Lat: -1.2921, Lng: 36.8219}
	assert.Equal(t, 0.0, HaversineMeters(p, p))
}

func TestHaversineMeters_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~111.2 km everywhere
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 1, Lng: 0}
	d := HaversineMeters(a, b)
	assert.InDelta(t, 111195, d, 100)
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	a := Point{Lat: 51.5007, Lng: -0.1246}
	b := Point{Lat: 48.8584, Lng: 2.2945}
	assert.InDelta(t, HaversineMeters(a, b), HaversineMeters(b, a), 1e-6)
}

func TestHaversineMeters_ShortHop(t *testing.T) {
	// ~100 m apart, the station-grid scale this service works at
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 0.00090, Lng: 0}
	assert.InDelta(t, 100, HaversineMeters(a, b), 1)
}

func TestWalkSeconds(t *testing.T) {
	assert.Equal(t, 79.0, WalkSeconds(111))
	assert.Equal(t, 0.0, WalkSeconds(0))
	assert.Equal(t, 714.0, WalkSeconds(1000))
}
