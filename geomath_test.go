package osmtrip

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestGreatCircleDistance(t *testing.T) {
	p1 := orb.Point{37.6417350769043, 55.751849391735284}
	p2 := orb.Point{37.668514251708984, 55.73261980350401}
	res := 2.71693096539 / 1.609344 // kilometers -> miles
	assert.InDelta(t, res, greatCircleDistance(p1, p2), 0.005)

	assert.InDelta(t, 69.17, greatCircleDistance(orb.Point{0, 0}, orb.Point{1, 0}), 0.01)
	assert.Equal(t, 0.0, greatCircleDistance(p1, p1))
}

func TestSphericalLength(t *testing.T) {
	line := orb.LineString{{0, 0}, {0.5, 0}, {1, 0}}
	assert.InDelta(t, greatCircleDistance(orb.Point{0, 0}, orb.Point{1, 0}), getSphericalLength(line), 1e-9)
	assert.Equal(t, 0.0, getSphericalLength(orb.LineString{{0, 0}}))
}

func TestInitialBearing(t *testing.T) {
	tests := []struct {
		name     string
		from, to orb.Point
		expected float64
	}{
		{"north", orb.Point{0, 0}, orb.Point{0, 1}, 0},
		{"east", orb.Point{0, 0}, orb.Point{1, 0}, 90},
		{"south", orb.Point{0, 1}, orb.Point{0, 0}, 180},
		{"west", orb.Point{1, 0}, orb.Point{0, 0}, 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, initialBearing(tt.from, tt.to), 1e-9)
		})
	}
	northEast := initialBearing(orb.Point{0, 0}, orb.Point{1, 1})
	assert.InDelta(t, 45, northEast, 0.1)
}

func TestCompassDirection(t *testing.T) {
	tests := []struct {
		bearing  float64
		expected string
	}{
		{0, "N"},
		{22.4, "N"},
		{22.5, "NE"},
		{44, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337.4, "NW"},
		{337.5, "N"},
		{359.9, "N"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, compassDirection(tt.bearing), "bearing %f", tt.bearing)
	}
}

func TestFormatDMS(t *testing.T) {
	tests := []struct {
		lat, lon float64
		expected string
	}{
		{38.5, -121.5, `38d 30' 0" N, 121d 30' 0" W`},
		{-33.8688, 151.2093, `33d 52' 8" S, 151d 12' 33" E`},
		{0, 0, `0d 0' 0" N, 0d 0' 0" E`},
		{10.99999, 20.0001, `11d 0' 0" N, 20d 0' 0" E`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatDMS(tt.lat, tt.lon))
	}
}

func TestParseMaxSpeed(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
		ok       bool
	}{
		{"25", 25, true},
		{"35 mph", 35, true},
		{"40mph", 40, true},
		{" 12.5 mph", 12.5, true},
		{"", 0, false},
		{"none", 0, false},
		{"0", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tt := range tests {
		speed, ok := parseMaxSpeed(tt.value)
		assert.Equal(t, tt.ok, ok, tt.value)
		assert.Equal(t, tt.expected, speed, tt.value)
	}
}

func TestTransportationModeString(t *testing.T) {
	assert.Equal(t, "Walk", Walk.String())
	assert.Equal(t, "Bike", Bike.String())
	assert.Equal(t, "Bus", Bus.String())
	assert.Equal(t, "undefined", ModeUndefined.String())
	assert.Equal(t, "Bus 7", TripStep{Mode: Bus, NodeID: 7}.String())
	assert.Equal(t, "walk_bus", GRAPH_WALK_BUS.String())
}

func TestPrepareWKT(t *testing.T) {
	assert.Equal(t, "POINT(1 2)", PrepareWKTPoint(orb.Point{1, 2}))
	assert.Equal(t, "LINESTRING(1 2,3 4)", PrepareWKTLinestring(orb.LineString{{1, 2}, {3, 4}}))
	geom, err := PrepareGeoJSONPoint(orb.Point{1, 2})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[1,2]}`, geom)
}
