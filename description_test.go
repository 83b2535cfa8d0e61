package osmtrip

import (
	"testing"

	"github.com/LdDl/osmtrip/streetmap"
	"github.com/LdDl/osmtrip/transit"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streetsPlanner(t *testing.T) *Planner {
	nodes := []*streetmap.Node{
		{ID: 1, Lat: 0, Lon: 0},
		{ID: 2, Lat: 0, Lon: 0.01},
		{ID: 3, Lat: 0, Lon: 0.02},
		{ID: 4, Lat: 0, Lon: 0.03},
		{ID: 5, Lat: 0, Lon: 0.04},
	}
	ways := []*streetmap.Way{
		{ID: 10, NodeIDs: []osm.NodeID{1, 2, 3}, Tags: tags("name", "Main Street")},
		{ID: 11, NodeIDs: []osm.NodeID{3, 4}},
		{ID: 12, NodeIDs: []osm.NodeID{4, 5}, Tags: tags("name", "Elm Street")},
	}
	stops := []transit.Stop{{ID: 101, NodeID: 1}, {ID: 102, NodeID: 2}, {ID: 103, NodeID: 3}, {ID: 104, NodeID: 4}}
	routes := []*transit.Route{
		{Name: "B", StopIDs: []transit.StopID{101, 102, 103}},
		{Name: "A", StopIDs: []transit.StopID{101, 102}},
		{Name: "C", StopIDs: []transit.StopID{103, 104}},
	}
	return newTestPlanner(t, nodes, ways, stops, routes, nil)
}

func steps(mode TransportationMode, nodeIDs ...osm.NodeID) []TripStep {
	result := make([]TripStep, len(nodeIDs))
	for i, nodeID := range nodeIDs {
		result[i] = TripStep{Mode: mode, NodeID: nodeID}
	}
	return result
}

func TestDescriptionMergesWays(t *testing.T) {
	planner := streetsPlanner(t)
	tests := []struct {
		name     string
		path     []TripStep
		expected []string
	}{
		{
			name: "walk east",
			path: steps(Walk, 1, 2, 3, 4, 5),
			expected: []string{
				`Start at 0d 0' 0" N, 0d 0' 0" E`,
				"Walk E along Main Street for 1.4 mi",
				"Walk E toward Elm Street for 0.7 mi",
				"Walk E along Elm Street for 0.7 mi",
				`End at 0d 0' 0" N, 0d 2' 24" E`,
			},
		},
		{
			name: "bike west",
			path: steps(Bike, 5, 4, 3, 2),
			expected: []string{
				`Start at 0d 0' 0" N, 0d 2' 24" E`,
				"Bike W along Elm Street for 0.7 mi",
				"Bike W toward Main Street for 0.7 mi",
				"Bike W along Main Street for 0.7 mi",
				`End at 0d 0' 0" N, 0d 0' 36" E`,
			},
		},
		{
			name: "unnamed way at the end",
			path: steps(Walk, 3, 4),
			expected: []string{
				`Start at 0d 0' 0" N, 0d 1' 12" E`,
				"Walk E toward End for 0.7 mi",
				`End at 0d 0' 0" N, 0d 1' 48" E`,
			},
		},
		{
			name: "single node",
			path: steps(Walk, 2),
			expected: []string{
				`Start at 0d 0' 0" N, 0d 0' 36" E`,
				`End at 0d 0' 0" N, 0d 0' 36" E`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := planner.GetPathDescription(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestDescriptionBusRides(t *testing.T) {
	planner := streetsPlanner(t)
	tests := []struct {
		name     string
		path     []TripStep
		expected []string
	}{
		{
			name: "lexicographically first common route",
			path: []TripStep{{Walk, 1}, {Bus, 2}},
			expected: []string{
				`Start at 0d 0' 0" N, 0d 0' 0" E`,
				"Take Bus A from stop 101 to stop 102",
				`End at 0d 0' 0" N, 0d 0' 36" E`,
			},
		},
		{
			name: "routes are intersected hop by hop",
			path: []TripStep{{Walk, 1}, {Bus, 2}, {Bus, 3}},
			expected: []string{
				`Start at 0d 0' 0" N, 0d 0' 0" E`,
				"Take Bus B from stop 101 to stop 103",
				`End at 0d 0' 0" N, 0d 1' 12" E`,
			},
		},
		{
			name: "transfer when no common route is left",
			path: []TripStep{{Walk, 1}, {Bus, 2}, {Bus, 3}, {Bus, 4}},
			expected: []string{
				`Start at 0d 0' 0" N, 0d 0' 0" E`,
				"Take Bus B from stop 101 to stop 103",
				"Take Bus C from stop 103 to stop 104",
				`End at 0d 0' 0" N, 0d 1' 48" E`,
			},
		},
		{
			name: "walk then ride then walk",
			path: []TripStep{{Walk, 1}, {Walk, 2}, {Bus, 3}, {Walk, 4}, {Walk, 5}},
			expected: []string{
				`Start at 0d 0' 0" N, 0d 0' 0" E`,
				"Walk E along Main Street for 0.7 mi",
				"Take Bus B from stop 102 to stop 103",
				"Walk E toward Elm Street for 0.7 mi",
				"Walk E along Elm Street for 0.7 mi",
				`End at 0d 0' 0" N, 0d 2' 24" E`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := planner.GetPathDescription(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestDescriptionFailures(t *testing.T) {
	planner := streetsPlanner(t)

	lines, err := planner.GetPathDescription(nil)
	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.Empty(t, lines)

	lines, err = planner.GetPathDescription(steps(Walk, 1, 3))
	assert.ErrorIs(t, err, ErrMissingWay)
	assert.Empty(t, lines)

	lines, err = planner.GetPathDescription(steps(Walk, 1, 42))
	assert.ErrorIs(t, err, ErrUnknownNode)
	assert.Empty(t, lines)

	lines, err = planner.GetPathDescription([]TripStep{{Walk, 4}, {Bus, 5}})
	assert.ErrorIs(t, err, ErrNoBusRoute)
	assert.Empty(t, lines)
}

func TestDescriptionOfFastestPath(t *testing.T) {
	planner := busScenario(t, nil)
	_, path := planner.FindFastestPath(1, 2)
	lines, err := planner.GetPathDescription(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Start at 0d 0' 0" N, 0d 0' 0" E`,
		"Take Bus A from stop 11 to stop 22",
		`End at 0d 0' 0" N, 0d 2' 36" E`,
	}, lines)
}

func TestTripGeometry(t *testing.T) {
	planner := streetsPlanner(t)
	line, err := planner.TripGeometry(steps(Walk, 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING(0 0,0.01 0,0.02 0)", PrepareWKTLinestring(line))

	length, err := planner.TripLength(steps(Walk, 1, 2, 3))
	require.NoError(t, err)
	assert.InDelta(t, 0.02*milesPerDegree, length, 1e-9)

	_, err = planner.TripGeometry(steps(Walk, 1, 99))
	assert.ErrorIs(t, err, ErrUnknownNode)

	geom, err := PrepareGeoJSONLinestring(line)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"LineString","coordinates":[[0,0],[0.01,0],[0.02,0]]}`, geom)

	trip, err := planner.PrepareGeoJSONTrip([]TripStep{{Walk, 1}, {Bus, 2}})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type":"FeatureCollection",
		"features":[{
			"type":"Feature",
			"geometry":{"type":"LineString","coordinates":[[0,0],[0.01,0]]},
			"properties":{"mode":"Bus","from":1,"to":2}
		}]
	}`, trip)
}
