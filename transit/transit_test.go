package transit

import (
	"strings"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stopsCSV = `stop_id,node_id
22,2
x,3
11,1
33,3
`
	routesCSV = `route,stop_id
B,33
A,11
A,22
B,11
A,x
A,33
`
)

func TestReadCSV(t *testing.T) {
	sys, err := ReadCSV(strings.NewReader(stopsCSV), strings.NewReader(routesCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, sys.StopCount())
	assert.Equal(t, 2, sys.RouteCount())

	stop, ok := sys.StopByID(33)
	require.True(t, ok)
	assert.Equal(t, osm.NodeID(3), stop.NodeID)

	first, ok := sys.RouteByIndex(0)
	require.True(t, ok)
	assert.Equal(t, "B", first.Name)

	route, ok := sys.RouteByName("A")
	require.True(t, ok)
	assert.Equal(t, []StopID{11, 22, 33}, route.StopIDs)
	assert.True(t, route.Contains(22))
	assert.False(t, route.Contains(44))
	id, ok := route.StopID(1)
	require.True(t, ok)
	assert.Equal(t, StopID(22), id)
	_, ok = route.StopID(3)
	assert.False(t, ok)
}

func TestReadCSVMissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("stop,node\n1,2\n"), strings.NewReader(routesCSV))
	assert.Error(t, err)
}

func TestIndexSorted(t *testing.T) {
	sys, err := ReadCSV(strings.NewReader(stopsCSV), strings.NewReader(routesCSV))
	require.NoError(t, err)
	idx := NewIndex(sys)

	require.Equal(t, 3, idx.StopCount())
	expectedStops := []StopID{11, 22, 33}
	for i, expected := range expectedStops {
		stop, ok := idx.SortedStopByIndex(i)
		require.True(t, ok)
		assert.Equal(t, expected, stop.ID)
	}
	_, ok := idx.SortedStopByIndex(3)
	assert.False(t, ok)

	require.Equal(t, 2, idx.RouteCount())
	route, ok := idx.SortedRouteByIndex(0)
	require.True(t, ok)
	assert.Equal(t, "A", route.Name)
	_, ok = idx.SortedRouteByIndex(-1)
	assert.False(t, ok)
}

func TestIndexRoutesByNodeIDs(t *testing.T) {
	sys := NewMemorySystem(
		[]Stop{{ID: 10, NodeID: 100}, {ID: 20, NodeID: 200}, {ID: 30, NodeID: 300}, {ID: 50, NodeID: 500}},
		[]*Route{
			{Name: "C", StopIDs: []StopID{10, 20, 30}},
			{Name: "A", StopIDs: []StopID{10, 30}},
			{Name: "B", StopIDs: []StopID{20, 30}},
			{Name: "D", StopIDs: []StopID{50}},
		},
	)
	idx := NewIndex(sys)

	tests := []struct {
		name     string
		src      osm.NodeID
		dest     osm.NodeID
		expected []string
	}{
		{"adjacent on single route", 100, 200, []string{"C"}},
		{"non adjacent members", 100, 300, []string{"A", "C"}},
		{"reverse direction", 300, 100, []string{"A", "C"}},
		{"shared by two", 200, 300, []string{"B", "C"}},
		{"node without stop", 100, 400, nil},
		{"stops without common route", 100, 500, nil},
		{"single stop route", 500, 500, []string{"D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := idx.RoutesByNodeIDs(tt.src, tt.dest)
			var names []string
			for _, route := range routes {
				names = append(names, route.Name)
			}
			assert.Equal(t, tt.expected, names)
			assert.Equal(t, len(tt.expected) > 0, idx.RouteBetweenNodeIDs(tt.src, tt.dest))
		})
	}
}

func TestIndexStopByNodeLastWins(t *testing.T) {
	sys := NewMemorySystem(
		[]Stop{{ID: 1, NodeID: 7}, {ID: 2, NodeID: 7}},
		nil,
	)
	idx := NewIndex(sys)
	stop, ok := idx.StopByNodeID(7)
	require.True(t, ok)
	assert.Equal(t, StopID(2), stop.ID)

	_, ok = idx.StopByNodeID(8)
	assert.False(t, ok)
}

func TestIndexIsolatedFromSystem(t *testing.T) {
	route := &Route{Name: "A", StopIDs: []StopID{1, 2}}
	sys := NewMemorySystem([]Stop{{ID: 1, NodeID: 1}, {ID: 2, NodeID: 2}}, []*Route{route})
	idx := NewIndex(sys)
	route.StopIDs[1] = 3
	assert.True(t, idx.RouteBetweenNodeIDs(1, 2))
}
