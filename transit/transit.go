// Package transit describes bus stops and routes and provides sorted index over them
package transit

import (
	"fmt"

	"github.com/paulmach/osm"
)

// StopID is identifier of bus stop
type StopID int64

// Stop is bus stop located at street network node
type Stop struct {
	ID     StopID
	NodeID osm.NodeID
}

// String returns pretty printed value for Stop
func (stop Stop) String() string {
	return fmt.Sprintf("Stop %d (node %d)", stop.ID, stop.NodeID)
}

// Route is named bus line visiting stops in given order
type Route struct {
	Name    string
	StopIDs []StopID
}

// StopCount returns number of stops on route
func (route *Route) StopCount() int {
	return len(route.StopIDs)
}

// StopID returns i-th stop of route
func (route *Route) StopID(i int) (StopID, bool) {
	if i < 0 || i >= len(route.StopIDs) {
		return 0, false
	}
	return route.StopIDs[i], true
}

// Contains reports whether route visits given stop
func (route *Route) Contains(id StopID) bool {
	for _, stopID := range route.StopIDs {
		if stopID == id {
			return true
		}
	}
	return false
}

// System is read-only access to stops and routes
type System interface {
	StopCount() int
	RouteCount() int
	StopByIndex(i int) (Stop, bool)
	StopByID(id StopID) (Stop, bool)
	RouteByIndex(i int) (*Route, bool)
	RouteByName(name string) (*Route, bool)
}

// MemorySystem is in-memory System. Stops and routes are kept in insertion order
type MemorySystem struct {
	stops     []Stop
	routes    []*Route
	stopsIdx  map[StopID]int
	routesIdx map[string]int
}

// NewMemorySystem returns system with given stops and routes. Later duplicates replace earlier ones
func NewMemorySystem(stops []Stop, routes []*Route) *MemorySystem {
	sys := &MemorySystem{
		stopsIdx:  make(map[StopID]int, len(stops)),
		routesIdx: make(map[string]int, len(routes)),
	}
	for _, stop := range stops {
		sys.addStop(stop)
	}
	for _, route := range routes {
		sys.addRoute(route)
	}
	return sys
}

func (sys *MemorySystem) addStop(stop Stop) {
	if idx, ok := sys.stopsIdx[stop.ID]; ok {
		sys.stops[idx] = stop
		return
	}
	sys.stopsIdx[stop.ID] = len(sys.stops)
	sys.stops = append(sys.stops, stop)
}

func (sys *MemorySystem) addRoute(route *Route) {
	if idx, ok := sys.routesIdx[route.Name]; ok {
		sys.routes[idx] = route
		return
	}
	sys.routesIdx[route.Name] = len(sys.routes)
	sys.routes = append(sys.routes, route)
}

// StopCount returns number of stops
func (sys *MemorySystem) StopCount() int {
	return len(sys.stops)
}

// RouteCount returns number of routes
func (sys *MemorySystem) RouteCount() int {
	return len(sys.routes)
}

// StopByIndex returns i-th stop in reading order
func (sys *MemorySystem) StopByIndex(i int) (Stop, bool) {
	if i < 0 || i >= len(sys.stops) {
		return Stop{}, false
	}
	return sys.stops[i], true
}

// StopByID returns stop with given identifier
func (sys *MemorySystem) StopByID(id StopID) (Stop, bool) {
	idx, ok := sys.stopsIdx[id]
	if !ok {
		return Stop{}, false
	}
	return sys.stops[idx], true
}

// RouteByIndex returns i-th route in reading order
func (sys *MemorySystem) RouteByIndex(i int) (*Route, bool) {
	if i < 0 || i >= len(sys.routes) {
		return nil, false
	}
	return sys.routes[i], true
}

// RouteByName returns route with given name
func (sys *MemorySystem) RouteByName(name string) (*Route, bool) {
	idx, ok := sys.routesIdx[name]
	if !ok {
		return nil, false
	}
	return sys.routes[idx], true
}
