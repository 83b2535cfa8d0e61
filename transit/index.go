package transit

import (
	"sort"

	"github.com/paulmach/osm"
)

// Index is read-optimized view over System: stops sorted by identifier, routes sorted by name
// and lookups by street network node.
type Index struct {
	stops      []Stop
	routes     []*Route
	stopByNode map[osm.NodeID]Stop
	routeStops map[string]map[StopID]struct{}
}

// NewIndex copies stops and routes from given system.
// When several stops share the same node the last one (in system order) wins.
func NewIndex(sys System) *Index {
	idx := &Index{
		stops:      make([]Stop, 0, sys.StopCount()),
		routes:     make([]*Route, 0, sys.RouteCount()),
		stopByNode: make(map[osm.NodeID]Stop, sys.StopCount()),
		routeStops: make(map[string]map[StopID]struct{}, sys.RouteCount()),
	}
	for i := 0; i < sys.StopCount(); i++ {
		stop, ok := sys.StopByIndex(i)
		if !ok {
			continue
		}
		idx.stops = append(idx.stops, stop)
		idx.stopByNode[stop.NodeID] = stop
	}
	for i := 0; i < sys.RouteCount(); i++ {
		route, ok := sys.RouteByIndex(i)
		if !ok || route == nil {
			continue
		}
		routeCopy := &Route{
			Name:    route.Name,
			StopIDs: make([]StopID, len(route.StopIDs)),
		}
		copy(routeCopy.StopIDs, route.StopIDs)
		idx.routes = append(idx.routes, routeCopy)
		members := make(map[StopID]struct{}, len(route.StopIDs))
		for _, stopID := range route.StopIDs {
			members[stopID] = struct{}{}
		}
		idx.routeStops[route.Name] = members
	}
	sort.SliceStable(idx.stops, func(i, j int) bool {
		return idx.stops[i].ID < idx.stops[j].ID
	})
	sort.SliceStable(idx.routes, func(i, j int) bool {
		return idx.routes[i].Name < idx.routes[j].Name
	})
	return idx
}

// StopCount returns number of stops
func (idx *Index) StopCount() int {
	return len(idx.stops)
}

// RouteCount returns number of routes
func (idx *Index) RouteCount() int {
	return len(idx.routes)
}

// SortedStopByIndex returns i-th stop in ascending identifier order
func (idx *Index) SortedStopByIndex(i int) (Stop, bool) {
	if i < 0 || i >= len(idx.stops) {
		return Stop{}, false
	}
	return idx.stops[i], true
}

// SortedRouteByIndex returns i-th route in ascending name order
func (idx *Index) SortedRouteByIndex(i int) (*Route, bool) {
	if i < 0 || i >= len(idx.routes) {
		return nil, false
	}
	return idx.routes[i], true
}

// StopByNodeID returns stop located at given node
func (idx *Index) StopByNodeID(id osm.NodeID) (Stop, bool) {
	stop, ok := idx.stopByNode[id]
	return stop, ok
}

// RoutesByNodeIDs returns every route visiting both stop at src and stop at dest (in any order and not
// necessarily adjacent). Result is sorted by route name. Empty if either node has no stop.
func (idx *Index) RoutesByNodeIDs(src, dest osm.NodeID) []*Route {
	srcStop, ok := idx.stopByNode[src]
	if !ok {
		return nil
	}
	destStop, ok := idx.stopByNode[dest]
	if !ok {
		return nil
	}
	var routes []*Route
	for _, route := range idx.routes {
		members := idx.routeStops[route.Name]
		if _, ok := members[srcStop.ID]; !ok {
			continue
		}
		if _, ok := members[destStop.ID]; !ok {
			continue
		}
		routes = append(routes, route)
	}
	return routes
}

// RouteBetweenNodeIDs reports whether any route visits both stop at src and stop at dest
func (idx *Index) RouteBetweenNodeIDs(src, dest osm.NodeID) bool {
	return len(idx.RoutesByNodeIDs(src, dest)) > 0
}
