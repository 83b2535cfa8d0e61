package osmtrip

import (
	"time"

	"github.com/LdDl/osmtrip/pathrouter"
	"github.com/paulmach/osm"
)

// NoPathExists is returned as distance or duration when destination can't be reached
var NoPathExists = pathrouter.NoPathExists

func (planner *Planner) search(mode GraphMode, src, dest osm.NodeID) (float64, []osm.NodeID) {
	graph := planner.graph(mode)
	st := time.Now()
	cost, path := graph.shortestPath(src, dest)
	planner.metrics.observeSearch(mode, st, len(path) > 0)
	if len(path) == 0 {
		planner.logger.Debug("no path", "mode", mode.String(), "src", src, "dest", dest)
	}
	return cost, path
}

// FindShortestPath returns length (miles) and nodes of the shortest path between two nodes.
// Ways tagged oneway=yes are traversed in listed direction only.
func (planner *Planner) FindShortestPath(src, dest osm.NodeID) (float64, []osm.NodeID) {
	return planner.search(GRAPH_DISTANCE, src, dest)
}

// FindFastestPath returns duration (hours) and steps of the fastest trip between two nodes.
// Walking combined with bus riding is compared with biking: walk/bus trip is chosen only when it is strictly faster.
func (planner *Planner) FindFastestPath(src, dest osm.NodeID) (float64, []TripStep) {
	walkBusTime, walkBusPath := planner.search(GRAPH_WALK_BUS, src, dest)
	bikeTime, bikePath := planner.search(GRAPH_BIKE, src, dest)

	if len(walkBusPath) > 0 && walkBusTime < bikeTime {
		steps := make([]TripStep, len(walkBusPath))
		steps[0] = TripStep{Mode: Walk, NodeID: walkBusPath[0]}
		for i := 1; i < len(walkBusPath); i++ {
			mode := Walk
			if planner.transitIndex.RouteBetweenNodeIDs(walkBusPath[i-1], walkBusPath[i]) {
				mode = Bus
			}
			steps[i] = TripStep{Mode: mode, NodeID: walkBusPath[i]}
		}
		return walkBusTime, steps
	}
	if len(bikePath) == 0 {
		return NoPathExists, nil
	}
	steps := make([]TripStep, len(bikePath))
	for i, nodeID := range bikePath {
		steps[i] = TripStep{Mode: Bike, NodeID: nodeID}
	}
	return bikeTime, steps
}
