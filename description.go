package osmtrip

import (
	"fmt"
	"sort"

	"github.com/LdDl/osmtrip/streetmap"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// GetPathDescription converts itinerary into human readable instructions:
//
//	Start at 38d 32' 31" N, 121d 45' 2" W
//	Walk E along Russell Boulevard for 0.3 mi
//	Take Bus A from stop 22 to stop 130
//	Walk N toward B Street for 0.1 mi
//	End at 38d 32' 44" N, 121d 44' 25" W
//
// Consecutive walk (or bike) steps on the same way are merged. Consecutive bus steps are merged as long as
// at least one route serves all of them.
func (planner *Planner) GetPathDescription(path []TripStep) ([]string, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	nodes := make([]*streetmap.Node, len(path))
	for i, step := range path {
		node, ok := planner.streetMap.NodeByID(step.NodeID)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownNode, "node %d", step.NodeID)
		}
		nodes[i] = node
	}
	// ways[i] is the way of hop path[i-1] -> path[i]
	ways := make([]*streetmap.Way, len(path))
	for i := 1; i < len(path); i++ {
		way, ok := planner.wayBetween(path[i-1].NodeID, path[i].NodeID)
		if !ok {
			return nil, errors.Wrapf(ErrMissingWay, "%d -> %d", path[i-1].NodeID, path[i].NodeID)
		}
		ways[i] = way
	}

	lines := make([]string, 0, len(path)+2)
	lines = append(lines, "Start at "+formatDMS(nodes[0].Location()))
	for i := 1; i < len(path); {
		if path[i].Mode == Bus {
			line, next, err := planner.describeBusRide(path, i)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
			i = next
			continue
		}
		mode := path[i].Mode
		wayID := ways[i].ID
		distance := 0.0
		j := i
		for j < len(path) && path[j].Mode == mode && ways[j].ID == wayID {
			distance += greatCircleDistance(nodes[j-1].Point(), nodes[j].Point())
			j++
		}
		direction := compassDirection(initialBearing(nodes[i-1].Point(), nodes[j-1].Point()))
		street := "along " + ways[i].Attribute("name")
		if ways[i].Attribute("name") == "" {
			street = "toward " + nextStreetName(ways, j)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s for %.1f mi", mode, direction, street, distance))
		i = j
	}
	lines = append(lines, "End at "+formatDMS(nodes[len(nodes)-1].Location()))
	return lines, nil
}

// describeBusRide merges bus hops starting at path[first-1] -> path[first] while common route exists.
// Returns instruction and index of the first hop not included.
func (planner *Planner) describeBusRide(path []TripStep, first int) (string, int, error) {
	common := planner.routeNames(path[first-1].NodeID, path[first].NodeID)
	if len(common) == 0 {
		return "", 0, errors.Wrapf(ErrNoBusRoute, "%d -> %d", path[first-1].NodeID, path[first].NodeID)
	}
	j := first + 1
	for j < len(path) && path[j].Mode == Bus {
		narrowed := intersectRouteNames(common, planner.routeNames(path[j-1].NodeID, path[j].NodeID))
		if len(narrowed) == 0 {
			// No single route covers the whole run: next ride starts here
			break
		}
		common = narrowed
		j++
	}
	names := make([]string, 0, len(common))
	for name := range common {
		names = append(names, name)
	}
	sort.Strings(names)
	startStop, _ := planner.transitIndex.StopByNodeID(path[first-1].NodeID)
	endStop, _ := planner.transitIndex.StopByNodeID(path[j-1].NodeID)
	return fmt.Sprintf("Take Bus %s from stop %d to stop %d", names[0], startStop.ID, endStop.ID), j, nil
}

func (planner *Planner) routeNames(from, to osm.NodeID) map[string]struct{} {
	routes := planner.transitIndex.RoutesByNodeIDs(from, to)
	names := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		names[route.Name] = struct{}{}
	}
	return names
}

func intersectRouteNames(a, b map[string]struct{}) map[string]struct{} {
	result := make(map[string]struct{})
	for name := range a {
		if _, ok := b[name]; ok {
			result[name] = struct{}{}
		}
	}
	return result
}

// nextStreetName returns name of the first named way starting from hop idx or "End"
func nextStreetName(ways []*streetmap.Way, idx int) string {
	for k := idx; k < len(ways); k++ {
		if name := ways[k].Attribute("name"); name != "" {
			return name
		}
	}
	return "End"
}

// PathGeometry returns line through given nodes
func (planner *Planner) PathGeometry(nodeIDs ...osm.NodeID) (orb.LineString, error) {
	line := make(orb.LineString, 0, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		node, ok := planner.streetMap.NodeByID(nodeID)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownNode, "node %d", nodeID)
		}
		line = append(line, node.Point())
	}
	return line, nil
}

// TripGeometry returns line through nodes of itinerary
func (planner *Planner) TripGeometry(path []TripStep) (orb.LineString, error) {
	nodeIDs := make([]osm.NodeID, len(path))
	for i, step := range path {
		nodeIDs[i] = step.NodeID
	}
	return planner.PathGeometry(nodeIDs...)
}

// TripLength returns length of itinerary (miles)
func (planner *Planner) TripLength(path []TripStep) (float64, error) {
	line, err := planner.TripGeometry(path)
	if err != nil {
		return 0, err
	}
	return getSphericalLength(line), nil
}
