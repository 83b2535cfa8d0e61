package osmtrip

import (
	"strconv"
	"strings"
	"time"

	"github.com/LdDl/osmtrip/pathrouter"
	"github.com/LdDl/osmtrip/streetmap"
	"github.com/paulmach/osm"
)

// routingGraph is router together with node -> vertex mapping. Vertex -> node mapping is kept in vertex tags
type routingGraph struct {
	mode         GraphMode
	router       pathrouter.PathRouter[osm.NodeID]
	vertexByNode map[osm.NodeID]pathrouter.VertexID
	edges        int
}

// nodeID returns node for given vertex
func (graph *routingGraph) nodeID(id pathrouter.VertexID) (osm.NodeID, bool) {
	return graph.router.VertexTag(id)
}

// shortestPath searches path between two nodes. Path is empty when there is no route
func (graph *routingGraph) shortestPath(src, dest osm.NodeID) (float64, []osm.NodeID) {
	srcVertex, ok := graph.vertexByNode[src]
	if !ok {
		return pathrouter.NoPathExists, nil
	}
	destVertex, ok := graph.vertexByNode[dest]
	if !ok {
		return pathrouter.NoPathExists, nil
	}
	cost, vertices := graph.router.FindShortestPath(srcVertex, destVertex)
	if len(vertices) == 0 {
		return pathrouter.NoPathExists, nil
	}
	path := make([]osm.NodeID, 0, len(vertices))
	for _, vertex := range vertices {
		nodeID, ok := graph.nodeID(vertex)
		if !ok {
			return pathrouter.NoPathExists, nil
		}
		path = append(path, nodeID)
	}
	return cost, path
}

// graph returns routing graph for given mode: cached one when cache is enabled
func (planner *Planner) graph(mode GraphMode) *routingGraph {
	if planner.graphCache != nil {
		if cached, err := planner.graphCache.Get(mode); err == nil {
			planner.metrics.cacheHit()
			return cached.(*routingGraph)
		}
	}
	graph := planner.buildGraph(mode)
	if planner.graphCache != nil {
		if err := planner.graphCache.Set(mode, graph); err != nil {
			planner.logger.Warn("can't cache routing graph", "mode", mode.String(), "error", err)
		}
	}
	return graph
}

func (planner *Planner) newRouter() pathrouter.PathRouter[osm.NodeID] {
	if planner.cfg.UseContraction {
		return pathrouter.NewContractionRouter[osm.NodeID]()
	}
	return pathrouter.NewDijkstraRouter[osm.NodeID]()
}

// buildGraph creates fresh routing graph. Result depends only on mode, street map, transit index and configuration:
// vertices are created in ascending node identifier order.
func (planner *Planner) buildGraph(mode GraphMode) *routingGraph {
	st := time.Now()
	graph := &routingGraph{
		mode:         mode,
		router:       planner.newRouter(),
		vertexByNode: make(map[osm.NodeID]pathrouter.VertexID, len(planner.sortedNodeIDs)),
	}
	for _, nodeID := range planner.sortedNodeIDs {
		graph.vertexByNode[nodeID] = graph.router.AddVertex(nodeID)
	}

	busStopHours := planner.cfg.BusStopTime / 3600.0
	for i := 0; i < planner.streetMap.WayCount(); i++ {
		way, ok := planner.streetMap.WayByIndex(i)
		if !ok {
			continue
		}
		if mode == GRAPH_BIKE && way.Attribute("bicycle") == "no" {
			continue
		}
		oneway := way.Attribute("oneway") == "yes"
		speedLimit := planner.speedLimit(way)
		for j := 1; j < len(way.NodeIDs); j++ {
			from, to := way.NodeIDs[j-1], way.NodeIDs[j]
			fromVertex, okFrom := graph.vertexByNode[from]
			toVertex, okTo := graph.vertexByNode[to]
			if !okFrom || !okTo {
				// Way references node which is not in the map
				continue
			}
			distance := planner.segmentLength(from, to)
			switch mode {
			case GRAPH_DISTANCE:
				graph.addEdge(fromVertex, toVertex, distance, !oneway)
			case GRAPH_BIKE:
				graph.addEdge(fromVertex, toVertex, distance/planner.cfg.BikeSpeed, !oneway)
			case GRAPH_WALK_BUS:
				graph.addEdge(fromVertex, toVertex, distance/planner.cfg.WalkSpeed, true)
				if planner.transitIndex.RouteBetweenNodeIDs(from, to) {
					graph.addEdge(fromVertex, toVertex, distance/speedLimit+busStopHours, false)
				}
			}
		}
	}

	if planner.cfg.UseContraction {
		if !graph.router.Precompute(time.Now().Add(planner.cfg.PrecomputeTimeBudget)) {
			planner.logger.Warn("contraction has not been finished in time, falling back to Dijkstra", "mode", mode.String(), "budget", planner.cfg.PrecomputeTimeBudget)
		}
	} else {
		graph.router.Precompute(time.Now().Add(planner.cfg.PrecomputeTimeBudget))
	}
	planner.metrics.observeBuild(mode, st)
	planner.logger.Debug("routing graph has been built",
		"mode", mode.String(),
		"vertices", graph.router.VertexCount(),
		"edges", graph.edges,
		"took", time.Since(st),
	)
	return graph
}

func (graph *routingGraph) addEdge(from, to pathrouter.VertexID, weight float64, bidir bool) {
	if !graph.router.AddEdge(from, to, weight, bidir) {
		return
	}
	graph.edges++
	if bidir {
		graph.edges++
	}
}

// segmentLength returns haversine distance between two nodes (miles)
func (planner *Planner) segmentLength(from, to osm.NodeID) float64 {
	fromNode, ok := planner.streetMap.NodeByID(from)
	if !ok {
		return 0
	}
	toNode, ok := planner.streetMap.NodeByID(to)
	if !ok {
		return 0
	}
	return greatCircleDistance(fromNode.Point(), toNode.Point())
}

// speedLimit returns parsed 'maxspeed' of way (mph) or configured default one
func (planner *Planner) speedLimit(way *streetmap.Way) float64 {
	if speed, ok := parseMaxSpeed(way.Attribute("maxspeed")); ok {
		return speed
	}
	return planner.cfg.DefaultSpeedLimit
}

// parseMaxSpeed extracts leading number from values like "25", "25 mph" or "25mph"
func parseMaxSpeed(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) && (value[end] == '.' || (value[end] >= '0' && value[end] <= '9')) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	speed, err := strconv.ParseFloat(value[:end], 64)
	if err != nil || speed <= 0 {
		return 0, false
	}
	return speed, true
}
