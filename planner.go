// Package osmtrip plans trips over OSM street network with walking, biking and bus riding.
package osmtrip

import (
	"log/slog"
	"sort"
	"time"

	"github.com/LdDl/osmtrip/streetmap"
	"github.com/LdDl/osmtrip/transit"
	"github.com/bluele/gcache"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

type nodePair struct {
	from osm.NodeID
	to   osm.NodeID
}

// Planner answers shortest and fastest path queries. It is not safe for concurrent use
type Planner struct {
	cfg           Configuration
	streetMap     streetmap.StreetMap
	transitIndex  *transit.Index
	sortedNodeIDs []osm.NodeID
	segmentWays   map[nodePair]osm.WayID

	logger     *slog.Logger
	metrics    *Metrics
	cacheSize  int
	graphCache gcache.Cache
}

// NewPlanner prepares lookup tables for given configuration
func NewPlanner(cfg Configuration, options ...func(*Planner)) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid planner configuration")
	}
	planner := &Planner{
		cfg:       cfg,
		streetMap: cfg.StreetMap,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(planner)
	}
	if cfg.UseContraction && planner.cacheSize <= 0 {
		// Contracted graphs must outlive a single query
		planner.cacheSize = len(graphModesAll)
	}
	if planner.cacheSize > 0 {
		planner.graphCache = gcache.New(planner.cacheSize).LRU().Build()
	}

	st := time.Now()
	planner.transitIndex = transit.NewIndex(cfg.TransitSystem)
	planner.sortedNodeIDs = make([]osm.NodeID, 0, cfg.StreetMap.NodeCount())
	for i := 0; i < cfg.StreetMap.NodeCount(); i++ {
		node, ok := cfg.StreetMap.NodeByIndex(i)
		if !ok {
			continue
		}
		planner.sortedNodeIDs = append(planner.sortedNodeIDs, node.ID)
	}
	sort.Slice(planner.sortedNodeIDs, func(i, j int) bool {
		return planner.sortedNodeIDs[i] < planner.sortedNodeIDs[j]
	})
	planner.prepareSegmentWays()
	planner.logger.Info("planner is ready",
		"nodes", len(planner.sortedNodeIDs),
		"ways", cfg.StreetMap.WayCount(),
		"stops", planner.transitIndex.StopCount(),
		"routes", planner.transitIndex.RouteCount(),
		"took", time.Since(st),
	)
	return planner, nil
}

// WithLogger sets structured logger
func WithLogger(logger *slog.Logger) func(*Planner) {
	return func(planner *Planner) {
		if logger != nil {
			planner.logger = logger
		}
	}
}

// WithMetrics enables prometheus metrics
func WithMetrics(metrics *Metrics) func(*Planner) {
	return func(planner *Planner) {
		planner.metrics = metrics
	}
}

// WithGraphCache keeps up to size built routing graphs (one per graph mode) between queries.
// When contraction is enabled the cache is always on and holds every graph mode unless size is given
func WithGraphCache(size int) func(*Planner) {
	return func(planner *Planner) {
		planner.cacheSize = size
	}
}

// prepareSegmentWays remembers way for every segment. Segment in listed direction takes precedence over
// reversed one; among ways sharing the same segment the first one wins
func (planner *Planner) prepareSegmentWays() {
	planner.segmentWays = make(map[nodePair]osm.WayID)
	reversed := make(map[nodePair]osm.WayID)
	for i := 0; i < planner.streetMap.WayCount(); i++ {
		way, ok := planner.streetMap.WayByIndex(i)
		if !ok {
			continue
		}
		for j := 1; j < len(way.NodeIDs); j++ {
			forward := nodePair{from: way.NodeIDs[j-1], to: way.NodeIDs[j]}
			if _, ok := planner.segmentWays[forward]; !ok {
				planner.segmentWays[forward] = way.ID
			}
			backward := nodePair{from: way.NodeIDs[j], to: way.NodeIDs[j-1]}
			if _, ok := reversed[backward]; !ok {
				reversed[backward] = way.ID
			}
		}
	}
	for pair, wayID := range reversed {
		if _, ok := planner.segmentWays[pair]; !ok {
			planner.segmentWays[pair] = wayID
		}
	}
}

// wayBetween returns way containing segment from -> to (or to -> from)
func (planner *Planner) wayBetween(from, to osm.NodeID) (*streetmap.Way, bool) {
	wayID, ok := planner.segmentWays[nodePair{from: from, to: to}]
	if !ok {
		return nil, false
	}
	return planner.streetMap.WayByID(wayID)
}

// NodeCount returns number of street nodes
func (planner *Planner) NodeCount() int {
	return len(planner.sortedNodeIDs)
}

// SortedNodeByIndex returns i-th node in ascending identifier order
func (planner *Planner) SortedNodeByIndex(i int) (*streetmap.Node, bool) {
	if i < 0 || i >= len(planner.sortedNodeIDs) {
		return nil, false
	}
	return planner.streetMap.NodeByID(planner.sortedNodeIDs[i])
}

// TransitIndex returns index over transit system
func (planner *Planner) TransitIndex() *transit.Index {
	return planner.transitIndex
}
