// Package pathrouter provides weighted directed graphs with single pair shortest path queries.
//
// Vertices are identified by VertexID handles minted sequentially starting from 1.
// Every vertex carries a caller supplied tag (e.g. an OSM node identifier) which
// can be read back with VertexTag.
package pathrouter

import (
	"math"
	"time"
)

// VertexID is a handle of vertex inside of a single router instance
type VertexID int64

// InvalidVertexID is never returned by AddVertex
const InvalidVertexID VertexID = 0

// NoPathExists is the distance reported when destination can not be reached from source
var NoPathExists = math.Inf(1)

// PathRouter is a weighted directed graph with shortest path queries.
// Implementations are not safe for concurrent mutation.
type PathRouter[T any] interface {
	// VertexCount returns number of vertices added so far
	VertexCount() int
	// AddVertex adds new vertex with given tag and returns its identifier
	AddVertex(tag T) VertexID
	// VertexTag returns tag of vertex. Second value is false for unknown vertices
	VertexTag(id VertexID) (T, bool)
	// AddEdge adds directed edge (or pair of edges when bidir is true).
	// Returns false when any of vertices is unknown or weight is negative.
	AddEdge(src, dest VertexID, weight float64, bidir bool) bool
	// Precompute prepares internal structures for faster queries. Must return no later than deadline.
	Precompute(deadline time.Time) bool
	// FindShortestPath returns total weight and vertices of the cheapest path.
	// NoPathExists and empty path are returned when there is no such path.
	FindShortestPath(src, dest VertexID) (float64, []VertexID)
}

// validWeight reports whether weight can be stored as edge cost
func validWeight(weight float64) bool {
	return weight >= 0 && !math.IsNaN(weight)
}
