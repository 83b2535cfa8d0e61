package pathrouter

import (
	"container/heap"
	"time"
)

type arc struct {
	to     VertexID
	weight float64
}

type vertex[T any] struct {
	tag      T
	outgoing []arc
}

// DijkstraRouter answers queries with plain Dijkstra's algorithm.
// Vertices are kept in a single slice indexed by (id - 1).
type DijkstraRouter[T any] struct {
	vertices  []vertex[T]
	edgeCount int
}

// NewDijkstraRouter returns empty router
func NewDijkstraRouter[T any]() *DijkstraRouter[T] {
	return &DijkstraRouter[T]{}
}

// VertexCount returns number of vertices
func (router *DijkstraRouter[T]) VertexCount() int {
	return len(router.vertices)
}

// EdgeCount returns number of directed edges (bidirectional edge counts twice)
func (router *DijkstraRouter[T]) EdgeCount() int {
	return router.edgeCount
}

// AddVertex appends vertex with given tag
func (router *DijkstraRouter[T]) AddVertex(tag T) VertexID {
	router.vertices = append(router.vertices, vertex[T]{tag: tag})
	return VertexID(len(router.vertices))
}

// VertexTag returns tag for given vertex
func (router *DijkstraRouter[T]) VertexTag(id VertexID) (T, bool) {
	if !router.known(id) {
		var zero T
		return zero, false
	}
	return router.vertices[id-1].tag, true
}

// AddEdge adds edge src -> dest (and dest -> src if bidir is set). Parallel edges are allowed
func (router *DijkstraRouter[T]) AddEdge(src, dest VertexID, weight float64, bidir bool) bool {
	if !router.known(src) || !router.known(dest) || !validWeight(weight) {
		return false
	}
	router.vertices[src-1].outgoing = append(router.vertices[src-1].outgoing, arc{to: dest, weight: weight})
	router.edgeCount++
	if bidir {
		router.vertices[dest-1].outgoing = append(router.vertices[dest-1].outgoing, arc{to: src, weight: weight})
		router.edgeCount++
	}
	return true
}

// Precompute does nothing: Dijkstra's algorithm needs no preparation
func (router *DijkstraRouter[T]) Precompute(deadline time.Time) bool {
	return true
}

// FindShortestPath runs Dijkstra's algorithm from src and stops as soon as dest is settled
func (router *DijkstraRouter[T]) FindShortestPath(src, dest VertexID) (float64, []VertexID) {
	if !router.known(src) || !router.known(dest) {
		return NoPathExists, nil
	}
	if src == dest {
		return 0, []VertexID{src}
	}
	n := len(router.vertices)
	distances := make([]float64, n)
	for i := range distances {
		distances[i] = NoPathExists
	}
	parents := make([]VertexID, n)
	distances[src-1] = 0

	pq := &priorityQueue{}
	heap.Push(pq, queueItem{vertex: src, priority: 0})
	for pq.Len() > 0 {
		item := heap.Pop(pq).(queueItem)
		current := item.vertex
		if item.priority > distances[current-1] {
			// Outdated entry
			continue
		}
		if current == dest {
			break
		}
		for _, e := range router.vertices[current-1].outgoing {
			tentative := distances[current-1] + e.weight
			if tentative < distances[e.to-1] {
				distances[e.to-1] = tentative
				parents[e.to-1] = current
				heap.Push(pq, queueItem{vertex: e.to, priority: tentative})
			}
		}
	}
	if distances[dest-1] == NoPathExists {
		return NoPathExists, nil
	}
	path := reconstructPath(parents, src, dest)
	if path == nil {
		return NoPathExists, nil
	}
	return distances[dest-1], path
}

// reconstructPath walks parent pointers back from dest. Returns nil if the chain does not reach src
func reconstructPath(parents []VertexID, src, dest VertexID) []VertexID {
	path := []VertexID{}
	current := dest
	for current != InvalidVertexID {
		path = append(path, current)
		if current == src {
			break
		}
		current = parents[current-1]
		if len(path) > len(parents) {
			return nil
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if len(path) == 0 || path[0] != src || path[len(path)-1] != dest {
		return nil
	}
	return path
}

func (router *DijkstraRouter[T]) known(id VertexID) bool {
	return id >= 1 && int(id) <= len(router.vertices)
}
