package pathrouter

import (
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
)

// ContractionRouter is DijkstraRouter which can be accelerated with contraction hierarchies.
// Until Precompute succeeds queries are answered by Dijkstra's algorithm.
// Any mutation after Precompute drops prepared hierarchies.
type ContractionRouter[T any] struct {
	*DijkstraRouter[T]
	prepared *ch.Graph
}

// NewContractionRouter returns empty router
func NewContractionRouter[T any]() *ContractionRouter[T] {
	return &ContractionRouter[T]{
		DijkstraRouter: NewDijkstraRouter[T](),
	}
}

// AddVertex appends vertex with given tag
func (router *ContractionRouter[T]) AddVertex(tag T) VertexID {
	router.prepared = nil
	return router.DijkstraRouter.AddVertex(tag)
}

// AddEdge adds edge src -> dest (and dest -> src if bidir is set)
func (router *ContractionRouter[T]) AddEdge(src, dest VertexID, weight float64, bidir bool) bool {
	ok := router.DijkstraRouter.AddEdge(src, dest, weight, bidir)
	if ok {
		router.prepared = nil
	}
	return ok
}

// Prepared reports whether queries are served by contraction hierarchies
func (router *ContractionRouter[T]) Prepared() bool {
	return router.prepared != nil
}

// Precompute contracts snapshot of current graph in background.
// Returns false if contraction has not been finished before deadline: router keeps using Dijkstra's algorithm then.
// Contraction can't be interrupted: after deadline its goroutine still runs to the end and the result is discarded,
// so callers should prepare each graph once and reuse it.
func (router *ContractionRouter[T]) Precompute(deadline time.Time) bool {
	if router.prepared != nil {
		return true
	}
	if !time.Now().Before(deadline) {
		return false
	}
	graph, err := router.snapshot()
	if err != nil {
		return false
	}
	done := make(chan struct{})
	go func() {
		graph.PrepareContractionHierarchies()
		close(done)
	}()
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()
	select {
	case <-done:
		router.prepared = graph
		return true
	case <-timer.C:
		// Contraction keeps working on its own copy, result is just dropped
		return false
	}
}

// snapshot copies current vertices and edges into new contraction graph. Parallel edges are collapsed to the cheapest one
func (router *ContractionRouter[T]) snapshot() (*ch.Graph, error) {
	graph := &ch.Graph{}
	for i := range router.vertices {
		err := graph.CreateVertex(int64(i + 1))
		if err != nil {
			return nil, errors.Wrap(err, "Can not create vertex")
		}
	}
	for i := range router.vertices {
		source := VertexID(i + 1)
		cheapest := make(map[VertexID]float64)
		order := []VertexID{}
		for _, e := range router.vertices[i].outgoing {
			if e.to == source {
				continue
			}
			w, ok := cheapest[e.to]
			if !ok {
				order = append(order, e.to)
				cheapest[e.to] = e.weight
				continue
			}
			if e.weight < w {
				cheapest[e.to] = e.weight
			}
		}
		for _, target := range order {
			err := graph.AddEdge(int64(source), int64(target), cheapest[target])
			if err != nil {
				return nil, errors.Wrap(err, "Can not wrap Source and Target vertices as Edge")
			}
		}
	}
	return graph, nil
}

// FindShortestPath uses contraction hierarchies when prepared and Dijkstra's algorithm otherwise
func (router *ContractionRouter[T]) FindShortestPath(src, dest VertexID) (float64, []VertexID) {
	if router.prepared == nil {
		return router.DijkstraRouter.FindShortestPath(src, dest)
	}
	if !router.known(src) || !router.known(dest) {
		return NoPathExists, nil
	}
	if src == dest {
		return 0, []VertexID{src}
	}
	cost, labels := router.prepared.ShortestPath(int64(src), int64(dest))
	if cost < 0 || len(labels) == 0 {
		return NoPathExists, nil
	}
	path := make([]VertexID, len(labels))
	for i, label := range labels {
		path[i] = VertexID(label)
	}
	if path[0] != src || path[len(path)-1] != dest {
		return NoPathExists, nil
	}
	return cost, path
}
