package streetmap

import (
	"github.com/paulmach/osm"
)

// Map is in-memory StreetMap. Nodes and ways are kept in load order
type Map struct {
	nodes    []*Node
	ways     []*Way
	nodesIdx map[osm.NodeID]int
	waysIdx  map[osm.WayID]int
}

// NewMap returns map with given nodes and ways. Later duplicates replace earlier ones
func NewMap(nodes []*Node, ways []*Way) *Map {
	m := &Map{
		nodes:    make([]*Node, 0, len(nodes)),
		ways:     make([]*Way, 0, len(ways)),
		nodesIdx: make(map[osm.NodeID]int, len(nodes)),
		waysIdx:  make(map[osm.WayID]int, len(ways)),
	}
	for _, node := range nodes {
		m.addNode(node)
	}
	for _, way := range ways {
		m.addWay(way)
	}
	return m
}

func (m *Map) addNode(node *Node) {
	if idx, ok := m.nodesIdx[node.ID]; ok {
		m.nodes[idx] = node
		return
	}
	m.nodesIdx[node.ID] = len(m.nodes)
	m.nodes = append(m.nodes, node)
}

func (m *Map) addWay(way *Way) {
	if idx, ok := m.waysIdx[way.ID]; ok {
		m.ways[idx] = way
		return
	}
	m.waysIdx[way.ID] = len(m.ways)
	m.ways = append(m.ways, way)
}

// NodeCount returns number of nodes
func (m *Map) NodeCount() int {
	return len(m.nodes)
}

// WayCount returns number of ways
func (m *Map) WayCount() int {
	return len(m.ways)
}

// NodeByIndex returns i-th node
func (m *Map) NodeByIndex(i int) (*Node, bool) {
	if i < 0 || i >= len(m.nodes) {
		return nil, false
	}
	return m.nodes[i], true
}

// NodeByID returns node with given identifier
func (m *Map) NodeByID(id osm.NodeID) (*Node, bool) {
	idx, ok := m.nodesIdx[id]
	if !ok {
		return nil, false
	}
	return m.nodes[idx], true
}

// WayByIndex returns i-th way
func (m *Map) WayByIndex(i int) (*Way, bool) {
	if i < 0 || i >= len(m.ways) {
		return nil, false
	}
	return m.ways[i], true
}

// WayByID returns way with given identifier
func (m *Map) WayByID(id osm.WayID) (*Way, bool) {
	idx, ok := m.waysIdx[id]
	if !ok {
		return nil, false
	}
	return m.ways[idx], true
}
