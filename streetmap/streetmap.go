// Package streetmap holds street network (OSM nodes and ways) in memory
package streetmap

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node is a point of street network
type Node struct {
	ID   osm.NodeID
	Lat  float64
	Lon  float64
	Tags osm.Tags
}

// Location returns latitude and longitude
func (node *Node) Location() (float64, float64) {
	return node.Lat, node.Lon
}

// Point returns location as orb.Point (X == longitude, Y == latitude)
func (node *Node) Point() orb.Point {
	return orb.Point{node.Lon, node.Lat}
}

// HasAttribute reports whether node carries given tag
func (node *Node) HasAttribute(key string) bool {
	return hasTag(node.Tags, key)
}

// Attribute returns value of given tag or empty string
func (node *Node) Attribute(key string) string {
	return node.Tags.Find(key)
}

// String returns pretty printed value for Node
func (node *Node) String() string {
	return fmt.Sprintf("Node %d (Lon: %f | Lat: %f)", node.ID, node.Lon, node.Lat)
}

// Way is an ordered sequence of nodes. Every pair of consecutive nodes is a street segment
type Way struct {
	ID      osm.WayID
	NodeIDs []osm.NodeID
	Tags    osm.Tags
}

// NodeCount returns number of nodes in way
func (way *Way) NodeCount() int {
	return len(way.NodeIDs)
}

// NodeID returns identifier of i-th node of way
func (way *Way) NodeID(i int) (osm.NodeID, bool) {
	if i < 0 || i >= len(way.NodeIDs) {
		return 0, false
	}
	return way.NodeIDs[i], true
}

// HasAttribute reports whether way carries given tag
func (way *Way) HasAttribute(key string) bool {
	return hasTag(way.Tags, key)
}

// Attribute returns value of given tag or empty string
func (way *Way) Attribute(key string) string {
	return way.Tags.Find(key)
}

func hasTag(tags osm.Tags, key string) bool {
	for _, tag := range tags {
		if tag.Key == key {
			return true
		}
	}
	return false
}

// StreetMap is read-only access to nodes and ways
type StreetMap interface {
	NodeCount() int
	WayCount() int
	NodeByIndex(i int) (*Node, bool)
	NodeByID(id osm.NodeID) (*Node, bool)
	WayByIndex(i int) (*Way, bool)
	WayByID(id osm.WayID) (*Way, bool)
}
