package osmtrip

import (
	"fmt"

	"github.com/paulmach/osm"
)

// TransportationMode is the way traveller reaches a node
type TransportationMode uint16

const (
	Walk = TransportationMode(iota + 1)
	Bike
	Bus
	ModeUndefined = TransportationMode(0)
)

func (iotaIdx TransportationMode) String() string {
	if iotaIdx > Bus {
		return "undefined"
	}
	return [...]string{"undefined", "Walk", "Bike", "Bus"}[iotaIdx]
}

// TripStep is a node of itinerary together with mode used to arrive there from previous step
type TripStep struct {
	Mode   TransportationMode
	NodeID osm.NodeID
}

// String returns pretty printed value for TripStep
func (step TripStep) String() string {
	return fmt.Sprintf("%s %d", step.Mode, step.NodeID)
}

// GraphMode identifies kind of routing graph built by planner
type GraphMode uint16

const (
	GRAPH_DISTANCE = GraphMode(iota + 1)
	GRAPH_WALK_BUS
	GRAPH_BIKE
)

func (iotaIdx GraphMode) String() string {
	if iotaIdx < GRAPH_DISTANCE || iotaIdx > GRAPH_BIKE {
		return "undefined"
	}
	return [...]string{"distance", "walk_bus", "bike"}[iotaIdx-1]
}

var graphModesAll = []GraphMode{GRAPH_DISTANCE, GRAPH_WALK_BUS, GRAPH_BIKE}
