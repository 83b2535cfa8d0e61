package osmtrip

import "errors"

var (
	// ErrEmptyPath is returned when itinerary has no steps
	ErrEmptyPath = errors.New("path is empty")
	// ErrMissingWay is returned when consecutive nodes of itinerary are not connected by any way
	ErrMissingWay = errors.New("no way between nodes")
	// ErrUnknownNode is returned when itinerary references node missing in street map
	ErrUnknownNode = errors.New("node not found")
	// ErrNoBusRoute is returned when itinerary has bus step between nodes not served by any route
	ErrNoBusRoute = errors.New("no bus route between nodes")
)
