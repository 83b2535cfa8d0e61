package osmtrip

import (
	"fmt"
	"time"

	"github.com/LdDl/osmtrip/streetmap"
	"github.com/LdDl/osmtrip/transit"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultWalkSpeed            = 3.0  // mph
	DefaultBikeSpeed            = 8.0  // mph
	DefaultSpeedLimit           = 25.0 // mph
	DefaultBusStopTime          = 30.0 // seconds
	DefaultPrecomputeTimeBudget = 30 * time.Second
)

// Configuration is everything planner needs: street network, transit system and travel parameters
type Configuration struct {
	StreetMap            streetmap.StreetMap `validate:"required"`
	TransitSystem        transit.System      `validate:"required"`
	WalkSpeed            float64             `validate:"gt=0"`  // mph
	BikeSpeed            float64             `validate:"gt=0"`  // mph
	DefaultSpeedLimit    float64             `validate:"gt=0"`  // mph
	BusStopTime          float64             `validate:"gte=0"` // seconds
	PrecomputeTimeBudget time.Duration       `validate:"gte=0"`
	// Prepare contraction hierarchies for every built graph. Built graphs are cached then
	UseContraction bool
}

// DefaultConfiguration returns configuration with default travel parameters for given map and transit system
func DefaultConfiguration(streetMap streetmap.StreetMap, transitSystem transit.System) Configuration {
	return Configuration{
		StreetMap:            streetMap,
		TransitSystem:        transitSystem,
		WalkSpeed:            DefaultWalkSpeed,
		BikeSpeed:            DefaultBikeSpeed,
		DefaultSpeedLimit:    DefaultSpeedLimit,
		BusStopTime:          DefaultBusStopTime,
		PrecomputeTimeBudget: DefaultPrecomputeTimeBudget,
	}
}

// Validate checks travel parameters
func (cfg Configuration) Validate() error {
	return validator.New().Struct(cfg)
}

func (cfg Configuration) String() string {
	return fmt.Sprintf(`
Planner parameters:
	walk_speed: %f mph
	bike_speed: %f mph
	default_speed_limit: %f mph
	bus_stop_time: %f s
	precompute_time_budget: %v
	contraction enabled?: %t
	`,
		cfg.WalkSpeed,
		cfg.BikeSpeed,
		cfg.DefaultSpeedLimit,
		cfg.BusStopTime,
		cfg.PrecomputeTimeBudget,
		cfg.UseContraction,
	)
}
