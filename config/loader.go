// Package config loads trip planner application settings from YAML file
package config

import (
	"os"
	"time"

	"github.com/LdDl/osmtrip"
	"github.com/LdDl/osmtrip/streetmap"
	"github.com/LdDl/osmtrip/transit"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const defaultTimeBudgetSecs = int(osmtrip.DefaultPrecomputeTimeBudget / time.Second)

// LoadAppConfig reads and validates configuration file
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read configuration file")
	}
	return ParseAppConfig(data)
}

// ParseAppConfig parses and validates YAML document. Zero speeds and absent bus stop time are replaced with defaults
func ParseAppConfig(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "Can't parse configuration")
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "Invalid configuration")
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns configuration with default travel parameters and given data files
func Default(osmFile, stopsFile, routesFile string) *AppConfig {
	cfg := &AppConfig{
		Map:     MapConfig{File: osmFile},
		Transit: TransitConfig{StopsFile: stopsFile, RoutesFile: routesFile},
	}
	cfg.applyDefaults()
	return cfg
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Speeds.Walk == 0 {
		cfg.Speeds.Walk = osmtrip.DefaultWalkSpeed
	}
	if cfg.Speeds.Bike == 0 {
		cfg.Speeds.Bike = osmtrip.DefaultBikeSpeed
	}
	if cfg.Speeds.DefaultSpeedLimit == 0 {
		cfg.Speeds.DefaultSpeedLimit = osmtrip.DefaultSpeedLimit
	}
	if cfg.Speeds.BusStopTime == nil {
		busStopTime := osmtrip.DefaultBusStopTime
		cfg.Speeds.BusStopTime = &busStopTime
	}
	if cfg.Precompute.TimeBudget == 0 {
		cfg.Precompute.TimeBudget = defaultTimeBudgetSecs
	}
}

// PrecomputeTimeBudget returns time budget as duration
func (cfg *AppConfig) PrecomputeTimeBudget() time.Duration {
	return time.Duration(cfg.Precompute.TimeBudget) * time.Second
}

// PlannerSettings converts application configuration into planner configuration for given street map and transit system
func (cfg *AppConfig) PlannerSettings(streetMap streetmap.StreetMap, sys transit.System) osmtrip.Configuration {
	plannerCfg := osmtrip.DefaultConfiguration(streetMap, sys)
	plannerCfg.WalkSpeed = cfg.Speeds.Walk
	plannerCfg.BikeSpeed = cfg.Speeds.Bike
	plannerCfg.DefaultSpeedLimit = cfg.Speeds.DefaultSpeedLimit
	if cfg.Speeds.BusStopTime != nil {
		plannerCfg.BusStopTime = *cfg.Speeds.BusStopTime
	}
	plannerCfg.PrecomputeTimeBudget = cfg.PrecomputeTimeBudget()
	plannerCfg.UseContraction = cfg.Precompute.Contraction
	return plannerCfg
}
