package config

// MapConfig points to OSM extract
type MapConfig struct {
	File string `yaml:"file" validate:"required"`
}

// TransitConfig points to CSV tables of bus system
type TransitConfig struct {
	StopsFile  string `yaml:"stops" validate:"required"`
	RoutesFile string `yaml:"routes" validate:"required"`
}

// SpeedsConfig contains travel parameters. Speeds are in mph, bus stop time is in seconds.
// Zero speeds and absent bus stop time mean default values
type SpeedsConfig struct {
	Walk              float64  `yaml:"walk" validate:"gte=0"`
	Bike              float64  `yaml:"bike" validate:"gte=0"`
	DefaultSpeedLimit float64  `yaml:"default_speed_limit" validate:"gte=0"`
	BusStopTime       *float64 `yaml:"bus_stop_time" validate:"omitempty,gte=0"`
}

// PrecomputeConfig contains graph preparation parameters
type PrecomputeConfig struct {
	Contraction bool `yaml:"contraction"`
	TimeBudget  int  `yaml:"time_budget_seconds" validate:"gte=0"`
}

// CacheConfig contains routing graph cache parameters
type CacheConfig struct {
	Graphs int `yaml:"graphs" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Map        MapConfig        `yaml:"map" validate:"required"`
	Transit    TransitConfig    `yaml:"transit" validate:"required"`
	Speeds     SpeedsConfig     `yaml:"speeds"`
	Precompute PrecomputeConfig `yaml:"precompute"`
	Cache      CacheConfig      `yaml:"cache"`
	Verbose    bool             `yaml:"verbose"`
}
