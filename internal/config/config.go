// Package config loads the simulation tuning file. Every section has a
// default, so an empty or missing file yields a playable inn.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/orchestrators/guest"
)

// Config is the full tuning document
type Config struct {
	// Catalog is a path to an object catalog; empty uses the built-in one
	Catalog string `yaml:"catalog"`

	// TickSeconds is the simulated time per tick
	TickSeconds float64 `yaml:"tick_seconds"`

	Grid      Grid      `yaml:"grid"`
	Areas     Areas     `yaml:"areas"`
	Validator Validator `yaml:"validator"`
	Rooms     Rooms     `yaml:"rooms"`
	Counter   Counter   `yaml:"counter"`
	Guests    Guests    `yaml:"guests"`
	DayCycle  DayCycle  `yaml:"day_cycle"`
	Wallet    Wallet    `yaml:"wallet"`
}

// Grid is the cell layout
type Grid struct {
	Origin      entities.Vec3 `yaml:"origin"`
	CellSize    float64       `yaml:"cell_size"`
	LevelHeight float64       `yaml:"level_height"`
}

// Areas are the purchasable build volumes
type Areas struct {
	MaxLevel int                      `yaml:"max_level"`
	List     []entities.BuildableArea `yaml:"list"`
}

// Validator tunes the collision probes
type Validator struct {
	CollisionMargin       float64 `yaml:"collision_margin"`
	OverlapDivisor        float64 `yaml:"overlap_divisor"`
	WallProbeOffset       float64 `yaml:"wall_probe_offset"`
	WallProbeBaseFraction float64 `yaml:"wall_probe_base_fraction"`
}

// Rooms tunes room detection and pricing
type Rooms struct {
	MinWalls        int     `yaml:"min_walls"`
	MinDoors        int     `yaml:"min_doors"`
	MinBeds         int     `yaml:"min_beds"`
	ScanInterval    float64 `yaml:"scan_interval"`
	FirstScanDelay  float64 `yaml:"first_scan_delay"`
	PriceMultiplier float64 `yaml:"price_multiplier"`
	UsageLogSize    int     `yaml:"usage_log_size"`
	RoomHeight      float64 `yaml:"room_height"`
}

// Counter places the front desk and sets the line rules. Enabled false runs
// the inn without a counter.
type Counter struct {
	Enabled         bool          `yaml:"enabled"`
	Origin          entities.Vec3 `yaml:"origin"`
	Forward         int           `yaml:"forward"`
	MaxLength       int           `yaml:"max_length"`
	ServiceTime     float64       `yaml:"service_time"`
	Spacing         float64       `yaml:"spacing"`
	ServiceDistance float64       `yaml:"service_distance"`
}

// Guests tunes the spawner and guest behaviour
type Guests struct {
	SpawnPoint    entities.Vec3 `yaml:"spawn_point"`
	PoolSize      int           `yaml:"pool_size"`
	SpawnInterval float64       `yaml:"spawn_interval"`
	Speed         float64       `yaml:"speed"`
	Timings       guest.Timings `yaml:"timings"`
}

// DayCycle tunes the in-game clock
type DayCycle struct {
	TimeMultiplier float64 `yaml:"time_multiplier"`
	StartingHour   float64 `yaml:"starting_hour"`
}

// Wallet is where the inn's money lives
type Wallet struct {
	ID              string `yaml:"id"`
	StartingBalance int64  `yaml:"starting_balance"`
	PaymentLogSize  int    `yaml:"payment_log_size"`
}

// Default returns the stock tuning: a 20x20 plot sold in four quarters,
// one upper floor above the whole plot, and a counter whose full line fits
// inside the first quarter.
func Default() *Config {
	return &Config{
		TickSeconds: 0.1,
		Grid: Grid{
			CellSize:    1,
			LevelHeight: 3,
		},
		Areas: Areas{
			MaxLevel: 4,
			List: []entities.BuildableArea{
				quarter("ground_sw", 1, 0, 0, 0),
				quarter("ground_se", 2, 500, 10, 0),
				quarter("ground_nw", 3, 750, 0, 10),
				quarter("ground_ne", 4, 1000, 10, 10),
				{
					Name:   "upper_floor",
					Level:  5,
					Floor:  1,
					Price:  2000,
					Bounds: entities.AABB{Min: entities.Vec3{Y: 3}, Max: entities.Vec3{X: 20, Y: 6, Z: 20}},
				},
			},
		},
		Validator: Validator{
			CollisionMargin:       0.05,
			OverlapDivisor:        2.1,
			WallProbeOffset:       0.05,
			WallProbeBaseFraction: 0.2,
		},
		Rooms: Rooms{
			MinWalls:        4,
			MinDoors:        1,
			MinBeds:         1,
			ScanInterval:    2,
			FirstScanDelay:  1,
			PriceMultiplier: 1,
			UsageLogSize:    100,
			RoomHeight:      3,
		},
		Counter: Counter{
			Enabled:         true,
			Origin:          entities.Vec3{X: 1, Z: 1},
			Forward:         0,
			MaxLength:       10,
			ServiceTime:     5,
			Spacing:         0.8,
			ServiceDistance: 1,
		},
		Guests: Guests{
			SpawnPoint:    entities.Vec3{X: 5, Z: 0.5},
			PoolSize:      200,
			SpawnInterval: 2,
			Speed:         3.5,
			Timings:       guest.DefaultTimings(),
		},
		DayCycle: DayCycle{
			TimeMultiplier: 60,
			StartingHour:   8,
		},
		Wallet: Wallet{
			ID:              "inn",
			StartingBalance: 1000,
			PaymentLogSize:  100,
		},
	}
}

func quarter(name string, level, price int, x, z float64) entities.BuildableArea {
	return entities.BuildableArea{
		Name:  name,
		Level: level,
		Price: price,
		Bounds: entities.AABB{
			Min: entities.Vec3{X: x, Z: z},
			Max: entities.Vec3{X: x + 10, Y: 3, Z: z + 10},
		},
	}
}

// Validate checks the values the components do not default themselves
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("TickSeconds", c.TickSeconds, vb)
	errors.ValidatePositive("Grid.CellSize", c.Grid.CellSize, vb)
	errors.ValidatePositive("Grid.LevelHeight", c.Grid.LevelHeight, vb)
	if len(c.Areas.List) == 0 {
		vb.RequiredField("Areas.List")
	}
	errors.ValidateNonNegative("Rooms.MinWalls", c.Rooms.MinWalls, vb)
	errors.ValidateNonNegative("Rooms.MinDoors", c.Rooms.MinDoors, vb)
	errors.ValidateNonNegative("Rooms.MinBeds", c.Rooms.MinBeds, vb)
	errors.ValidateRange("Counter.Forward", c.Counter.Forward, -3, 3, vb)
	errors.ValidateNonNegative("Guests.Speed", c.Guests.Speed, vb)
	if err := c.Guests.Timings.Validate(); err != nil {
		vb.InvalidField("Guests.Timings", errors.GetMessage(err))
	}
	errors.ValidateRequired("Wallet.ID", c.Wallet.ID, vb)
	errors.ValidateNonNegative("Wallet.StartingBalance", c.Wallet.StartingBalance, vb)

	return vb.Build()
}

// Parse overlays a YAML document on the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.InvalidArgumentf("tuning: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tuning")
	}
	return cfg, nil
}

// Load reads a tuning file. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NotFoundf("tuning file %s: %v", path, err)
	}
	return Parse(raw)
}
