// Package rooms derives guest rooms from the placed floor, wall and
// furniture records and hands them out to guests one at a time.
package rooms

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/grid"
	"github.com/KirkDiggler/innkeeper/internal/pkg/clock"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	"github.com/KirkDiggler/innkeeper/internal/repositories/catalog"
)

//go:generate mockgen -destination=mock/mock_registry.go -package=roomsmock github.com/KirkDiggler/innkeeper/internal/services/rooms Registry

// Defaults used when the corresponding Config field is zero
const (
	DefaultScanInterval    = 2.0
	DefaultFirstScanDelay  = 1.0
	DefaultPriceMultiplier = 1.0
	DefaultUsageLogSize    = 100
	DefaultRoomHeight      = 3.0
)

// Registry owns the current room list
type Registry interface {
	// Rescan rebuilds the room list from the occupancy grids
	Rescan(ctx context.Context) (*RescanOutput, error)

	// Tick advances the scan timer and rescans when it fires
	Tick(ctx context.Context, dt float64) error

	// TryAssign marks a random free room occupied by agentID
	TryAssign(agentID string) (entities.Room, bool)

	// Release frees a room without charging for it
	Release(roomID string) bool

	// CompleteStay frees a room and returns the charge for the stay
	CompleteStay(agentID, roomID string) (*entities.UsageRecord, error)

	Get(roomID string) (entities.Room, bool)
	Rooms() []entities.Room
	Available() []entities.Room
	InPriceRange(minPrice, maxPrice int) []entities.Room
	UsageLog() []entities.UsageRecord
}

// RescanOutput summarizes a scan
type RescanOutput struct {
	Rooms    []entities.Room
	Rejected int
}

// Config holds the dependencies and thresholds for the registry.
// Room thresholds are used as given; zero means no requirement.
type Config struct {
	Grids    *grid.Set
	Catalog  catalog.Repository
	Layout   engine.GridLayout
	Roller   dice.Roller
	Clock    clock.Clock
	EventBus events.EventBus

	MinWalls int
	MinDoors int
	MinBeds  int

	// ScanInterval and FirstScanDelay are in seconds of simulation time
	ScanInterval    float64
	FirstScanDelay  float64
	PriceMultiplier float64
	UsageLogSize    int
	RoomHeight      float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Grids == nil {
		vb.RequiredField("Grids")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Layout == nil {
		vb.RequiredField("Layout")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	errors.ValidateNonNegative("MinWalls", c.MinWalls, vb)
	errors.ValidateNonNegative("MinDoors", c.MinDoors, vb)
	errors.ValidateNonNegative("MinBeds", c.MinBeds, vb)
	errors.ValidateNonNegative("ScanInterval", c.ScanInterval, vb)
	errors.ValidateNonNegative("FirstScanDelay", c.FirstScanDelay, vb)
	errors.ValidateNonNegative("PriceMultiplier", c.PriceMultiplier, vb)
	errors.ValidateNonNegative("UsageLogSize", c.UsageLogSize, vb)
	errors.ValidateNonNegative("RoomHeight", c.RoomHeight, vb)

	return vb.Build()
}

type registry struct {
	grids   *grid.Set
	catalog catalog.Repository
	layout  engine.GridLayout
	roller  dice.Roller
	clock   clock.Clock
	bus     events.EventBus
	source  *notify.Source

	minWalls, minDoors, minBeds int

	scanInterval float64
	untilScan    float64
	multiplier   float64
	usageLogSize int
	roomHeight   float64

	mu       sync.Mutex
	rooms    []*entities.Room
	usageLog []entities.UsageRecord
}

// New creates a room registry with an empty room list
func New(cfg *Config) (Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &registry{
		grids:        cfg.Grids,
		catalog:      cfg.Catalog,
		layout:       cfg.Layout,
		roller:       cfg.Roller,
		clock:        c,
		bus:          cfg.EventBus,
		source:       notify.NewSource("rooms", "room_registry"),
		minWalls:     cfg.MinWalls,
		minDoors:     cfg.MinDoors,
		minBeds:      cfg.MinBeds,
		scanInterval: orDefault(cfg.ScanInterval, DefaultScanInterval),
		untilScan:    orDefault(cfg.FirstScanDelay, DefaultFirstScanDelay),
		multiplier:   orDefault(cfg.PriceMultiplier, DefaultPriceMultiplier),
		usageLogSize: int(orDefault(float64(cfg.UsageLogSize), DefaultUsageLogSize)),
		roomHeight:   orDefault(cfg.RoomHeight, DefaultRoomHeight),
	}, nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func (r *registry) Tick(ctx context.Context, dt float64) error {
	if dt <= 0 {
		return nil
	}
	r.untilScan -= dt
	if r.untilScan > 0 {
		return nil
	}
	r.untilScan = r.scanInterval

	_, err := r.Rescan(ctx)
	return err
}
