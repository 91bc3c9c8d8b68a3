// Package simulation wires every inn component together and drives them from
// a single tick. Optional features whose configuration is rejected are
// disabled with an error log; an invariant failure stops the simulation.
package simulation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/innkeeper/internal/config"
	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/grid"
	"github.com/KirkDiggler/innkeeper/internal/orchestrators/guest"
	"github.com/KirkDiggler/innkeeper/internal/orchestrators/placement"
	"github.com/KirkDiggler/innkeeper/internal/pkg/clock"
	"github.com/KirkDiggler/innkeeper/internal/pkg/idgen"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	"github.com/KirkDiggler/innkeeper/internal/repositories/catalog"
	"github.com/KirkDiggler/innkeeper/internal/repositories/wallet"
	"github.com/KirkDiggler/innkeeper/internal/services/areas"
	"github.com/KirkDiggler/innkeeper/internal/services/counter"
	"github.com/KirkDiggler/innkeeper/internal/services/daycycle"
	"github.com/KirkDiggler/innkeeper/internal/services/ledger"
	"github.com/KirkDiggler/innkeeper/internal/services/rooms"
	"github.com/KirkDiggler/innkeeper/internal/services/validator"
)

// Optional features that can be disabled by bad configuration
const (
	FeatureRooms    = "rooms"
	FeatureCounter  = "counter"
	FeatureLedger   = "ledger"
	FeatureGuests   = "guests"
	FeatureDayCycle = "day_cycle"
)

// Config holds the engine collaborators and shared stores
type Config struct {
	Tuning       *config.Config
	Catalog      catalog.Repository
	Wallet       wallet.Repository
	Instantiator engine.Instantiator
	Physics      engine.Physics
	Navigator    engine.Navigator
	Pointer      engine.Pointer
	Roller       dice.Roller
	IDs          idgen.Generator

	// Clock defaults to a manual clock at the Unix epoch
	Clock *clock.Manual
	// EventBus defaults to a fresh bus
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tuning == nil {
		vb.RequiredField("Tuning")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Wallet == nil {
		vb.RequiredField("Wallet")
	}
	if c.Instantiator == nil {
		vb.RequiredField("Instantiator")
	}
	if c.Physics == nil {
		vb.RequiredField("Physics")
	}
	if c.Navigator == nil {
		vb.RequiredField("Navigator")
	}
	if c.Pointer == nil {
		vb.RequiredField("Pointer")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDs == nil {
		vb.RequiredField("IDs")
	}

	return vb.Build()
}

// walkableSetter is implemented by navigators whose surface follows the owned land
type walkableSetter interface {
	SetWalkableAreas(areas []entities.AABB)
}

// Simulation owns the inn
type Simulation struct {
	tuning   *config.Config
	bus      events.EventBus
	clock    *clock.Manual
	wallet   wallet.Repository
	walletID string
	nav      engine.Navigator

	layout    *grid.Layout
	grids     *grid.Set
	areas     areas.Service
	validator validator.Validator
	placement placement.Service

	rooms    rooms.Registry
	queue    counter.Queue
	ledger   ledger.Ledger
	guests   guest.Service
	dayCycle *daycycle.Cycle

	mu       sync.Mutex
	elapsed  float64
	ticks    int
	halted   error
	disabled []string
}

// New builds the inn. Placement is required; every other feature is
// dropped with an error log when its configuration is invalid.
func New(cfg *Config) (*Simulation, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tuning")
	}

	t := cfg.Tuning
	s := &Simulation{
		tuning:   t,
		bus:      cfg.EventBus,
		clock:    cfg.Clock,
		wallet:   cfg.Wallet,
		walletID: t.Wallet.ID,
		nav:      cfg.Navigator,
		layout:   grid.NewLayout(t.Grid.Origin, t.Grid.CellSize, t.Grid.LevelHeight),
		grids:    grid.NewSet(),
	}
	if s.bus == nil {
		s.bus = events.NewBus()
	}
	if s.clock == nil {
		s.clock = clock.NewManual(time.Unix(0, 0).UTC())
	}

	var err error
	s.areas, err = areas.New(&areas.Config{
		Areas:    t.Areas.List,
		Wallet:   cfg.Wallet,
		EventBus: s.bus,
		MaxLevel: t.Areas.MaxLevel,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create areas")
	}

	s.validator, err = validator.New(&validator.Config{
		Grids:                 s.grids,
		Areas:                 s.areas,
		Layout:                s.layout,
		Instantiator:          cfg.Instantiator,
		Physics:               cfg.Physics,
		CollisionMargin:       t.Validator.CollisionMargin,
		OverlapDivisor:        t.Validator.OverlapDivisor,
		WallProbeOffset:       t.Validator.WallProbeOffset,
		WallProbeBaseFraction: t.Validator.WallProbeBaseFraction,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create validator")
	}

	s.placement, err = placement.NewOrchestrator(&placement.Config{
		Catalog:      cfg.Catalog,
		Validator:    s.validator,
		Grids:        s.grids,
		Layout:       s.layout,
		Instantiator: cfg.Instantiator,
		Pointer:      cfg.Pointer,
		EventBus:     s.bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create placement")
	}

	s.rooms, err = rooms.New(&rooms.Config{
		Grids:           s.grids,
		Catalog:         cfg.Catalog,
		Layout:          s.layout,
		Roller:          cfg.Roller,
		Clock:           s.clock,
		EventBus:        s.bus,
		MinWalls:        t.Rooms.MinWalls,
		MinDoors:        t.Rooms.MinDoors,
		MinBeds:         t.Rooms.MinBeds,
		ScanInterval:    t.Rooms.ScanInterval,
		FirstScanDelay:  t.Rooms.FirstScanDelay,
		PriceMultiplier: t.Rooms.PriceMultiplier,
		UsageLogSize:    t.Rooms.UsageLogSize,
		RoomHeight:      t.Rooms.RoomHeight,
	})
	s.disableOnError(FeatureRooms, err)

	if t.Counter.Enabled {
		s.queue, err = counter.New(&counter.Config{
			Origin:          t.Counter.Origin,
			Forward:         entities.NormalizeRotation(t.Counter.Forward),
			MaxLength:       t.Counter.MaxLength,
			ServiceTime:     t.Counter.ServiceTime,
			Spacing:         t.Counter.Spacing,
			ServiceDistance: t.Counter.ServiceDistance,
		})
		s.disableOnError(FeatureCounter, err)
	}

	s.ledger, err = ledger.New(&ledger.Config{
		Wallet:         cfg.Wallet,
		WalletID:       t.Wallet.ID,
		Clock:          s.clock,
		EventBus:       s.bus,
		PaymentLogSize: t.Wallet.PaymentLogSize,
	})
	s.disableOnError(FeatureLedger, err)

	if s.rooms == nil {
		s.disableOnError(FeatureGuests, errors.FailedPrecondition("guests need the room registry"))
	} else {
		gcfg := &guest.Config{
			Navigator:     cfg.Navigator,
			Rooms:         s.rooms,
			Queue:         s.queue,
			Ledger:        s.ledger,
			Roller:        cfg.Roller,
			IDs:           cfg.IDs,
			EventBus:      s.bus,
			SpawnPoint:    t.Guests.SpawnPoint,
			PoolSize:      t.Guests.PoolSize,
			SpawnInterval: t.Guests.SpawnInterval,
			Timings:       t.Guests.Timings,
		}
		s.guests, err = guest.NewSpawner(gcfg)
		s.disableOnError(FeatureGuests, err)
	}

	s.dayCycle, err = daycycle.New(&daycycle.Config{
		EventBus:       s.bus,
		TimeMultiplier: t.DayCycle.TimeMultiplier,
		StartingHour:   t.DayCycle.StartingHour,
	})
	s.disableOnError(FeatureDayCycle, err)

	s.syncWalkable()
	s.subscribe()

	slog.Info("Simulation ready",
		"areas", len(s.areas.Active()),
		"disabled", s.disabled,
	)
	return s, nil
}

func (s *Simulation) disableOnError(feature string, err error) {
	if err == nil {
		return
	}
	slog.Error("Feature disabled", "feature", feature, "error", err)
	s.disabled = append(s.disabled, feature)
}

// syncWalkable makes the navigable surface match the owned land
func (s *Simulation) syncWalkable() {
	ws, ok := s.nav.(walkableSetter)
	if !ok {
		return
	}
	active := s.areas.Active()
	boxes := make([]entities.AABB, 0, len(active))
	for _, a := range active {
		boxes = append(boxes, a.Bounds)
	}
	ws.SetWalkableAreas(boxes)
}

func (s *Simulation) subscribe() {
	notify.Subscribe(s.bus, notify.TopicAreaPurchased, func(_ context.Context, p notify.Payload) error {
		s.syncWalkable()
		slog.Info("Land purchased", "level", p.Int("level"), "floor", p.Int("floor"), "areas", p.Int("count"))
		return nil
	})
	notify.Subscribe(s.bus, notify.TopicPhaseChanged, func(_ context.Context, p notify.Payload) error {
		slog.Info("Day phase changed", "phase", p.String("phase"), "day", p.Int("day"))
		return nil
	})
	notify.Subscribe(s.bus, notify.TopicRoomsUpdated, func(_ context.Context, p notify.Payload) error {
		slog.Debug("Rooms updated", "count", p.Int("count"), "available", p.Int("available"))
		return nil
	})
}

// Tick advances every enabled feature by dt seconds of simulated time
func (s *Simulation) Tick(ctx context.Context, dt float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.halted != nil {
		return errors.Wrap(s.halted, "simulation halted")
	}
	if dt < 0 {
		return errors.InvalidArgumentf("negative tick %g", dt)
	}

	s.clock.Advance(clock.Seconds(dt))
	s.elapsed += dt
	s.ticks++

	if s.dayCycle != nil {
		if err := s.dayCycle.Tick(ctx, dt); err != nil {
			slog.Warn("Day cycle tick failed", "error", err)
		}
	}

	if stepper, ok := s.nav.(engine.Stepper); ok {
		stepper.Step(dt)
	}

	if s.rooms != nil {
		if err := s.rooms.Tick(ctx, dt); err != nil {
			if stop := s.check("rooms", err); stop != nil {
				return stop
			}
		}
	}

	if s.queue != nil {
		if err := s.queue.Tick(dt); err != nil {
			if stop := s.check("counter", err); stop != nil {
				return stop
			}
		}
	}

	if s.guests != nil {
		if _, err := s.guests.Tick(ctx, dt); err != nil {
			if stop := s.check("guests", err); stop != nil {
				return stop
			}
		}
	}

	return nil
}

// check halts on invariant failures and logs anything else
func (s *Simulation) check(component string, err error) error {
	if !errors.IsInvariant(err) {
		slog.Warn("Component tick failed", "component", component, "error", err)
		return nil
	}

	s.halted = err
	slog.Error("Simulation stopped on invariant failure",
		"component", component,
		"error", err,
		"meta", errors.GetMeta(err),
		"elapsed", s.elapsed,
	)
	return err
}

// RunOutput reports how far a run got
type RunOutput struct {
	Ticks   int
	Elapsed float64
}

// Run ticks at the tuned rate until seconds of simulated time have passed,
// the context is done, or an invariant fails
func (s *Simulation) Run(ctx context.Context, seconds float64) (*RunOutput, error) {
	dt := s.tuning.TickSeconds
	out := &RunOutput{}

	for out.Elapsed+dt/2 < seconds {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		if err := s.Tick(ctx, dt); err != nil {
			return out, err
		}
		out.Ticks++
		out.Elapsed += dt
	}
	return out, nil
}

// Status is a point-in-time summary of the inn
type Status struct {
	Elapsed        float64
	Ticks          int
	Time           string
	Phase          string
	Day            int
	AreaLevel      int
	Placed         int
	Rooms          int
	AvailableRooms int
	QueueLength    int
	ActiveGuests   int
	Balance        int64
	Disabled       []string
	Halted         bool
}

// Status reads every component
func (s *Simulation) Status(ctx context.Context) (*Status, error) {
	s.mu.Lock()
	out := &Status{
		Elapsed:   s.elapsed,
		Ticks:     s.ticks,
		AreaLevel: s.areas.Level(),
		Disabled:  append([]string(nil), s.disabled...),
		Halted:    s.halted != nil,
	}
	s.mu.Unlock()

	for _, occ := range s.grids.All() {
		out.Placed += occ.Len()
	}
	if s.dayCycle != nil {
		out.Time = s.dayCycle.String()
		out.Phase = s.dayCycle.Phase().String()
		out.Day = s.dayCycle.Day()
	}
	if s.rooms != nil {
		out.Rooms = len(s.rooms.Rooms())
		out.AvailableRooms = len(s.rooms.Available())
	}
	if s.queue != nil {
		out.QueueLength = s.queue.Len()
	}
	if s.guests != nil {
		out.ActiveGuests = s.guests.Active()
	}

	bal, err := s.wallet.Balance(ctx, wallet.BalanceInput{WalletID: s.walletID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read balance")
	}
	out.Balance = bal.Balance

	return out, nil
}

// Shutdown returns every guest so no room or queue slot stays held
func (s *Simulation) Shutdown(ctx context.Context) {
	if s.guests != nil {
		s.guests.ReturnAll(ctx)
	}
}

// Halted returns the invariant failure that stopped the simulation, if any
func (s *Simulation) Halted() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.halted
}

// Disabled lists the features switched off at startup
func (s *Simulation) Disabled() []string {
	return append([]string(nil), s.disabled...)
}

func (s *Simulation) Placement() placement.Service { return s.placement }
func (s *Simulation) Areas() areas.Service         { return s.areas }
func (s *Simulation) Grids() *grid.Set             { return s.grids }
func (s *Simulation) Layout() *grid.Layout         { return s.layout }
func (s *Simulation) Validator() validator.Validator {
	return s.validator
}

// Rooms is nil when room detection is disabled
func (s *Simulation) Rooms() rooms.Registry { return s.rooms }

// Queue is nil without a counter
func (s *Simulation) Queue() counter.Queue { return s.queue }

func (s *Simulation) Ledger() ledger.Ledger     { return s.ledger }
func (s *Simulation) Guests() guest.Service     { return s.guests }
func (s *Simulation) DayCycle() *daycycle.Cycle { return s.dayCycle }
func (s *Simulation) EventBus() events.EventBus { return s.bus }
func (s *Simulation) WalletID() string          { return s.walletID }
