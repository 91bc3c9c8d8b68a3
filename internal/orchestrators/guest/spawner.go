// Package guest runs the inn's visitors: a fixed pool of agents that wander,
// queue at the counter for a room, stay, come back to pay and leave.
package guest

//go:generate mockgen -destination=mock/mock_service.go -package=guestmock github.com/KirkDiggler/innkeeper/internal/orchestrators/guest Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/pkg/idgen"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	"github.com/KirkDiggler/innkeeper/internal/services/counter"
	"github.com/KirkDiggler/innkeeper/internal/services/ledger"
	"github.com/KirkDiggler/innkeeper/internal/services/rooms"
)

// Defaults used when the corresponding Config field is zero
const (
	DefaultPoolSize      = 200
	DefaultSpawnInterval = 2.0
)

// Service spawns guests and advances them on the simulation tick
type Service interface {
	// Tick runs the spawn timer and advances every active guest by dt
	// seconds. Only invariant failures are returned; any other guest error
	// is logged and that guest is sent back to the pool.
	Tick(ctx context.Context, dt float64) (*TickOutput, error)

	// Spawn takes a guest from the pool now. RESOURCE_EXHAUSTED when the pool is empty.
	Spawn(ctx context.Context) (*SpawnOutput, error)

	// Despawn removes one guest, releasing its room and its place in line
	Despawn(ctx context.Context, agentID string) bool

	// ReturnAll sends every active guest back to the pool
	ReturnAll(ctx context.Context) int

	Agents() []Snapshot
	Active() int
	Pooled() int

	// KnownRooms returns the guests' copy of the room list
	KnownRooms() RoomCache
}

// Config holds the dependencies for the spawner. Queue and Ledger are
// optional: without a counter guests only wander, without a ledger stays are
// free.
type Config struct {
	Navigator engine.Navigator
	Rooms     rooms.Registry
	Queue     counter.Queue
	Ledger    ledger.Ledger
	Roller    dice.Roller
	IDs       idgen.Generator
	EventBus  events.EventBus

	SpawnPoint    entities.Vec3
	PoolSize      int
	SpawnInterval float64
	Timings       Timings
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Navigator == nil {
		vb.RequiredField("Navigator")
	}
	if c.Rooms == nil {
		vb.RequiredField("Rooms")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDs == nil {
		vb.RequiredField("IDs")
	}
	errors.ValidateNonNegative("PoolSize", c.PoolSize, vb)
	errors.ValidateNonNegative("SpawnInterval", c.SpawnInterval, vb)
	if err := c.Timings.Validate(); err != nil {
		vb.InvalidField("Timings", errors.GetMessage(err))
	}

	return vb.Build()
}

type spawner struct {
	w        *world
	ids      idgen.Generator
	interval float64

	mu     sync.Mutex
	pool   []*agent
	active []*agent
	timer  float64

	cacheMu sync.Mutex
	cache   RoomCache
}

// NewSpawner creates the guest pool. A zero Timings uses DefaultTimings.
func NewSpawner(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if cfg.Timings == (Timings{}) {
		cfg.Timings = DefaultTimings()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	poolSize := cfg.PoolSize
	if poolSize == 0 {
		poolSize = DefaultPoolSize
	}
	interval := cfg.SpawnInterval
	if interval == 0 {
		interval = DefaultSpawnInterval
	}

	s := &spawner{
		w: &world{
			nav:     cfg.Navigator,
			queue:   cfg.Queue,
			rooms:   cfg.Rooms,
			ledger:  cfg.Ledger,
			roller:  cfg.Roller,
			timings: cfg.Timings,
			spawn:   cfg.SpawnPoint,
		},
		ids:      cfg.IDs,
		interval: interval,
		timer:    interval,
		pool:     make([]*agent, 0, poolSize),
	}
	for i := 0; i < poolSize; i++ {
		s.pool = append(s.pool, &agent{w: s.w, state: entities.AgentDespawned})
	}

	if cfg.EventBus != nil {
		notify.Subscribe(cfg.EventBus, notify.TopicRoomsUpdated, func(_ context.Context, p notify.Payload) error {
			cache := RoomCache{IDs: p.Strings("rooms"), Free: p.Strings("free")}
			s.cacheMu.Lock()
			s.cache = cache
			s.cacheMu.Unlock()
			slog.Debug("Guest room cache refreshed", "rooms", len(cache.IDs), "available", len(cache.Free))
			return nil
		})
	}

	return s, nil
}

func (s *spawner) Tick(ctx context.Context, dt float64) (*TickOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &TickOutput{}

	s.timer -= dt
	if s.timer <= 0 {
		s.timer += s.interval
		if s.timer <= 0 {
			s.timer = s.interval
		}
		if len(s.pool) > 0 {
			id, err := s.spawnLocked()
			if err != nil {
				slog.Error("Failed to spawn guest", "error", err)
			} else {
				out.Spawned = append(out.Spawned, id)
			}
		}
	}

	kept := make([]*agent, 0, len(s.active))
	for i, a := range s.active {
		if err := a.tick(ctx, dt); err != nil {
			if errors.IsInvariant(err) {
				// guests already returned this pass stay in the pool only
				s.active = append(kept, s.active[i:]...)
				return nil, err
			}
			slog.Error("Guest failed, returning to pool", "agent_id", a.id, "error", err)
			a.despawn()
		}

		if a.state == entities.AgentDespawned {
			out.Returned = append(out.Returned, a.id)
			s.pool = append(s.pool, a)
			continue
		}
		kept = append(kept, a)
	}
	s.active = kept

	out.Active = len(s.active)
	return out, nil
}

func (s *spawner) Spawn(_ context.Context) (*SpawnOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pool) == 0 {
		return nil, errors.ResourceExhaustedf("guest pool of %d is empty", len(s.active))
	}
	id, err := s.spawnLocked()
	if err != nil {
		return nil, err
	}
	return &SpawnOutput{AgentID: id}, nil
}

func (s *spawner) spawnLocked() (string, error) {
	a := s.pool[0]
	s.pool = s.pool[1:]

	id := s.ids.Generate()
	if err := a.enter(id); err != nil {
		a.state = entities.AgentDespawned
		s.pool = append(s.pool, a)
		return "", err
	}
	s.active = append(s.active, a)

	slog.Info("Guest arrived", "agent_id", id, "state", a.state.String(), "active", len(s.active))
	return id, nil
}

func (s *spawner) Despawn(_ context.Context, agentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.active {
		if a.id != agentID {
			continue
		}
		a.despawn()
		s.active = append(s.active[:i], s.active[i+1:]...)
		s.pool = append(s.pool, a)
		return true
	}

	slog.Warn("Despawn of unknown guest", "agent_id", agentID)
	return false
}

func (s *spawner) ReturnAll(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.active)
	for _, a := range s.active {
		a.despawn()
		s.pool = append(s.pool, a)
	}
	s.active = nil

	if n > 0 {
		slog.Info("All guests returned", "count", n)
	}
	return n
}

func (s *spawner) Agents() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Snapshot, 0, len(s.active))
	for _, a := range s.active {
		out = append(out, a.snapshot())
	}
	return out
}

func (s *spawner) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

func (s *spawner) Pooled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pool)
}

func (s *spawner) KnownRooms() RoomCache {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return RoomCache{
		IDs:  append([]string(nil), s.cache.IDs...),
		Free: append([]string(nil), s.cache.Free...),
	}
}
