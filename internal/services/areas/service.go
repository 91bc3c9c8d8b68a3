// Package areas tracks which buildable areas the player owns. Placement is
// only legal inside an active area; more ground is bought level by level and
// the upper floor unlocks once every ground level is owned.
package areas

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	"github.com/KirkDiggler/innkeeper/internal/repositories/wallet"
)

const (
	// DefaultMaxLevel is the number of ground purchase levels
	DefaultMaxLevel = 4
	startLevel      = 1
)

// Service answers containment queries and sells land
type Service interface {
	// Contains reports whether p lies inside an active area on floor
	Contains(floor int, p entities.Vec3) bool

	// Active returns the active areas
	Active() []entities.BuildableArea

	// Level returns the current ground purchase level
	Level() int

	// UpperFloorUnlocked reports whether upper floor areas are active
	UpperFloorUnlocked() bool

	PurchaseNextArea(ctx context.Context, input *PurchaseNextAreaInput) (*PurchaseNextAreaOutput, error)
	PurchaseUpperFloor(ctx context.Context, input *PurchaseUpperFloorInput) (*PurchaseUpperFloorOutput, error)
}

// PurchaseNextAreaInput carries the wallet paying for the land
type PurchaseNextAreaInput struct {
	WalletID string
}

// PurchaseNextAreaOutput reports the new level and what it cost
type PurchaseNextAreaOutput struct {
	Level     int
	Activated []entities.BuildableArea
	Cost      int64
	Balance   int64
}

// PurchaseUpperFloorInput carries the wallet paying for the floor
type PurchaseUpperFloorInput struct {
	WalletID string
}

// PurchaseUpperFloorOutput reports what was unlocked
type PurchaseUpperFloorOutput struct {
	Activated []entities.BuildableArea
	Cost      int64
	Balance   int64
}

// Config holds the dependencies for the area service
type Config struct {
	Areas    []entities.BuildableArea
	Wallet   wallet.Repository
	EventBus events.EventBus
	MaxLevel int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Areas) == 0 {
		vb.RequiredField("Areas")
	}
	if c.Wallet == nil {
		vb.RequiredField("Wallet")
	}
	errors.ValidateNonNegative("MaxLevel", c.MaxLevel, vb)

	hasStart := false
	for i, a := range c.Areas {
		if a.Floor == 0 && a.Level == startLevel {
			hasStart = true
		}
		if a.Level < startLevel {
			vb.Fieldf("Areas", "area %d (%s) has level %d", i, a.Name, a.Level)
		}
		if a.Bounds.Max.X <= a.Bounds.Min.X || a.Bounds.Max.Z <= a.Bounds.Min.Z {
			vb.Fieldf("Areas", "area %d (%s) has empty bounds", i, a.Name)
		}
	}
	if len(c.Areas) > 0 && !hasStart {
		vb.Field("Areas", "no ground area at level 1")
	}

	return vb.Build()
}

type service struct {
	mu         sync.RWMutex
	areas      []entities.BuildableArea
	active     []bool
	level      int
	maxLevel   int
	upperFloor bool
	wallet     wallet.Repository
	bus        events.EventBus
	source     *notify.Source
}

// New creates the area service with level 1 ground areas active
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxLevel := cfg.MaxLevel
	if maxLevel == 0 {
		maxLevel = DefaultMaxLevel
	}

	s := &service{
		areas:    append([]entities.BuildableArea(nil), cfg.Areas...),
		active:   make([]bool, len(cfg.Areas)),
		level:    startLevel,
		maxLevel: maxLevel,
		wallet:   cfg.Wallet,
		bus:      cfg.EventBus,
		source:   notify.NewSource("areas", "area_service"),
	}
	s.activate(func(a entities.BuildableArea) bool { return a.Floor == 0 && a.Level == startLevel })

	return s, nil
}

// activate marks matching areas active and returns them. Caller holds the write lock or owns s.
func (s *service) activate(match func(entities.BuildableArea) bool) []entities.BuildableArea {
	var out []entities.BuildableArea
	for i, a := range s.areas {
		if !s.active[i] && match(a) {
			s.active[i] = true
			out = append(out, a)
		}
	}
	return out
}

func (s *service) Contains(floor int, p entities.Vec3) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, a := range s.areas {
		if s.active[i] && a.Floor == floor && a.Bounds.ContainsXZ(p) {
			return true
		}
	}
	return false
}

func (s *service) Active() []entities.BuildableArea {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entities.BuildableArea
	for i, a := range s.areas {
		if s.active[i] {
			out = append(out, a)
		}
	}
	return out
}

func (s *service) Level() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level
}

func (s *service) UpperFloorUnlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.upperFloor
}

func (s *service) PurchaseNextArea(ctx context.Context, input *PurchaseNextAreaInput) (*PurchaseNextAreaOutput, error) {
	if input == nil || input.WalletID == "" {
		return nil, errors.InvalidArgument("wallet ID is required")
	}

	s.mu.Lock()
	if s.level >= s.maxLevel {
		s.mu.Unlock()
		return nil, errors.FailedPreconditionf("all %d ground levels already purchased", s.maxLevel)
	}

	next := s.level + 1
	var cost int64
	for i, a := range s.areas {
		if !s.active[i] && a.Floor == 0 && a.Level == next {
			cost += int64(a.Price)
		}
	}

	debit, err := s.wallet.Debit(ctx, wallet.DebitInput{WalletID: input.WalletID, Amount: cost})
	if err != nil {
		s.mu.Unlock()
		return nil, errors.Wrapf(err, "failed to pay for level %d", next)
	}

	s.level = next
	activated := s.activate(func(a entities.BuildableArea) bool { return a.Floor == 0 && a.Level == next })
	// subscribers run synchronously and read back through Active
	s.mu.Unlock()

	slog.Info("Purchased buildable area",
		"level", next,
		"areas", len(activated),
		"cost", cost,
		"balance", debit.Balance,
	)
	s.publish(ctx, next, 0, len(activated))

	return &PurchaseNextAreaOutput{
		Level:     next,
		Activated: activated,
		Cost:      cost,
		Balance:   debit.Balance,
	}, nil
}

func (s *service) PurchaseUpperFloor(ctx context.Context, input *PurchaseUpperFloorInput) (*PurchaseUpperFloorOutput, error) {
	if input == nil || input.WalletID == "" {
		return nil, errors.InvalidArgument("wallet ID is required")
	}

	s.mu.Lock()
	if s.upperFloor {
		s.mu.Unlock()
		return nil, errors.AlreadyExists("upper floor already unlocked")
	}
	if s.level < s.maxLevel {
		level := s.level
		s.mu.Unlock()
		return nil, errors.FailedPreconditionf("upper floor needs all ground levels, have %d of %d", level, s.maxLevel)
	}

	var cost int64
	for i, a := range s.areas {
		if !s.active[i] && a.Floor > 0 {
			cost += int64(a.Price)
		}
	}

	debit, err := s.wallet.Debit(ctx, wallet.DebitInput{WalletID: input.WalletID, Amount: cost})
	if err != nil {
		s.mu.Unlock()
		return nil, errors.Wrap(err, "failed to pay for upper floor")
	}

	s.upperFloor = true
	level := s.level
	activated := s.activate(func(a entities.BuildableArea) bool { return a.Floor > 0 })
	s.mu.Unlock()

	slog.Info("Unlocked upper floor", "areas", len(activated), "cost", cost, "balance", debit.Balance)
	s.publish(ctx, level, 1, len(activated))

	return &PurchaseUpperFloorOutput{
		Activated: activated,
		Cost:      cost,
		Balance:   debit.Balance,
	}, nil
}

func (s *service) publish(ctx context.Context, level, floor, count int) {
	err := notify.Publish(ctx, s.bus, notify.TopicAreaPurchased, s.source, notify.Data{
		"level": level,
		"floor": floor,
		"count": count,
	})
	if err != nil {
		slog.Warn("Failed to publish area purchase", "error", err)
	}
}
