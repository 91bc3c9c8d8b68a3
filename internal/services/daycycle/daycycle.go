// Package daycycle runs the in-game clock and announces hour and phase
// changes on the event bus.
package daycycle

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
)

const (
	secondsPerDay  = 86400.0
	secondsPerHour = 3600.0

	// DefaultTimeMultiplier makes one real second one game minute
	DefaultTimeMultiplier = 60.0
)

// Phase is a part of the day
type Phase int

// Day phases
const (
	Morning Phase = iota
	Afternoon
	Evening
	Night
)

func (p Phase) String() string {
	switch p {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	case Night:
		return "night"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PhaseAt returns the phase of an hour: morning 06-12, afternoon 12-18,
// evening 18-22, night otherwise
func PhaseAt(hour int) Phase {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// Config sets the clock speed and start
type Config struct {
	EventBus       events.EventBus
	TimeMultiplier float64
	StartingHour   float64
}

// Validate checks the clock settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateNonNegative("TimeMultiplier", c.TimeMultiplier, vb)
	if c.StartingHour < 0 || c.StartingHour > 24 {
		vb.Fieldf("StartingHour", "must be between 0 and 24, got %g", c.StartingHour)
	}

	return vb.Build()
}

// Cycle is the game clock
type Cycle struct {
	bus        events.EventBus
	source     *notify.Source
	multiplier float64

	mu      sync.RWMutex
	seconds float64
	day     int
	hour    int
	minute  int
	phase   Phase
}

// New creates a clock at cfg.StartingHour on day one
func New(cfg *Config) (*Cycle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	mult := cfg.TimeMultiplier
	if mult == 0 {
		mult = DefaultTimeMultiplier
	}

	c := &Cycle{
		bus:        cfg.EventBus,
		source:     notify.NewSource("daycycle", "day_cycle"),
		multiplier: mult,
		seconds:    math.Mod(cfg.StartingHour*secondsPerHour, secondsPerDay),
		day:        1,
	}
	c.updateValues()

	return c, nil
}

// Tick advances the clock by dt real seconds and publishes any hour or
// phase change. Long ticks report only the final hour.
func (c *Cycle) Tick(ctx context.Context, dt float64) error {
	if dt <= 0 {
		return nil
	}

	c.mu.Lock()
	prevHour, prevPhase := c.hour, c.phase

	c.seconds += dt * c.multiplier
	for c.seconds >= secondsPerDay {
		c.seconds -= secondsPerDay
		c.day++
	}
	c.updateValues()
	hour, minute, phase, day := c.hour, c.minute, c.phase, c.day
	c.mu.Unlock()

	if hour != prevHour {
		err := notify.Publish(ctx, c.bus, notify.TopicHourChanged, c.source, notify.Data{
			"hour":   hour,
			"minute": minute,
			"day":    day,
		})
		if err != nil {
			return errors.Wrap(err, "failed to publish hour change")
		}
	}

	if phase != prevPhase {
		slog.Info("Day phase changed", "day", day, "phase", phase.String(), "hour", hour)
		err := notify.Publish(ctx, c.bus, notify.TopicPhaseChanged, c.source, notify.Data{
			"phase": phase.String(),
			"day":   day,
		})
		if err != nil {
			return errors.Wrap(err, "failed to publish phase change")
		}
	}

	return nil
}

func (c *Cycle) updateValues() {
	hours := c.seconds / secondsPerHour
	c.hour = int(math.Floor(hours)) % 24
	c.minute = int(math.Floor(math.Mod(hours*60, 60)))
	c.phase = PhaseAt(c.hour)
}

// Hour returns the current hour, 0-23
func (c *Cycle) Hour() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hour
}

// Phase returns the current phase of the day
func (c *Cycle) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// Day returns the day number, starting at 1
func (c *Cycle) Day() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.day
}

// String formats the time as HH:MM
func (c *Cycle) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}
