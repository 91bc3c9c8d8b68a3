package guest

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
)

// Span is an inclusive [Min, Max] range in seconds or world units
type Span struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// roll draws uniformly from the span in thousandths
func (s Span) roll(r dice.Roller) (float64, error) {
	if s.Max <= s.Min {
		return s.Min, nil
	}
	v, err := r.Roll(1000)
	if err != nil {
		return s.Min, err
	}
	return s.Min + (s.Max-s.Min)*float64(v-1)/999, nil
}

// Timings are the behaviour weights and durations of a guest
type Timings struct {
	// ArrivalDistance is how close counts as arrived
	ArrivalDistance float64 `yaml:"arrival_distance"`

	// WanderChance is the chance a new guest wanders instead of queueing
	WanderChance float64 `yaml:"wander_chance"`
	// NoCounterWanderChance applies when there is no counter at all
	NoCounterWanderChance float64 `yaml:"no_counter_wander_chance"`
	// FallbackWanderChance picks wander over leaving when the queue or rooms turn a guest away
	FallbackWanderChance float64 `yaml:"fallback_wander_chance"`

	WanderDuration Span    `yaml:"wander_duration"`
	WanderStep     Span    `yaml:"wander_step"`
	WanderRadius   float64 `yaml:"wander_radius"`

	StayDuration Span `yaml:"stay_duration"`
	// StayInsideChance is the chance the first stay step is inside the room
	StayInsideChance float64 `yaml:"stay_inside_chance"`
	InsideStep       Span    `yaml:"inside_step"`
	OutsideStep      Span    `yaml:"outside_step"`
	OutsideRadius    float64 `yaml:"outside_radius"`

	// QueueRetry is the wait before a guest holding a room tries the line again
	QueueRetry Span `yaml:"queue_retry"`
}

// DefaultTimings returns the stock guest behaviour
func DefaultTimings() Timings {
	return Timings{
		ArrivalDistance:       0.5,
		WanderChance:          0.4,
		NoCounterWanderChance: 0.5,
		FallbackWanderChance:  0.5,
		WanderDuration:        Span{Min: 15, Max: 30},
		WanderStep:            Span{Min: 3, Max: 7},
		WanderRadius:          10,
		StayDuration:          Span{Min: 25, Max: 35},
		StayInsideChance:      0.5,
		InsideStep:            Span{Min: 2, Max: 5},
		OutsideStep:           Span{Min: 3, Max: 7},
		OutsideRadius:         5,
		QueueRetry:            Span{Min: 1, Max: 3},
	}
}

// Validate checks every weight and range
func (t *Timings) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("ArrivalDistance", t.ArrivalDistance, vb)
	errors.ValidateProbability("WanderChance", t.WanderChance, vb)
	errors.ValidateProbability("NoCounterWanderChance", t.NoCounterWanderChance, vb)
	errors.ValidateProbability("FallbackWanderChance", t.FallbackWanderChance, vb)
	errors.ValidateProbability("StayInsideChance", t.StayInsideChance, vb)
	errors.ValidateSpan("WanderDuration", t.WanderDuration.Min, t.WanderDuration.Max, vb)
	errors.ValidateSpan("WanderStep", t.WanderStep.Min, t.WanderStep.Max, vb)
	errors.ValidateSpan("StayDuration", t.StayDuration.Min, t.StayDuration.Max, vb)
	errors.ValidateSpan("InsideStep", t.InsideStep.Min, t.InsideStep.Max, vb)
	errors.ValidateSpan("OutsideStep", t.OutsideStep.Min, t.OutsideStep.Max, vb)
	errors.ValidateSpan("QueueRetry", t.QueueRetry.Min, t.QueueRetry.Max, vb)
	errors.ValidateNonNegative("WanderRadius", t.WanderRadius, vb)
	errors.ValidateNonNegative("OutsideRadius", t.OutsideRadius, vb)

	return vb.Build()
}

// Snapshot is a read-only view of one active guest
type Snapshot struct {
	ID       string
	State    entities.AgentState
	RoomID   string
	InQueue  bool
	Position entities.Vec3
}

// SpawnOutput names the guest that entered
type SpawnOutput struct {
	AgentID string
}

// TickOutput summarizes one pass over the guests
type TickOutput struct {
	Spawned  []string
	Returned []string
	Active   int
}

// RoomCache is the room list from the latest rooms.updated event
type RoomCache struct {
	IDs  []string
	Free []string
}
