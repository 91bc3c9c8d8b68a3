// Package counter is the front desk: a bounded FIFO of guests with a single
// server. Only the head of the line may be served and at most one guest is
// served at a time.
package counter

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
)

//go:generate mockgen -destination=mock/mock_queue.go -package=countermock github.com/KirkDiggler/innkeeper/internal/services/counter Queue

// Defaults used when the corresponding Config field is zero
const (
	DefaultMaxLength       = 10
	DefaultServiceTime     = 5.0
	DefaultSpacing         = 2.0
	DefaultServiceDistance = 2.0
)

// Queue coordinates guests at the counter
type Queue interface {
	// TryJoin appends agentID, failing when the line is full or it is already queued
	TryJoin(agentID string) bool

	// Leave removes agentID from any position and frees the server if it was being served
	Leave(agentID string)

	// CanReceiveService is true for the head of the line while the server is free
	CanReceiveService(agentID string) bool

	// StartService occupies the server for ServiceTime seconds
	StartService(agentID string) bool

	// Tick advances the service timer. Completed guests leave the line and
	// are reported through TakeCompleted.
	Tick(dt float64) error

	// TakeCompleted reports and clears a finished service for agentID
	TakeCompleted(agentID string) bool

	// Position is where agentID should stand
	Position(agentID string) (entities.Vec3, bool)

	ServicePosition() entities.Vec3
	Contains(agentID string) bool
	Serving() (string, bool)
	Len() int
}

// Config places the counter in the world and sets the line rules
type Config struct {
	// Origin is the counter position; the line extends along Forward
	Origin          entities.Vec3
	Forward         entities.Rotation
	MaxLength       int
	ServiceTime     float64
	Spacing         float64
	ServiceDistance float64
}

// Validate checks the line rules
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateNonNegative("MaxLength", c.MaxLength, vb)
	errors.ValidateNonNegative("ServiceTime", c.ServiceTime, vb)
	errors.ValidateNonNegative("Spacing", c.Spacing, vb)
	errors.ValidateNonNegative("ServiceDistance", c.ServiceDistance, vb)

	return vb.Build()
}

type queue struct {
	origin      entities.Vec3
	forward     entities.Vec3
	maxLength   int
	serviceTime float64
	spacing     float64
	distance    float64

	mu        sync.Mutex
	line      []string
	positions map[string]entities.Vec3
	serving   string
	remaining float64
	completed map[string]bool
}

// New creates an empty counter queue
func New(cfg *Config) (Queue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	q := &queue{
		origin:      cfg.Origin,
		forward:     entities.NormalizeRotation(int(cfg.Forward)).Forward(),
		maxLength:   cfg.MaxLength,
		serviceTime: cfg.ServiceTime,
		spacing:     cfg.Spacing,
		distance:    cfg.ServiceDistance,
		positions:   make(map[string]entities.Vec3),
		completed:   make(map[string]bool),
	}
	if q.maxLength == 0 {
		q.maxLength = DefaultMaxLength
	}
	if q.serviceTime == 0 {
		q.serviceTime = DefaultServiceTime
	}
	if q.spacing == 0 {
		q.spacing = DefaultSpacing
	}
	if q.distance == 0 {
		q.distance = DefaultServiceDistance
	}

	return q, nil
}

func (q *queue) TryJoin(agentID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.line) >= q.maxLength || slices.Contains(q.line, agentID) {
		return false
	}
	q.line = append(q.line, agentID)
	q.updatePositions()
	return true
}

func (q *queue) Leave(agentID string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.serving == agentID {
		q.serving = ""
		q.remaining = 0
	}
	delete(q.completed, agentID)

	idx := slices.Index(q.line, agentID)
	if idx < 0 {
		return
	}
	q.line = slices.Delete(q.line, idx, idx+1)
	q.updatePositions()
}

func (q *queue) CanReceiveService(agentID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.canServe(agentID)
}

func (q *queue) canServe(agentID string) bool {
	return len(q.line) > 0 && q.line[0] == agentID && q.serving == ""
}

func (q *queue) StartService(agentID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.canServe(agentID) {
		return false
	}
	q.serving = agentID
	q.remaining = q.serviceTime
	q.updatePositions()

	slog.Debug("Service started", "agent_id", agentID)
	return true
}

func (q *queue) Tick(dt float64) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.serving == "" || dt <= 0 {
		return nil
	}
	q.remaining -= dt
	if q.remaining > 0 {
		return nil
	}

	served := q.serving
	if len(q.line) == 0 || q.line[0] != served {
		head := ""
		if len(q.line) > 0 {
			head = q.line[0]
		}
		return errors.Invariantf("counter served %s but the head of the line is %q", served, head).
			WithMeta("agent_id", served)
	}

	q.line = q.line[1:]
	q.serving = ""
	q.remaining = 0
	q.completed[served] = true
	q.updatePositions()

	slog.Debug("Service completed", "agent_id", served)
	return nil
}

func (q *queue) TakeCompleted(agentID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.completed[agentID] {
		return false
	}
	delete(q.completed, agentID)
	return true
}

func (q *queue) Position(agentID string) (entities.Vec3, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	pos, ok := q.positions[agentID]
	return pos, ok
}

// ServicePosition is where the guest being served stands
func (q *queue) ServicePosition() entities.Vec3 {
	return q.origin.Add(q.forward.Scale(q.distance))
}

func (q *queue) Contains(agentID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Contains(q.line, agentID)
}

func (q *queue) Serving() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.serving, q.serving != ""
}

func (q *queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.line)
}

// updatePositions recomputes standing spots. Caller holds the lock.
func (q *queue) updatePositions() {
	clear(q.positions)
	for i, id := range q.line {
		if id == q.serving {
			q.positions[id] = q.ServicePosition()
			continue
		}
		q.positions[id] = q.origin.Add(q.forward.Scale(q.distance + float64(i)*q.spacing))
	}
}
