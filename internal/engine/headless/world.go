// Package headless is an in-process engine: an instance list with box
// colliders, slab ray casts, straight-line navigation and a scripted pointer.
// It backs the CLI and the package tests.
package headless

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
)

const (
	defaultAgentSpeed = 3.5
	sampleAttempts    = 8
)

// Config holds the dependencies for the headless world
type Config struct {
	Shapes        map[string]Shape
	WalkableAreas []entities.AABB
	AgentSpeed    float64
	Roller        dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	errors.ValidateNonNegative("AgentSpeed", c.AgentSpeed, vb)

	return vb.Build()
}

type instance struct {
	spec  engine.InstanceSpec
	shape Shape
}

type navAgent struct {
	pos  entities.Vec3
	dest entities.Vec3
}

// World implements engine.Instantiator, engine.Physics, engine.Navigator and engine.Stepper
type World struct {
	mu        sync.RWMutex
	shapes    map[string]Shape
	instances []*instance
	walkable  []entities.AABB
	agents    map[string]*navAgent
	speed     float64
	roller    dice.Roller
}

var (
	_ engine.Instantiator = (*World)(nil)
	_ engine.Physics      = (*World)(nil)
	_ engine.Navigator    = (*World)(nil)
	_ engine.Stepper      = (*World)(nil)
)

// NewWorld creates an empty world
func NewWorld(cfg *Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	speed := cfg.AgentSpeed
	if speed == 0 {
		speed = defaultAgentSpeed
	}
	shapes := make(map[string]Shape, len(cfg.Shapes))
	for k, v := range cfg.Shapes {
		shapes[k] = v
	}

	return &World{
		shapes:   shapes,
		walkable: append([]entities.AABB(nil), cfg.WalkableAreas...),
		agents:   make(map[string]*navAgent),
		speed:    speed,
		roller:   cfg.Roller,
	}, nil
}

// SetWalkableAreas replaces the navigable surface, e.g. after an area purchase
func (w *World) SetWalkableAreas(areas []entities.AABB) {
	w.mu.Lock()
	w.walkable = append([]entities.AABB(nil), areas...)
	w.mu.Unlock()
}

// Instantiate appends a new instance and returns its index
func (w *World) Instantiate(_ context.Context, spec engine.InstanceSpec) (engine.Handle, error) {
	if spec.Asset == "" {
		return engine.NoHandle, errors.InvalidArgument("asset is required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.instances = append(w.instances, &instance{spec: spec, shape: w.shapes[spec.Asset]})
	return engine.Handle(len(w.instances) - 1), nil
}

// Move repositions a live instance
func (w *World) Move(_ context.Context, h engine.Handle, pos entities.Vec3, rot entities.Rotation) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	inst, err := w.lookup(h)
	if err != nil {
		return err
	}
	inst.spec.Position = pos
	inst.spec.Rotation = rot
	return nil
}

// Destroy clears the slot; other handles keep their index
func (w *World) Destroy(_ context.Context, h engine.Handle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.lookup(h); err != nil {
		return err
	}
	w.instances[h] = nil
	return nil
}

// Bounds returns the collider box of a live instance
func (w *World) Bounds(h engine.Handle) (entities.AABB, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	inst, err := w.lookup(h)
	if err != nil {
		return entities.AABB{}, false
	}
	return inst.shape.bounds(inst.spec.Position, inst.spec.Rotation)
}

// Live returns the number of instances that have not been destroyed
func (w *World) Live() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	n := 0
	for _, inst := range w.instances {
		if inst != nil {
			n++
		}
	}
	return n
}

// Spec returns the spec an instance was created with
func (w *World) Spec(h engine.Handle) (engine.InstanceSpec, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	inst, err := w.lookup(h)
	if err != nil {
		return engine.InstanceSpec{}, false
	}
	return inst.spec, true
}

func (w *World) lookup(h engine.Handle) (*instance, error) {
	if h < 0 || int(h) >= len(w.instances) || w.instances[h] == nil {
		return nil, errors.NotFoundf("instance %d not found", h)
	}
	return w.instances[h], nil
}

// Raycast returns the nearest collider on layer hit within maxDistance.
// A ray starting inside a collider hits it at distance zero.
func (w *World) Raycast(origin, dir entities.Vec3, maxDistance float64, layer engine.Layer) (engine.RayHit, bool) {
	dir = dir.Normalized()
	if dir == (entities.Vec3{}) || maxDistance < 0 {
		return engine.RayHit{}, false
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	best := engine.RayHit{Handle: engine.NoHandle, Distance: math.Inf(1)}
	for i, inst := range w.instances {
		if inst == nil || inst.spec.Layer != layer {
			continue
		}
		box, ok := inst.shape.bounds(inst.spec.Position, inst.spec.Rotation)
		if !ok {
			continue
		}
		t, hit := intersectRay(origin, dir, box)
		if !hit || t > maxDistance || t >= best.Distance {
			continue
		}
		best = engine.RayHit{Handle: engine.Handle(i), Distance: t, Point: origin.Add(dir.Scale(t))}
	}

	if best.Handle == engine.NoHandle {
		return engine.RayHit{}, false
	}
	return best, true
}

// OverlapBox returns every collider on layer with positive overlap
func (w *World) OverlapBox(center, halfExtents entities.Vec3, rot entities.Rotation, layer engine.Layer) []engine.Handle {
	if rot.SwapsAxes() {
		halfExtents.X, halfExtents.Z = halfExtents.Z, halfExtents.X
	}
	query := entities.BoxFromCenter(center, halfExtents)

	w.mu.RLock()
	defer w.mu.RUnlock()

	var hits []engine.Handle
	for i, inst := range w.instances {
		if inst == nil || inst.spec.Layer != layer {
			continue
		}
		box, ok := inst.shape.bounds(inst.spec.Position, inst.spec.Rotation)
		if ok && box.Intersects(query) {
			hits = append(hits, engine.Handle(i))
		}
	}
	return hits
}

// intersectRay is the slab test; it returns the entry distance, or zero
// when the origin is inside the box
func intersectRay(origin, dir entities.Vec3, box entities.AABB) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)

	axes := [3][4]float64{
		{origin.X, dir.X, box.Min.X, box.Max.X},
		{origin.Y, dir.Y, box.Min.Y, box.Max.Y},
		{origin.Z, dir.Z, box.Min.Z, box.Max.Z},
	}
	for _, a := range axes {
		o, d, lo, hi := a[0], a[1], a[2], a[3]
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}

// SampleWalkable picks a random walkable point within radius of near
func (w *World) SampleWalkable(near entities.Vec3, radius float64) (entities.Vec3, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for i := 0; i < sampleAttempts; i++ {
		angle, err := w.roller.Roll(360)
		if err != nil {
			slog.Warn("Failed to roll sample angle", "error", err)
			break
		}
		pct, err := w.roller.Roll(100)
		if err != nil {
			slog.Warn("Failed to roll sample distance", "error", err)
			break
		}

		rad := float64(angle) * math.Pi / 180
		dist := radius * float64(pct) / 100
		candidate := entities.Vec3{
			X: near.X + math.Cos(rad)*dist,
			Y: near.Y,
			Z: near.Z + math.Sin(rad)*dist,
		}
		if w.walkableAt(candidate) {
			return candidate, true
		}
	}

	if w.walkableAt(near) {
		return near, true
	}
	return entities.Vec3{}, false
}

// Warp places an agent, registering it if needed
func (w *World) Warp(agentID string, pos entities.Vec3) error {
	if agentID == "" {
		return errors.InvalidArgument("agent id is required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.agents[agentID] = &navAgent{pos: pos, dest: pos}
	return nil
}

// MoveTo sets the agent's destination
func (w *World) MoveTo(agentID string, dest entities.Vec3) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a, ok := w.agents[agentID]
	if !ok {
		return errors.NotFoundf("agent %s not on the navigation surface", agentID)
	}
	a.dest = dest
	return nil
}

// HasArrived reports whether the agent is within threshold of its destination
func (w *World) HasArrived(agentID string, threshold float64) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	a, ok := w.agents[agentID]
	if !ok {
		return false
	}
	return a.pos.HorizontalDistance(a.dest) <= threshold
}

// IsOnNavigableSurface reports whether the agent stands inside a walkable area
func (w *World) IsOnNavigableSurface(agentID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	a, ok := w.agents[agentID]
	if !ok {
		return false
	}
	return w.walkableAt(a.pos)
}

// Position returns the agent's current position
func (w *World) Position(agentID string) (entities.Vec3, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	a, ok := w.agents[agentID]
	if !ok {
		return entities.Vec3{}, false
	}
	return a.pos, true
}

// Remove forgets the agent
func (w *World) Remove(agentID string) {
	w.mu.Lock()
	delete(w.agents, agentID)
	w.mu.Unlock()
}

// Step moves every agent toward its destination in a straight line
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	maxStep := w.speed * dt
	for _, a := range w.agents {
		delta := a.dest.Sub(a.pos)
		delta.Y = 0
		dist := delta.Length()
		if dist <= maxStep {
			a.pos.X, a.pos.Z = a.dest.X, a.dest.Z
			continue
		}
		a.pos = a.pos.Add(delta.Scale(maxStep / dist))
	}
}

func (w *World) walkableAt(p entities.Vec3) bool {
	for _, area := range w.walkable {
		if area.ContainsXZ(p) {
			return true
		}
	}
	return false
}
