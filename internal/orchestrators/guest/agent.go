package guest

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/services/counter"
	"github.com/KirkDiggler/innkeeper/internal/services/ledger"
	"github.com/KirkDiggler/innkeeper/internal/services/rooms"
)

// world is what every guest shares
type world struct {
	nav     engine.Navigator
	queue   counter.Queue
	rooms   rooms.Registry
	ledger  ledger.Ledger
	roller  dice.Roller
	timings Timings
	spawn   entities.Vec3
}

// agent is one guest. Waits that were coroutines are countdowns decremented
// by tick.
type agent struct {
	w *world

	id    string
	state entities.AgentState

	room    *entities.Room
	inQueue bool
	serving bool

	// remaining is the time left in the current wander or stay
	remaining float64
	// step is the time until the next wander destination
	step float64
	// retry is the wait before the next queue attempt
	retry  float64
	inside bool
}

func (a *agent) snapshot() Snapshot {
	s := Snapshot{ID: a.id, State: a.state, InQueue: a.inQueue}
	if a.room != nil {
		s.RoomID = a.room.ID
	}
	s.Position, _ = a.w.nav.Position(a.id)
	return s
}

// enter places a fresh guest at the spawn point and picks its first behaviour
func (a *agent) enter(id string) error {
	*a = agent{w: a.w, id: id}
	if err := a.w.nav.Warp(id, a.w.spawn); err != nil {
		return errors.Wrapf(err, "failed to place guest %s", id)
	}

	if a.w.queue == nil {
		if a.chance(a.w.timings.NoCounterWanderChance) {
			a.startWandering()
		} else {
			a.startReturning()
		}
		return nil
	}

	if a.chance(a.w.timings.WanderChance) {
		a.startWandering()
	} else {
		a.transition(entities.AgentMovingToQueue)
	}
	return nil
}

// tick advances the guest by dt seconds. A guest off the walkable surface
// leaves immediately.
func (a *agent) tick(ctx context.Context, dt float64) error {
	if a.state == entities.AgentDespawned {
		return nil
	}
	if !a.w.nav.IsOnNavigableSurface(a.id) {
		slog.Warn("Guest left the walkable surface", "agent_id", a.id, "state", a.state.String())
		a.despawn()
		return nil
	}

	switch a.state {
	case entities.AgentWandering:
		a.tickWandering(dt)
	case entities.AgentMovingToQueue:
		a.tickMovingToQueue(dt)
	case entities.AgentWaitingInQueue:
		return a.tickWaitingInQueue(ctx)
	case entities.AgentMovingToRoom:
		if a.w.nav.HasArrived(a.id, a.w.timings.ArrivalDistance) {
			a.startStay()
		}
	case entities.AgentUsingRoom:
		a.tickUsingRoom(dt)
	case entities.AgentReportingRoom:
		a.transition(entities.AgentMovingToQueue)
		a.tickMovingToQueue(0)
	case entities.AgentReturningToSpawn:
		if a.w.nav.HasArrived(a.id, a.w.timings.ArrivalDistance) {
			slog.Info("Guest left the inn", "agent_id", a.id)
			a.despawn()
		}
	}
	return nil
}

func (a *agent) tickWandering(dt float64) {
	a.remaining -= dt
	if a.remaining <= 0 {
		a.startReturning()
		return
	}

	a.step -= dt
	if a.step > 0 {
		return
	}
	a.step = a.span(a.w.timings.WanderStep)

	pos, ok := a.w.nav.Position(a.id)
	if !ok {
		return
	}
	if dest, ok := a.w.nav.SampleWalkable(pos, a.w.timings.WanderRadius); ok {
		a.moveTo(dest)
	}
}

func (a *agent) tickMovingToQueue(dt float64) {
	if a.retry > 0 {
		a.retry -= dt
		if a.retry > 0 {
			return
		}
	}

	if a.w.queue == nil {
		a.turnedAway("no counter")
		return
	}

	if !a.w.queue.TryJoin(a.id) {
		if a.room == nil {
			a.turnedAway("line full")
			return
		}
		a.retry = a.span(a.w.timings.QueueRetry)
		slog.Info("Line full, retrying", "agent_id", a.id, "room_id", a.room.ID, "retry_in", a.retry)
		return
	}

	a.inQueue = true
	a.transition(entities.AgentWaitingInQueue)
	a.followLine()
}

func (a *agent) tickWaitingInQueue(ctx context.Context) error {
	if a.serving {
		if !a.w.queue.TakeCompleted(a.id) {
			return nil
		}
		a.serving, a.inQueue = false, false
		return a.serviceComplete(ctx)
	}

	a.followLine()
	if !a.w.nav.HasArrived(a.id, a.w.timings.ArrivalDistance) {
		return nil
	}
	if a.w.queue.CanReceiveService(a.id) && a.w.queue.StartService(a.id) {
		a.serving = true
	}
	return nil
}

// serviceComplete runs at the desk: a guest with a room checks out and pays,
// one without asks for a room
func (a *agent) serviceComplete(ctx context.Context) error {
	if a.room != nil {
		if err := a.checkOut(ctx); err != nil {
			return err
		}
		a.startReturning()
		return nil
	}

	room, ok := a.w.rooms.TryAssign(a.id)
	if !ok {
		a.turnedAway("no free room")
		return nil
	}
	a.room = &room
	a.transition(entities.AgentMovingToRoom)
	a.moveTo(room.Center)
	return nil
}

// checkOut frees the room, posts the stay price and settles it into the wallet
func (a *agent) checkOut(ctx context.Context) error {
	roomID := a.room.ID
	a.room = nil

	usage, err := a.w.rooms.CompleteStay(a.id, roomID)
	if err != nil {
		if errors.IsNotFound(err) || errors.IsFailedPrecondition(err) {
			slog.Warn("Room gone before checkout, nothing charged", "agent_id", a.id, "room_id", roomID, "error", err)
			return nil
		}
		return errors.Wrapf(err, "failed to check out of room %s", roomID)
	}

	if a.w.ledger == nil {
		return nil
	}

	_, err = a.w.ledger.PostCharge(ctx, &ledger.PostChargeInput{
		AgentID: a.id,
		Amount:  int64(usage.Price),
		RoomID:  roomID,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to charge for room %s", roomID)
	}

	paid, err := a.w.ledger.Settle(ctx, &ledger.SettleInput{AgentID: a.id})
	if err != nil {
		return errors.Wrap(err, "failed to settle stay")
	}

	slog.Info("Guest checked out",
		"agent_id", a.id,
		"room_id", roomID,
		"paid", paid.Amount,
		"balance", paid.Balance,
	)
	return nil
}

func (a *agent) startStay() {
	a.transition(entities.AgentUsingRoom)
	a.remaining = a.span(a.w.timings.StayDuration)
	a.inside = a.chance(a.w.timings.StayInsideChance)
	a.step = 0
}

// tickUsingRoom alternates wander steps inside the room and just outside it
func (a *agent) tickUsingRoom(dt float64) {
	a.remaining -= dt
	if a.remaining <= 0 {
		slog.Info("Stay finished, reporting", "agent_id", a.id, "room_id", a.room.ID)
		a.transition(entities.AgentReportingRoom)
		return
	}

	a.step -= dt
	if a.step > 0 {
		return
	}

	center := a.room.Center
	if a.inside {
		radius := a.room.Bounds.Extents().Length() * 0.8
		dest, ok := a.w.nav.SampleWalkable(center, radius)
		if ok && a.room.Bounds.ContainsXZ(dest) {
			a.moveTo(dest)
			a.step = a.span(a.w.timings.InsideStep)
			a.inside = false
			return
		}
	}

	if dest, ok := a.w.nav.SampleWalkable(center, a.w.timings.OutsideRadius); ok {
		a.moveTo(dest)
	}
	a.step = a.span(a.w.timings.OutsideStep)
	a.inside = true
}

// turnedAway sends a guest without a room off to wander or home
func (a *agent) turnedAway(reason string) {
	slog.Info("Guest turned away", "agent_id", a.id, "reason", reason)
	if a.chance(a.w.timings.FallbackWanderChance) {
		a.startWandering()
		return
	}
	a.startReturning()
}

func (a *agent) startWandering() {
	a.transition(entities.AgentWandering)
	a.remaining = a.span(a.w.timings.WanderDuration)
	a.step = 0
}

func (a *agent) startReturning() {
	a.transition(entities.AgentReturningToSpawn)
	a.moveTo(a.w.spawn)
}

// despawn releases the room and the line before the guest leaves the navigator
func (a *agent) despawn() {
	if a.room != nil {
		a.w.rooms.Release(a.room.ID)
		a.room = nil
	}
	if a.w.queue != nil {
		a.w.queue.Leave(a.id)
	}
	a.inQueue, a.serving = false, false
	a.w.nav.Remove(a.id)
	a.state = entities.AgentDespawned
}

func (a *agent) transition(to entities.AgentState) {
	if a.state != to {
		slog.Debug("Guest state changed", "agent_id", a.id, "from", a.state.String(), "to", to.String())
	}
	a.state = to
}

func (a *agent) followLine() {
	if pos, ok := a.w.queue.Position(a.id); ok {
		a.moveTo(pos)
	}
}

func (a *agent) moveTo(dest entities.Vec3) {
	if err := a.w.nav.MoveTo(a.id, dest); err != nil {
		slog.Warn("Failed to route guest", "agent_id", a.id, "error", err)
	}
}

// chance is true with probability p
func (a *agent) chance(p float64) bool {
	v, err := a.w.roller.Roll(1000)
	if err != nil {
		slog.Warn("Failed to roll chance", "agent_id", a.id, "error", err)
		return false
	}
	return float64(v) <= p*1000
}

func (a *agent) span(s Span) float64 {
	v, err := s.roll(a.w.roller)
	if err != nil {
		slog.Warn("Failed to roll duration", "agent_id", a.id, "error", err)
	}
	return v
}
