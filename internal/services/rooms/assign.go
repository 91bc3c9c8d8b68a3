package rooms

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
)

// TryAssign picks uniformly among free rooms and marks the pick occupied
// under the registry lock, so two guests never get the same room.
func (r *registry) TryAssign(agentID string) (entities.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var free []*entities.Room
	for _, room := range r.rooms {
		if !room.Occupied {
			free = append(free, room)
		}
	}
	if len(free) == 0 {
		return entities.Room{}, false
	}

	pick := 0
	if len(free) > 1 {
		roll, err := r.roller.Roll(len(free))
		if err != nil {
			slog.Warn("Room roll failed, taking the first free room", "error", err)
		} else if roll >= 1 && roll <= len(free) {
			pick = roll - 1
		}
	}

	room := free[pick]
	room.Occupied = true
	room.OccupantID = agentID

	slog.Info("Assigned room", "agent_id", agentID, "room_id", room.ID)
	return copyRoom(room), true
}

func (r *registry) Release(roomID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.findLocked(roomID)
	if room == nil {
		slog.Warn("Release of unknown room", "room_id", roomID)
		return false
	}
	room.Occupied = false
	room.OccupantID = ""
	return true
}

// CompleteStay frees the room and logs the stay. The price is the room's
// furniture value scaled by the price multiplier.
func (r *registry) CompleteStay(agentID, roomID string) (*entities.UsageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.findLocked(roomID)
	if room == nil {
		return nil, errors.NotFoundf("room %s not found", roomID).WithMeta("agent_id", agentID)
	}
	if !room.Occupied || room.OccupantID != agentID {
		return nil, errors.FailedPreconditionf("room %s is not held by %s", roomID, agentID)
	}

	room.Occupied = false
	room.OccupantID = ""

	usage := entities.UsageRecord{
		AgentID: agentID,
		RoomID:  roomID,
		Price:   int(math.Round(float64(room.TotalPrice) * r.multiplier)),
		At:      r.clock.Now(),
	}
	r.usageLog = append(r.usageLog, usage)
	if over := len(r.usageLog) - r.usageLogSize; over > 0 {
		r.usageLog = append(r.usageLog[:0:0], r.usageLog[over:]...)
	}

	slog.Info("Room stay completed", "agent_id", agentID, "room_id", roomID, "price", usage.Price)
	return &usage, nil
}

func (r *registry) Get(roomID string) (entities.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.findLocked(roomID)
	if room == nil {
		return entities.Room{}, false
	}
	return copyRoom(room), true
}

func (r *registry) Rooms() []entities.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(nil)
}

func (r *registry) Available() []entities.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(func(room *entities.Room) bool { return !room.Occupied })
}

// InPriceRange returns free rooms whose total price is within [minPrice, maxPrice]
func (r *registry) InPriceRange(minPrice, maxPrice int) []entities.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(func(room *entities.Room) bool {
		return !room.Occupied && room.TotalPrice >= minPrice && room.TotalPrice <= maxPrice
	})
}

func (r *registry) UsageLog() []entities.UsageRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.UsageRecord(nil), r.usageLog...)
}

func (r *registry) findLocked(roomID string) *entities.Room {
	for _, room := range r.rooms {
		if room.ID == roomID {
			return room
		}
	}
	return nil
}

func (r *registry) snapshotLocked(keep func(*entities.Room) bool) []entities.Room {
	out := make([]entities.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if keep == nil || keep(room) {
			out = append(out, copyRoom(room))
		}
	}
	return out
}

func copyRoom(room *entities.Room) entities.Room {
	c := *room
	c.FloorCells = append([]entities.Cell(nil), room.FloorCells...)
	c.Furniture = append([]int(nil), room.Furniture...)
	return c
}
