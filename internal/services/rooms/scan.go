package rooms

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/grid"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	"github.com/KirkDiggler/innkeeper/internal/repositories/catalog"
)

// candidate is a flood-filled region before validation
type candidate struct {
	floor    []entities.Cell
	walls    mapset.Set[int]
	doors    mapset.Set[int]
	beds     mapset.Set[int]
	min, max entities.Cell
}

// definitions caches catalog lookups for a single scan
type definitions struct {
	ctx     context.Context
	catalog catalog.Repository
	cache   map[int]*entities.ObjectDefinition
}

func (d *definitions) get(id int) *entities.ObjectDefinition {
	if def, ok := d.cache[id]; ok {
		return def
	}
	out, err := d.catalog.Get(d.ctx, catalog.GetInput{ID: id})
	var def *entities.ObjectDefinition
	if err != nil {
		slog.Warn("Placed object missing from catalog", "object_id", id, "error", err)
	} else {
		def = out.Definition
	}
	d.cache[id] = def
	return def
}

func (d *definitions) hasTag(id int, tag string) bool {
	def := d.get(id)
	return def != nil && def.HasTag(tag)
}

func (d *definitions) price(id int) int {
	if def := d.get(id); def != nil {
		return def.BasePrice
	}
	return 0
}

func (r *registry) Rescan(ctx context.Context) (*RescanOutput, error) {
	if err := r.grids.CheckInvariants(); err != nil {
		return nil, errors.Wrap(err, "occupancy grids inconsistent")
	}

	defs := &definitions{ctx: ctx, catalog: r.catalog, cache: make(map[int]*entities.ObjectDefinition)}
	candidates := r.floodFill(defs)

	built := make([]*entities.Room, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	rejected := 0
	for _, c := range candidates {
		if c.walls.Size() < r.minWalls || c.doors.Size() < r.minDoors || c.beds.Size() < r.minBeds {
			rejected++
			continue
		}
		room := r.buildRoom(c, defs)
		if seen[room.ID] {
			slog.Warn("Duplicate room id, keeping the first", "room_id", room.ID)
			rejected++
			continue
		}
		seen[room.ID] = true
		built = append(built, room)
	}

	r.mu.Lock()
	previous := make(map[string]*entities.Room, len(r.rooms))
	for _, old := range r.rooms {
		previous[old.ID] = old
	}
	for _, room := range built {
		if old, ok := previous[room.ID]; ok && old.Occupied {
			room.Occupied = true
			room.OccupantID = old.OccupantID
		}
	}
	r.rooms = built
	snapshot := r.snapshotLocked(nil)
	ids := make([]string, 0, len(built))
	free := make([]string, 0, len(built))
	for _, room := range built {
		ids = append(ids, room.ID)
		if !room.Occupied {
			free = append(free, room.ID)
		}
	}
	r.mu.Unlock()

	slog.Debug("Rescanned rooms", "rooms", len(built), "rejected", rejected, "available", len(free))

	err := notify.Publish(ctx, r.bus, notify.TopicRoomsUpdated, r.source, notify.Data{
		"count":     len(built),
		"available": len(free),
		"rooms":     ids,
		"free":      free,
	})
	if err != nil {
		slog.Warn("Failed to publish room update", "error", err)
	}

	return &RescanOutput{Rooms: snapshot, Rejected: rejected}, nil
}

// floodFill groups 4-connected floor cells. Walls, doors and beds are
// collected from each floor cell's neighbours; a door neighbour bounds the
// region instead of extending it.
func (r *registry) floodFill(defs *definitions) []*candidate {
	floorGrid := r.grids.Floor
	visited := mapset.New[entities.Cell]()
	var out []*candidate

	for _, start := range floorGrid.Cells() {
		if visited.Has(start) {
			continue
		}

		c := &candidate{
			walls: mapset.New[int](),
			doors: mapset.New[int](),
			beds:  mapset.New[int](),
			min:   start,
			max:   start,
		}
		visited.Put(start)
		queue := []entities.Cell{start}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			c.floor = append(c.floor, cur)
			c.min = entities.Cell{X: min(c.min.X, cur.X), Y: min(c.min.Y, cur.Y), Z: min(c.min.Z, cur.Z)}
			c.max = entities.Cell{X: max(c.max.X, cur.X), Y: max(c.max.Y, cur.Y), Z: max(c.max.Z, cur.Z)}

			for _, n := range cur.Neighbours4() {
				wallRecs := r.grids.Wall.RecordsAt(n)

				isDoor := false
				for _, rec := range wallRecs {
					if defs.hasTag(rec.ObjectID, entities.TagDoor) {
						isDoor = true
						c.doors.Put(rec.InstanceIndex)
					}
				}
				if isDoor {
					continue
				}

				for _, rec := range wallRecs {
					c.walls.Put(rec.InstanceIndex)
				}
				for _, rec := range r.grids.Furniture.RecordsAt(n) {
					if defs.hasTag(rec.ObjectID, entities.TagBed) {
						c.beds.Put(rec.InstanceIndex)
					}
				}

				if floorGrid.Occupied(n) && !visited.Has(n) {
					visited.Put(n)
					queue = append(queue, n)
				}
			}
		}

		grid.SortCells(c.floor)
		out = append(out, c)
	}

	return out
}

func (r *registry) buildRoom(c *candidate, defs *definitions) *entities.Room {
	lo := r.layout.CellToWorld(c.min)
	hi := r.layout.CellToWorld(c.max)
	center := lo.Add(hi).Scale(0.5)

	room := &entities.Room{
		ID:         roomID(center),
		FloorCells: c.floor,
		Walls:      c.walls.Size(),
		Doors:      c.doors.Size(),
		Beds:       c.beds.Size(),
		CellMin:    c.min,
		CellMax:    c.max,
		Bounds:     r.layout.CellBounds(c.min, c.max, r.roomHeight),
		Center:     center,
	}

	inRoom := mapset.New[entities.Cell]()
	for _, cell := range c.floor {
		inRoom.Put(cell)
	}
	counted := mapset.New[int]()
	for _, occ := range []*grid.Occupancy{r.grids.Furniture, r.grids.Decoration} {
		for _, rec := range occ.Records() {
			if counted.Has(rec.InstanceIndex) || !slices.ContainsFunc(rec.Cells, inRoom.Has) {
				continue
			}
			counted.Put(rec.InstanceIndex)
			room.Furniture = append(room.Furniture, rec.InstanceIndex)
			room.TotalPrice += defs.price(rec.ObjectID)
		}
	}
	slices.Sort(room.Furniture)

	return room
}

// roomID names a room after its world center rounded to whole units
func roomID(center entities.Vec3) string {
	return fmt.Sprintf("Room_%d_%d", int(math.Round(center.X)), int(math.Round(center.Z)))
}
