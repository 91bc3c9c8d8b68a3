package grid

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
)

// Occupancy maps cells to the placement records covering them for a single
// category. Add never rejects; CanPlace is the gate and callers must consult
// it (through the validator) first. CheckInvariants reports any duplicate
// occupancy that slipped past.
type Occupancy struct {
	mu       sync.RWMutex
	category entities.Category
	cells    map[entities.Cell][]*entities.PlacementRecord
	records  []*entities.PlacementRecord
}

// NewOccupancy creates an empty grid for category
func NewOccupancy(category entities.Category) *Occupancy {
	return &Occupancy{
		category: category,
		cells:    make(map[entities.Cell][]*entities.PlacementRecord),
	}
}

// Category returns the category this grid holds
func (o *Occupancy) Category() entities.Category {
	return o.category
}

// CanPlace reports whether the footprint is free for an object of the given
// wall classification. Walls only conflict with walls at the same quarter
// turn, so two faces may share a cell. Everything else conflicts with any
// occupant of the same classification.
func (o *Occupancy) CanPlace(anchor entities.Cell, size entities.Size, rot entities.Rotation, isWall bool) bool {
	rot = entities.NormalizeRotation(int(rot))

	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, cell := range ComputeFootprint(anchor, size, rot) {
		for _, rec := range o.cells[cell] {
			if rec.IsWall != isWall {
				continue
			}
			if !isWall || rec.Rotation == rot {
				return false
			}
		}
	}
	return true
}

// Add records an object under every cell of its footprint and returns the
// shared record
func (o *Occupancy) Add(
	anchor entities.Cell,
	size entities.Size,
	objectID, instanceIndex int,
	category entities.Category,
	rot entities.Rotation,
	isWall bool,
) *entities.PlacementRecord {
	rot = entities.NormalizeRotation(int(rot))
	rec := &entities.PlacementRecord{
		Cells:         ComputeFootprint(anchor, size, rot),
		ObjectID:      objectID,
		InstanceIndex: instanceIndex,
		Category:      category,
		Rotation:      rot,
		IsWall:        isWall,
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for _, cell := range rec.Cells {
		o.cells[cell] = append(o.cells[cell], rec)
	}
	o.records = append(o.records, rec)
	return rec
}

// RemoveByInstance drops every record with the given instance index from
// every cell and prunes cells left empty. It reports whether anything was
// removed.
func (o *Occupancy) RemoveByInstance(instanceIndex int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	removed := false
	for cell, recs := range o.cells {
		kept := recs[:0]
		for _, rec := range recs {
			if rec.InstanceIndex == instanceIndex {
				removed = true
				continue
			}
			kept = append(kept, rec)
		}
		if len(kept) == 0 {
			delete(o.cells, cell)
		} else {
			o.cells[cell] = kept
		}
	}

	kept := o.records[:0]
	for _, rec := range o.records {
		if rec.InstanceIndex != instanceIndex {
			kept = append(kept, rec)
		}
	}
	for i := len(kept); i < len(o.records); i++ {
		o.records[i] = nil
	}
	o.records = kept

	return removed
}

// Lookup returns the record for an instance index
func (o *Occupancy) Lookup(instanceIndex int) (*entities.PlacementRecord, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, rec := range o.records {
		if rec.InstanceIndex == instanceIndex {
			return rec, true
		}
	}
	return nil, false
}

// RecordsAt returns a copy of the records covering cell
func (o *Occupancy) RecordsAt(cell entities.Cell) []*entities.PlacementRecord {
	o.mu.RLock()
	defer o.mu.RUnlock()

	recs := o.cells[cell]
	if len(recs) == 0 {
		return nil
	}
	out := make([]*entities.PlacementRecord, len(recs))
	copy(out, recs)
	return out
}

// Occupied reports whether any record covers cell
func (o *Occupancy) Occupied(cell entities.Cell) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.cells[cell]) > 0
}

// Cells returns every occupied cell, sorted by floor then x then z
func (o *Occupancy) Cells() []entities.Cell {
	o.mu.RLock()
	cells := make([]entities.Cell, 0, len(o.cells))
	for cell := range o.cells {
		cells = append(cells, cell)
	}
	o.mu.RUnlock()

	SortCells(cells)
	return cells
}

// Records returns the records in insertion order
func (o *Occupancy) Records() []*entities.PlacementRecord {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]*entities.PlacementRecord, len(o.records))
	copy(out, o.records)
	return out
}

// Len returns the number of records
func (o *Occupancy) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.records)
}

// CheckInvariants verifies per-cell exclusivity and that every record is
// reachable from each of its cells
func (o *Occupancy) CheckInvariants() error {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for cell, recs := range o.cells {
		for i := 0; i < len(recs); i++ {
			for j := i + 1; j < len(recs); j++ {
				a, b := recs[i], recs[j]
				if a.IsWall != b.IsWall {
					continue
				}
				if !a.IsWall || a.Rotation == b.Rotation {
					return errors.Invariantf("%s grid: cell %s held by instances %d and %d",
						o.category, cell, a.InstanceIndex, b.InstanceIndex).
						WithMeta("cell", cell.String())
				}
			}
		}
	}

	for _, rec := range o.records {
		for _, cell := range rec.Cells {
			if !containsRecord(o.cells[cell], rec) {
				return errors.Invariantf("%s grid: instance %d missing from cell %s",
					o.category, rec.InstanceIndex, cell)
			}
		}
	}
	return nil
}

func containsRecord(recs []*entities.PlacementRecord, target *entities.PlacementRecord) bool {
	for _, rec := range recs {
		if rec == target {
			return true
		}
	}
	return false
}

// SortCells orders cells by floor, then x, then z
func SortCells(cells []entities.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i], cells[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Z < b.Z
	})
}
