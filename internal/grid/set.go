package grid

import "github.com/KirkDiggler/innkeeper/internal/entities"

// Set bundles the four category grids
type Set struct {
	Floor      *Occupancy
	Furniture  *Occupancy
	Wall       *Occupancy
	Decoration *Occupancy
}

// NewSet creates four empty grids
func NewSet() *Set {
	return &Set{
		Floor:      NewOccupancy(entities.CategoryFloor),
		Furniture:  NewOccupancy(entities.CategoryFurniture),
		Wall:       NewOccupancy(entities.CategoryWall),
		Decoration: NewOccupancy(entities.CategoryDecoration),
	}
}

// For returns the grid owning category, or nil for an unknown category
func (s *Set) For(category entities.Category) *Occupancy {
	switch category {
	case entities.CategoryFloor:
		return s.Floor
	case entities.CategoryFurniture:
		return s.Furniture
	case entities.CategoryWall:
		return s.Wall
	case entities.CategoryDecoration:
		return s.Decoration
	default:
		return nil
	}
}

// All returns the grids in category order
func (s *Set) All() []*Occupancy {
	return []*Occupancy{s.Floor, s.Furniture, s.Wall, s.Decoration}
}

// FindInstance scans all four grids for the record with instanceIndex
func (s *Set) FindInstance(instanceIndex int) (*Occupancy, *entities.PlacementRecord, bool) {
	for _, g := range s.All() {
		if rec, ok := g.Lookup(instanceIndex); ok {
			return g, rec, true
		}
	}
	return nil, nil, false
}

// CheckInvariants runs CheckInvariants on every grid
func (s *Set) CheckInvariants() error {
	for _, g := range s.All() {
		if err := g.CheckInvariants(); err != nil {
			return err
		}
	}
	return nil
}
