package grid_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/grid"
)

type OccupancyTestSuite struct {
	suite.Suite
	floor *grid.Occupancy
	walls *grid.Occupancy
	one   entities.Size
}

func TestOccupancySuite(t *testing.T) {
	suite.Run(t, new(OccupancyTestSuite))
}

func (s *OccupancyTestSuite) SetupTest() {
	s.floor = grid.NewOccupancy(entities.CategoryFloor)
	s.walls = grid.NewOccupancy(entities.CategoryWall)
	s.one = entities.Size{Width: 1, Depth: 1}
}

func (s *OccupancyTestSuite) addFloor(anchor entities.Cell, size entities.Size, rot entities.Rotation, instance int) {
	s.floor.Add(anchor, size, 1, instance, entities.CategoryFloor, rot, false)
}

func (s *OccupancyTestSuite) TestPlacedFloorBlocksOverlap() {
	anchor := entities.Cell{X: 5, Z: 5}
	size := entities.Size{Width: 2, Depth: 1}

	s.Require().True(s.floor.CanPlace(anchor, size, 1, false))
	s.addFloor(anchor, size, 1, 0)

	s.Equal([]entities.Cell{{X: 5, Z: 5}, {X: 5, Z: 6}}, s.floor.Cells())
	s.False(s.floor.CanPlace(anchor, size, 1, false))
	s.False(s.floor.CanPlace(entities.Cell{X: 5, Z: 6}, s.one, 0, false))
	s.True(s.floor.CanPlace(entities.Cell{X: 6, Z: 5}, s.one, 0, false))
}

func (s *OccupancyTestSuite) TestExclusivityAcrossSequence() {
	anchors := []entities.Cell{{X: 0}, {X: 3}, {X: 6}, {X: 0, Z: 3}}
	size := entities.Size{Width: 2, Depth: 2}
	for i, a := range anchors {
		s.Require().True(s.floor.CanPlace(a, size, 0, false))
		s.addFloor(a, size, 0, i)
	}

	for _, a := range anchors {
		for _, cell := range grid.ComputeFootprint(a, size, 0) {
			s.False(s.floor.CanPlace(cell, s.one, 0, false), "cell %s should be taken", cell)
		}
	}
	s.True(s.floor.CanPlace(entities.Cell{X: 2, Z: 0}, s.one, 0, false))
	s.True(s.floor.CanPlace(entities.Cell{X: 3, Z: 3}, size, 0, false))
	s.NoError(s.floor.CheckInvariants())
}

func (s *OccupancyTestSuite) TestWallSameAngleRule() {
	cell := entities.Cell{X: 2, Z: 2}

	s.Require().True(s.walls.CanPlace(cell, s.one, 0, true))
	s.walls.Add(cell, s.one, 10, 0, entities.CategoryWall, 0, true)

	s.True(s.walls.CanPlace(cell, s.one, 1, true), "different angle may share the cell")
	s.walls.Add(cell, s.one, 10, 1, entities.CategoryWall, 1, true)

	s.False(s.walls.CanPlace(cell, s.one, 0, true), "same angle is rejected")
	s.False(s.walls.CanPlace(cell, s.one, 1, true))
	s.True(s.walls.CanPlace(cell, s.one, 2, true))
	s.NoError(s.walls.CheckInvariants())
}

func (s *OccupancyTestSuite) TestWallsIgnoreNonWallRecords() {
	cell := entities.Cell{X: 1, Z: 1}
	s.walls.Add(cell, s.one, 11, 0, entities.CategoryWall, 0, false)

	s.True(s.walls.CanPlace(cell, s.one, 0, true))
	s.False(s.walls.CanPlace(cell, s.one, 0, false))
}

func (s *OccupancyTestSuite) TestRemoveByInstance() {
	size := entities.Size{Width: 2, Depth: 3}
	anchor := entities.Cell{X: 1, Z: 1}
	s.addFloor(anchor, size, 2, 7)
	s.addFloor(entities.Cell{X: 10, Z: 10}, s.one, 0, 8)

	s.True(s.floor.RemoveByInstance(7))
	s.False(s.floor.RemoveByInstance(7), "second remove finds nothing")

	for _, cell := range grid.ComputeFootprint(anchor, size, 2) {
		s.Empty(s.floor.RecordsAt(cell))
	}
	s.True(s.floor.CanPlace(anchor, size, 2, false))
	s.Equal(1, s.floor.Len())
	s.Equal([]entities.Cell{{X: 10, Z: 10}}, s.floor.Cells())

	_, ok := s.floor.Lookup(7)
	s.False(ok)
	rec, ok := s.floor.Lookup(8)
	s.Require().True(ok)
	s.Equal(8, rec.InstanceIndex)
}

func (s *OccupancyTestSuite) TestRecordSharedAcrossCells() {
	rec := s.floor.Add(entities.Cell{}, entities.Size{Width: 3, Depth: 1}, 4, 2, entities.CategoryFloor, 0, false)
	for _, cell := range rec.Cells {
		at := s.floor.RecordsAt(cell)
		s.Require().Len(at, 1)
		s.Same(rec, at[0])
	}
}

func (s *OccupancyTestSuite) TestCheckInvariantsReportsDuplicate() {
	cell := entities.Cell{X: 4, Z: 4}
	s.addFloor(cell, s.one, 0, 1)
	s.addFloor(cell, s.one, 0, 2)

	err := s.floor.CheckInvariants()
	s.Require().Error(err)
	s.True(errors.IsInvariant(err))
}

func (s *OccupancyTestSuite) TestFloorsAreSeparate() {
	ground := entities.Cell{X: 1, Y: 0, Z: 1}
	upper := entities.Cell{X: 1, Y: 1, Z: 1}
	s.addFloor(ground, s.one, 0, 1)

	s.True(s.floor.CanPlace(upper, s.one, 0, false))
}

func (s *OccupancyTestSuite) TestSetFindInstance() {
	set := grid.NewSet()
	set.Furniture.Add(entities.Cell{}, s.one, 3, 42, entities.CategoryFurniture, 0, false)

	g, rec, ok := set.FindInstance(42)
	s.Require().True(ok)
	s.Same(set.Furniture, g)
	s.Equal(3, rec.ObjectID)

	_, _, ok = set.FindInstance(99)
	s.False(ok)
	s.Same(set.Wall, set.For(entities.CategoryWall))
	s.Nil(set.For(entities.Category(9)))
}
