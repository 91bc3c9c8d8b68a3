package rooms_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/grid"
	"github.com/KirkDiggler/innkeeper/internal/pkg/clock"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	"github.com/KirkDiggler/innkeeper/internal/repositories/catalog"
	"github.com/KirkDiggler/innkeeper/internal/services/rooms"
	"github.com/KirkDiggler/innkeeper/internal/testutils"
)

const (
	woodFloor = 0
	singleBed = 10
	wardrobe  = 12
	plainWall = 20
	door      = 21
)

type RegistryTestSuite struct {
	suite.Suite
	ctx     context.Context
	grids   *grid.Set
	catalog catalog.Repository
	layout  *grid.Layout
	bus     events.EventBus
	clock   *clock.Manual
	roller  *testutils.ScriptedRoller
	next    int
}

func (s *RegistryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.grids = grid.NewSet()
	s.layout = grid.NewLayout(entities.Vec3{}, 1, 3)
	s.bus = events.NewBus()
	s.clock = clock.NewManual(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	s.roller = testutils.NewScriptedRoller(1)
	s.next = 0

	defs, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog, err = catalog.NewInMemory(&catalog.Config{Definitions: defs})
	s.Require().NoError(err)
}

func (s *RegistryTestSuite) newRegistry(modify func(*rooms.Config)) rooms.Registry {
	cfg := &rooms.Config{
		Grids:    s.grids,
		Catalog:  s.catalog,
		Layout:   s.layout,
		Roller:   s.roller,
		Clock:    s.clock,
		EventBus: s.bus,
		MinWalls: 4,
		MinDoors: 1,
		MinBeds:  1,
	}
	if modify != nil {
		modify(cfg)
	}
	reg, err := rooms.New(cfg)
	s.Require().NoError(err)
	return reg
}

func (s *RegistryTestSuite) add(id int, category entities.Category, cell entities.Cell, size entities.Size) {
	isWall := category == entities.CategoryWall
	s.grids.For(category).Add(cell, size, id, s.next, category, 0, isWall)
	s.next++
}

// buildRoom lays out a 2x2 room with its lower corner at (dx+1, dz+1):
// six walls, a door with one more wall on the far side, a bed and a wardrobe.
func (s *RegistryTestSuite) buildRoom(dx int) {
	one := entities.Size{Width: 1, Depth: 1}
	c := func(x, z int) entities.Cell { return entities.Cell{X: dx + x, Z: z} }

	for _, cell := range []entities.Cell{c(1, 1), c(1, 2), c(2, 1), c(2, 2)} {
		s.add(woodFloor, entities.CategoryFloor, cell, one)
	}
	for _, cell := range []entities.Cell{c(0, 1), c(0, 2), c(3, 1), c(3, 2), c(1, 0), c(2, 0), c(2, 3)} {
		s.add(plainWall, entities.CategoryWall, cell, one)
	}
	s.add(door, entities.CategoryWall, c(1, 3), one)
	s.add(singleBed, entities.CategoryFurniture, c(1, 1), entities.Size{Width: 1, Depth: 2})
	s.add(wardrobe, entities.CategoryFurniture, c(2, 2), one)
}

func (s *RegistryTestSuite) TestRescanFindsRoom() {
	s.buildRoom(0)
	reg := s.newRegistry(nil)

	var published []int
	var ids, free []string
	notify.Subscribe(s.bus, notify.TopicRoomsUpdated, func(_ context.Context, p notify.Payload) error {
		published = append(published, p.Int("count"))
		ids, free = p.Strings("rooms"), p.Strings("free")
		return nil
	})

	out, err := reg.Rescan(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(out.Rooms, 1)

	room := out.Rooms[0]
	s.Equal("Room_2_2", room.ID)
	s.Equal(7, room.Walls)
	s.Equal(1, room.Doors)
	s.Equal(1, room.Beds)
	s.Equal(180, room.TotalPrice)
	s.Len(room.Furniture, 2)
	s.Equal([]entities.Cell{{X: 1, Z: 1}, {X: 1, Z: 2}, {X: 2, Z: 1}, {X: 2, Z: 2}}, room.FloorCells)
	s.Equal(entities.Vec3{X: 2, Z: 2}, room.Center)
	s.Equal(entities.AABB{Min: entities.Vec3{X: 1, Z: 1}, Max: entities.Vec3{X: 3, Y: 3, Z: 3}}, room.Bounds)
	s.False(room.Occupied)
	s.Equal([]int{1}, published)
	s.Equal([]string{"Room_2_2"}, ids)
	s.Equal([]string{"Room_2_2"}, free)
}

func (s *RegistryTestSuite) TestDoorStopsFlood() {
	s.buildRoom(0)
	// a corridor through the door must not merge with the room
	one := entities.Size{Width: 1, Depth: 1}
	s.add(woodFloor, entities.CategoryFloor, entities.Cell{X: 1, Z: 3}, one)
	s.add(woodFloor, entities.CategoryFloor, entities.Cell{X: 1, Z: 4}, one)
	reg := s.newRegistry(nil)

	out, err := reg.Rescan(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(out.Rooms, 1)
	s.Len(out.Rooms[0].FloorCells, 4)
	s.Equal(1, out.Rejected)
}

func (s *RegistryTestSuite) TestRescanIsIdempotent() {
	s.buildRoom(0)
	s.buildRoom(10)
	reg := s.newRegistry(nil)

	first, err := reg.Rescan(s.ctx)
	s.Require().NoError(err)
	second, err := reg.Rescan(s.ctx)
	s.Require().NoError(err)

	s.Len(first.Rooms, 2)
	s.Equal(first.Rooms, second.Rooms)
}

func (s *RegistryTestSuite) TestThresholds() {
	s.buildRoom(0)

	testCases := []struct {
		name   string
		modify func(*rooms.Config)
		want   int
	}{
		{name: "defaults", want: 1},
		{name: "two beds", modify: func(c *rooms.Config) { c.MinBeds = 2 }, want: 0},
		{name: "eight walls", modify: func(c *rooms.Config) { c.MinWalls = 8 }, want: 0},
		{name: "two doors", modify: func(c *rooms.Config) { c.MinDoors = 2 }, want: 0},
		{name: "no requirements", modify: func(c *rooms.Config) { c.MinWalls, c.MinDoors, c.MinBeds = 0, 0, 0 }, want: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			reg := s.newRegistry(tc.modify)
			out, err := reg.Rescan(s.ctx)
			s.Require().NoError(err)
			s.Len(out.Rooms, tc.want)
		})
	}
}

func (s *RegistryTestSuite) TestAssignIsExclusive() {
	s.buildRoom(0)
	s.buildRoom(10)
	reg := s.newRegistry(nil)
	_, err := reg.Rescan(s.ctx)
	s.Require().NoError(err)

	a, ok := reg.TryAssign("guest_1")
	s.Require().True(ok)
	b, ok := reg.TryAssign("guest_2")
	s.Require().True(ok)
	s.NotEqual(a.ID, b.ID)

	_, ok = reg.TryAssign("guest_3")
	s.False(ok)
	s.Empty(reg.Available())

	s.True(reg.Release(a.ID))
	s.Len(reg.Available(), 1)
}

func (s *RegistryTestSuite) TestOccupancySurvivesRescan() {
	s.buildRoom(0)
	reg := s.newRegistry(nil)
	_, err := reg.Rescan(s.ctx)
	s.Require().NoError(err)

	room, ok := reg.TryAssign("guest_1")
	s.Require().True(ok)

	_, err = reg.Rescan(s.ctx)
	s.Require().NoError(err)

	got, ok := reg.Get(room.ID)
	s.Require().True(ok)
	s.True(got.Occupied)
	s.Equal("guest_1", got.OccupantID)
}

func (s *RegistryTestSuite) TestCompleteStay() {
	s.buildRoom(0)
	reg := s.newRegistry(func(c *rooms.Config) { c.PriceMultiplier = 1.5 })
	_, err := reg.Rescan(s.ctx)
	s.Require().NoError(err)

	room, ok := reg.TryAssign("guest_1")
	s.Require().True(ok)

	_, err = reg.CompleteStay("guest_2", room.ID)
	s.True(errors.IsFailedPrecondition(err))

	usage, err := reg.CompleteStay("guest_1", room.ID)
	s.Require().NoError(err)
	s.Equal(270, usage.Price)
	s.Equal(s.clock.Now(), usage.At)

	got, _ := reg.Get(room.ID)
	s.False(got.Occupied)
	s.Len(reg.UsageLog(), 1)

	_, err = reg.CompleteStay("guest_1", room.ID)
	s.True(errors.IsFailedPrecondition(err))

	_, err = reg.CompleteStay("guest_1", "Room_99_99")
	s.True(errors.IsNotFound(err))
}

func (s *RegistryTestSuite) TestUsageLogIsBounded() {
	s.buildRoom(0)
	reg := s.newRegistry(func(c *rooms.Config) { c.UsageLogSize = 2 })
	_, err := reg.Rescan(s.ctx)
	s.Require().NoError(err)

	for _, agent := range []string{"guest_1", "guest_2", "guest_3"} {
		room, ok := reg.TryAssign(agent)
		s.Require().True(ok)
		_, err := reg.CompleteStay(agent, room.ID)
		s.Require().NoError(err)
	}

	log := reg.UsageLog()
	s.Require().Len(log, 2)
	s.Equal("guest_2", log[0].AgentID)
	s.Equal("guest_3", log[1].AgentID)
}

func (s *RegistryTestSuite) TestInPriceRange() {
	s.buildRoom(0)
	reg := s.newRegistry(nil)
	_, err := reg.Rescan(s.ctx)
	s.Require().NoError(err)

	s.Len(reg.InPriceRange(100, 200), 1)
	s.Empty(reg.InPriceRange(0, 100))
}

func (s *RegistryTestSuite) TestReleaseUnknownRoom() {
	reg := s.newRegistry(nil)
	s.False(reg.Release("Room_1_1"))
}

func (s *RegistryTestSuite) TestTickScansOnTimer() {
	s.buildRoom(0)
	reg := s.newRegistry(func(c *rooms.Config) {
		c.FirstScanDelay = 1
		c.ScanInterval = 2
	})

	s.Require().NoError(reg.Tick(s.ctx, 0.5))
	s.Empty(reg.Rooms())

	s.Require().NoError(reg.Tick(s.ctx, 0.5))
	s.Len(reg.Rooms(), 1)

	s.buildRoom(10)
	s.Require().NoError(reg.Tick(s.ctx, 1.5))
	s.Len(reg.Rooms(), 1)
	s.Require().NoError(reg.Tick(s.ctx, 0.5))
	s.Len(reg.Rooms(), 2)
}

func (s *RegistryTestSuite) TestDuplicateOccupancyIsInvariant() {
	one := entities.Size{Width: 1, Depth: 1}
	s.add(woodFloor, entities.CategoryFloor, entities.Cell{X: 1, Z: 1}, one)
	s.add(woodFloor, entities.CategoryFloor, entities.Cell{X: 1, Z: 1}, one)
	reg := s.newRegistry(nil)

	_, err := reg.Rescan(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsInvariant(err))
}

func (s *RegistryTestSuite) TestConfigValidation() {
	_, err := rooms.New(&rooms.Config{Grids: s.grids, MinWalls: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
