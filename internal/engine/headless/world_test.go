package headless_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/engine/headless"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/testutils"
)

type WorldTestSuite struct {
	suite.Suite
	ctx   context.Context
	world *headless.World
}

func TestWorldSuite(t *testing.T) {
	suite.Run(t, new(WorldTestSuite))
}

func (s *WorldTestSuite) SetupTest() {
	s.ctx = context.Background()

	g := headless.DefaultGeometry()
	shapes := headless.ShapesFromCatalog([]*entities.ObjectDefinition{
		{ID: 1, Asset: "wall", Category: entities.CategoryWall, IsWall: true, Size: entities.Size{Width: 1, Depth: 1}},
		{ID: 2, Asset: "bed", Category: entities.CategoryFurniture, Size: entities.Size{Width: 2, Depth: 1}},
	}, g)

	var err error
	s.world, err = headless.NewWorld(&headless.Config{
		Shapes:        shapes,
		WalkableAreas: []entities.AABB{{Min: entities.Vec3{X: -10, Z: -10}, Max: entities.Vec3{X: 10, Z: 10}}},
		AgentSpeed:    2,
		Roller:        testutils.NewScriptedRoller(90, 50),
	})
	s.Require().NoError(err)
}

func (s *WorldTestSuite) spawn(asset string, pos entities.Vec3, rot entities.Rotation, layer engine.Layer) engine.Handle {
	h, err := s.world.Instantiate(s.ctx, engine.InstanceSpec{Asset: asset, Position: pos, Rotation: rot, Layer: layer})
	s.Require().NoError(err)
	return h
}

func (s *WorldTestSuite) TestNewWorldRequiresRoller() {
	_, err := headless.NewWorld(&headless.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *WorldTestSuite) TestHandlesStayStableAfterDestroy() {
	a := s.spawn("bed", entities.Vec3{X: 1}, 0, engine.LayerFurniture)
	b := s.spawn("bed", entities.Vec3{X: 4}, 0, engine.LayerFurniture)

	s.Require().NoError(s.world.Destroy(s.ctx, a))
	s.Equal(1, s.world.Live())

	_, ok := s.world.Bounds(a)
	s.False(ok)
	box, ok := s.world.Bounds(b)
	s.Require().True(ok)
	s.InDelta(4, box.Center().X, 1e-9)

	err := s.world.Destroy(s.ctx, a)
	s.True(errors.IsNotFound(err))

	c := s.spawn("bed", entities.Vec3{}, 0, engine.LayerFurniture)
	s.Equal(engine.Handle(2), c)
}

func (s *WorldTestSuite) TestUnknownAssetHasNoCollider() {
	h := s.spawn("plant", entities.Vec3{}, 0, engine.LayerDecoration)
	_, ok := s.world.Bounds(h)
	s.False(ok)
}

func (s *WorldTestSuite) TestWallPanelSitsOnFacedEdge() {
	h := s.spawn("wall", entities.Vec3{X: 0.5, Z: 0.5}, 1, engine.LayerWall)
	box, ok := s.world.Bounds(h)
	s.Require().True(ok)

	s.InDelta(1.0, box.Center().X, 1e-9, "rotation 1 faces +X")
	s.InDelta(0.5, box.Center().Z, 1e-9)
	s.InDelta(0.01, box.Extents().X, 1e-9)
	s.InDelta(0.5, box.Extents().Z, 1e-9)
}

func (s *WorldTestSuite) TestRaycast() {
	wall := s.spawn("wall", entities.Vec3{X: 0.5, Z: 0.5}, 1, engine.LayerWall)
	origin := entities.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

	hit, ok := s.world.Raycast(origin, entities.Vec3{X: 1}, 5, engine.LayerWall)
	s.Require().True(ok)
	s.Equal(wall, hit.Handle)
	s.InDelta(0.49, hit.Distance, 1e-9)

	_, ok = s.world.Raycast(origin, entities.Vec3{X: 1}, 0.4, engine.LayerWall)
	s.False(ok, "too short")

	_, ok = s.world.Raycast(origin, entities.Vec3{X: -1}, 5, engine.LayerWall)
	s.False(ok, "wrong direction")

	_, ok = s.world.Raycast(origin, entities.Vec3{X: 1}, 5, engine.LayerFurniture)
	s.False(ok, "wrong layer")
}

func (s *WorldTestSuite) TestRaycastFromInside() {
	bed := s.spawn("bed", entities.Vec3{X: 1, Z: 0.5}, 0, engine.LayerFurniture)

	hit, ok := s.world.Raycast(entities.Vec3{X: 1, Y: 0.5, Z: 0.5}, entities.Vec3{Y: -1}, 2, engine.LayerFurniture)
	s.Require().True(ok)
	s.Equal(bed, hit.Handle)
	s.Zero(hit.Distance)
}

func (s *WorldTestSuite) TestOverlapBox() {
	s.spawn("wall", entities.Vec3{X: 0.5, Z: 0.5}, 1, engine.LayerWall)

	hits := s.world.OverlapBox(entities.Vec3{X: 1, Y: 0.5, Z: 0.5}, entities.Vec3{X: 0.9, Y: 0.4, Z: 0.4}, 0, engine.LayerWall)
	s.Len(hits, 1)

	hits = s.world.OverlapBox(entities.Vec3{X: 1.5, Y: 0.5, Z: 0.5}, entities.Vec3{X: 0.45, Y: 0.4, Z: 0.4}, 0, engine.LayerWall)
	s.Empty(hits)

	// a quarter turn swaps the query's extents
	hits = s.world.OverlapBox(entities.Vec3{X: 1, Y: 0.5, Z: 0.5}, entities.Vec3{X: 0.4, Y: 0.4, Z: 0.005}, 1, engine.LayerWall)
	s.Len(hits, 1)
}

func (s *WorldTestSuite) TestNavigation() {
	s.Require().NoError(s.world.Warp("guest_1", entities.Vec3{}))
	s.True(s.world.HasArrived("guest_1", 0.5))

	s.Require().NoError(s.world.MoveTo("guest_1", entities.Vec3{X: 4}))
	s.False(s.world.HasArrived("guest_1", 0.5))

	s.world.Step(1)
	pos, ok := s.world.Position("guest_1")
	s.Require().True(ok)
	s.InDelta(2, pos.X, 1e-9)

	s.world.Step(1.5)
	s.True(s.world.HasArrived("guest_1", 0.5))
	s.True(s.world.IsOnNavigableSurface("guest_1"))

	s.Require().NoError(s.world.Warp("guest_1", entities.Vec3{X: 50}))
	s.False(s.world.IsOnNavigableSurface("guest_1"))

	s.world.Remove("guest_1")
	s.False(s.world.IsOnNavigableSurface("guest_1"))
	s.True(errors.IsNotFound(s.world.MoveTo("guest_1", entities.Vec3{})))
}

func (s *WorldTestSuite) TestSampleWalkable() {
	// angle 90 and half the radius
	p, ok := s.world.SampleWalkable(entities.Vec3{}, 4)
	s.Require().True(ok)
	s.InDelta(0, p.X, 1e-9)
	s.InDelta(2, p.Z, 1e-9)

	_, ok = s.world.SampleWalkable(entities.Vec3{X: 100}, 1)
	s.False(ok)
}
