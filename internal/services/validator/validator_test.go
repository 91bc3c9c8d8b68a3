package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	enginemock "github.com/KirkDiggler/innkeeper/internal/engine/mock"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/grid"
	"github.com/KirkDiggler/innkeeper/internal/services/validator"
)

// boxArea accepts points inside a single ground floor rectangle
type boxArea struct {
	bounds entities.AABB
}

func (a boxArea) Contains(floor int, p entities.Vec3) bool {
	return floor == 0 && a.bounds.ContainsXZ(p)
}

type ValidatorTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	instantiator *enginemock.MockInstantiator
	physics      *enginemock.MockPhysics
	grids        *grid.Set
	validator    validator.Validator

	floor     *entities.ObjectDefinition
	bed       *entities.ObjectDefinition
	wall      *entities.ObjectDefinition
	plant     *entities.ObjectDefinition
	probeBox  entities.AABB
	wallPanel entities.AABB
}

func (s *ValidatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.instantiator = enginemock.NewMockInstantiator(s.ctrl)
	s.physics = enginemock.NewMockPhysics(s.ctrl)
	s.grids = grid.NewSet()

	var err error
	s.validator, err = validator.New(&validator.Config{
		Grids:        s.grids,
		Areas:        boxArea{bounds: entities.AABB{Max: entities.Vec3{X: 10, Y: 3, Z: 10}}},
		Layout:       grid.NewLayout(entities.Vec3{}, 1, 3),
		Instantiator: s.instantiator,
		Physics:      s.physics,
	})
	s.Require().NoError(err)

	s.floor = &entities.ObjectDefinition{ID: 0, Category: entities.CategoryFloor, Size: entities.Size{Width: 2, Depth: 1}, Asset: "floor"}
	s.bed = &entities.ObjectDefinition{ID: 10, Category: entities.CategoryFurniture, Size: entities.Size{Width: 1, Depth: 2}, Asset: "bed", Tags: []string{entities.TagBed}}
	s.wall = &entities.ObjectDefinition{ID: 20, Category: entities.CategoryWall, IsWall: true, Size: entities.Size{Width: 1, Depth: 1}, Asset: "wall"}
	s.plant = &entities.ObjectDefinition{ID: 30, Category: entities.CategoryDecoration, Size: entities.Size{Width: 1, Depth: 1}, Asset: "plant"}

	s.probeBox = entities.AABB{Min: entities.Vec3{X: 2.1, Z: 2.1}, Max: entities.Vec3{X: 2.9, Y: 1, Z: 3.9}}
	s.wallPanel = entities.AABB{Min: entities.Vec3{X: 2, Z: 2.99}, Max: entities.Vec3{X: 3, Y: 2.5, Z: 3.01}}
}

func (s *ValidatorTestSuite) expectProbe(asset string, h engine.Handle, box entities.AABB, hasCollider bool) {
	s.instantiator.EXPECT().
		Instantiate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, spec engine.InstanceSpec) (engine.Handle, error) {
			s.Equal(asset, spec.Asset)
			s.Equal(engine.LayerNone, spec.Layer)
			return h, nil
		})
	s.instantiator.EXPECT().Bounds(h).Return(box, hasCollider)
	s.instantiator.EXPECT().Destroy(s.ctx, h).Return(nil)
}

func (s *ValidatorTestSuite) TestOutOfBoundsSkipsProbes() {
	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 9, Z: 9}, s.floor, 0))
	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 9, Z: 9}, s.bed, 0))
	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: -1, Z: 0}, s.wall, 0))
	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 1, Y: 1, Z: 1}, s.plant, 0))
}

func (s *ValidatorTestSuite) TestFloorUsesFloorGridOnly() {
	anchor := entities.Cell{X: 5, Z: 5}
	s.True(s.validator.IsPlacementValid(s.ctx, anchor, s.floor, 1))

	s.grids.Floor.Add(anchor, s.floor.Size, s.floor.ID, 0, entities.CategoryFloor, 1, false)
	s.False(s.validator.IsPlacementValid(s.ctx, anchor, s.floor, 1))
	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 5, Z: 6}, s.floor, 0))
	s.True(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 5, Z: 7}, s.floor, 0))
}

func (s *ValidatorTestSuite) TestFurnitureAccepted() {
	s.expectProbe("bed", 4, s.probeBox, true)
	s.physics.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any(), engine.LayerWall).Return(engine.RayHit{}, false).Times(14)
	s.physics.EXPECT().OverlapBox(gomock.Any(), gomock.Any(), entities.Rotation(0), engine.LayerWall).Return(nil)

	s.True(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 2, Z: 2}, s.bed, 0))
}

func (s *ValidatorTestSuite) TestFurnitureRayHitDestroysProbe() {
	s.expectProbe("bed", 4, s.probeBox, true)
	s.physics.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any(), engine.LayerWall).Return(engine.RayHit{Handle: 1}, true)

	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 2, Z: 2}, s.bed, 0))
}

func (s *ValidatorTestSuite) TestFurnitureOverlapRejects() {
	s.expectProbe("bed", 4, s.probeBox, true)
	s.physics.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any(), engine.LayerWall).Return(engine.RayHit{}, false).Times(14)
	s.physics.EXPECT().
		OverlapBox(gomock.Any(), gomock.Any(), entities.Rotation(0), engine.LayerWall).
		DoAndReturn(func(center, half entities.Vec3, _ entities.Rotation, _ engine.Layer) []engine.Handle {
			s.InDelta(2.5, center.X, 1e-9)
			s.InDelta(3.0, center.Z, 1e-9)
			s.InDelta((0.8-validator.DefaultCollisionMargin)/validator.DefaultOverlapDivisor, half.X, 1e-9)
			return []engine.Handle{1}
		})

	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 2, Z: 2}, s.bed, 0))
}

func (s *ValidatorTestSuite) TestFurnitureWithoutColliderSkipsPhysics() {
	s.expectProbe("bed", 4, entities.AABB{}, false)

	s.True(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 2, Z: 2}, s.bed, 0))
}

func (s *ValidatorTestSuite) TestFurnitureOccupied() {
	s.grids.Furniture.Add(entities.Cell{X: 2, Z: 3}, entities.Size{Width: 1, Depth: 1}, 12, 0, entities.CategoryFurniture, 0, false)
	s.expectProbe("bed", 4, entities.AABB{}, false)

	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 2, Z: 2}, s.bed, 0))
}

func (s *ValidatorTestSuite) TestProbeFailureFailsClosed() {
	s.instantiator.EXPECT().Instantiate(s.ctx, gomock.Any()).Return(engine.NoHandle, errors.Unavailable("no scene"))

	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 2, Z: 2}, s.bed, 0))
}

func (s *ValidatorTestSuite) TestWallSameRotationRejectedBeforeProbe() {
	anchor := entities.Cell{X: 2, Z: 2}
	s.grids.Wall.Add(anchor, s.wall.Size, s.wall.ID, 0, entities.CategoryWall, 0, true)

	s.False(s.validator.IsPlacementValid(s.ctx, anchor, s.wall, 0))
	s.False(s.validator.IsPlacementValid(s.ctx, anchor, s.wall, 4))
}

func (s *ValidatorTestSuite) TestWallOtherRotationProbesFurniture() {
	anchor := entities.Cell{X: 2, Z: 2}
	s.grids.Wall.Add(anchor, s.wall.Size, s.wall.ID, 0, entities.CategoryWall, 0, true)

	s.expectProbe("wall", 6, s.wallPanel, true)
	var origins []entities.Vec3
	s.physics.EXPECT().
		Raycast(gomock.Any(), entities.Vec3{Y: -1}, gomock.Any(), engine.LayerFurniture).
		DoAndReturn(func(origin, _ entities.Vec3, dist float64, _ engine.Layer) (engine.RayHit, bool) {
			origins = append(origins, origin)
			s.InDelta(1.75, dist, 1e-9)
			return engine.RayHit{}, false
		}).
		Times(2)

	s.True(s.validator.IsPlacementValid(s.ctx, anchor, s.wall, 1))
	s.Require().Len(origins, 2)
	s.InDelta(0.75, origins[0].Y, 1e-9)
	s.InDelta(validator.DefaultWallProbeOffset*2, origins[0].X-origins[1].X, 1e-9)
}

func (s *ValidatorTestSuite) TestWallBisectingFurnitureRejected() {
	s.expectProbe("wall", 6, s.wallPanel, true)
	s.physics.EXPECT().
		Raycast(gomock.Any(), gomock.Any(), gomock.Any(), engine.LayerFurniture).
		Return(engine.RayHit{Handle: 2}, true)

	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{X: 2, Z: 2}, s.wall, 0))
}

func (s *ValidatorTestSuite) TestDecorationUsesDecorationGrid() {
	anchor := entities.Cell{X: 4, Z: 4}
	s.True(s.validator.IsPlacementValid(s.ctx, anchor, s.plant, 0))

	s.grids.Furniture.Add(anchor, s.plant.Size, 12, 0, entities.CategoryFurniture, 0, false)
	s.True(s.validator.IsPlacementValid(s.ctx, anchor, s.plant, 0))

	s.grids.Decoration.Add(anchor, s.plant.Size, s.plant.ID, 1, entities.CategoryDecoration, 0, false)
	s.False(s.validator.IsPlacementValid(s.ctx, anchor, s.plant, 0))
}

func (s *ValidatorTestSuite) TestNilDefinition() {
	s.False(s.validator.IsPlacementValid(s.ctx, entities.Cell{}, nil, 0))
}

func (s *ValidatorTestSuite) TestConfigValidation() {
	_, err := validator.New(&validator.Config{Grids: s.grids})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Physics")
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
