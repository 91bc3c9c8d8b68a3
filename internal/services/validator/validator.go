// Package validator decides whether an object may be placed at a cell. It is
// the single gate for placement rejection: the occupancy grids accept any
// record they are given.
package validator

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/grid"
)

//go:generate mockgen -destination=mock/mock_validator.go -package=validatormock github.com/KirkDiggler/innkeeper/internal/services/validator Validator

// Defaults for the collision probes
const (
	DefaultCollisionMargin       = 0.05
	DefaultOverlapDivisor        = 2.1
	DefaultWallProbeOffset       = 0.05
	DefaultWallProbeBaseFraction = 0.2
	wallProbeExtraDistance       = 1.0
)

// Validator checks placement legality
type Validator interface {
	IsPlacementValid(ctx context.Context, anchor entities.Cell, def *entities.ObjectDefinition, rot entities.Rotation) bool
}

// AreaChecker reports whether a world point is inside a buildable area
type AreaChecker interface {
	Contains(floor int, p entities.Vec3) bool
}

// Config holds the dependencies and probe tuning for the validator
type Config struct {
	Grids        *grid.Set
	Areas        AreaChecker
	Layout       engine.GridLayout
	Instantiator engine.Instantiator
	Physics      engine.Physics

	// CollisionMargin shrinks the furniture probe before casting
	CollisionMargin float64
	// OverlapDivisor turns the shrunk probe size into overlap half extents
	OverlapDivisor float64
	// WallProbeOffset is how far either side of the wall face the downward rays start
	WallProbeOffset float64
	// WallProbeBaseFraction of the wall height below its center is where the rays start
	WallProbeBaseFraction float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Grids == nil {
		vb.RequiredField("Grids")
	}
	if c.Areas == nil {
		vb.RequiredField("Areas")
	}
	if c.Layout == nil {
		vb.RequiredField("Layout")
	}
	if c.Instantiator == nil {
		vb.RequiredField("Instantiator")
	}
	if c.Physics == nil {
		vb.RequiredField("Physics")
	}
	errors.ValidateNonNegative("CollisionMargin", c.CollisionMargin, vb)
	errors.ValidateNonNegative("OverlapDivisor", c.OverlapDivisor, vb)
	errors.ValidateNonNegative("WallProbeOffset", c.WallProbeOffset, vb)
	errors.ValidateNonNegative("WallProbeBaseFraction", c.WallProbeBaseFraction, vb)

	return vb.Build()
}

type validator struct {
	grids        *grid.Set
	areas        AreaChecker
	layout       engine.GridLayout
	instantiator engine.Instantiator
	physics      engine.Physics

	margin       float64
	overlapDiv   float64
	wallOffset   float64
	wallBaseFrac float64
}

// New creates a validator. Zero tuning values take the defaults.
func New(cfg *Config) (Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	v := &validator{
		grids:        cfg.Grids,
		areas:        cfg.Areas,
		layout:       cfg.Layout,
		instantiator: cfg.Instantiator,
		physics:      cfg.Physics,
		margin:       orDefault(cfg.CollisionMargin, DefaultCollisionMargin),
		overlapDiv:   orDefault(cfg.OverlapDivisor, DefaultOverlapDivisor),
		wallOffset:   orDefault(cfg.WallProbeOffset, DefaultWallProbeOffset),
		wallBaseFrac: orDefault(cfg.WallProbeBaseFraction, DefaultWallProbeBaseFraction),
	}

	return v, nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// IsPlacementValid runs the bounds check then the category rule for def.
// Checks short-circuit on the first failure.
func (v *validator) IsPlacementValid(ctx context.Context, anchor entities.Cell, def *entities.ObjectDefinition, rot entities.Rotation) bool {
	if def == nil {
		return false
	}

	rot = entities.NormalizeRotation(int(rot))
	cells := grid.ComputeFootprint(anchor, def.Size, rot)
	if !v.inBounds(cells) {
		return false
	}

	if def.IsWall || def.Category == entities.CategoryWall {
		return v.validWall(ctx, anchor, def, rot)
	}

	switch def.Category {
	case entities.CategoryFloor:
		return v.grids.Floor.CanPlace(anchor, def.Size, rot, false)
	case entities.CategoryFurniture:
		return v.validFurniture(ctx, anchor, cells, def, rot)
	case entities.CategoryDecoration:
		return v.grids.Decoration.CanPlace(anchor, def.Size, rot, false)
	default:
		slog.Warn("Unknown object category", "object_id", def.ID, "category", int(def.Category))
		return false
	}
}

func (v *validator) inBounds(cells []entities.Cell) bool {
	for _, c := range cells {
		if !v.areas.Contains(c.Y, v.layout.CellToWorld(c)) {
			return false
		}
	}
	return true
}

func (v *validator) validFurniture(ctx context.Context, anchor entities.Cell, cells []entities.Cell, def *entities.ObjectDefinition, rot entities.Rotation) bool {
	probe, ok := v.spawnProbe(ctx, def, v.layout.FootprintCenter(cells), rot)
	if !ok {
		return false
	}
	defer v.release(ctx, probe)

	if box, hasCollider := v.instantiator.Bounds(probe); hasCollider && v.hitsWalls(box) {
		return false
	}

	return v.grids.Furniture.CanPlace(anchor, def.Size, rot, false)
}

// hitsWalls casts rays from the margin-shrunk corners toward the center,
// from the center along each axis, and tests a shrunk overlap box.
func (v *validator) hitsWalls(box entities.AABB) bool {
	center := box.Center()
	size := box.Max.Sub(box.Min)
	shrunk := entities.Vec3{
		X: math.Max(size.X-v.margin, 0),
		Y: math.Max(size.Y-v.margin, 0),
		Z: math.Max(size.Z-v.margin, 0),
	}
	half := shrunk.Scale(0.5)
	diagonal := half.Length()

	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				corner := center.Add(entities.Vec3{X: sx * half.X, Y: sy * half.Y, Z: sz * half.Z})
				if _, hit := v.physics.Raycast(corner, center.Sub(corner).Normalized(), diagonal, engine.LayerWall); hit {
					return true
				}
			}
		}
	}

	axes := []struct {
		dir  entities.Vec3
		dist float64
	}{
		{entities.Vec3{X: 1}, half.X},
		{entities.Vec3{X: -1}, half.X},
		{entities.Vec3{Y: 1}, half.Y},
		{entities.Vec3{Y: -1}, half.Y},
		{entities.Vec3{Z: 1}, half.Z},
		{entities.Vec3{Z: -1}, half.Z},
	}
	for _, a := range axes {
		if _, hit := v.physics.Raycast(center, a.dir, a.dist, engine.LayerWall); hit {
			return true
		}
	}

	// bounds are already world aligned
	overlapHalf := shrunk.Scale(1 / v.overlapDiv)
	return len(v.physics.OverlapBox(center, overlapHalf, 0, engine.LayerWall)) > 0
}

func (v *validator) validWall(ctx context.Context, anchor entities.Cell, def *entities.ObjectDefinition, rot entities.Rotation) bool {
	if !v.grids.Wall.CanPlace(anchor, def.Size, rot, true) {
		return false
	}

	cellCenter := v.layout.CellToWorld(anchor)
	probe, ok := v.spawnProbe(ctx, def, cellCenter, rot)
	if !ok {
		return false
	}
	defer v.release(ctx, probe)

	box, hasCollider := v.instantiator.Bounds(probe)
	if !hasCollider {
		return true
	}

	center := box.Center()
	size := box.Max.Sub(box.Min)
	base := center.Sub(entities.Up.Scale(size.Y * v.wallBaseFrac))
	dist := math.Abs(base.Y-cellCenter.Y) + wallProbeExtraDistance
	fwd := rot.Forward()
	down := entities.Vec3{Y: -1}

	for _, side := range []float64{1, -1} {
		origin := base.Add(fwd.Scale(side * v.wallOffset))
		if _, hit := v.physics.Raycast(origin, down, dist, engine.LayerFurniture); hit {
			return false
		}
	}
	return true
}

// spawnProbe creates an invisible instance; failures reject the placement
func (v *validator) spawnProbe(ctx context.Context, def *entities.ObjectDefinition, pos entities.Vec3, rot entities.Rotation) (engine.Handle, bool) {
	h, err := v.instantiator.Instantiate(ctx, engine.InstanceSpec{
		Asset:    def.Asset,
		Position: pos,
		Rotation: rot,
		Layer:    engine.LayerNone,
	})
	if err != nil {
		slog.Error("Failed to create placement probe", "object_id", def.ID, "asset", def.Asset, "error", err)
		return engine.NoHandle, false
	}
	return h, true
}

func (v *validator) release(ctx context.Context, h engine.Handle) {
	if err := v.instantiator.Destroy(ctx, h); err != nil {
		slog.Warn("Failed to destroy placement probe", "handle", int(h), "error", err)
	}
}
