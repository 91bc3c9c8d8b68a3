// Package engine defines the collaborators the simulation needs from a 3D
// runtime: instancing, physics queries, navigation, pointer input and the
// grid layout. The headless subpackage implements all of them in process.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/innkeeper/internal/engine Instantiator,Physics,Navigator,Pointer,GridLayout

import (
	"context"

	"github.com/KirkDiggler/innkeeper/internal/entities"
)

// Instantiator creates and destroys scene instances. Handles are stable
// indices; destroying one never renumbers the others.
type Instantiator interface {
	Instantiate(ctx context.Context, spec InstanceSpec) (Handle, error)
	Move(ctx context.Context, h Handle, pos entities.Vec3, rot entities.Rotation) error
	Destroy(ctx context.Context, h Handle) error

	// Bounds returns the world collider box. ok is false when the asset has no collider.
	Bounds(h Handle) (box entities.AABB, ok bool)
}

// Physics answers collision queries against a single layer
type Physics interface {
	Raycast(origin, dir entities.Vec3, maxDistance float64, layer Layer) (RayHit, bool)
	OverlapBox(center, halfExtents entities.Vec3, rot entities.Rotation, layer Layer) []Handle
}

// Navigator moves agents over the walkable surface
type Navigator interface {
	SampleWalkable(near entities.Vec3, radius float64) (entities.Vec3, bool)
	Warp(agentID string, pos entities.Vec3) error
	MoveTo(agentID string, dest entities.Vec3) error
	HasArrived(agentID string, threshold float64) bool
	IsOnNavigableSurface(agentID string) bool
	Position(agentID string) (entities.Vec3, bool)
	Remove(agentID string)
}

// Pointer exposes the player's cursor
type Pointer interface {
	SelectedWorldPosition() entities.Vec3
	ClickedInstance() (Handle, bool)
	OverUI() bool
}

// GridLayout converts between cells and world space
type GridLayout interface {
	// CellToWorld returns the center of the cell at the base of its floor
	CellToWorld(cell entities.Cell) entities.Vec3
	WorldToCell(pos entities.Vec3) entities.Cell
	CellSize() float64

	// FootprintCenter is where an area object covering cells is spawned
	FootprintCenter(cells []entities.Cell) entities.Vec3

	// CellBounds is the world box spanning two corner cells
	CellBounds(minCell, maxCell entities.Cell, height float64) entities.AABB
}

// Stepper is implemented by engines that advance on the simulation tick
type Stepper interface {
	Step(dt float64)
}
