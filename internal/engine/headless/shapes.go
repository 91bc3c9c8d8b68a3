package headless

import (
	"github.com/KirkDiggler/innkeeper/internal/entities"
)

// ShapeKind selects how an instance's collider is derived from its pose
type ShapeKind int

// Collider kinds
const (
	// ShapeNone instances have no collider
	ShapeNone ShapeKind = iota
	// ShapeBox covers the rotated footprint, inset on every side
	ShapeBox
	// ShapeWallPanel is a thin panel on the cell edge the wall faces
	ShapeWallPanel
)

// Shape is the collider template for one asset
type Shape struct {
	Kind ShapeKind
	// Width and Depth are unrotated world extents; Height is measured up from the base
	Width     float64
	Depth     float64
	Height    float64
	Inset     float64
	Thickness float64
}

// Geometry holds the default collider dimensions used to derive shapes from the catalog
type Geometry struct {
	CellSize         float64
	FloorThickness   float64
	FurnitureHeight  float64
	FurnitureInset   float64
	DecorationHeight float64
	WallHeight       float64
	WallThickness    float64
}

// DefaultGeometry returns dimensions for a one unit grid. Wall panels are
// thinner than the validator's collision margin so furniture standing next
// to a wall does not register as intersecting it.
func DefaultGeometry() Geometry {
	return Geometry{
		CellSize:         1,
		FloorThickness:   0.05,
		FurnitureHeight:  1,
		FurnitureInset:   0.1,
		DecorationHeight: 0.3,
		WallHeight:       2.5,
		WallThickness:    0.02,
	}
}

// ShapesFromCatalog derives one collider shape per asset
func ShapesFromCatalog(defs []*entities.ObjectDefinition, g Geometry) map[string]Shape {
	shapes := make(map[string]Shape, len(defs))
	for _, def := range defs {
		w := float64(def.Size.Width) * g.CellSize
		d := float64(def.Size.Depth) * g.CellSize

		switch {
		case def.IsWall || def.Category == entities.CategoryWall:
			shapes[def.Asset] = Shape{Kind: ShapeWallPanel, Width: g.CellSize, Height: g.WallHeight, Thickness: g.WallThickness}
		case def.Category == entities.CategoryFloor:
			shapes[def.Asset] = Shape{Kind: ShapeBox, Width: w, Depth: d, Height: g.FloorThickness}
		case def.Category == entities.CategoryFurniture:
			shapes[def.Asset] = Shape{Kind: ShapeBox, Width: w, Depth: d, Height: g.FurnitureHeight, Inset: g.FurnitureInset}
		default:
			shapes[def.Asset] = Shape{Kind: ShapeBox, Width: w, Depth: d, Height: g.DecorationHeight, Inset: g.FurnitureInset}
		}
	}
	return shapes
}

// bounds computes the world box of a shape at a pose
func (s Shape) bounds(pos entities.Vec3, rot entities.Rotation) (entities.AABB, bool) {
	switch s.Kind {
	case ShapeBox:
		w, d := s.Width, s.Depth
		if rot.SwapsAxes() {
			w, d = d, w
		}
		hx := w/2 - s.Inset
		hz := d/2 - s.Inset
		if hx <= 0 || hz <= 0 {
			return entities.AABB{}, false
		}
		return entities.AABB{
			Min: entities.Vec3{X: pos.X - hx, Y: pos.Y, Z: pos.Z - hz},
			Max: entities.Vec3{X: pos.X + hx, Y: pos.Y + s.Height, Z: pos.Z + hz},
		}, true

	case ShapeWallPanel:
		fwd := rot.Forward()
		center := pos.Add(fwd.Scale(s.Width / 2))
		lateral, thick := s.Width/2, s.Thickness/2
		half := entities.Vec3{X: lateral, Z: thick}
		if fwd.X != 0 {
			half = entities.Vec3{X: thick, Z: lateral}
		}
		return entities.AABB{
			Min: entities.Vec3{X: center.X - half.X, Y: pos.Y, Z: center.Z - half.Z},
			Max: entities.Vec3{X: center.X + half.X, Y: pos.Y + s.Height, Z: center.Z + half.Z},
		}, true

	default:
		return entities.AABB{}, false
	}
}
