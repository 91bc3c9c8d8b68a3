package engine

import (
	"fmt"

	"github.com/KirkDiggler/innkeeper/internal/entities"
)

// Handle identifies a scene instance
type Handle int

// NoHandle is returned alongside errors
const NoHandle Handle = -1

// Layer is a physics layer
type Layer int

// Physics layers. Preview and probe instances live on LayerNone so queries
// never see them.
const (
	LayerNone Layer = iota
	LayerFloor
	LayerFurniture
	LayerWall
	LayerDecoration
)

func (l Layer) String() string {
	switch l {
	case LayerNone:
		return "none"
	case LayerFloor:
		return "floor"
	case LayerFurniture:
		return "furniture"
	case LayerWall:
		return "wall"
	case LayerDecoration:
		return "decoration"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

// LayerFor maps a catalog category to the layer its instances collide on
func LayerFor(c entities.Category) Layer {
	switch c {
	case entities.CategoryFloor:
		return LayerFloor
	case entities.CategoryFurniture:
		return LayerFurniture
	case entities.CategoryWall:
		return LayerWall
	case entities.CategoryDecoration:
		return LayerDecoration
	default:
		return LayerNone
	}
}

// InstanceSpec describes an instance to create. Position is the footprint
// center at floor level for area objects, and the anchor cell center for walls.
type InstanceSpec struct {
	Asset    string
	Position entities.Vec3
	Rotation entities.Rotation
	Layer    Layer
}

// RayHit is the nearest hit of a ray cast
type RayHit struct {
	Handle   Handle
	Distance float64
	Point    entities.Vec3
}
