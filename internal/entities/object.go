package entities

import (
	"fmt"
	"strings"
)

// Category selects which occupancy grid an object lives in
type Category int

// Categories in catalog kind-index order
const (
	CategoryFloor Category = iota
	CategoryFurniture
	CategoryWall
	CategoryDecoration
)

// Categories lists every category in grid scan order
var Categories = []Category{CategoryFloor, CategoryFurniture, CategoryWall, CategoryDecoration}

func (c Category) String() string {
	switch c {
	case CategoryFloor:
		return "floor"
	case CategoryFurniture:
		return "furniture"
	case CategoryWall:
		return "wall"
	case CategoryDecoration:
		return "decoration"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Valid reports whether c is one of the four known categories
func (c Category) Valid() bool {
	return c >= CategoryFloor && c <= CategoryDecoration
}

// ParseCategory accepts the lower-case names printed by String
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) {
			return c, true
		}
	}
	return 0, false
}

// Object tags used by room detection
const (
	TagDoor = "door"
	TagBed  = "bed"
)

// ObjectDefinition is immutable catalog data for one placeable kind
type ObjectDefinition struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	IsWall    bool     `json:"is_wall"`
	Size      Size     `json:"size"`
	BasePrice int      `json:"base_price"`
	Asset     string   `json:"asset"`
	Tags      []string `json:"tags,omitempty"`
}

// HasTag reports whether the definition carries tag
func (d *ObjectDefinition) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PlacementRecord is one committed object as seen by an occupancy grid.
// The same pointer is stored under every cell in Cells.
type PlacementRecord struct {
	Cells         []Cell   `json:"cells"`
	ObjectID      int      `json:"object_id"`
	InstanceIndex int      `json:"instance_index"`
	Category      Category `json:"category"`
	Rotation      Rotation `json:"rotation"`
	IsWall        bool     `json:"is_wall"`
}

// BuildableArea is one purchasable volume inside which objects may be placed
type BuildableArea struct {
	Name   string `json:"name" yaml:"name"`
	Level  int    `json:"level" yaml:"level"`
	Floor  int    `json:"floor" yaml:"floor"`
	Price  int    `json:"price" yaml:"price"`
	Bounds AABB   `json:"bounds" yaml:"bounds"`
}
