package grid

import (
	"math"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
)

var _ engine.GridLayout = (*Layout)(nil)

// Layout maps cells to world space. Cell (0,0,0) spans [Origin, Origin+CellSize)
// on X and Z; each floor level sits LevelHeight above the previous one.
type Layout struct {
	Origin      entities.Vec3
	Size        float64
	LevelHeight float64
}

// NewLayout returns a layout with the given cell size and level height
func NewLayout(origin entities.Vec3, cellSize, levelHeight float64) *Layout {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Layout{Origin: origin, Size: cellSize, LevelHeight: levelHeight}
}

// CellSize returns the edge length of a cell
func (l *Layout) CellSize() float64 {
	return l.Size
}

// CellToWorld returns the center of cell at the base of its floor
func (l *Layout) CellToWorld(cell entities.Cell) entities.Vec3 {
	return entities.Vec3{
		X: l.Origin.X + (float64(cell.X)+0.5)*l.Size,
		Y: l.Origin.Y + float64(cell.Y)*l.LevelHeight,
		Z: l.Origin.Z + (float64(cell.Z)+0.5)*l.Size,
	}
}

// WorldToCell returns the cell containing pos
func (l *Layout) WorldToCell(pos entities.Vec3) entities.Cell {
	level := 0
	if l.LevelHeight > 0 {
		level = int(math.Floor((pos.Y - l.Origin.Y + 1e-6) / l.LevelHeight))
	}
	return entities.Cell{
		X: int(math.Floor((pos.X - l.Origin.X) / l.Size)),
		Y: level,
		Z: int(math.Floor((pos.Z - l.Origin.Z) / l.Size)),
	}
}

// FootprintCenter returns the world center of a set of cells at floor level
func (l *Layout) FootprintCenter(cells []entities.Cell) entities.Vec3 {
	if len(cells) == 0 {
		return l.Origin
	}
	var sum entities.Vec3
	for _, c := range cells {
		sum = sum.Add(l.CellToWorld(c))
	}
	return sum.Scale(1 / float64(len(cells)))
}

// CellBounds returns the world box of the cells' bounding rectangle with the given height
func (l *Layout) CellBounds(minCell, maxCell entities.Cell, height float64) entities.AABB {
	lo := l.CellToWorld(minCell)
	hi := l.CellToWorld(maxCell)
	half := l.Size / 2
	return entities.AABB{
		Min: entities.Vec3{X: lo.X - half, Y: lo.Y, Z: lo.Z - half},
		Max: entities.Vec3{X: hi.X + half, Y: hi.Y + height, Z: hi.Z + half},
	}
}
