package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/grid"
)

func TestLayout_RoundTrip(t *testing.T) {
	l := grid.NewLayout(entities.Vec3{X: -10, Z: -10}, 1, 3)

	for _, c := range []entities.Cell{{}, {X: 5, Z: 6}, {X: -3, Z: 2}, {X: 1, Y: 1, Z: 1}} {
		assert.Equal(t, c, l.WorldToCell(l.CellToWorld(c)), "cell %s", c)
	}
	assert.Equal(t, entities.Vec3{X: -4.5, Z: -3.5}, l.CellToWorld(entities.Cell{X: 5, Z: 6}))
}

func TestLayout_FootprintCenter(t *testing.T) {
	l := grid.NewLayout(entities.Vec3{}, 1, 3)
	cells := grid.ComputeFootprint(entities.Cell{X: 5, Z: 5}, entities.Size{Width: 2, Depth: 1}, 1)

	assert.Equal(t, entities.Vec3{X: 5.5, Z: 6}, l.FootprintCenter(cells))

	box := l.CellBounds(entities.Cell{X: 1, Z: 1}, entities.Cell{X: 3, Z: 2}, 2)
	assert.Equal(t, entities.Vec3{X: 1, Z: 1}, box.Min)
	assert.Equal(t, entities.Vec3{X: 4, Y: 2, Z: 3}, box.Max)
}
