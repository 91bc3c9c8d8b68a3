// Package grid holds the cell footprint math and the per-category occupancy
// grids that placement and room detection share.
package grid

import "github.com/KirkDiggler/innkeeper/internal/entities"

// ComputeFootprint returns the cells covered by an object of the given size
// anchored at anchor. The rectangle is turned about the anchor cell, so the
// anchor is always covered and the result has exactly width*depth cells.
// Cells are ordered x-major from the lowest corner.
func ComputeFootprint(anchor entities.Cell, size entities.Size, rot entities.Rotation) []entities.Cell {
	w, d := size.Width, size.Depth
	if w < 1 {
		w = 1
	}
	if d < 1 {
		d = 1
	}

	r := entities.NormalizeRotation(int(rot))

	var ox, oz int
	switch r {
	case 1:
		ox = -(d - 1)
	case 2:
		ox, oz = -(w - 1), -(d - 1)
	case 3:
		oz = -(w - 1)
	}

	rw, rd := w, d
	if r.SwapsAxes() {
		rw, rd = d, w
	}

	cells := make([]entities.Cell, 0, rw*rd)
	for x := 0; x < rw; x++ {
		for z := 0; z < rd; z++ {
			cells = append(cells, anchor.Offset(ox+x, oz+z))
		}
	}
	return cells
}

// RotatedSize returns the size with width and depth swapped for 90 and 270
func RotatedSize(size entities.Size, rot entities.Rotation) entities.Size {
	if entities.NormalizeRotation(int(rot)).SwapsAxes() {
		return entities.Size{Width: size.Depth, Depth: size.Width}
	}
	return size
}
