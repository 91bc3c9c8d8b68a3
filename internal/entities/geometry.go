// Package entities provides core data structures for the innkeeper simulation.
package entities

import (
	"fmt"
	"math"
)

// Cell is an integer grid coordinate. Y selects the floor; horizontal logic
// only reads X and Z.
type Cell struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Offset returns the cell shifted along X and Z on the same floor
func (c Cell) Offset(dx, dz int) Cell {
	return Cell{X: c.X + dx, Y: c.Y, Z: c.Z + dz}
}

// Neighbours4 returns the four horizontally adjacent cells in +X, -X, +Z, -Z order
func (c Cell) Neighbours4() [4]Cell {
	return [4]Cell{c.Offset(1, 0), c.Offset(-1, 0), c.Offset(0, 1), c.Offset(0, -1)}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Vec3 is a world-space position or direction
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Up is the world vertical axis
var Up = Vec3{Y: 1}

// Add returns v+o
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v*s
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Length returns the euclidean length
func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Normalized returns the unit vector, or the zero vector for zero input
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// HorizontalDistance ignores the vertical component
func (v Vec3) HorizontalDistance(o Vec3) float64 {
	dx, dz := v.X-o.X, v.Z-o.Z
	return math.Sqrt(dx*dx + dz*dz)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.2f,%.2f,%.2f)", v.X, v.Y, v.Z)
}

// AABB is an axis-aligned box in world space
type AABB struct {
	Min Vec3 `json:"min" yaml:"min"`
	Max Vec3 `json:"max" yaml:"max"`
}

// BoxFromCenter builds a box from its center and half extents
func BoxFromCenter(center, half Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extents returns the half size of the box
func (b AABB) Extents() Vec3 {
	return b.Max.Sub(b.Min).Scale(0.5)
}

// Contains reports whether p lies inside the box, borders included
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsXZ is Contains without the vertical test
func (b AABB) ContainsXZ(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports a strictly positive overlap volume; touching faces do not count
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}

// Size is a footprint in cells before rotation
type Size struct {
	Width int `json:"width" yaml:"width"`
	Depth int `json:"depth" yaml:"depth"`
}

// Rotation is a canonical quarter-turn count about the vertical axis, 0..3
type Rotation int

// NormalizeRotation accepts quarter turns or degree multiples of 90 and wraps
// negatives, so 270, -90 and 3 all map to 3.
func NormalizeRotation(r int) Rotation {
	if r%90 == 0 && (r > 3 || r < -3) {
		r /= 90
	}
	r %= 4
	if r < 0 {
		r += 4
	}
	return Rotation(r)
}

// RotationFromDegrees snaps an arbitrary angle to the nearest quarter turn
func RotationFromDegrees(deg float64) Rotation {
	return NormalizeRotation(int(math.Round(deg / 90)))
}

// Next returns the rotation advanced by 90 degrees
func (r Rotation) Next() Rotation {
	return NormalizeRotation(int(r) + 1)
}

// Degrees returns the rotation in degrees
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// SwapsAxes reports whether width and depth trade places
func (r Rotation) SwapsAxes() bool {
	return r == 1 || r == 3
}

// Forward returns the unit vector the object faces. Rotation 0 faces +Z and
// turns clockwise seen from above, so rotation 1 faces +X.
func (r Rotation) Forward() Vec3 {
	switch NormalizeRotation(int(r)) {
	case 1:
		return Vec3{X: 1}
	case 2:
		return Vec3{Z: -1}
	case 3:
		return Vec3{X: -1}
	default:
		return Vec3{Z: 1}
	}
}

// Apply rotates a horizontal vector the same way as Forward
func (r Rotation) Apply(v Vec3) Vec3 {
	switch NormalizeRotation(int(r)) {
	case 1:
		return Vec3{X: v.Z, Y: v.Y, Z: -v.X}
	case 2:
		return Vec3{X: -v.X, Y: v.Y, Z: -v.Z}
	case 3:
		return Vec3{X: -v.Z, Y: v.Y, Z: v.X}
	default:
		return v
	}
}
