// Package core provides fundamental types shared by the simulation and the
// platform layers. It contains no external dependencies (especially no Bubble
// Tea) to keep the rules engine pure and testable.
package core

import "fmt"

// Vec is a tile coordinate or offset on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Vec struct {
	X, Y int
}

// V is a convenience constructor for Vec.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Step returns the neighbouring tile in the given direction.
// DirNone returns v unchanged.
func (v Vec) Step(d Dir) Vec {
	return v.Add(d.Vec())
}

// Rect represents an axis-aligned area, used for viewports over the grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the tile is inside this rectangle.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// CenterOn returns a w×h rectangle centred on p and kept inside a
// bounds-sized area starting at the origin. If the area is smaller than the
// rectangle along an axis, the rectangle starts at 0 on that axis.
func CenterOn(p Vec, w, h, boundsW, boundsH int) Rect {
	x := Clamp(p.X-w/2, 0, Max(0, boundsW-w))
	y := Clamp(p.Y-h/2, 0, Max(0, boundsH-h))
	return NewRect(x, y, w, h)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
