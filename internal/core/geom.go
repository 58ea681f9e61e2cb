// Package core provides fundamental types and utilities shared by the engine
// and its hosts. It has no external dependencies (especially no Bubble Tea or
// Ebitengine) to keep game logic pure and testable.
package core

import (
	"cmp"
	"math"
)

// Rect is an axis-aligned bounding box in surface pixels.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns the bounding box of a circle.
func RectAround(cx, cy, r float64) Rect {
	return Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Penetration returns how deep the two rectangles overlap along each axis.
// Both values are zero or negative when they do not intersect.
func (r Rect) Penetration(other Rect) (px, py float64) {
	px = math.Min(r.Right(), other.Right()) - math.Max(r.X, other.X)
	py = math.Min(r.Bottom(), other.Bottom()) - math.Max(r.Y, other.Y)
	return px, py
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Speed returns the magnitude of a velocity vector.
func Speed(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}
