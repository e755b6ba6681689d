// Package core provides fundamental types and utilities shared by the rules
// engine, the physics arena and the terminal front end. It contains no
// external dependencies (especially no Bubble Tea) to keep game logic pure
// and testable.
package core

import "math"

// Vec2 is a position or velocity in playfield pixels (y grows downward).
type Vec2 struct {
	X, Y float64
}

// V returns a Vec2 with the given components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// WithLen rescales v to magnitude n, preserving direction.
// The zero vector is returned unchanged.
func (v Vec2) WithLen(n float64) Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(n / l)
}

// FromAngle returns a vector of magnitude n pointing at deg degrees,
// measured clockwise from +X in screen space.
func FromAngle(deg, n float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: math.Cos(rad) * n, Y: math.Sin(rad) * n}
}

// Rect is an axis-aligned cell rectangle on a Screen.
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Box is an axis-aligned box in playfield pixels described by its center
// and half extents.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// BoxAt builds a box centered at c with the given full width and height.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{Center: c, HalfW: w / 2, HalfH: h / 2}
}

// Overlap reports whether two boxes intersect and, if so, the penetration
// depth along each axis.
func (b Box) Overlap(o Box) (dx, dy float64, ok bool) {
	dx = b.HalfW + o.HalfW - math.Abs(b.Center.X-o.Center.X)
	dy = b.HalfH + o.HalfH - math.Abs(b.Center.Y-o.Center.Y)
	if dx <= 0 || dy <= 0 {
		return 0, 0, false
	}
	return dx, dy, true
}
