// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D vector in field coordinates.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is an axis-aligned box described by its center and half-extents.
type Box struct {
	Center Vec
	HalfW  float64
	HalfH  float64
}

// ContainsStrict reports whether p lies strictly inside the box.
// Points on the edge are outside.
func (b Box) ContainsStrict(p Vec) bool {
	return math.Abs(b.Center.X-p.X) < b.HalfW && math.Abs(b.Center.Y-p.Y) < b.HalfH
}

// Contains reports whether p lies inside the box or on its edge.
func (b Box) Contains(p Vec) bool {
	return math.Abs(b.Center.X-p.X) <= b.HalfW && math.Abs(b.Center.Y-p.Y) <= b.HalfH
}

// Rect represents an integer axis-aligned rectangle on the screen grid.
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
