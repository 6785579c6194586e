// Package geom provides the small set of geometry value types shared by
// events and window state: points, sizes, vectors, and display scale.
// All values are in display points unless a backend documents otherwise.
package geom

import "fmt"

// Point is a position in 2D space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by the vector v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vec2 {
	return Vec2{X: p.X - other.X, Y: p.Y - other.Y}
}

// String returns a human-readable representation like "(10, 20)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Vec2 is a 2D vector, used for wheel deltas and point differences.
type Vec2 struct {
	X, Y float64
}

// IsZero returns true if both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Size is a 2D extent.
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// String returns a human-readable representation like "800x600".
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Scale is the ratio between physical pixels and display points for a
// window. Backends report it per window; it changes when a window moves
// between monitors with different DPI.
type Scale struct {
	X, Y float64
}

// ScaleOf returns a uniform scale with the given factor on both axes.
func ScaleOf(factor float64) Scale {
	return Scale{X: factor, Y: factor}
}

// Identity is the 1:1 scale.
var Identity = Scale{X: 1, Y: 1}

// ToPoints converts a size in physical pixels to display points.
func (s Scale) ToPoints(px Size) Size {
	if s.X == 0 || s.Y == 0 {
		return px
	}
	return Size{Width: px.Width / s.X, Height: px.Height / s.Y}
}

// ToPixels converts a size in display points to physical pixels.
func (s Scale) ToPixels(pt Size) Size {
	return Size{Width: pt.Width * s.X, Height: pt.Height * s.Y}
}
