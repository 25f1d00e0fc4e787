// Package raster implements the screen-space triangle rasterization core:
// projection of 3D triangles into 2D screen space, barycentric containment
// testing, bounding-box culling, and depth-ordered shading.
package raster

import (
	"fmt"

	"github.com/picogfx/pico3d/pkg/math3d"
)

// Rect is an axis-aligned bounding rectangle in screen space.
type Rect struct {
	Min math3d.Vec2
	Max math3d.Vec2
}

// NewRect creates a rectangle from two corners, normalizing so that
// Min holds the component-wise minimum.
func NewRect(a, b math3d.Vec2) Rect {
	return Rect{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

// RectFromCenter creates a rectangle from a center point and full size.
func RectFromCenter(center, size math3d.Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() math3d.Vec2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Size returns the rectangle's width and height.
func (r Rect) Size() math3d.Vec2 {
	return r.Max.Sub(r.Min)
}

// HalfSize returns half the rectangle's dimensions.
func (r Rect) HalfSize() math3d.Vec2 {
	return r.Size().Scale(0.5)
}

// ContainsPoint reports whether (x, y) lies inside the rectangle,
// boundary inclusive.
func (r Rect) ContainsPoint(x, y float32) bool {
	return x >= r.Min.X && x <= r.Max.X &&
		y >= r.Min.Y && y <= r.Max.Y
}

// Overlaps reports whether two rectangles intersect, boundary inclusive.
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: r.Min.Min(other.Min),
		Max: r.Max.Max(other.Max),
	}
}

// Quadrant returns one of the four sub-rectangles splitting r at its center.
// Index order: 0 = min corner, 1 = +X, 2 = +Y, 3 = +X+Y.
func (r Rect) Quadrant(i int) Rect {
	c := r.Center()
	switch i {
	case 0:
		return Rect{Min: r.Min, Max: c}
	case 1:
		return Rect{Min: math3d.V2(c.X, r.Min.Y), Max: math3d.V2(r.Max.X, c.Y)}
	case 2:
		return Rect{Min: math3d.V2(r.Min.X, c.Y), Max: math3d.V2(c.X, r.Max.Y)}
	default:
		return Rect{Min: c, Max: r.Max}
	}
}

// String returns a readable representation.
func (r Rect) String() string {
	return fmt.Sprintf("%v - %v", r.Min, r.Max)
}
