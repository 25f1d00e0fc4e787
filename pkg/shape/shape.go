// Package shape provides rotatable 2D primitives for screen-space hit
// testing, independent of the triangle rasterizer.
package shape

import (
	"math"

	"github.com/picogfx/pico3d/pkg/math3d"
)

// Shape is a 2D region that can answer point containment queries.
type Shape interface {
	IsInShape(point math3d.Vec2) bool
}

// Base carries the placement shared by the concrete shapes: a center,
// a full width/height, and a rotation in degrees.
type Base struct {
	Center   math3d.Vec2
	Size     math3d.Vec2
	Rotation float32 // Degrees
}

// GetCenter returns the shape's center.
func (b Base) GetCenter() math3d.Vec2 {
	return b.Center
}

// GetSize returns the shape's full dimensions.
func (b Base) GetSize() math3d.Vec2 {
	return b.Size
}

// GetRotation returns the rotation in degrees.
func (b Base) GetRotation() float32 {
	return b.Rotation
}

// SetCenter moves the shape.
func (b *Base) SetCenter(c math3d.Vec2) {
	b.Center = c
}

// SetRotation sets the rotation in degrees.
func (b *Base) SetRotation(deg float32) {
	b.Rotation = deg
}

// localFrame translates point to the shape's center and rotates it into
// the shape's local axes.
func (b Base) localFrame(point math3d.Vec2) math3d.Vec2 {
	x := point.X - b.Center.X
	y := point.Y - b.Center.Y

	rad := float64(b.Rotation) * math.Pi / 180
	sinR := float32(math.Sin(rad))
	cosR := float32(math.Cos(rad))

	return math3d.V2(x*cosR-y*sinR, y*cosR+x*sinR)
}
