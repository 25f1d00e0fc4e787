package shape

import "github.com/picogfx/pico3d/pkg/math3d"

// Rectangle is a rotatable 2D rectangle defined by its center and full size.
type Rectangle struct {
	Base
}

// NewRectangle creates a rectangle with the given center, full size, and
// rotation in degrees.
func NewRectangle(center, size math3d.Vec2, rotation float32) *Rectangle {
	return &Rectangle{Base{
		Center:   center,
		Size:     size,
		Rotation: rotation,
	}}
}

// IsInShape reports whether point lies inside the rectangle, boundary
// inclusive.
func (r *Rectangle) IsInShape(point math3d.Vec2) bool {
	p := r.localFrame(point)

	return math3d.Abs(p.X) <= r.Size.X/2 && math3d.Abs(p.Y) <= r.Size.Y/2
}
