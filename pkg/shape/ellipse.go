package shape

import "github.com/picogfx/pico3d/pkg/math3d"

// Ellipse is a rotatable 2D ellipse defined by its center and full size
// (width and height are twice the radii).
type Ellipse struct {
	Base
}

// NewEllipse creates an ellipse with the given center, full size, and
// rotation in degrees.
func NewEllipse(center, size math3d.Vec2, rotation float32) *Ellipse {
	return &Ellipse{Base{
		Center:   center,
		Size:     size,
		Rotation: rotation,
	}}
}

// IsInShape reports whether point lies strictly inside the ellipse.
func (e *Ellipse) IsInShape(point math3d.Vec2) bool {
	p := e.localFrame(point)

	rx := e.Size.X / 2
	ry := e.Size.Y / 2
	if rx == 0 || ry == 0 {
		return false
	}

	xQuot := p.X * p.X / (rx * rx)
	yQuot := p.Y * p.Y / (ry * ry)

	return xQuot+yQuot < 1
}
