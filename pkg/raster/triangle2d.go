package raster

import (
	"fmt"

	"github.com/picogfx/pico3d/pkg/math3d"
)

// Triangle2D is a screen-space triangle with precomputed edge vectors,
// inverse barycentric denominator, and bounding box. The derived fields
// stay consistent with the vertices because SetVertices is the only
// mutation path.
type Triangle2D struct {
	P1, P2, P3 math3d.Vec2

	v0, v1   math3d.Vec2 // Edge vectors P2-P1 and P3-P1
	invDenom float32
	// valid is only set by recompute when the area check passes, so a
	// zero-value triangle counts as degenerate and never contains a point.
	valid  bool
	bounds Rect
}

// NewTriangle2D creates a screen-space triangle from three vertices.
func NewTriangle2D(p1, p2, p3 math3d.Vec2) Triangle2D {
	t := Triangle2D{}
	t.SetVertices(p1, p2, p3)
	return t
}

// SetVertices replaces the vertices and recomputes the edge vectors,
// denominator, and bounding box.
func (t *Triangle2D) SetVertices(p1, p2, p3 math3d.Vec2) {
	t.P1, t.P2, t.P3 = p1, p2, p3
	t.recompute()
}

func (t *Triangle2D) recompute() {
	t.v0 = t.P2.Sub(t.P1)
	t.v1 = t.P3.Sub(t.P1)

	// Twice the signed area. Near-zero area means the triangle is
	// collapsed or edge-on; mark it degenerate so containment always
	// misses instead of dividing by a tiny denominator.
	d := t.v0.X*t.v1.Y - t.v1.X*t.v0.Y
	if math3d.Abs(d) > math3d.Epsilon {
		t.invDenom = 1 / d
		t.valid = true
	} else {
		t.invDenom = 0
		t.valid = false
	}

	t.bounds = Rect{
		Min: t.P1.Min(t.P2).Min(t.P3),
		Max: t.P1.Max(t.P2).Max(t.P3),
	}
}

// Degenerate reports whether the triangle has (near-)zero area.
// A degenerate triangle never contains any point. The zero value is
// degenerate until SetVertices establishes a real area.
func (t *Triangle2D) Degenerate() bool {
	return !t.valid
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t *Triangle2D) Bounds() Rect {
	return t.bounds
}

// Barycentric computes the weights (u, v, w) of (x, y) relative to the
// triangle's vertices, with point = u*P1 + v*P2 + w*P3 and u+v+w = 1.
// The boolean result reports containment, boundary inclusive; edge and
// vertex touches count as inside so adjacent triangles sharing an edge
// tie-break identically. For a degenerate triangle the result is always
// false and the weights are meaningless.
func (t *Triangle2D) Barycentric(x, y float32) (u, v, w float32, inside bool) {
	if !t.valid {
		return 0, 0, 0, false
	}

	qx := x - t.P1.X
	qy := y - t.P1.Y

	v = (qx*t.v1.Y - t.v1.X*qy) * t.invDenom
	w = (t.v0.X*qy - qx*t.v0.Y) * t.invDenom
	u = 1 - v - w

	return u, v, w, u >= 0 && v >= 0 && w >= 0
}

// Overlaps reports whether the triangle's bounding box intersects bounds.
// Conservative: a true result does not guarantee true triangle coverage,
// callers still run the per-pixel barycentric test.
func (t *Triangle2D) Overlaps(bounds Rect) bool {
	return t.bounds.Overlaps(bounds)
}

// String returns the three vertices for diagnostics.
func (t *Triangle2D) String() string {
	return fmt.Sprintf("%v %v %v", t.P1, t.P2, t.P3)
}
