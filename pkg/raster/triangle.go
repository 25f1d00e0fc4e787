package raster

import (
	"github.com/picogfx/pico3d/pkg/material"
	"github.com/picogfx/pico3d/pkg/math3d"
	"github.com/picogfx/pico3d/pkg/mesh"
)

// RasterTriangle is a screen-space triangle bound to its source 3D data.
// It borrows the source vertex, normal, and UV storage from the owning
// triangle group and must not outlive the rasterization pass it was
// projected for.
type RasterTriangle struct {
	Triangle2D

	// Borrowed source 3D data
	W1, W2, W3 *math3d.Vec3
	Normal     math3d.Vec3

	UV1, UV2, UV3 *math3d.Vec2
	HasUV         bool

	Mat material.Material

	// Mean camera-space Z of the three vertices. The camera looks down
	// -Z, so larger values are nearer; sort descending for front-to-back.
	AverageDepth float32
}

// NewRasterTriangle projects a source 3D triangle into screen space.
// Each vertex is moved into camera space by the inverse of the camera's
// rotation composed with its look direction, then divided component-wise
// by the camera scale. The transformed X and Y are used directly as
// screen coordinates; no perspective divide is applied.
func NewRasterTriangle(cam math3d.Transform, lookDir math3d.Quaternion, src mesh.Triangle, mat material.Material) *RasterTriangle {
	t := &RasterTriangle{
		W1:     src.P1,
		W2:     src.P2,
		W3:     src.P3,
		Normal: src.Normal,
		Mat:    mat,
	}

	if src.HasUV {
		t.UV1 = src.UV1
		t.UV2 = src.UV2
		t.UV3 = src.UV3
		t.HasUV = true
	}

	invRot := cam.GetRotation().Multiply(lookDir).Conjugate()
	pos := cam.GetPosition()
	scale := cam.GetScale()

	a := invRot.RotateVector(src.P1.Sub(pos)).DivComp(scale)
	b := invRot.RotateVector(src.P2.Sub(pos)).DivComp(scale)
	c := invRot.RotateVector(src.P3.Sub(pos)).DivComp(scale)

	t.AverageDepth = (a.Z + b.Z + c.Z) / 3

	t.SetVertices(a.XY(), b.XY(), c.XY())

	return t
}

// GetBarycentricCoords computes the barycentric weights of (x, y) and
// reports containment. Degenerate triangles always miss.
func (t *RasterTriangle) GetBarycentricCoords(x, y float32) (u, v, w float32, inside bool) {
	return t.Barycentric(x, y)
}

// Material returns the bound material.
func (t *RasterTriangle) Material() material.Material {
	return t.Mat
}

// UVAt interpolates the source UV coordinates with the given barycentric
// weights. Returns the zero vector when the triangle carries no UVs.
func (t *RasterTriangle) UVAt(u, v, w float32) math3d.Vec2 {
	if !t.HasUV {
		return math3d.Zero2()
	}
	return t.UV1.Scale(u).Add(t.UV2.Scale(v)).Add(t.UV3.Scale(w))
}
