package raster

import (
	"math"
	"testing"

	"github.com/picogfx/pico3d/pkg/material"
	"github.com/picogfx/pico3d/pkg/math3d"
	"github.com/picogfx/pico3d/pkg/mesh"
)

func sourceTriangle(p1, p2, p3 math3d.Vec3) (*mesh.TriangleGroup, mesh.Triangle) {
	g := mesh.NewTriangleGroup("test")
	g.Positions = []math3d.Vec3{p1, p2, p3}
	g.UVs = []math3d.Vec2{
		math3d.V2(0, 0),
		math3d.V2(1, 0),
		math3d.V2(0, 1),
	}
	g.Faces = []mesh.Face{{V: [3]int{0, 1, 2}}}
	return g, g.Triangle(0)
}

func identityCamera() math3d.Transform {
	return math3d.NewTransform(math3d.Zero3(), math3d.QuaternionIdentity())
}

func TestProjectionIdentityCamera(t *testing.T) {
	_, src := sourceTriangle(
		math3d.V3(-1, -1, -5),
		math3d.V3(1, -1, -5),
		math3d.V3(0, 1, -5),
	)

	rt := NewRasterTriangle(identityCamera(), math3d.QuaternionIdentity(), src, nil)

	// Identity rotation, unit scale: screen X,Y equal source X,Y
	if !near(rt.P1.X, -1) || !near(rt.P1.Y, -1) {
		t.Errorf("P1 = %v, want [-1, -1]", rt.P1)
	}
	if !near(rt.P2.X, 1) || !near(rt.P2.Y, -1) {
		t.Errorf("P2 = %v, want [1, -1]", rt.P2)
	}
	if !near(rt.P3.X, 0) || !near(rt.P3.Y, 1) {
		t.Errorf("P3 = %v, want [0, 1]", rt.P3)
	}
	if !near(rt.AverageDepth, -5) {
		t.Errorf("AverageDepth = %v, want -5", rt.AverageDepth)
	}
	if rt.Degenerate() {
		t.Error("projected triangle should not be degenerate")
	}
}

func TestProjectionCameraOffset(t *testing.T) {
	_, src := sourceTriangle(
		math3d.V3(-1, -1, -5),
		math3d.V3(1, -1, -5),
		math3d.V3(0, 1, -5),
	)

	cam := math3d.NewTransform(math3d.V3(10, 0, 0), math3d.QuaternionIdentity())
	rt := NewRasterTriangle(cam, math3d.QuaternionIdentity(), src, nil)

	if !near(rt.P1.X, -11) {
		t.Errorf("P1.X = %v, camera offset should shift screen coordinates", rt.P1.X)
	}
}

func TestProjectionCameraScale(t *testing.T) {
	_, src := sourceTriangle(
		math3d.V3(-2, -2, -4),
		math3d.V3(2, -2, -4),
		math3d.V3(0, 2, -4),
	)

	cam := identityCamera()
	cam.Scale = math3d.V3(2, 2, 2)
	rt := NewRasterTriangle(cam, math3d.QuaternionIdentity(), src, nil)

	if !near(rt.P1.X, -1) || !near(rt.P1.Y, -1) {
		t.Errorf("P1 = %v, want halved by camera scale", rt.P1)
	}
	if !near(rt.AverageDepth, -2) {
		t.Errorf("AverageDepth = %v, want -2", rt.AverageDepth)
	}
}

func TestProjectionCameraRotation(t *testing.T) {
	_, src := sourceTriangle(
		math3d.V3(0, -1, -5),
		math3d.V3(0, 1, -5),
		math3d.V3(0, 0, -6),
	)

	cam := math3d.NewTransform(math3d.Zero3(), math3d.FromAxisAngle(math3d.Up(), math.Pi/2))
	rt := NewRasterTriangle(cam, math3d.QuaternionIdentity(), src, nil)

	// The inverse of a +90 degree yaw maps (0, 0, -6) to (6, 0, 0)
	if !near(rt.P3.X, 6) || !near(rt.P3.Y, 0) {
		t.Errorf("P3 = %v, want [6, 0]", rt.P3)
	}
}

func TestProjectionEdgeOnDegenerate(t *testing.T) {
	// Triangle in the XZ plane viewed down -Z collapses to a line on screen
	_, src := sourceTriangle(
		math3d.V3(0, 0, -4),
		math3d.V3(1, 0, -5),
		math3d.V3(2, 0, -6),
	)

	rt := NewRasterTriangle(identityCamera(), math3d.QuaternionIdentity(), src, nil)
	if !rt.Degenerate() {
		t.Error("edge-on triangle should project degenerate")
	}
	if _, _, _, inside := rt.GetBarycentricCoords(1, 0); inside {
		t.Error("degenerate projection must never report containment")
	}
}

func TestRasterTriangleBorrowsSource(t *testing.T) {
	g, src := sourceTriangle(
		math3d.V3(-1, -1, -5),
		math3d.V3(1, -1, -5),
		math3d.V3(0, 1, -5),
	)

	rt := NewRasterTriangle(identityCamera(), math3d.QuaternionIdentity(), src, nil)

	if rt.W1 != &g.Positions[0] || rt.W2 != &g.Positions[1] || rt.W3 != &g.Positions[2] {
		t.Error("world-space pointers should borrow the group's storage")
	}
	if !rt.HasUV || rt.UV1 != &g.UVs[0] {
		t.Error("UV pointers should borrow the group's storage")
	}
}

func TestRasterTriangleMaterial(t *testing.T) {
	_, src := sourceTriangle(
		math3d.V3(-1, -1, -5),
		math3d.V3(1, -1, -5),
		math3d.V3(0, 1, -5),
	)

	mat := material.NewSolid(material.NewRGB(200, 100, 50))
	rt := NewRasterTriangle(identityCamera(), math3d.QuaternionIdentity(), src, mat)

	if rt.Material() != material.Material(mat) {
		t.Error("Material should return the bound material")
	}
}

func TestUVAt(t *testing.T) {
	_, src := sourceTriangle(
		math3d.V3(-1, -1, -5),
		math3d.V3(1, -1, -5),
		math3d.V3(0, 1, -5),
	)

	rt := NewRasterTriangle(identityCamera(), math3d.QuaternionIdentity(), src, nil)

	// Full weight on the second vertex picks its UV
	uv := rt.UVAt(0, 1, 0)
	if !near(uv.X, 1) || !near(uv.Y, 0) {
		t.Errorf("UVAt(0,1,0) = %v, want [1, 0]", uv)
	}

	// Centroid averages the three UVs
	third := float32(1.0 / 3.0)
	uv = rt.UVAt(third, third, third)
	if !near(uv.X, third) || !near(uv.Y, third) {
		t.Errorf("centroid UV = %v, want [1/3, 1/3]", uv)
	}
}

func TestUVAtWithoutUVs(t *testing.T) {
	g := mesh.NewTriangleGroup("bare")
	g.Positions = []math3d.Vec3{
		math3d.V3(-1, -1, -5),
		math3d.V3(1, -1, -5),
		math3d.V3(0, 1, -5),
	}
	g.Faces = []mesh.Face{{V: [3]int{0, 1, 2}}}

	rt := NewRasterTriangle(identityCamera(), math3d.QuaternionIdentity(), g.Triangle(0), nil)
	if rt.HasUV {
		t.Error("triangle without source UVs should not claim UVs")
	}
	if uv := rt.UVAt(1, 0, 0); uv != math3d.Zero2() {
		t.Errorf("UVAt without UVs = %v, want zero", uv)
	}
}

func BenchmarkNewRasterTriangle(b *testing.B) {
	_, src := sourceTriangle(
		math3d.V3(-1, -1, -5),
		math3d.V3(1, -1, -5),
		math3d.V3(0, 1, -5),
	)
	cam := identityCamera()
	look := math3d.QuaternionIdentity()

	for b.Loop() {
		_ = NewRasterTriangle(cam, look, src, nil)
	}
}
