// Package mesh provides 3D source geometry for the pico3d rasterizer.
package mesh

import (
	"github.com/picogfx/pico3d/pkg/math3d"
)

// TriangleGroup holds shared vertex data and the faces indexing into it.
// UV data is optional: a group either carries one UV per vertex or none.
type TriangleGroup struct {
	Name      string
	Positions []math3d.Vec3
	UVs       []math3d.Vec2 // Empty, or one entry per position
	Faces     []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face references three vertices by index.
type Face struct {
	V [3]int // Indices into TriangleGroup.Positions
}

// Triangle is a view of one source triangle: borrowed vertex positions,
// a face normal, and optional borrowed UVs. The pointers stay valid as
// long as the owning group does; the rasterizer never copies or frees them.
type Triangle struct {
	P1, P2, P3    *math3d.Vec3
	Normal        math3d.Vec3
	UV1, UV2, UV3 *math3d.Vec2
	HasUV         bool
}

// NewTriangleGroup creates an empty triangle group.
func NewTriangleGroup(name string) *TriangleGroup {
	return &TriangleGroup{
		Name:      name,
		Positions: make([]math3d.Vec3, 0),
		Faces:     make([]Face, 0),
	}
}

// HasUV reports whether the group carries texture coordinates.
func (g *TriangleGroup) HasUV() bool {
	return len(g.UVs) == len(g.Positions) && len(g.UVs) > 0
}

// TriangleCount returns the number of triangles.
func (g *TriangleGroup) TriangleCount() int {
	return len(g.Faces)
}

// VertexCount returns the number of vertices.
func (g *TriangleGroup) VertexCount() int {
	return len(g.Positions)
}

// Triangle returns a borrowed view of face i with its face normal.
func (g *TriangleGroup) Triangle(i int) Triangle {
	f := g.Faces[i]
	t := Triangle{
		P1: &g.Positions[f.V[0]],
		P2: &g.Positions[f.V[1]],
		P3: &g.Positions[f.V[2]],
	}

	edge1 := t.P2.Sub(*t.P1)
	edge2 := t.P3.Sub(*t.P1)
	t.Normal = edge1.Cross(edge2).Normalize()

	if g.HasUV() {
		t.UV1 = &g.UVs[f.V[0]]
		t.UV2 = &g.UVs[f.V[1]]
		t.UV3 = &g.UVs[f.V[2]]
		t.HasUV = true
	}

	return t
}

// CalculateBounds computes the axis-aligned bounding box.
func (g *TriangleGroup) CalculateBounds() {
	if len(g.Positions) == 0 {
		return
	}

	g.BoundsMin = g.Positions[0]
	g.BoundsMax = g.Positions[0]

	for _, p := range g.Positions[1:] {
		g.BoundsMin = g.BoundsMin.Min(p)
		g.BoundsMax = g.BoundsMax.Max(p)
	}
}

// Center returns the center of the bounding box.
func (g *TriangleGroup) Center() math3d.Vec3 {
	return g.BoundsMin.Add(g.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (g *TriangleGroup) Size() math3d.Vec3 {
	return g.BoundsMax.Sub(g.BoundsMin)
}

// Transform applies a transform to every vertex position.
func (g *TriangleGroup) Transform(t math3d.Transform) {
	for i := range g.Positions {
		g.Positions[i] = t.Apply(g.Positions[i])
	}
	g.CalculateBounds()
}

// Translate moves every vertex position by offset.
func (g *TriangleGroup) Translate(offset math3d.Vec3) {
	for i := range g.Positions {
		g.Positions[i] = g.Positions[i].Add(offset)
	}
	g.CalculateBounds()
}

// ScaleUniform scales every vertex position about the origin.
func (g *TriangleGroup) ScaleUniform(s float32) {
	for i := range g.Positions {
		g.Positions[i] = g.Positions[i].Scale(s)
	}
	g.CalculateBounds()
}

// Clone creates a deep copy of the group.
func (g *TriangleGroup) Clone() *TriangleGroup {
	clone := &TriangleGroup{
		Name:      g.Name,
		Positions: make([]math3d.Vec3, len(g.Positions)),
		UVs:       make([]math3d.Vec2, len(g.UVs)),
		Faces:     make([]Face, len(g.Faces)),
		BoundsMin: g.BoundsMin,
		BoundsMax: g.BoundsMax,
	}
	copy(clone.Positions, g.Positions)
	copy(clone.UVs, g.UVs)
	copy(clone.Faces, g.Faces)
	return clone
}
