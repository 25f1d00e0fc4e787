package raster

import (
	"sort"

	"github.com/picogfx/pico3d/pkg/material"
	"github.com/picogfx/pico3d/pkg/math3d"
	"github.com/picogfx/pico3d/pkg/mesh"
)

// Stats counts what happened to source triangles during pass setup.
type Stats struct {
	Projected  int // Triangles projected into screen space
	Degenerate int // Skipped: collapsed to (near-)zero area
	Offscreen  int // Skipped: bounding box outside the pass region
	Shaded     int // Candidates accepted so far across Shade calls
}

// Pass holds the screen-space triangles of one rasterization pass over a
// triangle group, depth-sorted and spatially indexed. The pass borrows
// the group's vertex data; the group must stay alive and unmodified until
// shading is done.
type Pass struct {
	triangles []*RasterTriangle
	tree      *QuadTree
	region    Rect
	stats     Stats
}

// NewPass projects every triangle of the group into screen space for the
// given camera and builds the pass. Degenerate projections and triangles
// outside region are dropped. Survivors are ordered front to back, so
// shading resolves each pixel with the first containing triangle.
func NewPass(group *mesh.TriangleGroup, cam math3d.Transform, lookDir math3d.Quaternion, mat material.Material, region Rect) *Pass {
	p := &Pass{
		triangles: make([]*RasterTriangle, 0, group.TriangleCount()),
		region:    region,
	}

	for i := range group.TriangleCount() {
		t := NewRasterTriangle(cam, lookDir, group.Triangle(i), mat)
		p.stats.Projected++

		if t.Degenerate() {
			p.stats.Degenerate++
			continue
		}
		if !t.Overlaps(region) {
			p.stats.Offscreen++
			continue
		}
		p.triangles = append(p.triangles, t)
	}

	// Nearer triangles have larger camera-space Z (camera looks down -Z)
	sort.Slice(p.triangles, func(i, j int) bool {
		return p.triangles[i].AverageDepth > p.triangles[j].AverageDepth
	})

	p.tree = NewQuadTree(region)
	for _, t := range p.triangles {
		p.tree.Insert(t)
	}

	return p
}

// TriangleCount returns the number of triangles that survived projection.
func (p *Pass) TriangleCount() int {
	return len(p.triangles)
}

// Stats returns the pass counters.
func (p *Pass) Stats() Stats {
	return p.stats
}

// Shade resolves the color of screen point (x, y). Candidate triangles
// come from the spatial index in front-to-back order; the first one
// containing the point wins and its material is sampled with the
// interpolated UV. The boolean result is false when no triangle covers
// the point.
func (p *Pass) Shade(x, y float32) (material.RGB, bool) {
	for _, t := range p.tree.QueryPoint(x, y) {
		u, v, w, inside := t.Barycentric(x, y)
		if !inside {
			continue
		}
		p.stats.Shaded++
		if t.Mat == nil {
			return material.RGB{}, true
		}
		return t.Mat.ColorAt(t.UVAt(u, v, w)), true
	}
	return material.RGB{}, false
}

// Hit returns the frontmost triangle covering (x, y) with its barycentric
// weights, or nil when the point is uncovered.
func (p *Pass) Hit(x, y float32) (*RasterTriangle, float32, float32, float32) {
	for _, t := range p.tree.QueryPoint(x, y) {
		if u, v, w, inside := t.Barycentric(x, y); inside {
			return t, u, v, w
		}
	}
	return nil, 0, 0, 0
}
