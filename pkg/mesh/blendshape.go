package mesh

import (
	"github.com/picogfx/pico3d/pkg/math3d"
)

// Blendshape morphs a subset of a triangle group's vertices toward target
// offsets, scaled by Weight. Weight 0 leaves the group unchanged; Weight 1
// applies the full offsets.
type Blendshape struct {
	// Weight controls the intensity of the morph.
	Weight float32

	indexes []int
	offsets []math3d.Vec3
}

// NewBlendshape creates a morph over the given vertex indexes. The two
// slices must have equal length; offsets[i] is the full-weight displacement
// of vertex indexes[i]. The slices are borrowed, not copied.
func NewBlendshape(indexes []int, offsets []math3d.Vec3) *Blendshape {
	if len(indexes) != len(offsets) {
		panic("mesh: blendshape indexes and offsets length mismatch")
	}
	return &Blendshape{
		indexes: indexes,
		offsets: offsets,
	}
}

// Count returns the number of affected vertices.
func (b *Blendshape) Count() int {
	return len(b.indexes)
}

// Apply displaces the group's vertices by Weight times each offset.
// Indexes outside the group are skipped. Bounds are refreshed afterward.
func (b *Blendshape) Apply(g *TriangleGroup) {
	if b.Weight == 0 {
		return
	}
	for i, idx := range b.indexes {
		if idx < 0 || idx >= len(g.Positions) {
			continue
		}
		g.Positions[idx] = g.Positions[idx].Add(b.offsets[i].Scale(b.Weight))
	}
	g.CalculateBounds()
}
