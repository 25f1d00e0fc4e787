package material

import "github.com/picogfx/pico3d/pkg/math3d"

// Material resolves a surface color at a UV coordinate (0-1 range).
// The raster core treats materials as opaque references; implementations
// decide wrap, filtering, and animation behavior.
type Material interface {
	ColorAt(uv math3d.Vec2) RGB
}

// Solid is a constant-color material.
type Solid struct {
	Color RGB
}

// NewSolid creates a material that returns the same color everywhere.
func NewSolid(c RGB) *Solid {
	return &Solid{Color: c}
}

// ColorAt implements Material.
func (s *Solid) ColorAt(math3d.Vec2) RGB {
	return s.Color
}
