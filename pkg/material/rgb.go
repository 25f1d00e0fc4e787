// Package material provides color handling and surface sampling for pico3d.
package material

import (
	"fmt"
	"image/color"
	"math"

	"github.com/picogfx/pico3d/pkg/math3d"
)

// RGB is an 8-bit-per-channel color. The unpacked channels are kept so
// repeated color math stays loss-free; Pack565 produces the 16-bit value
// that microcontroller display buffers want.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a color from 8-bit channels.
func NewRGB(r, g, b uint8) RGB {
	return RGB{r, g, b}
}

// FromVec3 creates a color from a vector with components in [0, 255].
func FromVec3(v math3d.Vec3) RGB {
	v = v.Constrain(0, 255)
	return RGB{uint8(v.X), uint8(v.Y), uint8(v.Z)}
}

// Unpack565 expands a packed RGB565 value back to 8-bit channels.
// The low bits lost by packing are left zero.
func Unpack565(c uint16) RGB {
	return RGB{
		R: uint8(c>>11) << 3,
		G: uint8(c>>5&0x3f) << 2,
		B: uint8(c&0x1f) << 3,
	}
}

// Pack565 encodes the color as 16-bit RGB565 (bits 15-0 = RRRRRGGGGGGBBBBB).
func (c RGB) Pack565() uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Scale scales each channel so full brightness maps to maxBrightness.
func (c RGB) Scale(maxBrightness uint8) RGB {
	scale := func(ch uint8) uint8 {
		return uint8(uint16(ch) * uint16(maxBrightness) / 255)
	}
	return RGB{scale(c.R), scale(c.G), scale(c.B)}
}

// Add adds value to each channel, saturating at 255.
func (c RGB) Add(value uint8) RGB {
	add := func(ch uint8) uint8 {
		s := uint16(ch) + uint16(value)
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return RGB{add(c.R), add(c.G), add(c.B)}
}

// HueShift rotates the color around the RGB-cube diagonal by hueDeg degrees.
func (c RGB) HueShift(hueDeg float32) RGB {
	halfRad := float64(hueDeg) * math.Pi / 360
	hueRat := 0.5 * math.Sin(halfRad)
	q := math3d.Q(float32(math.Cos(halfRad)), float32(hueRat), float32(hueRat), float32(hueRat))

	v := q.RotateVector(math3d.V3(float32(c.R), float32(c.G), float32(c.B)))
	return FromVec3(v)
}

// Lerp interpolates between two colors by ratio in [0, 1].
func Lerp(a, b RGB, ratio float32) RGB {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x)*(1-ratio) + float32(y)*ratio)
	}
	return RGB{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B)}
}

// RGBA bridges to the standard image/color representation (alpha 255).
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// String returns a readable representation, e.g. "[255, 0, 128]".
func (c RGB) String() string {
	return fmt.Sprintf("[%d, %d, %d]", c.R, c.G, c.B)
}
