package material

import (
	"testing"
	"time"

	"github.com/picogfx/pico3d/pkg/math3d"
)

func TestPack565(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want uint16
	}{
		{"black", NewRGB(0, 0, 0), 0x0000},
		{"white", NewRGB(255, 255, 255), 0xFFFF},
		{"red", NewRGB(255, 0, 0), 0xF800},
		{"green", NewRGB(0, 255, 0), 0x07E0},
		{"blue", NewRGB(0, 0, 255), 0x001F},
		{"low bits dropped", NewRGB(7, 3, 7), 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Pack565(); got != tt.want {
				t.Errorf("Pack565(%v) = %#04x, want %#04x", tt.c, got, tt.want)
			}
		})
	}
}

func TestUnpack565RoundTrip(t *testing.T) {
	colors := []RGB{
		NewRGB(248, 252, 248),
		NewRGB(8, 4, 8),
		NewRGB(160, 100, 64),
	}

	for _, c := range colors {
		// Channels already quantized to 565 must survive a round trip
		q := Unpack565(c.Pack565())
		want := RGB{c.R &^ 0x07, c.G &^ 0x03, c.B &^ 0x07}
		if q != want {
			t.Errorf("round trip of %v = %v, want %v", c, q, want)
		}
	}
}

func TestScale(t *testing.T) {
	c := NewRGB(255, 128, 0).Scale(128)
	if c.R != 128 {
		t.Errorf("R = %d, want 128", c.R)
	}
	if c.G != 64 {
		t.Errorf("G = %d, want 64", c.G)
	}
	if c.B != 0 {
		t.Errorf("B = %d, want 0", c.B)
	}
}

func TestAddSaturates(t *testing.T) {
	c := NewRGB(250, 10, 0).Add(20)
	if c.R != 255 {
		t.Errorf("R = %d, want saturated 255", c.R)
	}
	if c.G != 30 || c.B != 20 {
		t.Errorf("got %v, want [255, 30, 20]", c)
	}
}

func TestHueShift(t *testing.T) {
	// Rotating red 120 degrees around the gray diagonal makes green dominant
	c := NewRGB(255, 0, 0).HueShift(120)
	if c.G <= c.R || c.G <= c.B {
		t.Errorf("red shifted 120 degrees should be green-dominant, got %v", c)
	}

	// 0 degrees is the identity
	if got := NewRGB(10, 20, 30).HueShift(0); got != NewRGB(10, 20, 30) {
		t.Errorf("zero shift changed the color: %v", got)
	}
}

func TestLerp(t *testing.T) {
	a := NewRGB(0, 0, 0)
	b := NewRGB(200, 100, 50)

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(…, 0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(…, 1) = %v, want %v", got, b)
	}
	mid := Lerp(a, b, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("Lerp(…, 0.5) = %v, want [100, 50, 25]", mid)
	}
}

func TestSolid(t *testing.T) {
	var m Material = NewSolid(NewRGB(12, 34, 56))
	if got := m.ColorAt(math3d.V2(0.3, 0.9)); got != NewRGB(12, 34, 56) {
		t.Errorf("solid color = %v, want [12, 34, 56]", got)
	}
}

func TestTextureSampleNearest(t *testing.T) {
	tex := NewTexture(2, 2)
	tex.SetPixel(0, 0, NewRGB(255, 0, 0))
	tex.SetPixel(1, 0, NewRGB(0, 255, 0))
	tex.SetPixel(0, 1, NewRGB(0, 0, 255))
	tex.SetPixel(1, 1, NewRGB(255, 255, 255))

	// V is flipped on sample, so v near 1 reads row 0
	if got := tex.Sample(0.1, 0.9); got != NewRGB(255, 0, 0) {
		t.Errorf("top-left sample = %v, want red", got)
	}
	if got := tex.Sample(0.9, 0.1); got != NewRGB(255, 255, 255) {
		t.Errorf("bottom-right sample = %v, want white", got)
	}
}

func TestTextureWrapModes(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.SetPixel(0, 0, NewRGB(255, 0, 0))
	tex.SetPixel(1, 0, NewRGB(0, 255, 0))

	// Repeat: u=1.1 wraps to 0.1
	if got := tex.Sample(1.1, 0.5); got != NewRGB(255, 0, 0) {
		t.Errorf("repeat sample = %v, want red", got)
	}

	tex.WrapU = WrapClamp
	if got := tex.Sample(1.5, 0.5); got != NewRGB(0, 255, 0) {
		t.Errorf("clamp sample = %v, want green", got)
	}
	if got := tex.Sample(-0.5, 0.5); got != NewRGB(255, 0, 0) {
		t.Errorf("clamp sample = %v, want red", got)
	}
}

func TestTextureBilinear(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.SetPixel(0, 0, NewRGB(0, 0, 0))
	tex.SetPixel(1, 0, NewRGB(200, 200, 200))
	tex.FilterMode = FilterBilinear
	tex.WrapU = WrapClamp

	got := tex.Sample(0.5, 0.5)
	if got.R < 50 || got.R > 150 {
		t.Errorf("bilinear midpoint = %v, want gray between the texels", got)
	}
}

func TestNewChecker(t *testing.T) {
	c1 := NewRGB(255, 255, 255)
	c2 := NewRGB(0, 0, 0)
	tex := NewChecker(4, 4, 2, c1, c2)

	if got := tex.GetPixel(0, 0); got != c1 {
		t.Errorf("pixel (0,0) = %v, want %v", got, c1)
	}
	if got := tex.GetPixel(2, 0); got != c2 {
		t.Errorf("pixel (2,0) = %v, want %v", got, c2)
	}
	if got := tex.GetPixel(2, 2); got != c1 {
		t.Errorf("pixel (2,2) = %v, want %v", got, c1)
	}
}

func TestNewGradient(t *testing.T) {
	tex := NewGradient(8, 1, NewRGB(0, 0, 0), NewRGB(255, 255, 255))

	left := tex.GetPixel(0, 0)
	right := tex.GetPixel(7, 0)
	if left.R >= right.R {
		t.Errorf("gradient should increase left to right, got %v .. %v", left, right)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("nonexistent.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSequenceAdvance(t *testing.T) {
	frames := []*Texture{
		NewChecker(2, 2, 1, NewRGB(255, 0, 0), NewRGB(255, 0, 0)),
		NewChecker(2, 2, 1, NewRGB(0, 255, 0), NewRGB(0, 255, 0)),
		NewChecker(2, 2, 1, NewRGB(0, 0, 255), NewRGB(0, 0, 255)),
	}

	s := NewSequence(frames, 10) // 100ms per frame
	start := time.Now()
	s.start = start

	s.Update(start.Add(50 * time.Millisecond))
	if s.CurrentFrame() != 0 {
		t.Errorf("frame at 50ms = %d, want 0", s.CurrentFrame())
	}

	s.Update(start.Add(150 * time.Millisecond))
	if s.CurrentFrame() != 1 {
		t.Errorf("frame at 150ms = %d, want 1", s.CurrentFrame())
	}

	// Wraps around after the last frame
	s.Update(start.Add(350 * time.Millisecond))
	if s.CurrentFrame() != 0 {
		t.Errorf("frame at 350ms = %d, want 0", s.CurrentFrame())
	}

	if got := s.ColorAt(math3d.V2(0.5, 0.5)); got != NewRGB(255, 0, 0) {
		t.Errorf("ColorAt after wrap = %v, want red frame", got)
	}
}

func TestSequenceDefaults(t *testing.T) {
	s := NewSequence(nil, -5)
	if s.fps != 24 {
		t.Errorf("fps = %v, want default 24", s.fps)
	}
	if got := s.ColorAt(math3d.V2(0, 0)); got != (RGB{}) {
		t.Errorf("empty sequence sample = %v, want zero color", got)
	}
}

func BenchmarkTextureSampleNearest(b *testing.B) {
	tex := NewChecker(64, 64, 8, NewRGB(255, 255, 255), NewRGB(0, 0, 0))
	for b.Loop() {
		_ = tex.Sample(0.37, 0.61)
	}
}

func BenchmarkTextureSampleBilinear(b *testing.B) {
	tex := NewChecker(64, 64, 8, NewRGB(255, 255, 255), NewRGB(0, 0, 0))
	tex.FilterMode = FilterBilinear
	for b.Loop() {
		_ = tex.Sample(0.37, 0.61)
	}
}

func BenchmarkPack565(b *testing.B) {
	c := NewRGB(160, 100, 64)
	for b.Loop() {
		_ = c.Pack565()
	}
}
