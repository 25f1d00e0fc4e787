package math3d

import "testing"

func TestVec2Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float32
	}{
		{"unit axes", V2(1, 0), V2(0, 1), 1},
		{"reversed", V2(0, 1), V2(1, 0), -1},
		{"parallel", V2(2, 2), V2(4, 4), 0},
		{"general", V2(3, 1), V2(1, 2), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cross(tc.b); got != tc.want {
				t.Errorf("Cross(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	v := V2(3, 4).Normalize()
	if !ApproxEqual(v.Len(), 1) {
		t.Errorf("length = %v, want 1", v.Len())
	}
	if got := Zero2().Normalize(); got != Zero2() {
		t.Errorf("zero vector should normalize to zero, got %v", got)
	}
}

func TestVec3DivComp(t *testing.T) {
	got := V3(2, 9, -4).DivComp(V3(2, 3, 4))
	if got != V3(1, 3, -1) {
		t.Errorf("DivComp = %v, want [1, 3, -1]", got)
	}

	// Zero scale components must not produce NaN or Inf.
	got = V3(2, 9, -4).DivComp(V3(0, 3, 0))
	if got != V3(2, 3, -4) {
		t.Errorf("DivComp with zero components = %v, want [2, 3, -4]", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := V3(1, 5, -2)
	b := V3(3, 2, -4)

	if got := a.Min(b); got != V3(1, 2, -4) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != V3(3, 5, -2) {
		t.Errorf("Max = %v", got)
	}
}

func TestMin3Max3(t *testing.T) {
	if Min3(1, 2, 3) != 1 || Min3(3, 1, 2) != 1 || Min3(2, 3, 1) != 1 {
		t.Error("Min3 failed")
	}
	if Max3(1, 2, 3) != 3 || Max3(3, 1, 2) != 3 || Max3(2, 3, 1) != 3 {
		t.Error("Max3 failed")
	}
}

func TestVec2String(t *testing.T) {
	if got := V2(1, 2.5).String(); got != "[1.000, 2.500]" {
		t.Errorf("String = %q", got)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, s float32
		want    float32
	}{
		{"start", 2, 10, 0, 2},
		{"end", 2, 10, 1, 10},
		{"midpoint", 2, 10, 0.5, 6},
		{"negative range", 4, -4, 0.25, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lerp(tc.a, tc.b, tc.s); !ApproxEqual(got, tc.want) {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.s, got, tc.want)
			}
		})
	}
}

func TestVec2Lerp(t *testing.T) {
	a := V2(0, 4)
	b := V2(8, 0)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(…, 0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(…, 1) = %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.X != 4 || mid.Y != 2 {
		t.Errorf("Lerp(…, 0.5) = %v, want [4, 2]", mid)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 0, -2)
	b := V3(4, 8, -6)

	mid := a.Lerp(b, 0.5)
	if !vecNear(mid, V3(2, 4, -4), 1e-6) {
		t.Errorf("Lerp(…, 0.5) = %v, want [2, 4, -4]", mid)
	}
	if got := a.Lerp(b, 1); !vecNear(got, b, 1e-6) {
		t.Errorf("Lerp(…, 1) = %v, want %v", got, b)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec2Cross(b *testing.B) {
	v1 := V2(1, 2)
	v2 := V2(3, 4)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}
