package noise

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Faultbox/colonysim/internal/engine/texture"
	"github.com/Faultbox/colonysim/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func approxVec(a, b math.Vec3, eps float32) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps
}

// gradient is a 2x2 texture with distinct corners.
func gradient(t *testing.T, opts Options) *RepeatingTexture {
	t.Helper()
	tex, err := NewRepeatingTexture(2, 2, []math.Vec3{
		{X: 0}, {X: 1},
		{Z: 1}, {X: 1, Z: 1},
	}, opts)
	if err != nil {
		t.Fatalf("NewRepeatingTexture: %v", err)
	}
	return tex
}

func TestNewRepeatingTextureValidation(t *testing.T) {
	opts := DefaultOptions()

	if _, err := NewRepeatingTexture(0, 0, nil, opts); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("empty texture: err = %v, want ErrEmptyTexture", err)
	}
	if _, err := NewRepeatingTexture(2, 2, make([]math.Vec3, 3), opts); err == nil {
		t.Error("expected error for texel count mismatch")
	}
	opts.CellSize = 0
	if _, err := NewRepeatingTexture(1, 1, make([]math.Vec3, 1), opts); err == nil {
		t.Error("expected error for zero cell size")
	}
}

func TestSampleBilinear(t *testing.T) {
	tex := gradient(t, DefaultOptions())

	if got := tex.Sample(0, 0); got != tex.Texel(0, 0) {
		t.Errorf("Sample(0,0) = %v, want texel", got)
	}
	got := tex.Sample(0.5, 0)
	if !approxVec(got, math.Vec3{X: 0.5}, 1e-6) {
		t.Errorf("Sample(0.5,0) = %v, want (0.5, 0, 0)", got)
	}
	got = tex.Sample(0.5, 0.5)
	if !approxVec(got, math.Vec3{X: 0.5, Z: 0.5}, 1e-6) {
		t.Errorf("Sample(0.5,0.5) = %v, want (0.5, 0, 0.5)", got)
	}
}

func TestSampleWraps(t *testing.T) {
	tex := gradient(t, DefaultOptions())

	for _, c := range [][2]float32{{0.25, 0.75}, {1.6, 0.1}} {
		base := tex.Sample(c[0], c[1])
		for _, shift := range []float32{2, -2, 4} {
			got := tex.Sample(c[0]+shift, c[1]+shift)
			if !approxVec(got, base, 1e-5) {
				t.Errorf("Sample(%v+%v) = %v, want %v", c, shift, got, base)
			}
		}
	}
}

func TestOffsetIsDeterministic(t *testing.T) {
	tex, err := NewSimplexTexture(42, 16, DefaultOptions())
	if err != nil {
		t.Fatalf("NewSimplexTexture: %v", err)
	}
	p := math.Vec3{X: 3.3, Y: 0.5, Z: -7.1}

	a := tex.Offset(p, 0)
	b := tex.Offset(p, 100)
	if a != b {
		t.Errorf("offset changed over time without drift: %v vs %v", a, b)
	}
	if l := a.Length(); l > tex.Amplitude*2 {
		t.Errorf("offset length %v exceeds amplitude bound", l)
	}
}

func TestOffsetDrift(t *testing.T) {
	opts := DefaultOptions()
	opts.Drift = math.Vec3{X: 0.25}
	tex := gradient(t, opts)
	p := math.Vec3{}

	// Two seconds at 0.25 units/s samples half a unit further along X.
	moved := tex.Offset(p, 2)
	want := tex.Offset(math.Vec3{X: 0.5}, 0)
	if !approxVec(moved, want, 1e-6) {
		t.Errorf("drifted offset = %v, want %v", moved, want)
	}
}

func TestOffsetSkewSeparatesHeights(t *testing.T) {
	opts := DefaultOptions()
	opts.Amplitude = 1
	tex := gradient(t, opts)

	low := tex.Offset(math.Vec3{}, 0)
	high := tex.Offset(math.Vec3{Y: opts.CellSize / opts.Skew}, 0)
	if low == high {
		t.Error("stacked positions should sample different texels")
	}
}

func TestSimplexTextureTiles(t *testing.T) {
	const size = 32
	tex, err := NewSimplexTexture(7, size, DefaultOptions())
	if err != nil {
		t.Fatalf("NewSimplexTexture: %v", err)
	}

	// Neighbouring texels across the seam should be as close as interior neighbours.
	var seam, interior float32
	for y := 0; y < size; y++ {
		seam += tex.Texel(size-1, y).Distance(tex.Texel(0, y))
		interior += tex.Texel(size/2, y).Distance(tex.Texel(size/2+1, y))
	}
	if seam > interior*3 {
		t.Errorf("seam difference %v much larger than interior %v", seam, interior)
	}

	other, _ := NewSimplexTexture(7, size, DefaultOptions())
	if other.Texel(5, 9) != tex.Texel(5, 9) {
		t.Error("same seed should build the same texture")
	}
}

func TestImageRoundTrip(t *testing.T) {
	src, err := NewSimplexTexture(3, 8, DefaultOptions())
	if err != nil {
		t.Fatalf("NewSimplexTexture: %v", err)
	}

	path := filepath.Join(t.TempDir(), "noise.png")
	if err := texture.Save(path, src.Image()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path, 0, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w, h := got.Size()
	if w != 8 || h != 8 {
		t.Fatalf("size = %dx%d, want 8x8", w, h)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !approxVec(got.Texel(x, y), src.Texel(x, y), 1.0/127) {
				t.Fatalf("texel (%d,%d) = %v, want %v", x, y, got.Texel(x, y), src.Texel(x, y))
			}
		}
	}
}

func TestLoadResamples(t *testing.T) {
	src, _ := NewSimplexTexture(3, 8, DefaultOptions())
	path := filepath.Join(t.TempDir(), "noise.webp")
	if err := texture.Save(path, src.Image()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path, 16, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w, h := got.Size(); w != 16 || h != 16 {
		t.Errorf("size = %dx%d, want 16x16", w, h)
	}
}

func TestZeroField(t *testing.T) {
	if got := Zero.Offset(math.Vec3{X: 1, Y: 2, Z: 3}, 5); got != (math.Vec3{}) {
		t.Errorf("Zero.Offset = %v", got)
	}
}
