// Package noise provides the positional noise used to jitter sprite placement.
//
// The field is a small repeating texture of offset vectors laid over the XZ
// plane. Sampling the same position always yields the same offset unless the
// texture is given a drift velocity, in which case the lookup slides over time.
package noise

import (
	"errors"
	"fmt"
	gomath "math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/colonysim/pkg/math"
)

// Field produces a positional offset for a world-space point at time t (seconds).
type Field interface {
	Offset(p math.Vec3, t float32) math.Vec3
}

// FieldFunc adapts a function to the Field interface.
type FieldFunc func(p math.Vec3, t float32) math.Vec3

// Offset calls f.
func (f FieldFunc) Offset(p math.Vec3, t float32) math.Vec3 {
	return f(p, t)
}

// Zero is a field that never moves anything.
var Zero Field = FieldFunc(func(math.Vec3, float32) math.Vec3 { return math.Vec3{} })

// ErrEmptyTexture is returned when a texture has no texels.
var ErrEmptyTexture = errors.New("noise texture has no texels")

// simplexFrequency is the number of noise features per texel along one axis.
const simplexFrequency = 0.3

// Options controls how a texture maps onto world space.
type Options struct {
	CellSize  float32   // world units covered by one texel
	Amplitude float32   // offset length for a texel value of 1
	Skew      float32   // how far one unit of height shifts the lookup
	Drift     math.Vec3 // world units per second; zero keeps the field time-invariant
}

// DefaultOptions returns the sprite placement defaults.
func DefaultOptions() Options {
	return Options{
		CellSize:  0.5,
		Amplitude: 0.1,
		Skew:      0.5,
	}
}

// RepeatingTexture is a tiling grid of offset vectors with components in [-1, 1].
type RepeatingTexture struct {
	Options

	width, height int
	texels        []math.Vec3
}

// NewRepeatingTexture wraps a width*height texel grid stored row by row.
func NewRepeatingTexture(width, height int, texels []math.Vec3, opts Options) (*RepeatingTexture, error) {
	if width <= 0 || height <= 0 || len(texels) == 0 {
		return nil, ErrEmptyTexture
	}
	if len(texels) != width*height {
		return nil, fmt.Errorf("noise texture: %d texels for %dx%d grid", len(texels), width, height)
	}
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("noise texture: cell size must be positive, got %v", opts.CellSize)
	}
	return &RepeatingTexture{
		Options: opts,
		width:   width,
		height:  height,
		texels:  texels,
	}, nil
}

// NewSimplexTexture builds a seamless size*size texture from three OpenSimplex
// channels. Each channel is sampled on a torus in 4D so opposite edges match.
func NewSimplexTexture(seed int64, size int, opts Options) (*RepeatingTexture, error) {
	if size <= 0 {
		return nil, ErrEmptyTexture
	}

	channels := [3]opensimplex.Noise{
		opensimplex.New(seed),
		opensimplex.New(seed + 1),
		opensimplex.New(seed + 2),
	}

	radius := float64(size) * simplexFrequency / (2 * gomath.Pi)
	texels := make([]math.Vec3, size*size)
	for y := 0; y < size; y++ {
		b := 2 * gomath.Pi * float64(y) / float64(size)
		for x := 0; x < size; x++ {
			a := 2 * gomath.Pi * float64(x) / float64(size)
			nx, ny := radius*gomath.Cos(a), radius*gomath.Sin(a)
			nz, nw := radius*gomath.Cos(b), radius*gomath.Sin(b)

			texels[y*size+x] = math.Vec3{
				X: clampUnit(channels[0].Eval4(nx, ny, nz, nw)),
				Y: clampUnit(channels[1].Eval4(nx, ny, nz, nw)),
				Z: clampUnit(channels[2].Eval4(nx, ny, nz, nw)),
			}
		}
	}

	return NewRepeatingTexture(size, size, texels, opts)
}

// Size returns the texture dimensions in texels.
func (r *RepeatingTexture) Size() (width, height int) {
	return r.width, r.height
}

// Texel returns the texel at (x, y), wrapping out-of-range coordinates.
func (r *RepeatingTexture) Texel(x, y int) math.Vec3 {
	return r.texels[wrap(y, r.height)*r.width+wrap(x, r.width)]
}

// Sample bilinearly filters the texture at texel coordinates (u, v).
func (r *RepeatingTexture) Sample(u, v float32) math.Vec3 {
	fu := gomath.Floor(float64(u))
	fv := gomath.Floor(float64(v))
	x0, y0 := int(fu), int(fv)
	tx := u - float32(fu)
	ty := v - float32(fv)

	top := r.Texel(x0, y0).Lerp(r.Texel(x0+1, y0), tx)
	bottom := r.Texel(x0, y0+1).Lerp(r.Texel(x0+1, y0+1), tx)
	return top.Lerp(bottom, ty)
}

// Offset returns the scaled texture sample under p at time t.
func (r *RepeatingTexture) Offset(p math.Vec3, t float32) math.Vec3 {
	q := p.Add(r.Drift.Scale(t))
	u := (q.X + q.Y*r.Skew) / r.CellSize
	v := (q.Z + q.Y*r.Skew) / r.CellSize
	return r.Sample(u, v).Scale(r.Amplitude)
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func clampUnit(f float64) float32 {
	if f > 1 {
		return 1
	}
	if f < -1 {
		return -1
	}
	return float32(f)
}
