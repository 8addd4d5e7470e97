// Package billboard resolves the world matrix of camera-facing sprites.
package billboard

import (
	"errors"
	gomath "math"

	"github.com/Faultbox/colonysim/internal/engine/camera"
	"github.com/Faultbox/colonysim/internal/engine/noise"
	"github.com/Faultbox/colonysim/pkg/math"
)

// orthoAngle is the fixed diagonal turn used under parallel projection.
const orthoAngle = -gomath.Pi * 0.25

var (
	ErrNonFiniteTransform = errors.New("billboard: transform is not finite")
	ErrNonFiniteCamera    = errors.New("billboard: camera is not finite")
	ErrDegenerateUp       = errors.New("billboard: camera up vector is zero")
)

// Resolver turns renderable transforms into camera-facing world matrices.
// It holds configuration only; every call is independent.
type Resolver struct {
	// Noise jitters the final position when distortion is requested. Nil disables it.
	Noise noise.Field
	// Time is passed to the noise field; it only matters for drifting fields.
	Time float32
}

// NewResolver creates a resolver that distorts positions with field.
func NewResolver(field noise.Field) Resolver {
	return Resolver{Noise: field}
}

// WithTime returns a copy of r for a frame at time t.
func (r Resolver) WithTime(t float32) Resolver {
	r.Time = t
	return r
}

// Resolve computes the world matrix for a sprite whose global transform is world.
//
// Fixed mode keeps world. Under a perspective camera, Spherical faces the camera
// while keeping the per-axis scale of world and spinning by rotation about the
// local Z axis, and the axis modes rotate about a single world axis. Under an
// orthographic camera every non-fixed mode uses a 45 degree turn about Y.
// When distort is set, only the translation is offset by the noise field sampled
// at the resolved position.
func (r Resolver) Resolve(world math.Mat4, view camera.View, mode OrientMode, rotation float32, distort bool) math.Mat4 {
	if mode == Fixed {
		return r.distort(world, distort)
	}

	pos := world.Translation()

	if view.Projection == camera.Orthographic {
		m := math.TranslateVec(pos).Mul(math.RotateY(orthoAngle))
		return r.distort(m, distort)
	}

	if mode == Spherical {
		s := world.AxisScales()
		bill := math.Billboard(pos, view.Position, view.Up, view.Forward)
		rot := bill.WithTranslation(math.Vec3{}).
			Mul(math.RotateZ(rotation)).
			Mul(math.Scale(s.X, s.Y, s.Z))
		return r.distort(rot.WithTranslation(bill.Translation()), distort)
	}

	axis, ok := mode.Axis()
	if !ok {
		return r.distort(world, distort)
	}
	m := math.ConstrainedBillboard(pos, view.Position, axis, view.Forward)
	return r.distort(m, distort)
}

// Offset returns the noise offset applied at p, or zero when no field is set.
func (r Resolver) Offset(p math.Vec3) math.Vec3 {
	if r.Noise == nil {
		return math.Vec3{}
	}
	return r.Noise.Offset(p, r.Time)
}

func (r Resolver) distort(m math.Mat4, enabled bool) math.Mat4 {
	if !enabled || r.Noise == nil {
		return m
	}
	t := m.Translation()
	return m.WithTranslation(t.Add(r.Noise.Offset(t, r.Time)))
}

// Validate reports inputs that would make Resolve produce garbage.
func Validate(world math.Mat4, view camera.View) error {
	if !world.IsFinite() {
		return ErrNonFiniteTransform
	}
	if !view.Position.IsFinite() || !view.Up.IsFinite() || !view.Forward.IsFinite() {
		return ErrNonFiniteCamera
	}
	if view.Up.LengthSquared() == 0 {
		return ErrDegenerateUp
	}
	return nil
}
