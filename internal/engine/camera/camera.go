// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/Faultbox/colonysim/pkg/math"
)

// Projection selects how the camera maps the scene onto the screen.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

// String returns the config name of the projection.
func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ParseProjection parses a projection name ("perspective", "orthographic" or "ortho").
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perspective", "persp":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	}
	return 0, fmt.Errorf("unknown projection %q", s)
}

// View is a read-only snapshot of a camera taken once per frame.
type View struct {
	Position   math.Vec3
	Up         math.Vec3
	Forward    math.Vec3
	Projection Projection
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	CenterX, CenterY, CenterZ float32

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	Projection Projection
	FovY       float32
	Near, Far  float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        30.0,
		RotationX:       0.6,
		RotationY:       0.0,
		Projection:      Perspective,
		FovY:            float32(gomath.Pi / 4),
		Near:            0.1,
		Far:             500.0,
		MinDistance:     2.0,
		MaxDistance:     200.0,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Center returns the orbit center.
func (c *OrbitCamera) Center() math.Vec3 {
	return math.Vec3{X: c.CenterX, Y: c.CenterY, Z: c.CenterZ}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return math.Vec3{
		X: c.CenterX + x,
		Y: c.CenterY + y,
		Z: c.CenterZ + z,
	}
}

// View returns the snapshot consumed by billboard resolution.
func (c *OrbitCamera) View() View {
	pos := c.Position()
	return View{
		Position:   pos,
		Up:         math.UnitY,
		Forward:    c.Center().Sub(pos).Normalize(),
		Projection: c.Projection,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center(), math.UnitY)
}

// ProjectionMatrix returns the projection matrix for the given aspect ratio.
// Orthographic projection frames a region sized by the orbit distance.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if c.Projection == Orthographic {
		halfH := c.Distance * 0.5
		halfW := halfH * aspect
		return math.Ortho(-halfW, halfW, -halfH, halfH, -c.Far, c.Far)
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// ToggleProjection switches between perspective and orthographic.
func (c *OrbitCamera) ToggleProjection() {
	if c.Projection == Perspective {
		c.Projection = Orthographic
	} else {
		c.Projection = Perspective
	}
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(x, y, z float32) {
	c.CenterX = x
	c.CenterY = y
	c.CenterZ = z
}

// FitToBounds adjusts camera to view the given XZ extent.
func (c *OrbitCamera) FitToBounds(minX, minZ, maxX, maxZ float32) {
	c.CenterX = (minX + maxX) / 2
	c.CenterZ = (minZ + maxZ) / 2

	size := maxX - minX
	if maxZ-minZ > size {
		size = maxZ - minZ
	}

	c.Distance = size * 1.2
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
