// Package picking casts rays from the screen into the sprite scene.
package picking

import (
	"github.com/Faultbox/colonysim/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// Quad is the local-space rectangle a billboard is drawn on: centred on X,
// bottom edge at the origin, in the Z=0 plane.
var Quad = Rect{MinX: -0.5, MinY: 0, MaxX: 0.5, MaxY: 1}

// Rect is an axis-aligned rectangle in a local Z=0 plane.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// ok is false when viewProj cannot be inverted or the viewport is empty.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, viewProj math.Mat4) (Ray, bool) {
	if viewportW <= 0 || viewportH <= 0 {
		return Ray{}, false
	}
	inv, ok := viewProj.Inverse()
	if !ok {
		return Ray{}, false
	}

	// Normalized device coords, Y flipped.
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := inv.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := inv.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	dir := far.Sub(near)
	if dir.LengthSquared() == 0 || !dir.IsFinite() {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, true
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if abs(r.Direction.Y) < 0.001 {
		return 0, 0, false // parallel
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false // behind the origin
	}

	p := r.At(t)
	return p.X, p.Z, true
}

// IntersectQuad tests the ray against rect drawn with the given world
// matrix. t is the world-space distance from the ray origin to the hit.
func (r Ray) IntersectQuad(world math.Mat4, rect Rect) (t float32, hit bool) {
	inv, ok := world.Inverse()
	if !ok {
		return 0, false
	}

	// Local space keeps the quad axis-aligned; the parameter along the
	// untransformed direction is the same in both spaces.
	o := inv.TransformVec3(r.Origin)
	d := inv.TransformDirection(r.Direction)
	if abs(d.Z) < 1e-6 {
		return 0, false // edge-on
	}

	t = -o.Z / d.Z
	if t < 0 {
		return 0, false
	}
	p := o.Add(d.Scale(t))
	if !rect.Contains(p.X, p.Y) {
		return 0, false
	}
	return t, true
}

// Nearest returns the index of the closest quad hit by the ray among worlds,
// or -1 when nothing is hit.
func Nearest(r Ray, worlds []math.Mat4) (index int, t float32) {
	index = -1
	for i, w := range worlds {
		d, hit := r.IntersectQuad(w, Quad)
		if hit && (index < 0 || d < t) {
			index, t = i, d
		}
	}
	return index, t
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
