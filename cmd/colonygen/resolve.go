package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/colonysim/internal/engine/billboard"
	"github.com/Faultbox/colonysim/internal/engine/camera"
	"github.com/Faultbox/colonysim/internal/engine/noise"
	"github.com/Faultbox/colonysim/pkg/math"
)

func cmdResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	modeName := fs.String("mode", "spherical", "fixed, spherical, x, y or z")
	pos := fs.String("pos", "0,0,0", "Sprite position x,y,z")
	cam := fs.String("cam", "0,2,10", "Camera position x,y,z")
	target := fs.String("target", "", "Camera look-at point (defaults to -pos)")
	scale := fs.String("scale", "1,1,1", "Sprite scale x,y,z")
	yaw := fs.Float64("yaw", 0, "Sprite turn about Y in radians (seen in fixed mode)")
	tilt := fs.Float64("tilt", 0, "Sprite tilt about its X axis in radians, applied before yaw")
	rot := fs.Float64("rot", 0, "Billboard rotation in radians")
	distort := fs.Bool("distort", false, "Apply position noise")
	t := fs.Float64("time", 0, "Noise time in seconds")
	cfg, err := parseCommon(fs, args)
	if err != nil {
		return err
	}

	mode, err := billboard.ParseOrientMode(*modeName)
	if err != nil {
		return err
	}

	transform := math.NewTransform()
	transform.Rotation = spriteRotation(float32(*yaw), float32(*tilt))
	if transform.Position, err = parseVec3(*pos); err != nil {
		return fmt.Errorf("-pos: %w", err)
	}
	if transform.Scale, err = parseVec3(*scale); err != nil {
		return fmt.Errorf("-scale: %w", err)
	}
	eye, err := parseVec3(*cam)
	if err != nil {
		return fmt.Errorf("-cam: %w", err)
	}
	look := transform.Position
	if *target != "" {
		if look, err = parseVec3(*target); err != nil {
			return fmt.Errorf("-target: %w", err)
		}
	}

	view := camera.View{
		Position:   eye,
		Up:         math.UnitY,
		Forward:    look.Sub(eye).Normalize(),
		Projection: cfg.Camera.ProjectionMode(),
	}
	world := transform.Matrix()
	if err := billboard.Validate(world, view); err != nil {
		return err
	}

	var field noise.Field
	if *distort {
		if field, err = cfg.Noise.Field(); err != nil {
			return err
		}
	}
	r := billboard.NewResolver(field).WithTime(float32(*t))

	out := r.Resolve(world, view, mode, float32(*rot), *distort)
	fmt.Printf("mode: %s  projection: %s  distort: %v\n", mode, view.Projection, *distort)
	f := transform.Facing()
	fmt.Printf("unresolved facing: (%.4f, %.4f, %.4f)\n", f.X, f.Y, f.Z)
	printMatrix(out)
	return nil
}

// spriteRotation tilts about X first, then turns about Y.
func spriteRotation(yaw, tilt float32) math.Quat {
	return math.QuatFromAxisAngle(math.UnitY, yaw).Mul(math.QuatFromAxisAngle(math.UnitX, tilt))
}

func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = float32(f)
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// printMatrix prints m row by row; columns are right, up, look, translation.
func printMatrix(m math.Mat4) {
	for row := 0; row < 4; row++ {
		fmt.Printf("  [% 9.4f % 9.4f % 9.4f % 9.4f]\n", m[row], m[4+row], m[8+row], m[12+row])
	}
}
