// Package sprite provides animated billboard sprites.
package sprite

import (
	"errors"
	"fmt"

	"github.com/Faultbox/colonysim/internal/engine/billboard"
	"github.com/Faultbox/colonysim/internal/engine/camera"
	"github.com/Faultbox/colonysim/pkg/math"
)

// ErrUnknownAnimation is returned when selecting an animation that was never added.
var ErrUnknownAnimation = errors.New("unknown animation")

// DefaultSilhouetteColor is the translucent cyan drawn through occluders.
var DefaultSilhouetteColor = [4]float32{0, 1, 1, 0.5}

// Default frame rates for the helper animations.
const (
	SimpleAnimationFPS      = 5
	SingleFrameAnimationFPS = 10
)

// Sprite is a flat textured quad drawn more or less facing the camera.
type Sprite struct {
	Name  string
	Sheet Sheet
	World math.Mat4

	Orientation       billboard.OrientMode
	BillboardRotation float32
	DistortPosition   bool
	DrawSilhouette    bool
	SilhouetteColor   [4]float32
	Visible           bool

	animations map[string]*Animation
	current    *Animation
}

// New creates a visible spherical sprite with position distortion enabled.
func New(name string, sheet Sheet, world math.Mat4) *Sprite {
	return &Sprite{
		Name:            name,
		Sheet:           sheet,
		World:           world,
		Orientation:     billboard.Spherical,
		DistortPosition: true,
		SilhouetteColor: DefaultSilhouetteColor,
		Visible:         true,
		animations:      make(map[string]*Animation),
	}
}

// AddAnimation registers a, replacing any animation with the same name.
// The first animation added becomes current.
func (s *Sprite) AddAnimation(a *Animation) {
	if s.animations == nil {
		s.animations = make(map[string]*Animation)
	}
	if s.current == nil {
		s.current = a
	} else if old, ok := s.animations[a.Name]; ok && old == s.current {
		s.current = a
	}
	s.animations[a.Name] = a
}

// Animation looks up an animation by name.
func (s *Sprite) Animation(name string) (*Animation, bool) {
	a, ok := s.animations[name]
	return a, ok
}

// SetAnimation makes the named animation current.
func (s *Sprite) SetAnimation(name string) error {
	a, ok := s.animations[name]
	if !ok {
		return fmt.Errorf("sprite %q: %w %q", s.Name, ErrUnknownAnimation, name)
	}
	s.current = a
	return nil
}

// Current returns the playing animation, or nil.
func (s *Sprite) Current() *Animation {
	return s.current
}

// SetSimpleAnimation adds an animation named "Sprite" looping over every column of row.
func (s *Sprite) SetSimpleAnimation(row int) error {
	frames := make([]Frame, 0, s.Sheet.Columns())
	for c := 0; c < s.Sheet.Columns(); c++ {
		frames = append(frames, Frame{Col: c, Row: row})
	}
	a, err := NewAnimation("Sprite", s.Sheet, frames, true, SimpleAnimationFPS)
	if err != nil {
		return err
	}
	s.AddAnimation(a)
	return nil
}

// SetSingleFrameAnimation adds an animation named "Sprite" showing one frame.
func (s *Sprite) SetSingleFrameAnimation(f Frame) error {
	a, err := NewAnimation("Sprite", s.Sheet, []Frame{f}, true, SingleFrameAnimationFPS)
	if err != nil {
		return err
	}
	s.AddAnimation(a)
	return nil
}

// Update advances the current animation.
func (s *Sprite) Update(dt float32) {
	if s.current != nil {
		s.current.Update(dt)
	}
}

// Drawable reports whether the sprite has something to draw this frame.
func (s *Sprite) Drawable() bool {
	if !s.Visible || s.current == nil {
		return false
	}
	i := s.current.CurrentFrame()
	return i >= 0 && i < len(s.current.Frames)
}

// WorldMatrix resolves the world matrix for this frame.
func (s *Sprite) WorldMatrix(r billboard.Resolver, view camera.View) math.Mat4 {
	return r.Resolve(s.World, view, s.Orientation, s.BillboardRotation, s.DistortPosition)
}
