package sprite

import "fmt"

// Sheet is a texture atlas cut into equally sized frames.
type Sheet struct {
	Texture     string
	Width       int
	Height      int
	FrameWidth  int
	FrameHeight int
}

// Columns returns the number of frames per row.
func (s Sheet) Columns() int {
	if s.FrameWidth <= 0 {
		return 0
	}
	return s.Width / s.FrameWidth
}

// Rows returns the number of frame rows.
func (s Sheet) Rows() int {
	if s.FrameHeight <= 0 {
		return 0
	}
	return s.Height / s.FrameHeight
}

// Contains reports whether f lies inside the sheet.
func (s Sheet) Contains(f Frame) bool {
	return f.Col >= 0 && f.Row >= 0 && f.Col < s.Columns() && f.Row < s.Rows()
}

// FrameUV returns the texture rectangle of f as (u0, v0, u1, v1).
func (s Sheet) FrameUV(f Frame) [4]float32 {
	w, h := float32(s.Width), float32(s.Height)
	u0 := float32(f.Col*s.FrameWidth) / w
	v0 := float32(f.Row*s.FrameHeight) / h
	return [4]float32{u0, v0, u0 + float32(s.FrameWidth)/w, v0 + float32(s.FrameHeight)/h}
}

// Frame addresses a cell of a sheet.
type Frame struct {
	Col, Row int
}

// Animation plays a sequence of sheet frames at a fixed rate.
type Animation struct {
	Name   string
	Sheet  Sheet
	Frames []Frame
	Loop   bool
	FPS    float32
	Tint   [4]float32
	Flip   bool

	current  int
	timer    float32
	finished bool
}

// NewAnimation creates an animation, rejecting frames outside the sheet.
func NewAnimation(name string, sheet Sheet, frames []Frame, loop bool, fps float32) (*Animation, error) {
	if name == "" {
		return nil, fmt.Errorf("animation name is empty")
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("animation %q has no frames", name)
	}
	for _, f := range frames {
		if !sheet.Contains(f) {
			return nil, fmt.Errorf("animation %q: frame %v outside %dx%d sheet", name, f, sheet.Columns(), sheet.Rows())
		}
	}
	return &Animation{
		Name:   name,
		Sheet:  sheet,
		Frames: frames,
		Loop:   loop,
		FPS:    fps,
		Tint:   [4]float32{1, 1, 1, 1},
	}, nil
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float32) {
	if a.FPS <= 0 || len(a.Frames) == 0 || a.finished {
		return
	}

	a.timer += dt
	step := 1 / a.FPS
	for a.timer >= step {
		a.timer -= step
		a.current++
		if a.current >= len(a.Frames) {
			if a.Loop {
				a.current = 0
				continue
			}
			a.current = len(a.Frames) - 1
			a.finished = true
			a.timer = 0
			return
		}
	}
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	a.current = 0
	a.timer = 0
	a.finished = false
}

// CurrentFrame returns the index of the frame being shown.
func (a *Animation) CurrentFrame() int {
	return a.current
}

// Frame returns the frame being shown.
func (a *Animation) Frame() Frame {
	return a.Frames[a.current]
}

// Finished reports whether a non-looping animation reached its last frame.
func (a *Animation) Finished() bool {
	return a.finished
}

// UV returns the texture rectangle of the current frame, mirrored when Flip is set.
func (a *Animation) UV() [4]float32 {
	uv := a.Sheet.FrameUV(a.Frame())
	if a.Flip {
		uv[0], uv[2] = uv[2], uv[0]
	}
	return uv
}
