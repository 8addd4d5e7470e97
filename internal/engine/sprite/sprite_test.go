package sprite

import (
	"errors"
	"testing"

	"github.com/Faultbox/colonysim/internal/engine/billboard"
	"github.com/Faultbox/colonysim/internal/engine/camera"
	"github.com/Faultbox/colonysim/internal/engine/noise"
	"github.com/Faultbox/colonysim/pkg/math"
)

func testSheet() Sheet {
	return Sheet{Texture: "test", Width: 64, Height: 32, FrameWidth: 16, FrameHeight: 16}
}

func TestSheetGeometry(t *testing.T) {
	s := testSheet()
	if s.Columns() != 4 || s.Rows() != 2 {
		t.Fatalf("columns/rows = %d/%d, want 4/2", s.Columns(), s.Rows())
	}
	uv := s.FrameUV(Frame{Col: 1, Row: 1})
	want := [4]float32{0.25, 0.5, 0.5, 1}
	if uv != want {
		t.Errorf("FrameUV = %v, want %v", uv, want)
	}
	if s.Contains(Frame{Col: 4, Row: 0}) || s.Contains(Frame{Col: 0, Row: -1}) {
		t.Error("Contains accepted an out-of-sheet frame")
	}
	if (Sheet{}).Columns() != 0 {
		t.Error("empty sheet should have zero columns")
	}
}

func TestNewAnimationValidation(t *testing.T) {
	s := testSheet()
	if _, err := NewAnimation("", s, []Frame{{}}, true, 5); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewAnimation("walk", s, nil, true, 5); err == nil {
		t.Error("expected error for no frames")
	}
	if _, err := NewAnimation("walk", s, []Frame{{Col: 9}}, true, 5); err == nil {
		t.Error("expected error for frame outside sheet")
	}
}

func TestAnimationLoops(t *testing.T) {
	a, err := NewAnimation("walk", testSheet(), []Frame{{0, 0}, {1, 0}, {2, 0}}, true, 10)
	if err != nil {
		t.Fatalf("NewAnimation: %v", err)
	}

	a.Update(0.25) // 2.5 frames
	if a.CurrentFrame() != 2 {
		t.Errorf("frame = %d, want 2", a.CurrentFrame())
	}
	a.Update(0.1)
	if a.CurrentFrame() != 0 {
		t.Errorf("frame after wrap = %d, want 0", a.CurrentFrame())
	}
	if a.Finished() {
		t.Error("looping animation should never finish")
	}
}

func TestAnimationHoldsLastFrame(t *testing.T) {
	a, _ := NewAnimation("die", testSheet(), []Frame{{0, 1}, {1, 1}}, false, 10)

	a.Update(1)
	if !a.Finished() {
		t.Fatal("expected non-looping animation to finish")
	}
	if a.CurrentFrame() != 1 {
		t.Errorf("frame = %d, want last (1)", a.CurrentFrame())
	}

	a.Reset()
	if a.Finished() || a.CurrentFrame() != 0 {
		t.Error("Reset should rewind the animation")
	}
}

func TestAnimationFlipUV(t *testing.T) {
	a, _ := NewAnimation("walk", testSheet(), []Frame{{1, 0}}, true, 1)
	a.Flip = true
	uv := a.UV()
	if uv[0] != 0.5 || uv[2] != 0.25 {
		t.Errorf("flipped UV = %v, want u0=0.5 u1=0.25", uv)
	}
}

func TestSpriteAnimations(t *testing.T) {
	s := New("dwarf", testSheet(), math.Identity())
	if s.Drawable() {
		t.Error("sprite without animations should not be drawable")
	}

	idle, _ := NewAnimation("idle", s.Sheet, []Frame{{0, 0}}, true, 1)
	walk, _ := NewAnimation("walk", s.Sheet, []Frame{{1, 0}, {2, 0}}, true, 8)
	s.AddAnimation(idle)
	s.AddAnimation(walk)

	if s.Current() != idle {
		t.Errorf("first animation should be current, got %q", s.Current().Name)
	}
	if err := s.SetAnimation("walk"); err != nil {
		t.Fatalf("SetAnimation: %v", err)
	}
	if s.Current() != walk {
		t.Error("walk should be current")
	}

	err := s.SetAnimation("fly")
	if !errors.Is(err, ErrUnknownAnimation) {
		t.Errorf("SetAnimation(fly) = %v, want ErrUnknownAnimation", err)
	}
	if s.Current() != walk {
		t.Error("failed SetAnimation must keep the current animation")
	}

	if _, ok := s.Animation("idle"); !ok {
		t.Error("Animation(idle) not found")
	}
	if !s.Drawable() {
		t.Error("sprite should be drawable")
	}
	s.Visible = false
	if s.Drawable() {
		t.Error("hidden sprite should not be drawable")
	}
}

func TestSpriteReplaceCurrentAnimation(t *testing.T) {
	s := New("dwarf", testSheet(), math.Identity())
	if err := s.SetSingleFrameAnimation(Frame{Col: 3, Row: 1}); err != nil {
		t.Fatalf("SetSingleFrameAnimation: %v", err)
	}
	if err := s.SetSimpleAnimation(0); err != nil {
		t.Fatalf("SetSimpleAnimation: %v", err)
	}
	if n := len(s.Current().Frames); n != 4 {
		t.Errorf("current animation has %d frames, want the simple animation's 4", n)
	}
	if s.Current().FPS != SimpleAnimationFPS {
		t.Errorf("fps = %v, want %v", s.Current().FPS, SimpleAnimationFPS)
	}
}

func TestSetSimpleAnimationBadRow(t *testing.T) {
	s := New("dwarf", testSheet(), math.Identity())
	if err := s.SetSimpleAnimation(5); err == nil {
		t.Error("expected error for row outside sheet")
	}
}

func TestSpriteDefaults(t *testing.T) {
	s := New("tree", testSheet(), math.Identity())
	if s.Orientation != billboard.Spherical {
		t.Errorf("orientation = %v, want spherical", s.Orientation)
	}
	if !s.DistortPosition || !s.Visible || s.DrawSilhouette {
		t.Error("unexpected default flags")
	}
	if s.SilhouetteColor != DefaultSilhouetteColor {
		t.Errorf("silhouette color = %v", s.SilhouetteColor)
	}
}

func TestSpriteWorldMatrix(t *testing.T) {
	world := math.TranslateVec(math.Vec3{X: 2, Y: 0, Z: -3})
	s := New("grass", testSheet(), world)
	s.Orientation = billboard.Fixed
	s.DistortPosition = true

	offset := math.Vec3{X: 0.1}
	r := billboard.NewResolver(noise.FieldFunc(func(math.Vec3, float32) math.Vec3 { return offset }))
	view := camera.NewOrbitCamera().View()

	got := s.WorldMatrix(r, view)
	if got.Translation() != world.Translation().Add(offset) {
		t.Errorf("translation = %v, want %v", got.Translation(), world.Translation().Add(offset))
	}

	s.DistortPosition = false
	if got := s.WorldMatrix(r, view); got != world {
		t.Errorf("undistorted fixed sprite moved: %v", got)
	}
}

func TestGenerateGrassSheet(t *testing.T) {
	img, sheet := GenerateGrassSheet(DefaultTuftWidth, DefaultTuftHeight, DefaultTuftFrames)
	if sheet.Columns() != DefaultTuftFrames || sheet.Rows() != 1 {
		t.Fatalf("sheet = %+v", sheet)
	}
	if img.Bounds().Dx() != sheet.Width || img.Bounds().Dy() != sheet.Height {
		t.Fatalf("image %v does not match sheet %dx%d", img.Bounds(), sheet.Width, sheet.Height)
	}

	// Every frame has opaque pixels on its bottom row.
	for f := 0; f < DefaultTuftFrames; f++ {
		opaque := false
		for x := 0; x < DefaultTuftWidth; x++ {
			if img.NRGBAAt(f*DefaultTuftWidth+x, DefaultTuftHeight-1).A == 255 {
				opaque = true
				break
			}
		}
		if !opaque {
			t.Errorf("frame %d has no rooted blades", f)
		}
	}
}
