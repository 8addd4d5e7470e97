package camera

import (
	"testing"

	"github.com/Faultbox/colonysim/pkg/math"
)

func TestParseProjection(t *testing.T) {
	tests := []struct {
		in      string
		want    Projection
		wantErr bool
	}{
		{"perspective", Perspective, false},
		{"Ortho", Orthographic, false},
		{" orthographic ", Orthographic, false},
		{"isometric", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProjection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProjection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProjection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrbitCameraView(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX = 0
	c.RotationY = 0
	c.Distance = 10
	c.SetCenter(1, 0, 0)

	v := c.View()
	if v.Position != (math.Vec3{X: 1, Y: 0, Z: 10}) {
		t.Errorf("position = %v, want (1, 0, 10)", v.Position)
	}
	if v.Forward != (math.Vec3{X: 0, Y: 0, Z: -1}) {
		t.Errorf("forward = %v, want (0, 0, -1)", v.Forward)
	}
	if v.Up != math.UnitY {
		t.Errorf("up = %v, want %v", v.Up, math.UnitY)
	}
	if v.Projection != Perspective {
		t.Errorf("projection = %v, want perspective", v.Projection)
	}
}

func TestToggleProjection(t *testing.T) {
	c := NewOrbitCamera()
	c.ToggleProjection()
	if c.View().Projection != Orthographic {
		t.Fatal("expected orthographic after toggle")
	}
	if m := c.ProjectionMatrix(1.5); m[15] != 1 {
		t.Errorf("orthographic matrix [15] = %v, want 1", m[15])
	}
	c.ToggleProjection()
	if c.Projection != Perspective {
		t.Fatal("expected perspective after second toggle")
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch = %v, want max %v", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch = %v, want min %v", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want min %v", c.Distance, c.MinDistance)
	}
}
