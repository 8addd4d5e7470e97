package game

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/colonysim/internal/engine/billboard"
	"github.com/Faultbox/colonysim/internal/engine/camera"
	"github.com/Faultbox/colonysim/internal/engine/sprite"
)

// viewState holds the toggles driven by the keyboard.
type viewState struct {
	mode        billboard.OrientMode
	distort     bool
	silhouettes bool
	projection  camera.Projection
}

// modeKeys maps the number row to orientation modes.
var modeKeys = map[sdl.Scancode]billboard.OrientMode{
	sdl.SCANCODE_1: billboard.Fixed,
	sdl.SCANCODE_2: billboard.Spherical,
	sdl.SCANCODE_3: billboard.AxisX,
	sdl.SCANCODE_4: billboard.AxisY,
	sdl.SCANCODE_5: billboard.AxisZ,
}

// handleKey applies a key press. It reports whether anything changed.
func (v *viewState) handleKey(key sdl.Scancode) bool {
	if mode, ok := modeKeys[key]; ok {
		changed := v.mode != mode
		v.mode = mode
		return changed
	}

	switch key {
	case sdl.SCANCODE_P:
		if v.projection == camera.Perspective {
			v.projection = camera.Orthographic
		} else {
			v.projection = camera.Perspective
		}
	case sdl.SCANCODE_N:
		v.distort = !v.distort
	case sdl.SCANCODE_S:
		v.silhouettes = !v.silhouettes
	default:
		return false
	}
	return true
}

// apply copies the toggles onto every sprite.
func (v *viewState) apply(sprites []*sprite.Sprite) {
	for _, s := range sprites {
		s.Orientation = v.mode
		s.DistortPosition = v.distort
		s.DrawSilhouette = v.silhouettes
	}
}

func (v *viewState) title() string {
	noise := "off"
	if v.distort {
		noise = "on"
	}
	return fmt.Sprintf("colonysim spriteview - %s, %s, noise %s", v.mode, v.projection, noise)
}
