package sprite

import (
	"image"
	"image/color"
	gomath "math"
)

// Default procedural sheet dimensions.
const (
	DefaultTuftWidth  = 32
	DefaultTuftHeight = 32
	DefaultTuftFrames = 4
)

// GenerateGrassSheet draws a one-row sheet of grass tufts swaying over frames.
// Blades lean further right in each successive frame and back again.
func GenerateGrassSheet(frameW, frameH, frames int) (*image.NRGBA, Sheet) {
	img := image.NewNRGBA(image.Rect(0, 0, frameW*frames, frameH))
	blades := []float64{0.2, 0.35, 0.5, 0.65, 0.8}

	for f := 0; f < frames; f++ {
		phase := gomath.Sin(2 * gomath.Pi * float64(f) / float64(frames))
		for i, base := range blades {
			lean := 0.08*phase + 0.05*float64(i%2*2-1)
			height := 0.6 + 0.35*float64((i*7)%5)/4
			drawBlade(img, f*frameW, frameW, frameH, base, lean, height)
		}
	}

	return img, Sheet{
		Texture:     "procedural:grass",
		Width:       frameW * frames,
		Height:      frameH,
		FrameWidth:  frameW,
		FrameHeight: frameH,
	}
}

// drawBlade draws a tapering blade rooted at the bottom edge of a frame.
func drawBlade(img *image.NRGBA, x0, w, h int, base, lean, height float64) {
	top := int(float64(h) * (1 - height))
	for y := h - 1; y >= top; y-- {
		t := float64(h-1-y) / float64(h)
		cx := (base + lean*t*t) * float64(w)
		half := 1.5 * (1 - t)
		shade := uint8(110 + 100*t)
		for x := int(cx - half); x <= int(cx+half); x++ {
			if x < 0 || x >= w {
				continue
			}
			img.SetNRGBA(x0+x, y, color.NRGBA{R: 40, G: shade, B: 30, A: 255})
		}
	}
}

// GenerateBillboardQuadVertices creates vertex data for a billboard sprite quad.
// Returns vertices in format: [x, y, u, v] for each of 4 corners (triangle strip).
// The quad is centered on X with its bottom edge at the origin.
func GenerateBillboardQuadVertices() []float32 {
	return []float32{
		// Position (x, y)  TexCoord (u, v)
		-0.5, 1.0, 0.0, 0.0,
		0.5, 1.0, 1.0, 0.0,
		-0.5, 0.0, 0.0, 1.0,
		0.5, 0.0, 1.0, 1.0,
	}
}
