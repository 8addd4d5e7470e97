package noise

import (
	"image"
	"image/color"

	"github.com/Faultbox/colonysim/internal/engine/texture"
	"github.com/Faultbox/colonysim/pkg/math"
)

// FromImage decodes an offset texture from an image. Red, green and blue map to
// X, Y and Z; a channel value of 128 is roughly zero offset.
func FromImage(img image.Image, opts Options) (*RepeatingTexture, error) {
	n := texture.ToNRGBA(img)
	w, h := n.Bounds().Dx(), n.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyTexture
	}

	texels := make([]math.Vec3, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := n.NRGBAAt(x, y)
			texels[y*w+x] = math.Vec3{
				X: decodeChannel(c.R),
				Y: decodeChannel(c.G),
				Z: decodeChannel(c.B),
			}
		}
	}
	return NewRepeatingTexture(w, h, texels, opts)
}

// Load reads an offset texture from disk, resampling it to size*size when size > 0.
func Load(path string, size int, opts Options) (*RepeatingTexture, error) {
	img, err := texture.Load(path)
	if err != nil {
		return nil, err
	}
	if size > 0 {
		img = texture.Resample(img, size, size)
	}
	return FromImage(img, opts)
}

// Image encodes the texels as an opaque NRGBA image.
func (r *RepeatingTexture) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			v := r.texels[y*r.width+x]
			img.SetNRGBA(x, y, color.NRGBA{
				R: encodeChannel(v.X),
				G: encodeChannel(v.Y),
				B: encodeChannel(v.Z),
				A: 255,
			})
		}
	}
	return img
}

func decodeChannel(b uint8) float32 {
	return float32(b)/255*2 - 1
}

func encodeChannel(f float32) uint8 {
	v := (f + 1) / 2 * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
