// Package texture provides image decoding, resampling and encoding utilities.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// codec pairs the decoder and encoder for one file extension. encode is nil
// for formats that are read-only here.
type codec struct {
	decode func(io.Reader) (image.Image, error)
	encode func(io.Writer, image.Image) error
}

// codecs is keyed by lower-case extension. The tga package registers itself
// with image.RegisterFormat using an empty magic string, which would claim
// every file, so formats are chosen by name rather than image.Decode.
var codecs = map[string]codec{
	".png":  {decode: png.Decode, encode: png.Encode},
	".tga":  {decode: tga.Decode, encode: tga.Encode},
	".webp": {decode: webp.Decode, encode: encodeWebP},
}

func encodeWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

func codecFor(path string) (codec, string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := codecs[ext]
	return c, ext, ok
}

// Load decodes a PNG, TGA or WebP file, chosen by extension.
func Load(path string) (image.Image, error) {
	c, ext, ok := codecFor(path)
	if !ok {
		return nil, fmt.Errorf("texture: unsupported input format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := c.decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img by file extension (.webp, .png or .tga).
func Save(path string, img image.Image) error {
	c, ext, ok := codecFor(path)
	if !ok || c.encode == nil {
		return fmt.Errorf("texture: unsupported output format %q", ext)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	if err := c.encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("texture: encode %s: %w", path, err)
	}
	return f.Close()
}

// ToNRGBA converts any image to NRGBA with bounds starting at the origin.
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}

// Resample scales src to width x height with bilinear filtering.
// Images already at the requested size are returned as NRGBA without filtering.
func Resample(src image.Image, width, height int) *image.NRGBA {
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return ToNRGBA(src)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// FlipVertical returns a copy of img mirrored top to bottom (GL texture origin).
func FlipVertical(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		dstY := b.Dy() - 1 - y
		copy(out.Pix[dstY*out.Stride:dstY*out.Stride+rowLen], src)
	}
	return out
}
