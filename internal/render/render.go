// Package render turns masks and weight maps into images for visual
// inspection, and reads binary masks back out of image files.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/born-ml/segmap/internal/grid"
)

// Mask renders a binary mask as a grayscale image: foreground white,
// background black.
func Mask(m *grid.Grid[int]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.W(), m.H()))
	for i := 0; i < m.H(); i++ {
		for j := 0; j < m.W(); j++ {
			if m.At(i, j) != 0 {
				img.SetGray(j, i, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// Heat renders a weight map through a dark-to-warm color ramp, normalized
// over the map's own value range. A constant map renders at the bottom of
// the ramp.
func Heat(w *grid.Grid[float64]) *image.NRGBA {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range w.Data() {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo

	img := image.NewNRGBA(image.Rect(0, 0, w.W(), w.H()))
	for i := 0; i < w.H(); i++ {
		for j := 0; j < w.W(); j++ {
			t := 0.0
			if span > 0 {
				t = (w.At(i, j) - lo) / span
			}
			img.SetNRGBA(j, i, ramp(t))
		}
	}
	return img
}

// rampAnchors approximates a magma-style perceptual gradient.
var rampAnchors = []color.NRGBA{
	{R: 0x00, G: 0x00, B: 0x04, A: 0xff},
	{R: 0x3b, G: 0x0f, B: 0x70, A: 0xff},
	{R: 0x8c, G: 0x29, B: 0x81, A: 0xff},
	{R: 0xde, G: 0x49, B: 0x68, A: 0xff},
	{R: 0xfe, G: 0x9f, B: 0x6d, A: 0xff},
	{R: 0xfc, G: 0xfd, B: 0xbf, A: 0xff},
}

// ramp maps t in [0, 1] onto the gradient by piecewise-linear blending
// between adjacent anchors.
func ramp(t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(rampAnchors)-1)
	k := int(pos)
	if k >= len(rampAnchors)-1 {
		return rampAnchors[len(rampAnchors)-1]
	}
	frac := pos - float64(k)
	a, b := rampAnchors[k], rampAnchors[k+1]
	return color.NRGBA{
		R: lerp8(a.R, b.R, frac),
		G: lerp8(a.G, b.G, frac),
		B: lerp8(a.B, b.B, frac),
		A: 0xff,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Upscale resizes img by an integer factor with nearest-neighbor sampling,
// keeping mask pixels crisp for inspection of small grids. A factor of 1 or
// less returns img unchanged.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}

// ReadMask decodes the image at path into a binary mask grid. Pixels with
// luminance of 128 or more count as foreground.
func ReadMask(path string) (*grid.Grid[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}

	b := img.Bounds()
	m, err := grid.New[int](b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y >= 128 {
				m.Set(y-b.Min.Y, x-b.Min.X, 1)
			}
		}
	}
	return m, nil
}
