// Package annotate burns highlight rectangles into screenshots.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/rogersnm/shotdoc/internal/model"
)

// Passes is how many concentric 1-pixel outlines make up a highlight.
const Passes = 5

// DefaultColor is the highlight colour used when none is configured.
var DefaultColor = color.NRGBA{R: 0xff, A: 0xff}

type options struct {
	color color.NRGBA
}

type Option func(*options)

// WithColor sets the outline colour. Alpha is ignored.
func WithColor(c color.Color) Option {
	return func(o *options) {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		n.A = 0xff
		o.color = n
	}
}

// File reads the image at src, converts it to opaque RGB, outlines r when it
// has positive width and height, and writes the result to dst. The encoder is
// picked from dst's extension and any existing file is replaced.
func File(src string, r model.Rect, dst string, opts ...Option) error {
	enc, err := encoderFor(dst)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()
	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", src, err)
	}

	out := Image(img, r, opts...)

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if err := enc(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", dst, err)
	}
	return f.Close()
}

// Image returns an RGB copy of img with r outlined. The outline is drawn
// Passes times, each pass one pixel further out than the last. Nothing is
// drawn for an empty rectangle, and pixels outside the canvas are dropped.
func Image(img image.Image, r model.Rect, opts ...Option) *image.NRGBA {
	o := options{color: DefaultColor}
	for _, opt := range opts {
		opt(&o)
	}

	out := ToRGB(img)
	if r.Empty() {
		return out
	}
	for i := 0; i < Passes; i++ {
		outline(out, r.X-i, r.Y-i, r.X+r.W+i, r.Y+r.H+i, o.color)
	}
	return out
}

// ToRGB copies img into an NRGBA image with every pixel fully opaque. Colour
// channels are kept as they are and alpha is dropped.
func ToRGB(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 0xff
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}

// outline draws the 1-pixel border of the box with inclusive corners
// (x0, y0) and (x1, y1).
func outline(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for x := x0; x <= x1; x++ {
		set(img, x, y0, c)
		set(img, x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		set(img, x0, y, c)
		set(img, x1, y, c)
	}
}

func set(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	img.SetNRGBA(x, y, c)
}
