package annotate

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogersnm/shotdoc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grey = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

// inBand reports whether (x, y) lies on one of the outlines drawn for r.
func inBand(x, y int, r model.Rect) bool {
	for i := 0; i < Passes; i++ {
		x0, y0, x1, y1 := r.X-i, r.Y-i, r.X+r.W+i, r.Y+r.H+i
		onH := (y == y0 || y == y1) && x >= x0 && x <= x1
		onV := (x == x0 || x == x1) && y >= y0 && y <= y1
		if onH || onV {
			return true
		}
	}
	return false
}

func TestImage_EmptyRectUnchanged(t *testing.T) {
	src := solid(20, 20, grey)
	for _, r := range []model.Rect{{X: 5, Y: 5, W: 0, H: 10}, {X: 5, Y: 5, W: 10, H: 0}, {X: 5, Y: 5, W: -3, H: 4}} {
		out := Image(src, r)
		assert.Equal(t, src.Pix, out.Pix, "rect %v", r)
	}
}

func TestImage_OnlyBandChanges(t *testing.T) {
	src := solid(40, 40, grey)
	r := model.Rect{X: 10, Y: 12, W: 15, H: 8}
	out := Image(src, r)

	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			got := out.NRGBAAt(x, y)
			if inBand(x, y, r) {
				assert.Equal(t, DefaultColor, got, "(%d,%d) should be highlighted", x, y)
			} else {
				assert.Equal(t, grey, got, "(%d,%d) should be untouched", x, y)
			}
		}
	}
}

func TestImage_BandGeometry(t *testing.T) {
	out := Image(solid(50, 50, grey), model.Rect{X: 20, Y: 20, W: 10, H: 10})

	// Corners of the innermost and outermost outlines.
	assert.Equal(t, DefaultColor, out.NRGBAAt(20, 20))
	assert.Equal(t, DefaultColor, out.NRGBAAt(30, 30))
	assert.Equal(t, DefaultColor, out.NRGBAAt(16, 16))
	assert.Equal(t, DefaultColor, out.NRGBAAt(34, 34))
	// Just outside and just inside the band.
	assert.Equal(t, grey, out.NRGBAAt(15, 20))
	assert.Equal(t, grey, out.NRGBAAt(35, 25))
	assert.Equal(t, grey, out.NRGBAAt(21, 21))
}

func TestImage_OutOfBoundsClipped(t *testing.T) {
	src := solid(10, 10, grey)
	assert.NotPanics(t, func() {
		out := Image(src, model.Rect{X: 8, Y: 8, W: 20, H: 20})
		assert.Equal(t, DefaultColor, out.NRGBAAt(8, 8))
		assert.Equal(t, grey, out.NRGBAAt(9, 9))
	})
	assert.NotPanics(t, func() {
		out := Image(src, model.Rect{X: 100, Y: 100, W: 5, H: 5})
		assert.Equal(t, src.Pix, out.Pix)
	})
	assert.NotPanics(t, func() {
		Image(src, model.Rect{X: -30, Y: -30, W: 5, H: 5})
	})
}

func TestImage_WithColor(t *testing.T) {
	blue := color.NRGBA{B: 0xff, A: 0xff}
	out := Image(solid(20, 20, grey), model.Rect{X: 5, Y: 5, W: 5, H: 5}, WithColor(color.NRGBA{B: 0xff, A: 0x10}))
	assert.Equal(t, blue, out.NRGBAAt(5, 5))
}

func TestToRGB_DropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0x40})
	src.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff})

	out := ToRGB(src)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}, out.NRGBAAt(1, 0))
}

func TestToRGB_Gray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 1, 1))
	src.SetGray(0, 0, color.Gray{Y: 0x33})
	assert.Equal(t, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, ToRGB(src).NRGBAAt(0, 0))
}

func TestFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.png")
	writePNG(t, src, solid(30, 30, grey))

	r := model.Rect{X: 5, Y: 5, W: 10, H: 10}
	require.NoError(t, File(src, r, dst))

	got := readPNG(t, dst)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, color.NRGBAModel.Convert(got.At(5, 5)))
	assert.Equal(t, grey, color.NRGBAModel.Convert(got.At(25, 25)))
}

func TestFile_ZeroRectPixelIdentical(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.png")
	in := solid(8, 8, grey)
	in.SetNRGBA(3, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 0x80})
	writePNG(t, src, in)

	require.NoError(t, File(src, model.Rect{X: 1, Y: 1}, dst))

	got := readPNG(t, dst)
	want := ToRGB(readPNG(t, src))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, want.NRGBAAt(x, y), color.NRGBAModel.Convert(got.At(x, y)))
		}
	}
}

func TestFile_OverwritesDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.png")
	writePNG(t, src, solid(4, 4, grey))
	require.NoError(t, os.WriteFile(dst, []byte("stale"), 0644))

	require.NoError(t, File(src, model.Rect{}, dst))
	readPNG(t, dst)
}

func TestFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := File(filepath.Join(dir, "missing.png"), model.Rect{}, filepath.Join(dir, "out.png"))
	assert.Error(t, err)
}

func TestFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	writePNG(t, src, solid(4, 4, grey))

	err := File(src, model.Rect{}, filepath.Join(dir, "out.xyz"))
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out.xyz"))
}

func TestFile_OtherFormats(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	writePNG(t, src, solid(16, 16, grey))

	for _, name := range []string{"out.jpg", "out.jpeg", "out.gif", "out.bmp", "out.tiff"} {
		dst := filepath.Join(dir, name)
		require.NoError(t, File(src, model.Rect{X: 2, Y: 2, W: 4, H: 4}, dst), name)

		f, err := os.Open(dst)
		require.NoError(t, err)
		_, _, err = image.Decode(f)
		f.Close()
		assert.NoError(t, err, name)
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.PNG"))
	assert.True(t, Supported("a.tif"))
	assert.False(t, Supported("a.webp"))
	assert.False(t, Supported("a"))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, c)

	c, err = ParseColor("#00FF80")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 0xff, B: 0x80, A: 0xff}, c)

	c, err = ParseColor("#0f0")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, c)

	_, err = ParseColor("not-a-colour")
	assert.Error(t, err)
}
