package annotate

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	".png": png.Encode,
	".jpg": func(w io.Writer, m image.Image) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 75})
	},
	".gif": func(w io.Writer, m image.Image) error {
		return gif.Encode(w, m, nil)
	},
	".bmp": bmp.Encode,
	".tif": func(w io.Writer, m image.Image) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	},
}

func init() {
	encoders[".jpeg"] = encoders[".jpg"]
	encoders[".tiff"] = encoders[".tif"]
}

func encoderFor(path string) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q for %s", ext, path)
	}
	return enc, nil
}

// Supported reports whether path has an extension File can write.
func Supported(path string) bool {
	_, err := encoderFor(path)
	return err == nil
}
