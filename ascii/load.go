package ascii

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	// Registered decoders.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode indicates an input could not be opened or decoded.
var ErrDecode = errors.New("cannot decode input")

// Load opens and decodes the image at path and passes it through
// [Normalize]. Open and decode failures wrap [ErrDecode].
func Load(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // Path is a user-provided CLI argument.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	defer func() {
		//nolint:errcheck // Read-only file; close errors carry no information.
		f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return Normalize(img), nil
}

// Normalize returns img unchanged when it is plain gray or opaque RGB, and
// otherwise copies it into an opaque [*image.RGBA]. Alpha is discarded rather
// than composited, so transparent regions keep their underlying color and
// palette images lose their indirection. A [*image.RGBA] holds premultiplied
// values, so one with any translucent pixel is copied too.
func Normalize(img image.Image) image.Image {
	switch m := img.(type) {
	case *image.Gray, *image.YCbCr:
		return img
	case *image.RGBA:
		if m.Opaque() {
			return img
		}
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}

	return dst
}
