package ascii

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resample names the interpolation kernel used by [Resize].
type Resample string

const (
	// ResampleNearest uses nearest-neighbor sampling. Fastest, blocky.
	ResampleNearest Resample = "nearest"
	// ResampleBilinear uses bilinear interpolation.
	ResampleBilinear Resample = "bilinear"
	// ResampleCatmullRom uses the Catmull-Rom cubic kernel.
	ResampleCatmullRom Resample = "catmull-rom"
	// ResampleLanczos uses a three-lobe Lanczos kernel.
	ResampleLanczos Resample = "lanczos"
)

// ErrUnknownResample indicates an unrecognized resample kernel name.
var ErrUnknownResample = errors.New("unknown resample kernel")

var allResamples = []Resample{ResampleNearest, ResampleBilinear, ResampleCatmullRom, ResampleLanczos}

// GetAllResampleStrings returns every accepted kernel name.
func GetAllResampleStrings() []string {
	out := make([]string, 0, len(allResamples))
	for _, r := range allResamples {
		out = append(out, string(r))
	}

	return out
}

// ParseResample parses a kernel name, case-insensitively.
func ParseResample(s string) (Resample, error) {
	r := Resample(strings.ToLower(s))
	for _, known := range allResamples {
		if r == known {
			return r, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownResample, s)
}

// TargetSize computes the output dimensions for an image with the given
// bounds. A zero width or height is unset:
//
//   - both set: (width, height) as given;
//   - only width: height = round(width * srcH / srcW);
//   - only height: width = round(height * srcW / srcH);
//   - neither: the source size.
//
// A derived dimension never drops below 1.
func TargetSize(src image.Rectangle, width, height int) (int, int) {
	srcW, srcH := src.Dx(), src.Dy()

	switch {
	case width > 0 && height > 0:
		return width, height
	case width > 0:
		return width, derive(width, srcH, srcW)
	case height > 0:
		return derive(height, srcW, srcH), height
	}

	return srcW, srcH
}

func derive(given, num, den int) int {
	if den == 0 {
		return 1
	}

	return max(1, int(math.Round(float64(given)*float64(num)/float64(den))))
}

// Resize scales img to the size computed by [TargetSize]. When neither
// dimension is set, or the target equals the source size, img is returned
// unchanged. Gray sources stay gray; everything else becomes RGBA.
func Resize(img image.Image, width, height int, kernel Resample) image.Image {
	if width <= 0 && height <= 0 {
		return img
	}

	src := img.Bounds()

	w, h := TargetSize(src, width, height)
	if w == src.Dx() && h == src.Dy() {
		return img
	}

	if kernel == ResampleLanczos {
		return resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
	}

	rect := image.Rect(0, 0, w, h)

	var dst draw.Image
	if _, ok := img.(*image.Gray); ok {
		dst = image.NewGray(rect)
	} else {
		dst = image.NewRGBA(rect)
	}

	scaler(kernel).Scale(dst, rect, img, src, draw.Src, nil)

	return dst
}

func scaler(kernel Resample) draw.Scaler {
	switch kernel {
	case ResampleNearest:
		return draw.NearestNeighbor
	case ResampleBilinear:
		return draw.BiLinear
	}

	return draw.CatmullRom
}
