package ascii

import (
	"image"
	"image/color"
	"io"
	"strings"
)

// Frame is the text rendered from one image: one line per pixel row.
type Frame struct {
	Lines []string
}

// String joins the lines with "\n", without a trailing newline.
func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// WriteTo writes the frame followed by a single newline.
func (f Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String()+"\n")

	return int64(n), err
}

// Renderer maps every pixel of an image to a glyph.
//
// Create instances with [NewRenderer].
type Renderer struct {
	ramp  Ramp
	color bool
}

// RendererOption configures a [Renderer].
type RendererOption func(*Renderer)

// WithRamp sets the glyph ramp. The default is [DefaultRamp].
func WithRamp(r Ramp) RendererOption {
	return func(rd *Renderer) {
		if r.Len() > 0 {
			rd.ramp = r
		}
	}
}

// WithColor enables 24-bit color output.
func WithColor(enabled bool) RendererOption {
	return func(rd *Renderer) {
		rd.color = enabled
	}
}

// NewRenderer creates a [Renderer] with the given options.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		ramp: defaultRamp(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Color reports whether the renderer emits color directives.
func (r *Renderer) Color() bool {
	return r.color
}

// Ramp returns the renderer's glyph ramp.
func (r *Renderer) Ramp() Ramp {
	return r.ramp
}

// Render maps img row by row, left to right. In gray mode the image is first
// reduced to 8-bit luma; in color mode RGB values are mapped directly.
func (r *Renderer) Render(img image.Image) Frame {
	b := img.Bounds()
	lines := make([]string, 0, b.Dy())

	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y++ {
		sb.Reset()

		for x := b.Min.X; x < b.Max.X; x++ {
			if r.color {
				c := rgbAt(img, x, y)
				MapRGB(&sb, r.ramp, c.R, c.G, c.B)

				continue
			}

			MapGray(&sb, r.ramp, grayAt(img, x, y))
		}

		lines = append(lines, sb.String())
	}

	return Frame{Lines: lines}
}

// grayAt returns the ITU-R 601 luma of the pixel at (x, y).
func grayAt(img image.Image, x, y int) uint8 {
	if g, ok := img.(*image.Gray); ok {
		return g.GrayAt(x, y).Y
	}

	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

// rgbAt returns the straight (non-premultiplied) RGB value at (x, y).
func rgbAt(img image.Image, x, y int) color.RGBA {
	switch m := img.(type) {
	case *image.RGBA:
		return m.RGBAAt(x, y)
	case *image.Gray:
		v := m.GrayAt(x, y).Y

		return color.RGBA{R: v, G: v, B: v, A: 0xff}
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)

	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
