package ascii

import "image"

// Converter resizes images to a character grid and renders them.
//
// Create instances with [NewConverter]. A Converter holds no mutable state
// and is safe for concurrent use.
type Converter struct {
	renderer *Renderer
	resample Resample
	width    int
	height   int
}

// Option configures a [Converter].
type Option func(*Converter)

// WithSize sets the target grid. Zero leaves a dimension unset; see
// [TargetSize].
func WithSize(width, height int) Option {
	return func(c *Converter) {
		c.width = width
		c.height = height
	}
}

// WithResample sets the interpolation kernel. The default is
// [ResampleCatmullRom].
func WithResample(r Resample) Option {
	return func(c *Converter) {
		c.resample = r
	}
}

// WithRenderer sets the [Renderer] used for glyph mapping.
func WithRenderer(r *Renderer) Option {
	return func(c *Converter) {
		if r != nil {
			c.renderer = r
		}
	}
}

// NewConverter creates a [Converter] with the given options. Without
// options it renders at source size in gray with [DefaultRamp].
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		renderer: NewRenderer(),
		resample: ResampleCatmullRom,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Frame resizes img and renders it.
func (c *Converter) Frame(img image.Image) Frame {
	return c.renderer.Render(Resize(img, c.width, c.height, c.resample))
}

// ConvertFile loads the image at path and renders it with [Converter.Frame].
// Errors wrap [ErrDecode].
func (c *Converter) ConvertFile(path string) (Frame, error) {
	img, err := Load(path)
	if err != nil {
		return Frame{}, err
	}

	return c.Frame(img), nil
}
