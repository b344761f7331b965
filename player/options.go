package player

import (
	"errors"
	"fmt"

	"go.jacobcolvin.com/asciify/ascii"
)

// ErrInvalidOption indicates an [Options] value failed validation.
var ErrInvalidOption = errors.New("invalid option")

// Defaults for [Options].
const (
	DefaultWidth = 100
	DefaultFPS   = 10
)

// Options holds every setting that affects conversion and playback.
type Options struct {
	// Ramp is the glyph ramp, darkest first.
	Ramp string
	// Resample names the interpolation kernel, see [ascii.ParseResample].
	Resample string
	// Width is the target column count.
	Width int
	// Height is the target row count. Zero means "same as Width" unless
	// KeepAspect is set. Must be zero when KeepAspect is set.
	Height int
	// FPS is the video frame rate.
	FPS int
	// KeepAspect derives the height from the source aspect ratio.
	KeepAspect bool
	// Color wraps every glyph in a 24-bit color directive.
	Color bool
	// Invert reverses the ramp for light backgrounds.
	Invert bool
}

// DefaultOptions returns the defaults: 100 columns, height equal to width,
// no color, 10 frames per second, [ascii.DefaultRamp].
func DefaultOptions() Options {
	return Options{
		Ramp:     ascii.DefaultRamp,
		Resample: string(ascii.ResampleCatmullRom),
		Width:    DefaultWidth,
		FPS:      DefaultFPS,
	}
}

// Size returns the target grid passed to [ascii.WithSize].
func (o Options) Size() (int, int) {
	switch {
	case o.KeepAspect:
		return o.Width, 0
	case o.Height > 0:
		return o.Width, o.Height
	}

	return o.Width, o.Width
}

// Validate checks o. Errors wrap [ErrInvalidOption].
func (o Options) Validate() error {
	if o.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidOption, o.Width)
	}

	if o.Height < 0 {
		return fmt.Errorf("%w: height must not be negative, got %d", ErrInvalidOption, o.Height)
	}

	if o.KeepAspect && o.Height > 0 {
		return fmt.Errorf("%w: height %d conflicts with keep-aspect", ErrInvalidOption, o.Height)
	}

	if o.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidOption, o.FPS)
	}

	_, err := ascii.ParseResample(o.Resample)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	_, err = ascii.NewRamp(o.Ramp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	return nil
}

// Converter builds the [ascii.Converter] described by o.
func (o Options) Converter() (*ascii.Converter, error) {
	err := o.Validate()
	if err != nil {
		return nil, err
	}

	ramp, err := ascii.NewRamp(o.Ramp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	if o.Invert {
		ramp = ramp.Reverse()
	}

	kernel, err := ascii.ParseResample(o.Resample)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	w, h := o.Size()

	return ascii.NewConverter(
		ascii.WithSize(w, h),
		ascii.WithResample(kernel),
		ascii.WithRenderer(ascii.NewRenderer(
			ascii.WithRamp(ramp),
			ascii.WithColor(o.Color),
		)),
	), nil
}
