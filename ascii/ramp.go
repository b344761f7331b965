package ascii

import (
	"errors"
	"slices"
)

// DefaultRamp is the glyph ramp used when none is configured. It runs from
// the densest glyph to a blank.
const DefaultRamp = "@%#*+=-:. "

// ErrEmptyRamp is returned by [NewRamp] for a ramp without glyphs.
var ErrEmptyRamp = errors.New("glyph ramp is empty")

// Ramp is an immutable ordered sequence of glyphs, indexed from darkest (0)
// to lightest (Len()-1).
//
// The zero value is not usable; create instances with [NewRamp].
type Ramp struct {
	glyphs []rune
}

// NewRamp creates a [Ramp] from the runes of s, in order.
func NewRamp(s string) (Ramp, error) {
	glyphs := []rune(s)
	if len(glyphs) == 0 {
		return Ramp{}, ErrEmptyRamp
	}

	return Ramp{glyphs: glyphs}, nil
}

// Len returns the number of glyphs in the ramp.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// Index returns the ramp position for luminance l:
// floor(l/255 * (Len()-1)). The result is always within [0, Len()-1], with
// 0 mapping to 0 and 255 mapping to Len()-1.
func (r Ramp) Index(l uint8) int {
	return int(float64(l) / 255 * float64(len(r.glyphs)-1))
}

// Glyph returns the glyph for luminance l.
func (r Ramp) Glyph(l uint8) rune {
	return r.glyphs[r.Index(l)]
}

// Reverse returns a new ramp with the glyph order flipped, for terminals
// with a light background.
func (r Ramp) Reverse() Ramp {
	glyphs := slices.Clone(r.glyphs)
	slices.Reverse(glyphs)

	return Ramp{glyphs: glyphs}
}

func (r Ramp) String() string {
	return string(r.glyphs)
}

func defaultRamp() Ramp {
	return Ramp{glyphs: []rune(DefaultRamp)}
}
