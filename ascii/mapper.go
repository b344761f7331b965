package ascii

import (
	"fmt"
	"io"
)

const (
	// sgrReset restores default attributes after a colored glyph.
	sgrReset = "\x1b[0m"
	// sgrForeground is the 24-bit foreground color directive.
	sgrForeground = "\x1b[38;2;%d;%d;%dm"
)

// Luminance weights an RGB triple into a single brightness value:
// floor(0.2989R + 0.5870G + 0.1140B).
func Luminance(r, g, b uint8) uint8 {
	return uint8(0.2989*float64(r) + 0.5870*float64(g) + 0.1140*float64(b))
}

// MapGray writes the glyph for a single luminance value.
func MapGray(w io.StringWriter, ramp Ramp, l uint8) {
	//nolint:errcheck // Writers used here are in-memory builders.
	w.WriteString(string(ramp.Glyph(l)))
}

// MapRGB writes the glyph for an RGB pixel, wrapped in a foreground color
// directive carrying the pixel's literal value and followed by a reset.
func MapRGB(w io.Writer, ramp Ramp, r, g, b uint8) {
	glyph := ramp.Glyph(Luminance(r, g, b))

	//nolint:errcheck // Writers used here are in-memory builders.
	fmt.Fprintf(w, sgrForeground+"%c"+sgrReset, r, g, b, glyph)
}
