// Package ascii turns images into text.
//
// Each pixel is reduced to a luminance value and looked up in a [Ramp], an
// ordered run of glyphs from darkest to lightest. A [Renderer] applies that
// mapping to every pixel of an image and produces a [Frame], one line of
// glyphs per pixel row. In color mode every glyph is wrapped in a 24-bit
// ANSI foreground directive carrying the pixel's literal RGB value.
//
// Images are usually scaled to the target character grid first with
// [Resize]; a [Converter] bundles resizing and rendering, and
// [Converter.ConvertFile] adds decoding:
//
//	conv := ascii.NewConverter(
//	    ascii.WithSize(100, 0),
//	    ascii.WithRenderer(ascii.NewRenderer(ascii.WithColor(true))),
//	)
//
//	frame, err := conv.ConvertFile("cat.png")
//	if errors.Is(err, ascii.ErrDecode) {
//	    // Unreadable or corrupt input.
//	}
//
//	fmt.Println(frame)
package ascii
