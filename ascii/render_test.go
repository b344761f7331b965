package ascii_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciify/ascii"
	"go.jacobcolvin.com/asciify/stringtest"
)

func grayImage(w, h int, values ...uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, values)

	return img
}

func rgbImage(w, h int, pixels ...color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, c := range pixels {
		img.SetRGBA(i%w, i/w, c)
	}

	return img
}

func TestRenderGray(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		img  image.Image
		want string
	}{
		"single mid gray pixel": {
			img:  grayImage(1, 1, 128),
			want: "+",
		},
		"ramp extremes": {
			img: grayImage(2, 2,
				0, 255,
				255, 0,
			),
			want: stringtest.JoinLF(
				"@ ",
				" @",
			),
		},
		"rgb source is reduced to luma": {
			img: rgbImage(3, 1,
				color.RGBA{255, 0, 0, 255},
				color.RGBA{0, 0, 0, 255},
				color.RGBA{255, 255, 255, 255},
			),
			want: "#@ ",
		},
		"offset bounds": {
			img:  grayImage(4, 4).SubImage(image.Rect(1, 1, 3, 2)),
			want: "@@",
		},
	}

	r := ascii.NewRenderer()

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, r.Render(tc.img).String())
		})
	}
}

func TestRenderColor(t *testing.T) {
	t.Parallel()

	r := ascii.NewRenderer(ascii.WithColor(true))
	require.True(t, r.Color())

	t.Run("pure red", func(t *testing.T) {
		t.Parallel()

		got := r.Render(rgbImage(1, 1, color.RGBA{255, 0, 0, 255})).String()
		assert.Equal(t, "\x1b[38;2;255;0;0m#\x1b[0m", got)
	})

	t.Run("rows map left to right", func(t *testing.T) {
		t.Parallel()

		img := rgbImage(2, 2,
			color.RGBA{0, 0, 0, 255}, color.RGBA{255, 0, 0, 255},
			color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 255},
		)

		frame := r.Render(img)
		require.Len(t, frame.Lines, 2)
		assert.Equal(t, "@#", stringtest.StripANSI(frame.Lines[0]))
		assert.Equal(t, ".@", stringtest.StripANSI(frame.Lines[1]))
		assert.Contains(t, frame.Lines[0], "38;2;255;0;0m")
	})

	t.Run("gray source keeps its value in every channel", func(t *testing.T) {
		t.Parallel()

		got := r.Render(grayImage(1, 1, 128)).String()
		assert.Equal(t, "\x1b[38;2;128;128;128m+\x1b[0m", got)
	})
}

func TestRenderCustomRamp(t *testing.T) {
	t.Parallel()

	ramp, err := ascii.NewRamp("01")
	require.NoError(t, err)

	r := ascii.NewRenderer(ascii.WithRamp(ramp.Reverse()))
	assert.Equal(t, "10", r.Render(grayImage(2, 1, 0, 255)).String())
	assert.Equal(t, "10", r.Ramp().String())
}

func TestFrameWriteTo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	frame := ascii.Frame{Lines: []string{"@@", "  "}}

	n, err := frame.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
	assert.Equal(t, "@@\n  \n", buf.String())
}
