package player_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciify/ascii"
	"go.jacobcolvin.com/asciify/player"
	"go.jacobcolvin.com/asciify/video"
)

type recordingSurface struct {
	frames []string
	mu     sync.Mutex
}

func (s *recordingSurface) Show(f ascii.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frames = append(s.frames, f.String())

	return nil
}

func (s *recordingSurface) Frames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.frames
}

type fakeVideo struct {
	frames []image.Image
	closed bool
}

func (v *fakeVideo) Next() (image.Image, error) {
	if len(v.frames) == 0 {
		return nil, io.EOF
	}

	f := v.frames[0]
	v.frames = v.frames[1:]

	return f, nil
}

func (v *fakeVideo) Close() error {
	v.closed = true

	return nil
}

func silentAudio() player.Option {
	return player.WithAudio(video.NewAudio(
		video.WithPlayer("asciify-no-such-ffplay"),
		video.WithAudioLogger(slog.New(slog.DiscardHandler)),
	))
}

func smallOptions() player.Options {
	o := player.DefaultOptions()
	o.Width = 2
	o.Height = 1

	return o
}

func writeGrayPNG(t *testing.T, v uint8) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 4, 2))
	for i := range img.Pix {
		img.Pix[i] = v
	}

	path := filepath.Join(t.TempDir(), "in.png")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	return path
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	o := player.DefaultOptions()
	o.Width = -3

	_, err := player.New(o, &recordingSurface{})
	require.ErrorIs(t, err, player.ErrInvalidOption)
}

func TestPlayImage(t *testing.T) {
	t.Parallel()

	surface := &recordingSurface{}

	p, err := player.New(smallOptions(), surface, silentAudio())
	require.NoError(t, err)

	done, err := p.Play(t.Context(), writeGrayPNG(t, 0))
	require.NoError(t, err)

	select {
	case <-done:
	default:
		t.Fatal("image playback should complete before Play returns")
	}

	assert.Equal(t, []string{"@@"}, surface.Frames())
}

func TestPlayErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a png"), 0o600))

	gif := filepath.Join(dir, "anim.gif")
	require.NoError(t, os.WriteFile(gif, []byte("GIF89a"), 0o600))

	tcs := map[string]struct {
		path    string
		wantErr error
	}{
		"unsupported extension": {
			path:    gif,
			wantErr: player.ErrUnsupportedFormat,
		},
		"corrupt image": {
			path:    corrupt,
			wantErr: ascii.ErrDecode,
		},
		"missing image": {
			path:    filepath.Join(dir, "missing.jpg"),
			wantErr: ascii.ErrDecode,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			surface := &recordingSurface{}

			p, err := player.New(smallOptions(), surface, silentAudio())
			require.NoError(t, err)

			done, err := p.Play(t.Context(), tc.path)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, done)
			assert.Empty(t, surface.Frames(), "no output on error")
		})
	}
}

func TestPlayVideo(t *testing.T) {
	t.Parallel()

	black := image.NewRGBA(image.Rect(0, 0, 2, 2))
	white := image.NewRGBA(image.Rect(0, 0, 2, 2))

	for i := range 4 {
		black.SetRGBA(i%2, i/2, color.RGBA{0, 0, 0, 255})
		white.SetRGBA(i%2, i/2, color.RGBA{255, 255, 255, 255})
	}

	src := &fakeVideo{frames: []image.Image{black, white}}
	surface := &recordingSurface{}

	var sleeps []time.Duration

	p, err := player.New(smallOptions(), surface,
		silentAudio(),
		player.WithLogger(slog.New(slog.DiscardHandler)),
		player.WithSleep(func(d time.Duration) { sleeps = append(sleeps, d) }),
		player.WithVideoOpener(func(context.Context, string) (player.VideoSource, error) {
			return src, nil
		}),
	)
	require.NoError(t, err)

	done, err := p.Play(t.Context(), "clip.mp4")
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("video playback did not finish")
	}

	assert.Equal(t, []string{"@@", "  "}, surface.Frames())
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}, sleeps)
	assert.True(t, src.closed)
}

func TestPlayVideoOpenFailure(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	surface := &recordingSurface{}

	p, err := player.New(smallOptions(), surface,
		silentAudio(),
		player.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		player.WithVideoOpener(func(context.Context, string) (player.VideoSource, error) {
			return nil, errors.Join(ascii.ErrDecode, errors.New("moov atom not found"))
		}),
	)
	require.NoError(t, err)

	done, err := p.Play(t.Context(), "clip.mp4")
	require.NoError(t, err, "video failures are logged, not returned")

	<-done

	assert.Empty(t, surface.Frames())
	assert.Contains(t, logs.String(), "opening video")
	assert.Contains(t, logs.String(), "moov atom not found")
}
