package video

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"time"

	"go.jacobcolvin.com/asciify/ascii"
)

// FrameSource is a forward-only sequence of frames. Next returns [io.EOF]
// once the sequence is exhausted.
type FrameSource interface {
	Next() (image.Image, error)
}

// Surface shows rendered frames.
type Surface interface {
	Show(f ascii.Frame) error
}

// Loop renders frames from a [FrameSource] onto a [Surface] at a fixed
// delay.
//
// Create instances with [NewLoop].
type Loop struct {
	surface Surface
	conv    *ascii.Converter
	logger  *slog.Logger
	sleep   func(time.Duration)
	delay   time.Duration
}

// LoopOption configures a [Loop].
type LoopOption func(*Loop)

// WithLogger sets the logger used for decode and display errors.
func WithLogger(l *slog.Logger) LoopOption {
	return func(lp *Loop) {
		lp.logger = l
	}
}

// WithSleep replaces [time.Sleep] for the inter-frame delay.
func WithSleep(fn func(time.Duration)) LoopOption {
	return func(lp *Loop) {
		lp.sleep = fn
	}
}

// NewLoop creates a [Loop] showing frames on s, converted by conv, with a
// delay of 1/fps seconds after each frame. A non-positive fps is treated as
// 1.
func NewLoop(s Surface, conv *ascii.Converter, fps int, opts ...LoopOption) *Loop {
	lp := &Loop{
		surface: s,
		conv:    conv,
		logger:  slog.Default(),
		sleep:   time.Sleep,
		delay:   time.Second / time.Duration(max(fps, 1)),
	}
	for _, opt := range opts {
		opt(lp)
	}

	return lp
}

// Delay returns the fixed pause after each frame.
func (lp *Loop) Delay() time.Duration {
	return lp.delay
}

// Run plays src until it is exhausted or fails, and returns the number of
// frames shown. Errors end the loop and are logged, never returned.
func (lp *Loop) Run(src FrameSource) int {
	shown := 0

	for {
		img, err := src.Next()
		if errors.Is(err, io.EOF) {
			lp.logger.Debug("video finished", slog.Int("frames", shown))

			return shown
		}

		if err != nil {
			lp.logger.Error("decoding video frame", slog.Int("frame", shown), slog.Any("err", err))

			return shown
		}

		err = lp.surface.Show(lp.conv.Frame(img))
		if err != nil {
			lp.logger.Error("displaying video frame", slog.Int("frame", shown), slog.Any("err", err))

			return shown
		}

		shown++

		lp.sleep(lp.delay)
	}
}
