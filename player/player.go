package player

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.jacobcolvin.com/asciify/ascii"
	"go.jacobcolvin.com/asciify/video"
)

// VideoSource is an open video: a [video.FrameSource] that must be closed.
type VideoSource interface {
	video.FrameSource
	Close() error
}

// Player converts images and plays videos onto a [video.Surface].
//
// Create instances with [New].
type Player struct {
	surface video.Surface
	conv    *ascii.Converter
	audio   *video.Audio
	logger  *slog.Logger
	open    func(ctx context.Context, path string) (VideoSource, error)
	sleep   func(time.Duration)
	opts    Options
}

// Option configures a [Player].
type Option func(*Player)

// WithLogger sets the logger for playback errors.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		p.logger = l
	}
}

// WithAudio sets the audio side player. The default launches ffplay.
func WithAudio(a *video.Audio) Option {
	return func(p *Player) {
		p.audio = a
	}
}

// WithVideoOpener replaces the ffmpeg [video.Decoder] as the source of
// video frames.
func WithVideoOpener(fn func(ctx context.Context, path string) (VideoSource, error)) Option {
	return func(p *Player) {
		p.open = fn
	}
}

// WithSleep replaces [time.Sleep] for the inter-frame delay.
func WithSleep(fn func(time.Duration)) Option {
	return func(p *Player) {
		p.sleep = fn
	}
}

// New validates opts and creates a [Player] showing output on s.
func New(opts Options, s video.Surface, popts ...Option) (*Player, error) {
	conv, err := opts.Converter()
	if err != nil {
		return nil, err
	}

	p := &Player{
		surface: s,
		conv:    conv,
		logger:  slog.Default(),
		sleep:   time.Sleep,
		opts:    opts,
	}
	for _, opt := range popts {
		opt(p)
	}

	if p.audio == nil {
		p.audio = video.NewAudio(video.WithAudioLogger(p.logger))
	}

	if p.open == nil {
		p.open = func(ctx context.Context, path string) (VideoSource, error) {
			d, err := video.Open(ctx, path)
			if err != nil {
				return nil, err
			}

			return d, nil
		}
	}

	return p, nil
}

// Play dispatches path by extension. Images are rendered and shown before
// Play returns, and the returned channel is already closed. Videos start
// playing in the background; the channel closes when playback ends.
//
// Unsupported extensions wrap [ErrUnsupportedFormat] and nothing is shown.
// Image decode failures wrap [ascii.ErrDecode]. Video failures are logged,
// not returned.
func (p *Player) Play(ctx context.Context, path string) (<-chan struct{}, error) {
	kind, err := Classify(path)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("playing", slog.String("path", path), slog.String("kind", kind.String()))

	if kind == KindVideo {
		return p.PlayVideo(ctx, path), nil
	}

	err = p.ShowImage(path)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	close(done)

	return done, nil
}

// ShowImage converts the image at path and shows it.
func (p *Player) ShowImage(path string) error {
	frame, err := p.conv.ConvertFile(path)
	if err != nil {
		return err
	}

	err = p.surface.Show(frame)
	if err != nil {
		return fmt.Errorf("showing %s: %w", path, err)
	}

	return nil
}

// PlayVideo starts audio and video playback of path and returns a channel
// closed when the video task ends. The audio player runs as a separate
// process that is never waited for while frames play; when the video task
// ends, for any reason, the audio player is stopped so it cannot outlive the
// video.
func (p *Player) PlayVideo(ctx context.Context, path string) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		audio := p.audio.Play(ctx, path)
		defer audio.Stop()

		src, err := p.open(ctx, path)
		if err != nil {
			p.logger.Error("opening video", slog.String("path", path), slog.Any("err", err))

			return
		}

		defer func() {
			closeErr := src.Close()
			if closeErr != nil {
				p.logger.Warn("closing video", slog.String("path", path), slog.Any("err", closeErr))
			}
		}()

		loop := video.NewLoop(p.surface, p.conv, p.opts.FPS,
			video.WithLogger(p.logger),
			video.WithSleep(p.sleep),
		)

		shown := loop.Run(src)
		p.logger.Debug("video stopped", slog.String("path", path), slog.Int("frames", shown))
	}()

	return done
}
