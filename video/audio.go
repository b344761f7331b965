package video

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

// ErrAudioLaunch indicates the audio player process could not be started.
var ErrAudioLaunch = errors.New("cannot launch audio player")

// Audio plays the soundtrack of a media file through an external player
// running as a detached side process.
//
// Create instances with [NewAudio].
type Audio struct {
	logger *slog.Logger
	bin    string
}

// AudioOption configures an [Audio].
type AudioOption func(*Audio)

// WithPlayer sets the audio player binary. The default is "ffplay"; it must
// accept ffplay's -nodisp and -autoexit flags.
func WithPlayer(bin string) AudioOption {
	return func(a *Audio) {
		a.bin = bin
	}
}

// WithAudioLogger sets the logger used to report launch failures.
func WithAudioLogger(l *slog.Logger) AudioOption {
	return func(a *Audio) {
		a.logger = l
	}
}

// NewAudio creates an [Audio] with the given options.
func NewAudio(opts ...AudioOption) *Audio {
	a := &Audio{
		bin:    "ffplay",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Playback is a running audio player process.
//
// Create instances with [Audio.Start].
type Playback struct {
	cmd  *exec.Cmd
	done chan struct{}
}

// Done is closed once the player process has exited and been reaped.
func (pb *Playback) Done() <-chan struct{} {
	return pb.done
}

// Stop kills the player if it is still running and waits until it has been
// reaped. It is a no-op on a nil Playback.
func (pb *Playback) Stop() {
	if pb == nil {
		return
	}

	select {
	case <-pb.done:
		return
	default:
	}

	//nolint:errcheck // The process may have exited on its own already.
	pb.cmd.Process.Kill()

	<-pb.done
}

// Start launches the player against path without a video window, exiting
// at end of stream. It does not wait for playback: the process is reaped in
// the background and killed if ctx is canceled or [Playback.Stop] is called.
// Failures wrap [ErrAudioLaunch].
func (a *Audio) Start(ctx context.Context, path string) (*Playback, error) {
	bin, err := exec.LookPath(a.bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAudioLaunch, err)
	}

	//nolint:gosec // path is a user-provided CLI argument, not untrusted input.
	cmd := exec.CommandContext(ctx, bin, "-nodisp", "-autoexit", "-loglevel", "quiet", path)

	err = cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAudioLaunch, err)
	}

	pb := &Playback{cmd: cmd, done: make(chan struct{})}

	go func() {
		defer close(pb.done)

		waitErr := cmd.Wait()
		if waitErr != nil && ctx.Err() == nil {
			a.logger.Debug("audio player exited", slog.String("path", path), slog.Any("err", waitErr))
		}
	}()

	return pb, nil
}

// Play is [Audio.Start] for fire-and-forget use: a launch failure is logged
// and a nil [*Playback] returned.
func (a *Audio) Play(ctx context.Context, path string) *Playback {
	pb, err := a.Start(ctx, path)
	if err != nil {
		a.logger.Warn("audio playback unavailable", slog.String("path", path), slog.Any("err", err))

		return nil
	}

	return pb
}
