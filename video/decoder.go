package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strings"

	"go.jacobcolvin.com/asciify/ascii"
)

// ErrFFmpegNotFound indicates the ffmpeg binary is not on PATH.
var ErrFFmpegNotFound = errors.New("ffmpeg not found in PATH")

// Decoder yields the frames of a video file in order. It is forward-only
// and cannot be rewound; once [Decoder.Next] returns an error every later
// call returns the same error.
//
// Create instances with [Open] and release them with [Decoder.Close].
type Decoder struct {
	cmd    *exec.Cmd
	cancel context.CancelFunc
	frames *frameReader
	stderr *bytes.Buffer
	err    error
	info   Info
}

// DecoderOption configures [Open].
type DecoderOption func(*decoderOptions)

type decoderOptions struct {
	ffmpeg string
	probe  func(string) (Info, error)
}

// WithFFmpeg sets the ffmpeg binary. The default is "ffmpeg" from PATH.
func WithFFmpeg(bin string) DecoderOption {
	return func(o *decoderOptions) {
		o.ffmpeg = bin
	}
}

// WithProbe replaces [Probe] for stream discovery.
func WithProbe(fn func(string) (Info, error)) DecoderOption {
	return func(o *decoderOptions) {
		o.probe = fn
	}
}

// Open probes path and starts ffmpeg decoding its first video stream to
// raw RGB24 frames at the stream's display size, that is after rotation.
// The ffmpeg process is killed when ctx is canceled.
func Open(ctx context.Context, path string, opts ...DecoderOption) (*Decoder, error) {
	o := decoderOptions{
		ffmpeg: "ffmpeg",
		probe:  Probe,
	}
	for _, opt := range opts {
		opt(&o)
	}

	bin, err := exec.LookPath(o.ffmpeg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFFmpegNotFound, err)
	}

	info, err := o.probe(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	width, height := info.DisplaySize()

	//nolint:gosec // path is a user-provided CLI argument, not untrusted input.
	cmd := exec.CommandContext(ctx, bin, ffmpegArgs(path, width, height)...)

	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()

		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}

	err = cmd.Start()
	if err != nil {
		cancel()

		return nil, fmt.Errorf("%w: starting ffmpeg: %w", ascii.ErrDecode, err)
	}

	return &Decoder{
		cmd:    cmd,
		cancel: cancel,
		frames: newFrameReader(stdout, width, height),
		stderr: stderr,
		info:   info,
	}, nil
}

// ffmpegArgs selects the first video stream, the one [Probe] describes, and
// pins the output size so every frame is exactly width*height pixels.
func ffmpegArgs(path string, width, height int) []string {
	return []string{
		"-v", "error",
		"-i", path,
		"-map", "0:v:0",
		"-an",
		"-vf", fmt.Sprintf("scale=%d:%d", width, height),
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"pipe:1",
	}
}

// Info returns the probed stream metadata.
func (d *Decoder) Info() Info {
	return d.info
}

// Next returns the next frame, or [io.EOF] after the last one. Decode
// failures, including a non-zero ffmpeg exit, wrap [ascii.ErrDecode].
func (d *Decoder) Next() (image.Image, error) {
	if d.err != nil {
		return nil, d.err
	}

	frame, err := d.frames.Next()
	if err == nil {
		return frame, nil
	}

	d.err = err

	if errors.Is(err, io.EOF) {
		waitErr := d.cmd.Wait()
		if waitErr != nil {
			d.err = fmt.Errorf("%w: ffmpeg: %w: %s",
				ascii.ErrDecode, waitErr, strings.TrimSpace(d.stderr.String()))
		}

		d.cmd = nil
	}

	return nil, d.err
}

// Close stops ffmpeg and waits for it to exit. Idempotent.
func (d *Decoder) Close() error {
	d.cancel()

	if d.cmd != nil {
		//nolint:errcheck // Error is expected after context cancellation.
		d.cmd.Wait()

		d.cmd = nil
	}

	return nil
}

// frameReader splits a raw RGB24 byte stream into frames.
type frameReader struct {
	r      io.Reader
	buf    []byte
	width  int
	height int
}

func newFrameReader(r io.Reader, width, height int) *frameReader {
	return &frameReader{
		r:      r,
		buf:    make([]byte, width*height*3),
		width:  width,
		height: height,
	}
}

// Next reads exactly one frame. A clean end of stream between frames returns
// [io.EOF]; a truncated frame wraps [ascii.ErrDecode].
func (fr *frameReader) Next() (*image.RGBA, error) {
	_, err := io.ReadFull(fr.r, fr.buf)
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	if err != nil {
		return nil, fmt.Errorf("%w: reading frame: %w", ascii.ErrDecode, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, fr.width, fr.height))
	for i, j := 0, 0; i < len(fr.buf); i, j = i+3, j+4 {
		img.Pix[j] = fr.buf[i]
		img.Pix[j+1] = fr.buf[i+1]
		img.Pix[j+2] = fr.buf[i+2]
		img.Pix[j+3] = 0xff
	}

	return img, nil
}
