// Command asciify converts images and videos to ASCII art in the terminal.
//
// # Usage
//
//	asciify [flags] [file]
//
// With a file argument the input is dispatched by extension: images are
// printed once, videos play frame by frame with audio through ffplay.
// Without one, a launcher form collects the path and options.
//
// # Examples
//
//	asciify photo.jpg
//	asciify --color --width 120 --keep-aspect clip.mp4
//	asciify --width 0 --invert scan.png
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciify/display"
	"go.jacobcolvin.com/asciify/form"
	"go.jacobcolvin.com/asciify/log"
	"go.jacobcolvin.com/asciify/player"
	"go.jacobcolvin.com/asciify/profile"
	"go.jacobcolvin.com/asciify/video"
	"go.jacobcolvin.com/asciify/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, newApp(), os.Args[1:])

	stop()
	os.Exit(code)
}

// app holds the collaborators of the root command.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	surface   func() video.Surface
	termWidth func() (int, error)
	form      func(ctx context.Context, base player.Options, path string) (form.Result, error)

	logCfg     *log.Config
	profileCfg *profile.Config
	playerCfg  *player.Config

	playerOpts []player.Option
}

func newApp() *app {
	return &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		surface:    func() video.Surface { return display.Stdout() },
		termWidth:  display.TerminalWidth,
		form:       form.Run,
		logCfg:     log.NewConfig(),
		profileCfg: profile.NewConfig(),
		playerCfg:  player.NewConfig(),
	}
}

// run executes the root command with args and returns the exit code.
func run(ctx context.Context, a *app, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)

	// The profiler copies the config, so it is built once flags are parsed.
	var prof *profile.Profiler

	root.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		prof = a.profileCfg.NewProfiler()

		return prof.Start()
	}

	err := root.ExecuteContext(ctx)

	if prof != nil {
		stopErr := prof.Stop()
		if stopErr != nil {
			fmt.Fprintf(a.stderr, "Error: profiling: %v\n", stopErr)
		}
	}

	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "asciify [flags] [file]",
		Short: "Convert images and videos to ASCII art",
		Long: `asciify renders still images and videos as ASCII art, optionally with
24-bit color per character. Videos are decoded with ffmpeg and play at a fixed
frame rate while ffplay plays the audio track.

Run without a file to open an interactive launcher.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: a.playerCfg.ValidArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd.Context(), args)
		},
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	a.logCfg.RegisterFlags(root.PersistentFlags())
	a.profileCfg.RegisterFlags(root.PersistentFlags())
	a.playerCfg.RegisterFlags(root.Flags())

	for _, register := range []func(*cobra.Command) error{
		a.logCfg.RegisterCompletions,
		a.profileCfg.RegisterCompletions,
		a.playerCfg.RegisterCompletions,
	} {
		err := register(root)
		if err != nil {
			fmt.Fprintf(a.stderr, "register completions: %v\n", err)
		}
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := version.Get().WriteTo(cmd.OutOrStdout())

			return err
		},
	})

	return root
}

// convert plays args[0], or the file chosen in the launcher form when no
// argument is given, and waits for playback to end. When ctx is canceled it
// still waits for the video task to release its subprocesses.
func (a *app) convert(ctx context.Context, args []string) error {
	logger, err := a.logCfg.Install(a.stderr)
	if err != nil {
		return err
	}

	opts := a.playerCfg.Options
	if opts.Width == 0 {
		opts.Width, err = a.termWidth()
		if err != nil {
			return fmt.Errorf("%w: width 0 needs a terminal on stdout: %w", player.ErrInvalidOption, err)
		}
	}

	var path string

	if len(args) > 0 {
		path = args[0]
	} else {
		res, formErr := a.form(ctx, opts, "")
		if errors.Is(formErr, form.ErrCanceled) {
			return nil
		}

		if formErr != nil {
			return formErr
		}

		path, opts = res.Path, res.Options
	}

	popts := append([]player.Option{player.WithLogger(logger)}, a.playerOpts...)

	p, err := player.New(opts, a.surface(), popts...)
	if err != nil {
		return err
	}

	done, err := p.Play(ctx, path)
	if err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
	}

	// Cancellation ends the decoder, so the video task returns and stops
	// the audio player before the process exits.
	logger.Debug("interrupted, stopping playback", slog.String("path", path))
	<-done

	return nil
}
