package player

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/asciify/ascii"
	"go.jacobcolvin.com/asciify/video"
)

// Flags holds CLI flag names for player configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Width      string
	Height     string
	KeepAspect string
	Color      string
	FPS        string
	Ramp       string
	Invert     string
	Resample   string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:   f,
		Options: DefaultOptions(),
	}
}

// Config holds CLI flag values for conversion and playback.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewPlayer] to create a [Player].
type Config struct {
	Flags Flags
	Options
}

// NewConfig returns a new [Config] with default flag names and
// [DefaultOptions].
func NewConfig() *Config {
	f := Flags{
		Width:      "width",
		Height:     "height",
		KeepAspect: "keep-aspect",
		Color:      "color",
		FPS:        "fps",
		Ramp:       "ramp",
		Invert:     "invert",
		Resample:   "resample",
	}

	return f.NewConfig()
}

// RegisterFlags adds player flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	d := DefaultOptions()

	flags.IntVarP(&c.Width, c.Flags.Width, "w", d.Width,
		"output width in columns (0 = terminal width)")
	flags.IntVarP(&c.Height, c.Flags.Height, "H", d.Height,
		"output height in rows (0 = same as width, not allowed with keep-aspect)")
	flags.BoolVarP(&c.KeepAspect, c.Flags.KeepAspect, "k", d.KeepAspect,
		"derive height from the source aspect ratio (conflicts with height)")
	flags.BoolVarP(&c.Color, c.Flags.Color, "c", d.Color,
		"emit 24-bit ANSI color per glyph")
	flags.IntVar(&c.FPS, c.Flags.FPS, d.FPS,
		"video frames per second")
	flags.StringVar(&c.Ramp, c.Flags.Ramp, d.Ramp,
		"glyph ramp, darkest first")
	flags.BoolVar(&c.Invert, c.Flags.Invert, d.Invert,
		"reverse the glyph ramp for light backgrounds")
	flags.StringVar(&c.Resample, c.Flags.Resample, d.Resample,
		fmt.Sprintf("resample kernel, one of: %s", ascii.GetAllResampleStrings()))
}

// RegisterCompletions registers shell completions for player flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Resample,
		cobra.FixedCompletions(ascii.GetAllResampleStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Resample, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Width, c.Flags.Height, c.Flags.FPS, c.Flags.Ramp} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// ValidArgs completes input file arguments by supported extension.
func (c *Config) ValidArgs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	exts := make([]string, 0, len(SupportedExtensions()))
	for _, ext := range SupportedExtensions() {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}

	return exts, cobra.ShellCompDirectiveFilterFileExt
}

// NewPlayer creates a [Player] from the configured options, showing output
// on s.
func (c *Config) NewPlayer(s video.Surface, opts ...Option) (*Player, error) {
	return New(c.Options, s, opts...)
}
