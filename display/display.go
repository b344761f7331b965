// Package display writes rendered frames to a terminal or any other writer.
package display

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"go.jacobcolvin.com/asciify/ascii"
)

// clearScreen homes the cursor and erases the screen.
const clearScreen = ansi.CursorHomePosition + ansi.EraseEntireScreen

// Display is a surface frames are shown on. Each [Display.Show] is a single
// write, so a failed write never leaves half a frame behind a cleared
// screen. Safe for concurrent use.
//
// Create instances with [New] or [Stdout].
type Display struct {
	w     io.Writer
	mu    sync.Mutex
	clear bool
}

// Option configures a [Display].
type Option func(*Display)

// WithClear clears the screen before every frame.
func WithClear(enabled bool) Option {
	return func(d *Display) {
		d.clear = enabled
	}
}

// New creates a [Display] writing to w.
func New(w io.Writer, opts ...Option) *Display {
	d := &Display{w: w}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Stdout returns a [Display] for standard output. When stdout is a terminal
// the screen is cleared between frames and 24-bit colors are downsampled to
// whatever the terminal supports; otherwise frames are written verbatim.
func Stdout() *Display {
	if !IsTerminal() {
		return New(os.Stdout)
	}

	return New(colorprofile.NewWriter(os.Stdout, os.Environ()), WithClear(true))
}

// IsTerminal reports whether standard output is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the column count of the terminal on standard output.
func TerminalWidth() (int, error) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))

	return w, err
}

// Show writes f followed by a newline, preceded by a screen clear when
// enabled.
func (d *Display) Show(f ascii.Frame) error {
	var sb strings.Builder

	if d.clear {
		sb.WriteString(clearScreen)
	}

	//nolint:errcheck // strings.Builder never fails.
	f.WriteTo(&sb)

	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := io.WriteString(d.w, sb.String())

	return err
}
