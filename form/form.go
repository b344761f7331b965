// Package form is an interactive terminal launcher that collects an input
// path and [player.Options], for use when no file is given on the command
// line.
package form

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/asciify/player"
)

// ErrCanceled is returned by [Run] when the form is dismissed.
var ErrCanceled = errors.New("form canceled")

// Result is what the form submits.
type Result struct {
	Path    string
	Options player.Options
}

type field int

const (
	fieldPath field = iota
	fieldWidth
	fieldHeight
	fieldFPS
	fieldColor
	fieldSubmit
	fieldCount
)

var labels = [...]string{
	fieldPath:   "Input file",
	fieldWidth:  "Width",
	fieldHeight: "Height (optional)",
	fieldFPS:    "FPS (video)",
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Bold(true).Width(20)
	focusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	focusLabel = labelStyle.Foreground(lipgloss.Color("#4CAF50"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the launcher form.
//
// Create instances with [New].
type Model struct {
	result    Result
	base      player.Options
	errMsg    string
	inputs    [fieldColor]string
	focus     field
	color     bool
	submitted bool
}

// New creates a form prefilled with path and base. Height starts blank, which
// means "same as width"; settings the form does not show (ramp, resample,
// invert, keep-aspect) pass through from base unchanged.
func New(base player.Options, path string) *Model {
	m := &Model{
		base:  base,
		color: base.Color,
	}

	m.inputs[fieldPath] = path
	m.inputs[fieldWidth] = strconv.Itoa(base.Width)
	m.inputs[fieldFPS] = strconv.Itoa(base.FPS)

	if base.Height > 0 {
		m.inputs[fieldHeight] = strconv.Itoa(base.Height)
	}

	return m
}

// Result returns the submitted values and whether the form was submitted.
func (m *Model) Result() (Result, bool) {
	return m.result, m.submitted
}

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation, editing and submission keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit

	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount

	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount

	case "enter":
		switch m.focus {
		case fieldSubmit:
			return m, m.submit()
		case fieldColor:
			m.color = !m.color
		default:
			m.focus++
		}

	case "space":
		if m.focus == fieldColor {
			m.color = !m.color
		} else {
			m.insert(" ")
		}

	case "backspace":
		if m.focus < fieldColor {
			r := []rune(m.inputs[m.focus])
			if len(r) > 0 {
				m.inputs[m.focus] = string(r[:len(r)-1])
			}
		}

	default:
		m.insert(key.Text)
	}

	return m, nil
}

func (m *Model) insert(text string) {
	if m.focus < fieldColor && text != "" {
		m.inputs[m.focus] += text
	}
}

// submit resolves the inputs. Unparseable numbers fall back to defaults: the
// width to [player.DefaultWidth], the height to the width (or to unset when
// the base options keep the aspect ratio), the frame rate to
// [player.DefaultFPS]. A typed height turns keep-aspect off.
func (m *Model) submit() tea.Cmd {
	path := strings.TrimSpace(m.inputs[fieldPath])
	if path == "" {
		m.errMsg = "Select an input file."

		return nil
	}

	_, err := player.Classify(path)
	if err != nil {
		m.errMsg = "Unsupported format."

		return nil
	}

	opts := m.base
	opts.Color = m.color
	opts.Width = positiveOr(m.inputs[fieldWidth], player.DefaultWidth)
	opts.Height = positiveOr(m.inputs[fieldHeight], 0)

	switch {
	case opts.Height > 0:
		opts.KeepAspect = false
	case !opts.KeepAspect:
		opts.Height = opts.Width
	}
	opts.FPS = positiveOr(m.inputs[fieldFPS], player.DefaultFPS)

	m.errMsg = ""
	m.result = Result{Path: path, Options: opts}
	m.submitted = true

	return tea.Quit
}

func positiveOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}

// View renders the form.
func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("ASCII converter"))
	sb.WriteString("\n\n")

	for f := fieldPath; f < fieldColor; f++ {
		value := m.inputs[f]

		label := labelStyle.Render(labels[f] + ":")
		if f == m.focus {
			label = focusLabel.Render(labels[f] + ":")
			value += "_"
		}

		fmt.Fprintf(&sb, "%s %s\n", label, value)
	}

	box := "[ ]"
	if m.color {
		box = "[x]"
	}

	sb.WriteString(m.focused(fieldColor, box+" Color"))
	sb.WriteString("\n\n")
	sb.WriteString(m.focused(fieldSubmit, "[ Convert and play ]"))
	sb.WriteString("\n")

	if m.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.errMsg))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("tab/shift+tab: move • space: toggle • enter: confirm • esc: quit"))

	return sb.String()
}

func (m *Model) focused(f field, s string) string {
	if m.focus == f {
		return focusStyle.Render(s)
	}

	return s
}

// Run shows the form on the terminal until it is submitted or dismissed.
// Dismissal returns [ErrCanceled].
func Run(ctx context.Context, base player.Options, path string) (Result, error) {
	m := New(base, path)

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return Result{}, fmt.Errorf("running form: %w", err)
	}

	res, ok := m.Result()
	if !ok {
		return Result{}, ErrCanceled
	}

	return res, nil
}
