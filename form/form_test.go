package form_test

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciify/form"
	"go.jacobcolvin.com/asciify/player"
	"go.jacobcolvin.com/asciify/stringtest"
)

var (
	keyTab       = tea.KeyPressMsg{Code: tea.KeyTab}
	keyShiftTab  = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyEnter     = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyBackspace = tea.KeyPressMsg{Code: tea.KeyBackspace}
	keySpace     = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	keyEsc       = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyCtrlC     = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
)

func send(t *testing.T, m *form.Model, msgs ...tea.Msg) tea.Cmd {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}

	return cmd
}

func typeText(t *testing.T, m *form.Model, s string) {
	t.Helper()

	for _, r := range s {
		send(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// focusSubmit moves focus from the path field to the submit button.
func focusSubmit(t *testing.T, m *form.Model) {
	t.Helper()

	send(t, m, keyTab, keyTab, keyTab, keyTab, keyTab)
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()

	if cmd == nil {
		return false
	}

	_, ok := cmd().(tea.QuitMsg)

	return ok
}

func TestFormSubmitDefaults(t *testing.T) {
	t.Parallel()

	m := form.New(player.DefaultOptions(), "")
	typeText(t, m, "cat.png")
	focusSubmit(t, m)

	cmd := send(t, m, keyEnter)
	assert.True(t, isQuit(t, cmd))

	res, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "cat.png", res.Path)
	assert.Equal(t, 100, res.Options.Width)
	assert.Equal(t, 100, res.Options.Height)
	assert.Equal(t, 10, res.Options.FPS)
	assert.False(t, res.Options.Color)
	assert.Equal(t, player.DefaultOptions().Ramp, res.Options.Ramp)
}

func TestFormEditFields(t *testing.T) {
	t.Parallel()

	m := form.New(player.DefaultOptions(), "clip.mp4")

	// Width: replace "100" with "80".
	send(t, m, keyTab, keyBackspace, keyBackspace, keyBackspace)
	typeText(t, m, "80")

	// Height.
	send(t, m, keyTab)
	typeText(t, m, "40")

	// FPS: replace "10" with "24".
	send(t, m, keyTab, keyBackspace, keyBackspace)
	typeText(t, m, "24")

	// Color toggle, then submit.
	send(t, m, keyTab, keySpace, keyTab)

	cmd := send(t, m, keyEnter)
	assert.True(t, isQuit(t, cmd))

	res, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "clip.mp4", res.Path)
	assert.Equal(t, 80, res.Options.Width)
	assert.Equal(t, 40, res.Options.Height)
	assert.Equal(t, 24, res.Options.FPS)
	assert.True(t, res.Options.Color)
}

func TestFormFallbacks(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		width, height, fps string
		wantW, wantH, want int
	}{
		"non-numeric width": {
			width: "abc", wantW: 100, wantH: 100, want: 10,
		},
		"non-numeric height uses width": {
			width: "60", height: "x", wantW: 60, wantH: 60, want: 10,
		},
		"zero fps": {
			width: "60", fps: "0", wantW: 60, wantH: 60, want: 10,
		},
		"negative width": {
			width: "-5", height: "20", wantW: 100, wantH: 20, want: 10,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			base := player.DefaultOptions()
			m := form.New(base, "a.jpg")

			send(t, m, keyTab, keyBackspace, keyBackspace, keyBackspace)
			typeText(t, m, tc.width)
			send(t, m, keyTab)
			typeText(t, m, tc.height)
			send(t, m, keyTab, keyBackspace, keyBackspace)
			typeText(t, m, tc.fps)
			send(t, m, keyTab, keyTab, keyEnter)

			res, ok := m.Result()
			require.True(t, ok)
			assert.Equal(t, tc.wantW, res.Options.Width)
			assert.Equal(t, tc.wantH, res.Options.Height)
			assert.Equal(t, tc.want, res.Options.FPS)
		})
	}
}

func TestFormErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want string
	}{
		"empty path": {
			path: "",
			want: "Select an input file.",
		},
		"unsupported extension": {
			path: "anim.gif",
			want: "Unsupported format.",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := form.New(player.DefaultOptions(), tc.path)
			focusSubmit(t, m)

			cmd := send(t, m, keyEnter)
			assert.Nil(t, cmd)

			_, ok := m.Result()
			assert.False(t, ok)

			view := stringtest.StripANSI(m.Text())
			assert.Contains(t, view, tc.want)
		})
	}
}

func TestFormCancel(t *testing.T) {
	t.Parallel()

	for name, key := range map[string]tea.KeyPressMsg{
		"esc":    keyEsc,
		"ctrl+c": keyCtrlC,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := form.New(player.DefaultOptions(), "a.png")

			cmd := send(t, m, key)
			assert.True(t, isQuit(t, cmd))

			_, ok := m.Result()
			assert.False(t, ok)
		})
	}
}

func TestFormNavigationWraps(t *testing.T) {
	t.Parallel()

	m := form.New(player.DefaultOptions(), "")

	// Shift+tab from the first field wraps to the submit button.
	send(t, m, keyShiftTab)
	typeText(t, m, "ignored")

	view := stringtest.StripANSI(m.Text())
	assert.NotContains(t, view, "ignored")

	// Enter on a text field advances focus instead of submitting.
	m = form.New(player.DefaultOptions(), "a.png")
	cmd := send(t, m, keyEnter)
	assert.Nil(t, cmd)

	_, ok := m.Result()
	assert.False(t, ok)
}

func TestFormView(t *testing.T) {
	t.Parallel()

	opts := player.DefaultOptions()
	opts.Color = true

	m := form.New(opts, "in.png")
	view := stringtest.StripANSI(m.Text())

	assert.Contains(t, view, "Input file:")
	assert.Contains(t, view, "in.png_")
	assert.Contains(t, view, "[x] Color")
	assert.Contains(t, view, "[ Convert and play ]")
}

func TestFormKeepAspect(t *testing.T) {
	t.Parallel()

	base := player.DefaultOptions()
	base.KeepAspect = true

	t.Run("blank height keeps the aspect ratio", func(t *testing.T) {
		t.Parallel()

		m := form.New(base, "a.png")
		focusSubmit(t, m)
		send(t, m, keyEnter)

		res, ok := m.Result()
		require.True(t, ok)
		assert.True(t, res.Options.KeepAspect)
		assert.Zero(t, res.Options.Height)
		require.NoError(t, res.Options.Validate())
	})

	t.Run("typed height wins", func(t *testing.T) {
		t.Parallel()

		m := form.New(base, "a.png")
		send(t, m, keyTab, keyTab)
		typeText(t, m, "30")
		send(t, m, keyTab, keyTab, keyTab, keyEnter)

		res, ok := m.Result()
		require.True(t, ok)
		assert.False(t, res.Options.KeepAspect)
		assert.Equal(t, 30, res.Options.Height)
		require.NoError(t, res.Options.Validate())
	})
}
