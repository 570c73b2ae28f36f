package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathseg/internal/model"
)

func TestMain(m *testing.M) {
	// Plain renderer so views compare as text.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(io.Discard))
	os.Exit(m.Run())
}

func newModel(path string) AppModel {
	return InitialModel(path, "/home/alice", model.DefaultJoinPolicy(), model.Style{Foreground: "4", Background: "19"}, true)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestView_RendersPreview(t *testing.T) {
	m := newModel("/home/alice/proj/src")
	view := m.View()

	assert.Contains(t, view, "pathseg preview")
	assert.Contains(t, view, "~ / proj / src")
	assert.Contains(t, view, "Elements: 3 of 3 shown")
	assert.Contains(t, view, "Home: on")
	assert.NotContains(t, view, "hidden")
}

func TestView_ShowsHiddenCount(t *testing.T) {
	m := newModel("/srv/a/b/c/d/e")
	m.Policy.MaxElems = 2
	view := m.View()

	assert.Contains(t, view, "/ / srv")
	assert.NotContains(t, view, "/ / srv / a")
	assert.Contains(t, view, "Elements: 2 of 7 shown")
	assert.Contains(t, view, "5 hidden")
}

func TestView_EmptyRender(t *testing.T) {
	m := newModel("/etc")
	m.Policy.MaxElems = 0
	assert.Contains(t, m.View(), "(nothing to show)")
}

func TestUpdate_TabTogglesHome(t *testing.T) {
	m := newModel("/home/alice/proj")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	assert.False(t, m.ShowHome)
	assert.Contains(t, m.View(), "/ / home / alice / proj")
	assert.Contains(t, m.View(), "Home: off")
}

func TestUpdate_ArrowsChangeLimit(t *testing.T) {
	m := newModel("/")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 6, m.Policy.MaxElems)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 0, m.Policy.MaxElems)

	m.Policy.MaxElems = model.Unbounded
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, model.Unbounded, m.Policy.MaxElems)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, maxPreviewElems-1, m.Policy.MaxElems)
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEnter, tea.KeyEsc, tea.KeyCtrlC} {
		m := newModel("/")
		m, cmd := update(t, m, tea.KeyMsg{Type: key})

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.Quitting)
		assert.Empty(t, m.View())
	}
}

func TestUpdate_TypingSchedulesPathCheck(t *testing.T) {
	m := newModel("/tm")
	m.InputBuffer.CursorEnd()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})

	assert.Equal(t, "/tmp", m.InputBuffer.Value())
	assert.NotNil(t, cmd)
}

func TestUpdate_PathChecked(t *testing.T) {
	m := newModel("/home/alice")

	stale, _ := update(t, m, MsgPathChecked{Path: "/elsewhere", Exists: true})
	assert.Empty(t, stale.CheckedPath)
	assert.Contains(t, stale.View(), "Checking...")

	m, _ = update(t, m, MsgPathChecked{Path: "/home/alice", Exists: true})
	assert.Equal(t, "/home/alice", m.CheckedPath)
	assert.Contains(t, m.View(), "Path exists")

	m, _ = update(t, m, MsgPathChecked{Path: "/home/alice", Exists: false})
	assert.Contains(t, m.View(), "Path does not exist")
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newModel("/")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 96, m.InputBuffer.Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 30})
	assert.Equal(t, 20, m.InputBuffer.Width)
}

func TestCheckPathCmd(t *testing.T) {
	dir := t.TempDir()

	msg := CheckPathCmd(dir)()
	assert.Equal(t, MsgPathChecked{Path: dir, Exists: true}, msg)

	missing := filepath.Join(dir, "missing")
	msg = CheckPathCmd(missing)()
	assert.Equal(t, MsgPathChecked{Path: missing, Exists: false}, msg)

	assert.Equal(t, MsgPathChecked{}, CheckPathCmd("")())
}
