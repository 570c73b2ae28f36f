package tui

import (
	"os"

	"pathseg/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// maxPreviewElems caps the element limit reachable with the arrow keys.
const maxPreviewElems = 64

// MsgPathChecked reports whether a previewed path exists on disk.
type MsgPathChecked struct {
	Path   string
	Exists bool
	Err    error
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.InputBuffer.Width = max(msg.Width-4, 20)
		return m, nil

	case MsgPathChecked:
		// Drop results for a path the user has already edited away from.
		if msg.Path != m.InputBuffer.Value() {
			return m, nil
		}
		m.CheckedPath = msg.Path
		m.Exists = msg.Exists
		m.Err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			m.Quitting = true
			return m, tea.Quit
		case tea.KeyTab:
			m.ShowHome = !m.ShowHome
			return m, nil
		case tea.KeyUp:
			if m.Policy.MaxElems < maxPreviewElems {
				m.Policy.MaxElems++
			}
			return m, nil
		case tea.KeyDown:
			if m.Policy.MaxElems > maxPreviewElems {
				m.Policy.MaxElems = maxPreviewElems
			}
			if m.Policy.MaxElems > 0 {
				m.Policy.MaxElems--
			}
			return m, nil
		}

		before := m.InputBuffer.Value()
		m.InputBuffer, cmd = m.InputBuffer.Update(msg)
		if after := m.InputBuffer.Value(); after != before {
			return m, tea.Batch(cmd, CheckPathCmd(after))
		}
		return m, cmd
	}

	m.InputBuffer, cmd = m.InputBuffer.Update(msg)
	return m, cmd
}

// CheckPathCmd stats path in the background.
func CheckPathCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return MsgPathChecked{Path: path}
		}
		_, err := os.Stat(path)
		if err != nil && !os.IsNotExist(err) {
			logger := logging.GetLogger("tui")
			logger.Debug().Err(err).Str("path", path).Msg("Path check failed")
			return MsgPathChecked{Path: path, Err: err}
		}
		return MsgPathChecked{Path: path, Exists: err == nil}
	}
}
