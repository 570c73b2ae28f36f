package tui

import (
	"pathseg/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the preview state.
type AppModel struct {
	// Inputs
	Home     string
	Policy   model.JoinPolicy
	Style    model.Style
	ShowHome bool

	// Path check
	Exists      bool
	CheckedPath string // Path the Exists flag refers to
	Err         error

	// UI State
	WindowSize  tea.WindowSizeMsg
	InputBuffer textinput.Model
	Quitting    bool
}

// InitialModel returns the preview state for path.
func InitialModel(path, home string, policy model.JoinPolicy, style model.Style, showHome bool) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Path to preview..."
	ti.CharLimit = 4096
	ti.Width = 60
	ti.SetValue(path)
	ti.CursorEnd()
	ti.Focus()

	return AppModel{
		Home:        home,
		Policy:      policy,
		Style:       style,
		ShowHome:    showHome,
		InputBuffer: ti,
	}
}
