package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pathseg/internal/model"
	"pathseg/internal/render"
	"pathseg/internal/segment"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("81")) // Sky Blue/Cyan
)

func (m AppModel) View() string {
	if m.Quitting {
		return ""
	}

	path := m.InputBuffer.Value()
	seg := segment.New(path, m.Home, m.ShowHome)
	rendered := render.String(seg.Elements(), m.Policy)
	total := seg.Len()
	shown := min(total, max(m.Policy.MaxElems, 0))

	var b strings.Builder
	b.WriteString(titleStyle.Render("pathseg preview"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Path: "))
	b.WriteString(m.InputBuffer.View())
	b.WriteString("\n\n  ")

	if rendered == "" {
		b.WriteString(dimStyle.Render("(nothing to show)"))
	} else {
		b.WriteString(previewStyle(m.Style).Render(rendered))
	}
	b.WriteString("\n\n")

	status := fmt.Sprintf("Elements: %d of %d shown • Limit: %s • Home: %s",
		shown, total, limitText(m.Policy), onOff(m.ShowHome))
	if dropped := total - shown; dropped > 0 {
		status += adviceStyle.Render(fmt.Sprintf(" • %d hidden", dropped))
	}
	b.WriteString(labelStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(m.pathStatus(path))

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("↑/↓: Limit • Tab: Toggle Home • Enter/Esc: Quit"))
	b.WriteString("\n")
	return b.String()
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, CheckPathCmd(m.InputBuffer.Value()))
}

func (m AppModel) pathStatus(path string) string {
	switch {
	case path == "":
		return ""
	case m.CheckedPath != path:
		return dimStyle.Render("Checking...")
	case m.Err != nil:
		return adviceStyle.Render(fmt.Sprintf("Cannot check path: %v", m.Err))
	case m.Exists:
		return okStyle.Render("Path exists")
	default:
		return adviceStyle.Render("Path does not exist")
	}
}

// previewStyle maps the configured colors onto a lipgloss style, leaving
// unset colors at the terminal default.
func previewStyle(s model.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	return st
}

func limitText(p model.JoinPolicy) string {
	if p.MaxElems == model.Unbounded {
		return "none"
	}
	return strconv.Itoa(p.MaxElems)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
