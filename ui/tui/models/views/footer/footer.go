// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/keyselect/ui/tui/models/components/keyhelp"
	"github.com/toeirei/keyselect/ui/tui/util"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8655B1"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     string
	failed     bool
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// catch AnnounceKeyMapMsg and inject baseKeyMap
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

// SetStatus replaces the status line. failed renders it as an error.
func (m *Model) SetStatus(status string, failed bool) {
	m.status = status
	m.failed = failed
}

func (m Model) Status() string {
	return m.status
}

func (m Model) View() string {
	style := statusStyle
	if m.failed {
		style = errorStyle
	}
	status := style.Render(ansi.Truncate(m.status, max(m.size.Width, 1), "…"))

	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		lipgloss.
			NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			Render(lipgloss.PlaceHorizontal(m.size.Width, h_pos, m.help.View())),
	)
}

// Height is the number of lines View occupies.
func (m Model) Height() int {
	return lipgloss.Height(m.View())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.help.Focus()
}

func (m *Model) Blur() {
	m.help.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

func (m Model) Expanded() bool {
	return m.help.Expanded
}
