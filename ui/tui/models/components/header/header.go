// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keyselect/buildvars"
	"github.com/toeirei/keyselect/internal/i18n"
	"github.com/toeirei/keyselect/ui/tui/util"
)

const logo string = "▾ Keyselect"

var versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type Model struct {
	size util.Size
}

func New() *Model {
	return &Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	banner := logo + " " + versionStyle.Render(buildvars.VersionOrDefault(i18n.T("header.dev_version")))
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			banner,
		))
}

// Height is the number of lines View occupies.
func (m Model) Height() int {
	return lipgloss.Height(m.View())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
