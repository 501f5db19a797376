// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the host application: it owns the selection and renders
// one select box between the header and the footer.
package root

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keyselect/internal/i18n"
	"github.com/toeirei/keyselect/internal/logging"
	"github.com/toeirei/keyselect/ui/tui/models/components/header"
	"github.com/toeirei/keyselect/ui/tui/models/components/selectbox"
	windowtitle "github.com/toeirei/keyselect/ui/tui/models/helpers/title"
	"github.com/toeirei/keyselect/ui/tui/models/views/footer"
	"github.com/toeirei/keyselect/ui/tui/util"
)

const (
	// offset of the select box inside the body
	marginLeft = 2
	marginTop  = 1
	maxWidth   = 48
)

type Model struct {
	keyMap       KeyMap
	multiple     bool
	selection    []selectbox.Option
	aborted      bool
	size         util.Size
	header       *header.Model
	widget       *selectbox.Model
	footer       *footer.Model
	titleHandler *windowtitle.TitleHandler
}

// New creates the host. The selection starts with the first option.
func New(options []selectbox.Option, multiple bool) (*Model, error) {
	m := &Model{
		keyMap:       BaseKeyMap(),
		multiple:     multiple,
		selection:    []selectbox.Option{},
		header:       header.New(),
		titleHandler: windowtitle.NewHandler(i18n.T("app.title"), " | "),
	}
	if len(options) > 0 {
		m.selection = []selectbox.Option{options[0]}
	}
	m.footer = footer.New(m.keyMap)

	widget, err := selectbox.New(options, m.mode())
	if err != nil {
		return nil, err
	}
	m.widget = widget
	m.refreshStatus()
	return m, nil
}

// mode wraps the current selection for the select box.
func (m *Model) mode() selectbox.Mode {
	if m.multiple {
		return selectbox.Multiple{
			Value:    m.selection,
			OnChange: selectionChanged,
		}
	}

	var value *selectbox.Option
	if len(m.selection) > 0 {
		value = &m.selection[0]
	}
	return selectbox.Single{
		Value: value,
		OnChange: func(o *selectbox.Option) tea.Cmd {
			if o == nil {
				return selectionChanged(nil)
			}
			return selectionChanged([]selectbox.Option{*o})
		},
	}
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.widget.Init()
	focusCmd, keyMap := m.widget.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd, windowtitle.Set(m.widget.Summary()))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		return m, m.resize()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.footer.ToggleExpanded()
			return m, nil
		case key.Matches(msg, m.keyMap.Copy):
			return m, copySelection(selectbox.Labels(m.selection, "\n"))
		case key.Matches(msg, m.keyMap.Focus):
			focusCmd, keyMap := m.widget.Focus()
			return m, tea.Batch(focusCmd, util.AnnounceKeyMapCmd(keyMap))
		}
		return m, m.widget.Update(msg)

	case tea.MouseMsg:
		// widget-local coordinates
		msg.X -= marginLeft
		msg.Y -= m.header.Height() + marginTop
		return m, m.widget.Update(msg)

	case selectionChangedMsg:
		m.selection = msg.selection
		if err := m.widget.SetValue(m.mode()); err != nil {
			logging.Errorf("rejected selection %q: %v", selectbox.Labels(msg.selection, ", "), err)
			return m, nil
		}
		logging.Debugf("selection changed: %s", m.widget.Summary())
		m.refreshStatus()
		return m, windowtitle.Set(m.widget.Summary())

	case copiedMsg:
		if msg.err != nil {
			logging.Warnf("copy to clipboard failed: %v", msg.err)
			m.footer.SetStatus(i18n.T("footer.copy_failed", msg.err), true)
			return m, nil
		}
		m.footer.SetStatus(i18n.T("footer.copied"), false)
		return m, nil

	case util.AnnounceKeyMapMsg:
		return m, m.footer.Update(msg)
	}

	// handle window title messages
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	return m, m.widget.Update(msg)
}

func (m *Model) resize() tea.Cmd {
	width := util.Clamp(0, m.size.Width-2*marginLeft, maxWidth)
	return tea.Batch(
		m.header.Update(tea.WindowSizeMsg{Width: m.size.Width, Height: m.size.Height}),
		m.footer.Update(tea.WindowSizeMsg{Width: m.size.Width, Height: m.size.Height}),
		m.widget.Update(tea.WindowSizeMsg{Width: width, Height: m.size.Height}),
	)
}

func (m *Model) refreshStatus() {
	if len(m.selection) == 0 {
		m.footer.SetStatus(i18n.T("footer.nothing"), false)
		return
	}
	m.footer.SetStatus(i18n.T("footer.selected", m.widget.Summary()), false)
}

func (m *Model) View() string {
	head := m.header.View()
	body := lipgloss.NewStyle().
		MarginLeft(marginLeft).
		MarginTop(marginTop).
		Render(m.widget.View())
	foot := m.footer.View()

	if m.size.Height > 0 {
		bodyHeight := max(m.size.Height-lipgloss.Height(head)-lipgloss.Height(foot), 0)
		body = lipgloss.PlaceVertical(bodyHeight, lipgloss.Top, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, body, foot)
}

// Selection is the value the host currently holds.
func (m *Model) Selection() []selectbox.Option {
	return slices.Clone(m.selection)
}

// Aborted reports whether the user left with the exit key.
func (m *Model) Aborted() bool {
	return m.aborted
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
