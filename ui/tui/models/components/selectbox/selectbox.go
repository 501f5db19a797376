// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package selectbox implements a dropdown select component with single and
// multiple selection, keyboard navigation and mouse support.
//
// The component is controlled: it never changes its own value. Selection
// changes are reported through the OnChange callback of the Mode it was
// created with, and the owner hands the new value back with SetValue.
package selectbox

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keyselect/internal/i18n"
	"github.com/toeirei/keyselect/ui/tui/util"
)

const (
	defaultWidth int = 40
	minWidth     int = 16
)

type Model struct {
	KeyMap      KeyMap
	Styles      Styles
	Placeholder string

	options     []Option
	mode        Mode
	open        bool
	highlighted int
	focused     bool
	width       int
	size        util.Size
}

type NewOpt = func(m *Model)

// New creates a closed, unfocused select over options. mode decides between
// single and multiple selection for the lifetime of the model.
func New(options []Option, mode Mode, opts ...NewOpt) (*Model, error) {
	mode = copyMode(mode)
	if mode == nil {
		return nil, ErrNoMode
	}
	if err := validateOptions(options); err != nil {
		return nil, err
	}
	if err := mode.validate(options); err != nil {
		return nil, err
	}

	m := &Model{
		KeyMap:      DefaultKeyMap(),
		Styles:      DefaultStyles(),
		Placeholder: i18n.T("select.placeholder"),
		options:     slices.Clone(options),
		mode:        mode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// WithWidth fixes the outer width. Without it the width follows the last
// tea.WindowSizeMsg the model received.
func WithWidth(width int) NewOpt {
	return func(m *Model) {
		m.width = width
	}
}

func WithPlaceholder(placeholder string) NewOpt {
	return func(m *Model) {
		m.Placeholder = placeholder
	}
}

func WithKeyMap(keyMap KeyMap) NewOpt {
	return func(m *Model) {
		m.KeyMap = keyMap
	}
}

func WithStyles(styles Styles) NewOpt {
	return func(m *Model) {
		m.Styles = styles
	}
}

func WithFocus() NewOpt {
	return func(m *Model) {
		m.focused = true
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focused {
			return m.handleKey(msg)
		}
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.BlurMsg:
		m.setOpen(false)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.KeyMap.Toggle):
		// selection uses the state from before the toggle
		wasOpen, index := m.open, m.highlighted
		m.setOpen(!m.open)
		if wasOpen && index < len(m.options) {
			return m.Select(m.options[index])
		}
	case key.Matches(msg, m.KeyMap.Up):
		m.move(-1)
	case key.Matches(msg, m.KeyMap.Down):
		m.move(1)
	case key.Matches(msg, m.KeyMap.Close):
		m.setOpen(false)
	}
	return nil
}

func (m *Model) move(delta int) {
	if !m.open {
		m.setOpen(true)
		return
	}
	if next := m.highlighted + delta; next >= 0 && next < len(m.options) {
		m.highlighted = next
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	z, inside := m.layout().hit(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if inside && z.kind == zoneOption {
			m.highlighted = z.index
		}
		return nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
	default:
		return nil
	}

	// a press elsewhere moves focus away
	if !inside {
		if !m.focused && !m.open {
			return nil
		}
		m.Blur()
		return util.AnnounceKeyMapCmd(nil)
	}

	var focusCmd tea.Cmd
	if !m.focused {
		m.focused = true
		focusCmd = util.AnnounceKeyMapCmd(m.KeyMap)
	}

	var cmd tea.Cmd
	switch z.kind {
	case zoneOption:
		cmd = m.Select(m.options[z.index])
	case zoneBadge:
		cmd = m.Select(m.SelectedOptions()[z.index])
	case zoneClear:
		cmd = m.Clear()
	case zoneTrigger:
		m.setOpen(!m.open)
	}
	return tea.Batch(focusCmd, cmd)
}

// setOpen resets the highlight on every transition to open.
func (m *Model) setOpen(open bool) {
	if open && !m.open {
		m.highlighted = 0
	}
	m.open = open
}

// Select reports the value that results from picking o and closes the list.
// In single mode picking the current value reports nothing. In multiple mode
// a selected option is removed and any other option appended.
func (m *Model) Select(o Option) tea.Cmd {
	var cmd tea.Cmd
	if !slices.Contains(m.options, o) {
		m.setOpen(false)
		return nil
	}

	switch mode := m.mode.(type) {
	case Single:
		if mode.Value == nil || *mode.Value != o {
			cmd = mode.change(&o)
		}
	case Multiple:
		if i := slices.Index(mode.Value, o); i >= 0 {
			cmd = mode.change(slices.Delete(slices.Clone(mode.Value), i, i+1))
		} else {
			cmd = mode.change(append(slices.Clone(mode.Value), o))
		}
	}

	m.setOpen(false)
	return cmd
}

// Clear reports an empty selection. The open state is left alone.
func (m *Model) Clear() tea.Cmd {
	switch mode := m.mode.(type) {
	case Single:
		return mode.change(nil)
	case Multiple:
		return mode.change([]Option{})
	}
	return nil
}

// Toggle opens or closes the option list.
func (m *Model) Toggle() {
	m.setOpen(!m.open)
}

// SetValue replaces value and callback. The mode kind must match the one the
// model was created with.
func (m *Model) SetValue(mode Mode) error {
	mode = copyMode(mode)
	if mode == nil {
		return ErrNoMode
	}
	if mode.multiple() != m.mode.multiple() {
		return ErrModeMismatch
	}
	if err := mode.validate(m.options); err != nil {
		return err
	}
	m.mode = mode
	return nil
}

// SetOptions replaces the option list. The current value must still be
// drawn from it.
func (m *Model) SetOptions(options []Option) error {
	if err := validateOptions(options); err != nil {
		return err
	}
	if err := m.mode.validate(options); err != nil {
		return err
	}
	m.options = slices.Clone(options)
	m.highlighted = util.Clamp(0, m.highlighted, max(len(m.options)-1, 0))
	return nil
}

func (m Model) Options() []Option { return slices.Clone(m.options) }
func (m Model) IsOpen() bool      { return m.open }
func (m Model) Highlighted() int  { return m.highlighted }
func (m Model) Focused() bool     { return m.focused }
func (m Model) Multiple() bool    { return m.mode.multiple() }

// SelectedOptions returns the current value as a list; in single mode it
// has at most one element.
func (m Model) SelectedOptions() []Option {
	switch mode := m.mode.(type) {
	case Single:
		if mode.Value != nil {
			return []Option{*mode.Value}
		}
	case Multiple:
		return slices.Clone(mode.Value)
	}
	return []Option{}
}

func (m Model) Selected(o Option) bool {
	return slices.Contains(m.SelectedOptions(), o)
}

// Summary joins the selected labels, empty when nothing is selected.
func (m Model) Summary() string {
	return Labels(m.SelectedOptions(), ", ")
}

func (m Model) View() string {
	return m.layout().view()
}

func (m Model) Height() int {
	return m.layout().height()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.KeyMap
}

func (m *Model) Blur() {
	m.focused = false
	m.setOpen(false)
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
