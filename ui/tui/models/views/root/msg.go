// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"slices"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keyselect/ui/tui/models/components/selectbox"
)

// selectionChangedMsg carries the value the select box asked for.
type selectionChangedMsg struct {
	selection []selectbox.Option
}

func selectionChanged(selection []selectbox.Option) tea.Cmd {
	selection = slices.Clone(selection)
	return func() tea.Msg {
		return selectionChangedMsg{selection: selection}
	}
}

type copiedMsg struct {
	err error
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func copySelection(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}
