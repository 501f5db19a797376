// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

package selectbox

import "github.com/charmbracelet/lipgloss"

const (
	clearGlyph    = "×"
	dividerGlyph  = "│"
	caretClosed   = "▾"
	caretOpen     = "▴"
	selectedGlyph = "✓"
	ellipsis      = "…"
)

type Styles struct {
	Box         lipgloss.Style
	BoxFocused  lipgloss.Style
	Placeholder lipgloss.Style
	Value       lipgloss.Style
	Badge       lipgloss.Style
	More        lipgloss.Style
	Clear       lipgloss.Style
	Divider     lipgloss.Style
	Caret       lipgloss.Style
	Panel       lipgloss.Style
	Option      lipgloss.Style
	Selected    lipgloss.Style
	Highlighted lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultStyles uses the same palette as the rest of the TUI. Box and Panel
// must keep a one cell border and one cell horizontal padding: mouse hit
// testing relies on that geometry.
func DefaultStyles() Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Styles{
		Box:         box,
		BoxFocused:  box.BorderForeground(lipgloss.Color("205")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Value:       lipgloss.NewStyle(),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#8655B1")),
		More:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Clear:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Caret:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Option:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#8655B1")).Bold(true),
		Highlighted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#8655B1")),
		Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}
