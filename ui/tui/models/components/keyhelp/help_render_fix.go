// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// help.Model cuts items off without regard to disabled bindings and
// separators; these replacements skip disabled bindings entirely and cut at
// whole items.

// ShortHelpView renders bindings on one line.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	return strings.Join(fit(m, items), "")
}

// FullHelpView renders one column per group.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		group = slices.DeleteFunc(slices.Clone(group), func(binding key.Binding) bool {
			return !binding.Enabled()
		})
		if len(group) == 0 {
			continue
		}

		var keys, descriptions []string
		for _, binding := range group {
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

// fit keeps the leading parts that fit into m.Width and ends with the
// ellipsis when something had to be dropped. Width 0 means unlimited.
func fit(m help.Model, parts []string) []string {
	if m.Width <= 0 {
		return parts
	}

	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var used int
	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		switch {
		case last && used+partLen <= m.Width:
			return parts
		case !last && used+partLen+tailLen <= m.Width:
			used += partLen
		case used+tailLen <= m.Width:
			return append(slices.Clone(parts[:i]), tail)
		default:
			return parts[:i]
		}
	}
	return parts
}
