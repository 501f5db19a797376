// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

package selectbox

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/keyselect/internal/i18n"
	"github.com/toeirei/keyselect/ui/tui/util"
)

// Geometry shared by rendering and hit testing. Box and panel both use a
// one cell border plus one cell of horizontal padding.
const (
	frameLeft     int = 2 // border + padding
	frameWidth    int = 4
	triggerHeight int = 3
	// " × │ ▾" after the value area
	controlsWidth int = 6
)

type zoneKind int

const (
	zoneTrigger zoneKind = iota
	zoneClear
	zoneBadge
	zoneOption
	zonePanel
)

type zone struct {
	kind       zoneKind
	x, y, w, h int
	// badge: index into the selected options, option: index into the options
	index int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x && x < z.x+z.w && y >= z.y && y < z.y+z.h
}

type layout struct {
	trigger string
	panel   string
	// most specific zones first
	zones []zone
}

// hit returns the first zone containing the widget-local point.
func (l layout) hit(x, y int) (zone, bool) {
	for _, z := range l.zones {
		if z.contains(x, y) {
			return z, true
		}
	}
	return zone{}, false
}

func (l layout) view() string {
	if l.panel == "" {
		return l.trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, l.trigger, l.panel)
}

func (l layout) height() int {
	return lipgloss.Height(l.view())
}

func (m Model) outerWidth() int {
	width := m.width
	if width <= 0 {
		width = m.size.Width
	}
	if width <= 0 {
		width = defaultWidth
	}
	return max(width, minWidth)
}

// layout renders the component and records where each clickable part ended up.
func (m Model) layout() layout {
	var l layout
	width := m.outerWidth()
	inner := width - frameWidth
	valueWidth := inner - controlsWidth

	value, used, badges := m.renderValue(valueWidth)

	caret := caretClosed
	if m.open {
		caret = caretOpen
	}
	content := value + strings.Repeat(" ", max(valueWidth-used, 0)) +
		" " + m.Styles.Clear.Render(clearGlyph) +
		" " + m.Styles.Divider.Render(dividerGlyph) +
		" " + m.Styles.Caret.Render(caret)

	box := m.Styles.Box
	if m.focused {
		box = m.Styles.BoxFocused
	}
	l.trigger = box.Render(content)

	var options []zone
	if m.open {
		l.panel, options = m.renderPanel(width, inner)
	}

	l.zones = append(l.zones, options...)
	l.zones = append(l.zones, badges...)
	l.zones = append(l.zones, zone{kind: zoneClear, x: frameLeft + valueWidth + 1, y: 1, w: ansi.StringWidth(clearGlyph), h: 1})
	l.zones = append(l.zones, zone{kind: zoneTrigger, x: 0, y: 0, w: width, h: triggerHeight})
	if l.panel != "" {
		l.zones = append(l.zones, zone{kind: zonePanel, x: 0, y: triggerHeight, w: width, h: lipgloss.Height(l.panel)})
	}
	return l
}

// renderValue renders the selected value into at most width cells and
// returns the rendered string, the cells it uses and the badge zones.
func (m Model) renderValue(width int) (string, int, []zone) {
	if !m.mode.multiple() {
		selected := m.SelectedOptions()
		if len(selected) == 0 {
			text := ansi.Truncate(m.Placeholder, width, ellipsis)
			return m.Styles.Placeholder.Render(text), ansi.StringWidth(text), nil
		}
		text := ansi.Truncate(selected[0].Label, width, ellipsis)
		return m.Styles.Value.Render(text), ansi.StringWidth(text), nil
	}

	var (
		b     strings.Builder
		used  int
		zones []zone
	)
	selected := m.SelectedOptions()
	for i, o := range selected {
		text := " " + ansi.Truncate(o.Label, max(width-4, 1), ellipsis) + " " + clearGlyph + " "
		w := ansi.StringWidth(text)

		gap := 0
		if i > 0 {
			gap = 1
		}
		// keep room for the "+N" marker while more badges follow
		reserve := 0
		if rest := len(selected) - i - 1; rest > 0 {
			reserve = 1 + ansi.StringWidth(moreText(rest))
		}
		if used+gap+w+reserve > width {
			break
		}

		b.WriteString(strings.Repeat(" ", gap))
		b.WriteString(m.Styles.Badge.Render(text))
		zones = append(zones, zone{kind: zoneBadge, x: frameLeft + used + gap, y: 1, w: w, h: 1, index: i})
		used += gap + w
	}

	if hidden := len(selected) - len(zones); hidden > 0 {
		more := moreText(hidden)
		gap := 0
		if used > 0 {
			gap = 1
		}
		if used+gap+ansi.StringWidth(more) <= width {
			b.WriteString(strings.Repeat(" ", gap))
			b.WriteString(m.Styles.More.Render(more))
			used += gap + ansi.StringWidth(more)
		}
	}

	return b.String(), used, zones
}

func (m Model) renderPanel(width, inner int) (string, []zone) {
	if len(m.options) == 0 {
		text := ansi.Truncate(i18n.T("select.empty"), inner, ellipsis)
		return m.Styles.Panel.Render(m.Styles.Empty.Render(pad(text, inner))), nil
	}

	lines := make([]string, len(m.options))
	zones := make([]zone, len(m.options))
	for i, o := range m.options {
		selected := m.Selected(o)

		marker := "  "
		if selected {
			marker = selectedGlyph + " "
		}
		line := pad(marker+ansi.Truncate(o.Label, max(inner-2, 1), ellipsis), inner)

		style := m.Styles.Option
		if selected {
			style = m.Styles.Selected
		}
		if i == m.highlighted {
			style = m.Styles.Highlighted.Inherit(style)
		}

		lines[i] = style.Render(line)
		// rows start below the trigger and the panel's top border
		zones[i] = zone{kind: zoneOption, x: 1, y: triggerHeight + 1 + i, w: width - 2, h: 1, index: i}
	}
	return m.Styles.Panel.Render(strings.Join(lines, "\n")), zones
}

func moreText(n int) string {
	return i18n.T("select.more", map[string]any{"Count": n})
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", util.Clamp(0, width-ansi.StringWidth(s), width))
}
