// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type testKeyMap []key.Binding

func (k testKeyMap) ShortHelp() []key.Binding  { return k }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestClamp(t *testing.T) {
	cases := []struct{ min, wanted, max, want int }{
		{0, -3, 5, 0},
		{0, 3, 5, 3},
		{0, 9, 5, 5},
	}
	for _, c := range cases {
		if got := Clamp(c.min, c.wanted, c.max); got != c.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", c.min, c.wanted, c.max, got, c.want)
		}
	}
}

func TestSize_UpdateOnlyOnWindowSize(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Fatalf("key messages must not be treated as resize")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("expected resize to be handled")
	}
	if s.ToMsg() != (tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("unexpected size %+v", s)
	}
}

func TestMergeKeyMaps_SkipsNil(t *testing.T) {
	a := key.NewBinding(key.WithKeys("a"))
	b := key.NewBinding(key.WithKeys("b"))
	merged := MergeKeyMaps(testKeyMap{a}, nil, testKeyMap{b})

	if got := len(merged.ShortHelp()); got != 2 {
		t.Fatalf("expected 2 short bindings, got %d", got)
	}
	if got := len(merged.FullHelp()); got != 2 {
		t.Fatalf("expected 2 help groups, got %d", got)
	}
}

func TestAnnounceKeyMapCmd(t *testing.T) {
	msg := AnnounceKeyMapCmd(nil)()
	if announce, ok := msg.(AnnounceKeyMapMsg); !ok || announce.KeyMap != nil {
		t.Fatalf("unexpected message %#v", msg)
	}
}
