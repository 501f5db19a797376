// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

package selectbox

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	first  = NewOption("First", Number(1))
	second = NewOption("Second", Number(2))
	third  = NewOption("Third", Number(3))
	fourth = NewOption("Fourth", Number(4))

	testOptions = []Option{first, second, third, fourth}
)

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyX     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
)

// host plays the owner of the value: every change is recorded and handed
// straight back to the model, like the root view does via messages.
type host struct {
	t      *testing.T
	m      *Model
	calls  int
	multi  []Option
	single *Option
}

func (h *host) onMultiple(v []Option) tea.Cmd {
	h.calls++
	h.multi = v
	if err := h.m.SetValue(Multiple{Value: v, OnChange: h.onMultiple}); err != nil {
		h.t.Fatalf("SetValue: %v", err)
	}
	return nil
}

func (h *host) onSingle(o *Option) tea.Cmd {
	h.calls++
	h.single = o
	if err := h.m.SetValue(Single{Value: o, OnChange: h.onSingle}); err != nil {
		h.t.Fatalf("SetValue: %v", err)
	}
	return nil
}

func newMultiple(t *testing.T, options []Option, value []Option) *host {
	t.Helper()
	h := &host{t: t, multi: value}
	m, err := New(options, Multiple{Value: value, OnChange: h.onMultiple}, WithWidth(40), WithFocus())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.m = m
	return h
}

func newSingle(t *testing.T, options []Option, value *Option) *host {
	t.Helper()
	h := &host{t: t, single: value}
	m, err := New(options, Single{Value: value, OnChange: h.onSingle}, WithWidth(40), WithFocus())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.m = m
	return h
}

func (h *host) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		h.m.Update(msg)
	}
}

func TestNew_RejectsBadConfiguration(t *testing.T) {
	if _, err := New(testOptions, nil); !errors.Is(err, ErrNoMode) {
		t.Fatalf("expected ErrNoMode, got %v", err)
	}
	var nilSingle *Single
	if _, err := New(testOptions, nilSingle); !errors.Is(err, ErrNoMode) {
		t.Fatalf("expected ErrNoMode for nil *Single, got %v", err)
	}

	stranger := NewOption("Stranger", Text("x"))
	if _, err := New(testOptions, Single{Value: &stranger}); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if _, err := New(testOptions, Multiple{Value: []Option{first, stranger}}); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption for multiple, got %v", err)
	}
	if _, err := New(testOptions, Multiple{Value: []Option{first, first}}); !errors.Is(err, ErrDuplicateOption) {
		t.Fatalf("expected ErrDuplicateOption in value, got %v", err)
	}
	if _, err := New([]Option{first, first}, Multiple{}); !errors.Is(err, ErrDuplicateOption) {
		t.Fatalf("expected ErrDuplicateOption in options, got %v", err)
	}

	// same value, different label is a different option
	relabeled := NewOption("Uno", Number(1))
	if _, err := New(testOptions, Single{Value: &relabeled}); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected identity to cover the label, got %v", err)
	}
}

func TestSetValue_ModeIsFixed(t *testing.T) {
	h := newMultiple(t, testOptions, []Option{first})
	if err := h.m.SetValue(Single{Value: &first}); !errors.Is(err, ErrModeMismatch) {
		t.Fatalf("expected ErrModeMismatch, got %v", err)
	}
	if err := h.m.SetValue(nil); !errors.Is(err, ErrNoMode) {
		t.Fatalf("expected ErrNoMode, got %v", err)
	}
	if !h.m.Multiple() {
		t.Fatalf("mode must stay multiple")
	}
}

func TestNew_CopiesValue(t *testing.T) {
	value := []Option{first}
	m, err := New(testOptions, Multiple{Value: value})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	value[0] = second
	if got := m.SelectedOptions(); !slices.Equal(got, []Option{first}) {
		t.Fatalf("model must not share the caller's slice, got %v", got)
	}
}

func TestSelect_MultipleTogglesMembership(t *testing.T) {
	h := newMultiple(t, testOptions, []Option{first})

	h.m.Toggle()
	h.m.Select(third)
	if !slices.Equal(h.multi, []Option{first, third}) {
		t.Fatalf("expected [First Third], got %v", h.multi)
	}
	if h.m.IsOpen() {
		t.Fatalf("select must close the list")
	}

	h.m.Select(first)
	if !slices.Equal(h.multi, []Option{third}) {
		t.Fatalf("expected [Third], got %v", h.multi)
	}
}

func TestSelect_ToggleSymmetry(t *testing.T) {
	h := newMultiple(t, testOptions, []Option{first, third})
	before := h.m.SelectedOptions()

	h.m.Select(second)
	h.m.Select(second)
	if got := h.m.SelectedOptions(); !slices.Equal(got, before) {
		t.Fatalf("select twice must restore the selection: got %v, want %v", got, before)
	}

	// removing then re-adding keeps membership; the option moves to the end
	h.m.Select(first)
	h.m.Select(first)
	got := h.m.SelectedOptions()
	if len(got) != 2 || !h.m.Selected(first) || !h.m.Selected(third) {
		t.Fatalf("expected {First Third}, got %v", got)
	}
}

func TestSelect_MultipleRandomSequencesStayDuplicateFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		h := newMultiple(t, testOptions, []Option{})
		toggles := map[Option]int{}

		for step := 0; step < 40; step++ {
			o := testOptions[rng.Intn(len(testOptions))]
			toggles[o]++
			h.m.Select(o)

			got := h.m.SelectedOptions()
			for i := range got {
				if slices.Contains(got[:i], got[i]) {
					t.Fatalf("round %d step %d: duplicate %v in %v", round, step, got[i], got)
				}
			}
		}

		for _, o := range testOptions {
			if want := toggles[o]%2 == 1; h.m.Selected(o) != want {
				t.Fatalf("round %d: %v toggled %d times, selected=%v", round, o, toggles[o], !want)
			}
		}
	}
}

func TestSelect_SingleSuppressesUnchanged(t *testing.T) {
	h := newSingle(t, testOptions, &first)
	h.m.Toggle()

	h.m.Select(first)
	if h.calls != 0 {
		t.Fatalf("selecting the current value must not report a change")
	}
	if h.m.IsOpen() {
		t.Fatalf("select must close the list even without a change")
	}

	h.m.Select(second)
	if h.calls != 1 || h.single == nil || *h.single != second {
		t.Fatalf("expected change to Second, got calls=%d value=%v", h.calls, h.single)
	}
}

func TestSelect_IgnoresForeignOption(t *testing.T) {
	h := newMultiple(t, testOptions, []Option{})
	h.m.Select(NewOption("Stranger", Text("x")))
	if h.calls != 0 {
		t.Fatalf("options outside the list must not be reported")
	}
}

func TestClear(t *testing.T) {
	m := newMultiple(t, testOptions, []Option{first, second})
	m.m.Toggle()
	m.m.Clear()
	if m.multi == nil || len(m.multi) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", m.multi)
	}
	if !m.m.IsOpen() {
		t.Fatalf("clear must not change the open state")
	}

	s := newSingle(t, testOptions, &third)
	s.m.Clear()
	if s.calls != 1 || s.single != nil {
		t.Fatalf("expected cleared single value, got calls=%d value=%v", s.calls, s.single)
	}

	// clearing an empty selection still reports
	s.m.Clear()
	if s.calls != 2 {
		t.Fatalf("expected clear to report every time, got %d calls", s.calls)
	}
}

func TestKeyboard_SingleScenario(t *testing.T) {
	h := newSingle(t, testOptions, nil)

	h.send(keyDown)
	if !h.m.IsOpen() || h.m.Highlighted() != 0 {
		t.Fatalf("first down must open with highlight 0, open=%v highlight=%d", h.m.IsOpen(), h.m.Highlighted())
	}
	h.send(keyDown)
	if h.m.Highlighted() != 1 {
		t.Fatalf("expected highlight 1, got %d", h.m.Highlighted())
	}
	h.send(keyEnter)
	if h.m.IsOpen() {
		t.Fatalf("enter must close the list")
	}
	if h.calls != 1 || h.single == nil || *h.single != second {
		t.Fatalf("expected Second to be selected, got calls=%d value=%v", h.calls, h.single)
	}
}

func TestKeyboard_EnterOnClosedOpensWithoutSelecting(t *testing.T) {
	h := newMultiple(t, testOptions, []Option{})
	h.send(keyEnter)
	if !h.m.IsOpen() {
		t.Fatalf("enter must open a closed list")
	}
	if h.calls != 0 {
		t.Fatalf("opening must not select")
	}

	h.send(keyDown, keyDown, keySpace)
	if h.m.IsOpen() {
		t.Fatalf("space must close an open list")
	}
	if !slices.Equal(h.multi, []Option{third}) {
		t.Fatalf("expected [Third], got %v", h.multi)
	}
}

func TestKeyboard_HighlightIsClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	h := newSingle(t, testOptions, nil)
	h.send(keyDown)

	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			h.send(keyUp)
		} else {
			h.send(keyDown)
		}
		if got := h.m.Highlighted(); got < 0 || got >= len(testOptions) {
			t.Fatalf("highlight %d out of range after %d moves", got, i)
		}
	}

	h.send(keyUp, keyUp, keyUp, keyUp, keyUp)
	if h.m.Highlighted() != 0 {
		t.Fatalf("up must stop at 0, got %d", h.m.Highlighted())
	}
	h.send(keyDown, keyDown, keyDown, keyDown, keyDown)
	if h.m.Highlighted() != len(testOptions)-1 {
		t.Fatalf("down must stop at the last row without wrapping, got %d", h.m.Highlighted())
	}
}

func TestKeyboard_OpenResetsHighlight(t *testing.T) {
	h := newSingle(t, testOptions, nil)

	openers := map[string]func(){
		"down":  func() { h.send(keyDown) },
		"up":    func() { h.send(keyUp) },
		"enter": func() { h.send(keyEnter) },
		"click": func() { h.send(press(1, 1)) },
	}
	for name, open := range openers {
		h.send(keyDown)
		h.send(keyDown, keyDown)
		h.send(keyEsc)
		if h.m.IsOpen() || h.m.Highlighted() != 2 {
			t.Fatalf("%s: setup expected closed list with highlight 2", name)
		}
		open()
		if !h.m.IsOpen() || h.m.Highlighted() != 0 {
			t.Fatalf("%s: expected open with highlight 0, open=%v highlight=%d", name, h.m.IsOpen(), h.m.Highlighted())
		}
		h.send(keyEsc)
	}
}

func TestKeyboard_EscapeAndOtherKeys(t *testing.T) {
	h := newSingle(t, testOptions, nil)
	h.send(keyEsc)
	if h.m.IsOpen() {
		t.Fatalf("escape on a closed list keeps it closed")
	}

	h.send(keyDown, keyDown, keyX)
	if !h.m.IsOpen() || h.m.Highlighted() != 1 {
		t.Fatalf("unbound keys must be ignored")
	}
	h.send(keyEsc)
	if h.m.IsOpen() {
		t.Fatalf("escape must close")
	}
	if h.calls != 0 {
		t.Fatalf("escape must not select")
	}
}

func TestKeyboard_IgnoredWithoutFocus(t *testing.T) {
	h := newSingle(t, testOptions, nil)
	h.m.Blur()
	h.send(keyDown, keyEnter)
	if h.m.IsOpen() || h.calls != 0 {
		t.Fatalf("keys must be ignored while blurred")
	}

	h.m.Focus()
	h.send(keyDown)
	if !h.m.IsOpen() {
		t.Fatalf("keys must work again after focus")
	}
}

func TestBlur_Closes(t *testing.T) {
	h := newSingle(t, testOptions, nil)
	h.send(keyDown)
	h.m.Blur()
	if h.m.IsOpen() || h.m.Focused() {
		t.Fatalf("blur must close and unfocus")
	}

	h.m.Focus()
	h.send(keyDown)
	h.send(tea.BlurMsg{})
	if h.m.IsOpen() {
		t.Fatalf("terminal blur must close the list")
	}
}

func TestEmptyOptions(t *testing.T) {
	h := newMultiple(t, []Option{}, []Option{})
	h.send(keyDown, keyDown)
	if !h.m.IsOpen() || h.m.Highlighted() != 0 {
		t.Fatalf("arrows open an empty list but cannot move")
	}
	h.send(keyEnter)
	if h.m.IsOpen() || h.calls != 0 {
		t.Fatalf("enter must close an empty list without selecting")
	}
}

func TestSetOptions(t *testing.T) {
	h := newMultiple(t, testOptions, []Option{second})
	h.send(keyDown, keyDown, keyDown, keyDown)

	if err := h.m.SetOptions([]Option{first}); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected current value to be validated, got %v", err)
	}
	if err := h.m.SetOptions([]Option{first, second}); err != nil {
		t.Fatalf("SetOptions: %v", err)
	}
	if h.m.Highlighted() != 1 {
		t.Fatalf("expected highlight clamped to 1, got %d", h.m.Highlighted())
	}
}

func TestSummaryAndLabels(t *testing.T) {
	h := newMultiple(t, testOptions, []Option{second, first})
	if got := h.m.Summary(); got != "Second, First" {
		t.Fatalf("unexpected summary %q", got)
	}
	s := newSingle(t, testOptions, nil)
	if got := s.m.Summary(); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}

func TestValue_String(t *testing.T) {
	if got := Number(4).String(); got != "4" {
		t.Fatalf("got %q", got)
	}
	if got := Number(0.5).String(); got != "0.5" {
		t.Fatalf("got %q", got)
	}
	if got := Text("red").String(); got != "red" {
		t.Fatalf("got %q", got)
	}
	if Text("1") == Number(1) {
		t.Fatalf("text and number values must differ")
	}
}

func TestKeyMap_FullHelpLabelsAreDistinct(t *testing.T) {
	km := DefaultKeyMap()
	seen := map[string]bool{}
	for _, group := range km.FullHelp() {
		for _, b := range group {
			k := b.Help().Key
			if seen[k] {
				t.Fatalf("help key %q listed twice", k)
			}
			seen[k] = true
		}
	}
	if km.Up.Help().Key != "↑" || km.Down.Help().Key != "↓" {
		t.Fatalf("unexpected move labels %q and %q", km.Up.Help().Key, km.Down.Help().Key)
	}
}
