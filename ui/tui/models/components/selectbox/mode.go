// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

package selectbox

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrNoMode          = errors.New("selectbox: no selection mode")
	ErrModeMismatch    = errors.New("selectbox: selection mode cannot change")
	ErrUnknownOption   = errors.New("selectbox: option not in option list")
	ErrDuplicateOption = errors.New("selectbox: duplicate option")
)

// Mode pairs the current value with a change callback of the same shape.
// It is implemented by Single and Multiple only.
type Mode interface {
	validate(options []Option) error
	multiple() bool
}

// Single holds at most one option. A nil Value means nothing is selected and
// OnChange receives nil when the selection is cleared.
type Single struct {
	Value    *Option
	OnChange func(*Option) tea.Cmd
}

// Multiple holds an ordered, duplicate-free list of options.
type Multiple struct {
	Value    []Option
	OnChange func([]Option) tea.Cmd
}

func (Single) multiple() bool   { return false }
func (Multiple) multiple() bool { return true }

func (s Single) validate(options []Option) error {
	if s.Value != nil && !slices.Contains(options, *s.Value) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, s.Value.Label)
	}
	return nil
}

func (m Multiple) validate(options []Option) error {
	for i, o := range m.Value {
		if !slices.Contains(options, o) {
			return fmt.Errorf("%w: %q", ErrUnknownOption, o.Label)
		}
		if slices.Contains(m.Value[:i], o) {
			return fmt.Errorf("%w in value: %q", ErrDuplicateOption, o.Label)
		}
	}
	return nil
}

func (s Single) change(o *Option) tea.Cmd {
	if s.OnChange == nil {
		return nil
	}
	return s.OnChange(o)
}

func (m Multiple) change(v []Option) tea.Cmd {
	if m.OnChange == nil {
		return nil
	}
	return m.OnChange(v)
}

func validateOptions(options []Option) error {
	for i, o := range options {
		if slices.Contains(options[:i], o) {
			return fmt.Errorf("%w in options: %q", ErrDuplicateOption, o.Label)
		}
	}
	return nil
}

// copyMode detaches the stored value from the caller's memory.
func copyMode(mode Mode) Mode {
	switch mode := mode.(type) {
	case Single:
		if mode.Value != nil {
			o := *mode.Value
			mode.Value = &o
		}
		return mode
	case *Single:
		if mode == nil {
			return nil
		}
		return copyMode(*mode)
	case Multiple:
		mode.Value = slices.Clone(mode.Value)
		if mode.Value == nil {
			mode.Value = []Option{}
		}
		return mode
	case *Multiple:
		if mode == nil {
			return nil
		}
		return copyMode(*mode)
	}
	return mode
}
