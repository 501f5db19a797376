// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

package selectbox

import (
	"strconv"
	"strings"

	"github.com/toeirei/keyselect/util/slicest"
)

// Value is the value half of an Option: either text or a number.
// The zero Value is the empty text.
type Value struct {
	text    string
	number  float64
	numeric bool
}

func Text(s string) Value    { return Value{text: s} }
func Number(n float64) Value { return Value{number: n, numeric: true} }

// Float returns the numeric value and whether v is a number.
func (v Value) Float() (float64, bool) { return v.number, v.numeric }

func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

// Option is a selectable (label, value) pair. Options are compared as a
// whole: two options with equal values but different labels are distinct.
type Option struct {
	Label string
	Value Value
}

func NewOption(label string, value Value) Option {
	return Option{Label: label, Value: value}
}

// Labels joins the option labels with sep.
func Labels(options []Option, sep string) string {
	return strings.Join(slicest.Map(options, func(o Option) string { return o.Label }), sep)
}
