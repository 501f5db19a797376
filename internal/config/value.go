// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// OptionValue is an option value from the config file: either text or a number.
type OptionValue struct {
	Text    string
	Number  float64
	Numeric bool
}

func TextValue(s string) OptionValue    { return OptionValue{Text: s} }
func NumberValue(n float64) OptionValue { return OptionValue{Number: n, Numeric: true} }
func (v OptionValue) MarshalYAML() (any, error) {
	if !v.Numeric {
		return v.Text, nil
	}
	if v.Number == math.Trunc(v.Number) && math.Abs(v.Number) < 1<<53 {
		return int64(v.Number), nil
	}
	return v.Number, nil
}

func (v OptionValue) String() string {
	if v.Numeric {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

var optionValueType = reflect.TypeOf(OptionValue{})

// OptionValueHook decodes scalar yaml/env/flag values into OptionValue.
func OptionValueHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != optionValueType {
			return data, nil
		}
		switch v := data.(type) {
		case OptionValue:
			return v, nil
		case string:
			return TextValue(v), nil
		case int:
			return NumberValue(float64(v)), nil
		case int32:
			return NumberValue(float64(v)), nil
		case int64:
			return NumberValue(float64(v)), nil
		case uint64:
			return NumberValue(float64(v)), nil
		case float32:
			return floatValue(float64(v))
		case float64:
			return floatValue(v)
		default:
			return nil, fmt.Errorf("option value must be text or a number, got %T", data)
		}
	}
}

// NaN never equals itself, so it could not be selected or deduplicated.
func floatValue(f float64) (OptionValue, error) {
	if math.IsNaN(f) {
		return OptionValue{}, fmt.Errorf("option value must not be NaN")
	}
	return NumberValue(f), nil
}
