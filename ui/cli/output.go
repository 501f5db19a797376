// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/toeirei/keyselect/internal/config"
	"github.com/toeirei/keyselect/internal/i18n"
	"github.com/toeirei/keyselect/ui/tui/models/components/selectbox"
	"github.com/toeirei/keyselect/util/slicest"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	case "":
		return outputText, nil
	}
	return "", errors.New(i18n.T("cli.error_output", s))
}

// outputOption is the serialized form of a selected option.
type outputOption struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

func plainValue(v selectbox.Value) any {
	n, ok := v.Float()
	if !ok {
		return v.String()
	}
	if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
		return int64(n)
	}
	return n
}

// writeOptions prints options in the given format. Text output is one
// "label<TAB>value" line per option.
func writeOptions(w io.Writer, format outputFormat, options []selectbox.Option) error {
	switch format {
	case outputJSON, outputYAML:
		out := slicest.Map(options, func(o selectbox.Option) outputOption {
			return outputOption{Label: o.Label, Value: plainValue(o.Value)}
		})

		var (
			data []byte
			err  error
		)
		if format == outputJSON {
			data, err = json.MarshalIndent(out, "", "  ")
			data = append(data, '\n')
		} else {
			data, err = yaml.Marshal(out)
		}
		if err != nil {
			return fmt.Errorf("could not encode selection: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		for _, o := range options {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", o.Label, o.Value); err != nil {
				return err
			}
		}
		return nil
	}
}

// toOptions converts configured options into select box options.
func toOptions(configured []config.OptionConfig) []selectbox.Option {
	return slicest.Map(configured, func(c config.OptionConfig) selectbox.Option {
		if c.Value.Numeric {
			return selectbox.NewOption(c.Label, selectbox.Number(c.Value.Number))
		}
		return selectbox.NewOption(c.Label, selectbox.Text(c.Value.Text))
	})
}
