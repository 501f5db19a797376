// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keyselect/internal/logging"
	"github.com/toeirei/keyselect/ui/tui/models/components/selectbox"
	"github.com/toeirei/keyselect/ui/tui/models/views/root"
)

// ErrAborted is returned when the user leaves with ctrl+c.
var ErrAborted = errors.New("selection aborted")

type Config struct {
	Options  []selectbox.Option
	Multiple bool
	// Input and Output default to the program's stdin and stdout.
	Input  io.Reader
	Output io.Writer
}

// Run shows the select box until the user quits and returns the final
// selection.
func Run(ctx context.Context, cfg Config) ([]selectbox.Option, error) {
	model, err := root.New(cfg.Options, cfg.Multiple)
	if err != nil {
		return nil, fmt.Errorf("failed to create select box: %w", err)
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}

	logging.Debugf("starting select box with %d options (multiple=%v)", len(cfg.Options), cfg.Multiple)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("select box failed: %w", err)
	}

	host, ok := final.(*root.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}
	if host.Aborted() {
		return nil, ErrAborted
	}
	return host.Selection(), nil
}
