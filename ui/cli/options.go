// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/toeirei/keyselect/internal/i18n"
)

// newOptionsCmd lists the configured options without starting the TUI.
func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: i18n.T("cli.options_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(appConfig.Output)
			if err != nil {
				return err
			}
			return writeOptions(cmd.OutOrStdout(), format, toOptions(appConfig.Options))
		},
	}
}
