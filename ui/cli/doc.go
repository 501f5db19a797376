// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Keyselect using Cobra.
// It loads configuration, sets up logging and translations, runs the TUI and
// prints the final selection.
package cli
