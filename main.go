// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keyselect.
//
// Usage:
//
//	go run . [flags]
//	./keyselect [flags]
//
// This opens the select box and prints the selection on exit. See --help
// for options.
package main

import (
	"os"

	"github.com/toeirei/keyselect/internal/logging"
	"github.com/toeirei/keyselect/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
