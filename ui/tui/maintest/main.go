// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Command maintest runs the select box over fixed options without any
// config, for trying out the widget.
package main

import (
	"context"
	"fmt"
	"os"

	tui "github.com/toeirei/keyselect/ui/tui"
	"github.com/toeirei/keyselect/ui/tui/models/components/selectbox"
)

func main() {
	selection, err := tui.Run(context.Background(), tui.Config{
		Options: []selectbox.Option{
			selectbox.NewOption("First", selectbox.Number(1)),
			selectbox.NewOption("Second", selectbox.Number(2)),
			selectbox.NewOption("Third", selectbox.Number(3)),
			selectbox.NewOption("Fourth", selectbox.Number(4)),
		},
		Multiple: len(os.Args) > 1 && os.Args[1] == "multiple",
		Output:   os.Stderr,
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(selectbox.Labels(selection, "\n"))
}
