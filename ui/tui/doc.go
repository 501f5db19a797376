// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui runs the select box host as a full screen Bubble Tea program.
// Components live under models/, shared helpers under util/.
package tui
