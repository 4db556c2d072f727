// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"

	"github.com/shayne/cmdrelay/internal/tui/theme"
)

const (
	ColorReset  = "\x1b[0m"
	ColorRed    = "\x1b[31m"
	ColorGreen  = "\x1b[32m"
	ColorYellow = "\x1b[33m"
	ColorDim    = "\x1b[90m"
)

type Colorizer struct {
	Enabled bool
	ansi    theme.AnsiStyles
}

// NewColorizer returns an enabled colorizer only when enabled is set and
// out is a color-capable terminal.
func NewColorizer(out io.Writer, enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	selected := theme.ForOutput(out)
	if !selected.Enabled {
		return Colorizer{}
	}
	return Colorizer{Enabled: true, ansi: selected.ANSI}
}

func (c Colorizer) Wrap(code, text string) string {
	if !c.Enabled || code == "" {
		return text
	}
	reset := c.ansi.Reset
	if reset == "" {
		reset = ColorReset
	}
	return code + text + reset
}
