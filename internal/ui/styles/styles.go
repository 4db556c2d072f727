// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/shayne/cmdrelay/internal/tui/theme"
)

// Styles defines the minimal semantic style set used by the dashboard.
type Styles struct {
	Brand  lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	Value  lipgloss.Style
	Link   lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the base semantic styles for shell rendering.
func DefaultStyles() Styles {
	return Styles{
		Brand:  lipgloss.NewStyle().Bold(true),
		Header: lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Faint(true),
		Value:  lipgloss.NewStyle(),
		Link:   lipgloss.NewStyle().Underline(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// ForOutput returns themed styles for a color terminal and unstyled ones
// otherwise.
func ForOutput(out io.Writer) Styles {
	th := theme.ForOutput(out)
	if !th.Enabled {
		return Styles{}
	}
	return Styles{
		Brand:  th.Shell.Brand,
		Header: th.Shell.Header,
		Muted:  th.Shell.Muted,
		Value:  th.Shell.Value,
		Link:   th.Shell.Link,
		Error:  th.Shell.Error,
	}
}
