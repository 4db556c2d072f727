// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// buildHuhTheme maps the shell tokens onto the command input form.
func buildHuhTheme(pal tokens) *huh.Theme {
	th := huh.ThemeBase()
	accent := lipgloss.Color(pal.brand)
	muted := lipgloss.Color(pal.muted)
	label := lipgloss.Color(pal.label)
	value := lipgloss.Color(pal.value)
	errColor := lipgloss.Color(pal.error)

	th.Focused.Base = th.Focused.Base.BorderForeground(accent)
	th.Focused.Title = th.Focused.Title.Foreground(label).Bold(true)
	th.Focused.Description = th.Focused.Description.Foreground(muted)
	th.Focused.ErrorIndicator = th.Focused.ErrorIndicator.Foreground(errColor)
	th.Focused.ErrorMessage = th.Focused.ErrorMessage.Foreground(errColor)
	th.Focused.TextInput.Cursor = th.Focused.TextInput.Cursor.Foreground(accent)
	th.Focused.TextInput.Prompt = th.Focused.TextInput.Prompt.Foreground(accent)
	th.Focused.TextInput.Text = th.Focused.TextInput.Text.Foreground(value)
	th.Focused.TextInput.Placeholder = th.Focused.TextInput.Placeholder.Foreground(muted)

	th.Blurred = th.Focused
	th.Blurred.Base = th.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	return th
}
