// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type Mode int

const (
	ModeUnknown Mode = iota
	ModeLight
	ModeDark
)

type Theme struct {
	Enabled bool
	Mode    Mode
	Shell   ShellStyles
	ANSI    AnsiStyles
	Huh     *huh.Theme
}

type ShellStyles struct {
	Brand   lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Link    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

type AnsiStyles struct {
	Reset   string
	Success string
	Error   string
	Warning string
	Spinner string
	Dim     string
}

type manager struct {
	mu     sync.Mutex
	mode   Mode
	detect func() bool
	cached map[Mode]Theme
}

var global = &manager{detect: lipgloss.HasDarkBackground}

func ForShell() Theme {
	return ForOutput(os.Stdout)
}

func ForOutput(out io.Writer) Theme {
	enabled := EnabledForOutput(out)
	return global.themeFor(enabled)
}

// EnabledForOutput reports whether out should receive color.
func EnabledForOutput(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termValue := os.Getenv("TERM")
	if termValue == "" || termValue == "dumb" {
		return false
	}
	if ttyAware, ok := out.(interface{ IsTTY() bool }); ok {
		return ttyAware.IsTTY()
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func (m *manager) themeFor(enabled bool) Theme {
	if !enabled {
		return Theme{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode == ModeUnknown {
		m.mode = ModeLight
		if m.detect == nil || m.detect() {
			m.mode = ModeDark
		}
	}
	if m.cached == nil {
		m.cached = map[Mode]Theme{}
	}
	th, ok := m.cached[m.mode]
	if !ok {
		th = buildTheme(m.mode)
		m.cached[m.mode] = th
	}
	return th
}

type tokens struct {
	brand   string
	muted   string
	label   string
	value   string
	link    string
	header  string
	success string
	warning string
	error   string
}

var darkTokens = tokens{
	brand:   "213",
	muted:   "243",
	label:   "244",
	value:   "252",
	link:    "#7AB8FF",
	header:  "81",
	success: "77",
	warning: "226",
	error:   "203",
}

var lightTokens = tokens{
	brand:   "213",
	muted:   "240",
	label:   "238",
	value:   "234",
	link:    "#0A3E84",
	header:  "23",
	success: "28",
	warning: "94",
	error:   "160",
}

func tokensFor(mode Mode) tokens {
	if mode == ModeLight {
		return lightTokens
	}
	return darkTokens
}

func buildTheme(mode Mode) Theme {
	if mode == ModeUnknown {
		mode = ModeDark
	}
	pal := tokensFor(mode)

	shell := ShellStyles{
		Brand:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.brand)),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.header)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(pal.label)),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color(pal.value)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(pal.muted)),
		Link:    lipgloss.NewStyle().Foreground(lipgloss.Color(pal.link)).Underline(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(pal.success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(pal.warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(pal.error)),
	}

	ansi := AnsiStyles{
		Reset:   "\x1b[0m",
		Success: "\x1b[32m",
		Error:   "\x1b[31m",
		Warning: "\x1b[33m",
		Spinner: "\x1b[33m",
		Dim:     "\x1b[90m",
	}

	return Theme{
		Enabled: true,
		Mode:    mode,
		Shell:   shell,
		ANSI:    ansi,
		Huh:     buildHuhTheme(pal),
	}
}
