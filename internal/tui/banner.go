// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/shayne/cmdrelay/internal/ui/render"
	"github.com/shayne/cmdrelay/internal/ui/styles"
)

// Endpoints describes where submissions go.
type Endpoints struct {
	Backend     string
	Interpreter string
	Device      string
}

// Banner writes the dashboard header: the endpoints in use and the keys
// that drive the prompt.
func Banner(out io.Writer, ep Endpoints) {
	s := styles.ForOutput(out)
	lines := []render.InfoLine{{Label: "backend", Desc: ep.Backend}}
	if ep.Interpreter != "" {
		lines = append(lines, render.InfoLine{Label: "interpreter", Desc: ep.Interpreter})
	}
	lines = append(lines, render.InfoLine{Label: "device", Desc: ep.Device})

	fmt.Fprint(out, render.RenderInfoTable("cmdrelay", lines, s))
	keys := render.RenderHelpSection("Keys:", []render.HelpLine{
		{Key: "enter", Desc: "interpret and send the command"},
		{Key: "ctrl+c", Desc: "quit"},
	}, s)
	fmt.Fprintln(out, strings.Join(keys, "\n"))
	fmt.Fprintln(out)
}
