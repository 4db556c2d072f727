// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"github.com/shayne/cmdrelay/internal/ui/styles"
)

// InfoLine is one label + value row of the banner.
type InfoLine struct {
	Label string
	Desc  string
}

// RenderInfoTable renders a header and aligned rows, framed by blank
// lines. URL values use the link style.
func RenderInfoTable(header string, lines []InfoLine, s styles.Styles) string {
	maxWidth := 0
	for _, line := range lines {
		if len(line.Label) > maxWidth {
			maxWidth = len(line.Label)
		}
	}
	rows := make([]string, 0, len(lines)+3)
	rows = append(rows, "", s.Brand.Render(header))
	for _, line := range lines {
		label := line.Label + strings.Repeat(" ", maxWidth-len(line.Label))
		desc := s.Muted.Render("# " + line.Desc)
		if isURL(line.Desc) {
			desc = s.Muted.Render("# ") + s.Link.Render(line.Desc)
		}
		rows = append(rows, fmt.Sprintf("  %s  %s", s.Value.Render(label), desc))
	}
	rows = append(rows, "")
	return strings.Join(rows, "\n")
}

func isURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
