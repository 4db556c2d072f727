// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"github.com/shayne/cmdrelay/internal/ui/styles"
)

// HelpLine is a single help row (key + description).
type HelpLine struct {
	Key  string
	Desc string
}

// RenderHelpSection renders a section of help lines with alignment.
func RenderHelpSection(header string, lines []HelpLine, s styles.Styles) []string {
	maxWidth := 0
	for _, line := range lines {
		if len(line.Key) > maxWidth {
			maxWidth = len(line.Key)
		}
	}
	rows := make([]string, 0, len(lines)+1)
	rows = append(rows, s.Header.Render(header))
	for _, line := range lines {
		key := line.Key + strings.Repeat(" ", maxWidth-len(line.Key))
		rows = append(rows, fmt.Sprintf("  %s  %s", s.Value.Render(key), s.Muted.Render("# "+line.Desc)))
	}
	return rows
}
