// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command holds the two values that travel through one
// submission: the text a user typed and the structured result the
// interpreter produced for it.
package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrEmptyText is returned for blank or whitespace-only command text.
var ErrEmptyText = errors.New("command text is empty")

// ValidateText reports whether text may be submitted.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}

// Info is the interpreter's structured result, kept as the exact JSON
// bytes it arrived as. It is never decoded on the relay path.
type Info json.RawMessage

// NewInfo copies raw so later reuse of the source buffer cannot alter it.
func NewInfo(raw []byte) Info {
	out := make([]byte, len(raw))
	copy(out, raw)
	return Info(out)
}

// MarshalJSON emits the stored bytes unchanged.
func (i Info) MarshalJSON() ([]byte, error) {
	if len(i) == 0 {
		return []byte("null"), nil
	}
	return i, nil
}

// UnmarshalJSON keeps a copy of data.
func (i *Info) UnmarshalJSON(data []byte) error {
	if i == nil {
		return errors.New("command.Info: UnmarshalJSON on nil pointer")
	}
	*i = NewInfo(data)
	return nil
}

// Bytes returns the payload to put on the wire.
func (i Info) Bytes() []byte {
	return []byte(i)
}

// Empty reports whether no payload is held.
func (i Info) Empty() bool {
	return len(bytes.TrimSpace(i)) == 0
}

// Object decodes the payload as a JSON object. ok is false for strings,
// numbers, arrays and null, which are still valid payloads.
func (i Info) Object() (map[string]any, bool) {
	trimmed := bytes.TrimSpace(i)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var out map[string]any
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, false
	}
	return out, true
}

// String renders the payload on a single line for status output.
func (i Info) String() string {
	if i.Empty() {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, i); err != nil {
		return strings.TrimSpace(string(i))
	}
	return buf.String()
}
