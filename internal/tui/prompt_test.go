// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestCommandPromptReadsLines(t *testing.T) {
	in := strings.NewReader("turn off after 2 minutes\r\n\n  on")
	out := &bytes.Buffer{}
	p := NewCommandPrompt(in, out)

	want := []string{"turn off after 2 minutes", "", "  on"}
	for i, w := range want {
		got, err := p.Read("")
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Fatalf("read %d: got %q want %q", i, got, w)
		}
	}
	if _, err := p.Read(""); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF at end of input, got %v", err)
	}
	if !strings.Contains(out.String(), CommandTitle+" ("+CommandPlaceholder+")") {
		t.Fatalf("expected prompt header, got %q", out.String())
	}
}

func TestPromptDeviceURLRetriesInvalidInput(t *testing.T) {
	in := strings.NewReader("ftp://device\n\nhttp://192.168.1.50/\n")
	out := &bytes.Buffer{}
	got, err := PromptDeviceURL(in, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "http://192.168.1.50" {
		t.Fatalf("unexpected url %q", got)
	}
	if !strings.Contains(out.String(), "enter an http:// or https:// URL") {
		t.Fatalf("expected validation message, got %q", out.String())
	}
	if !strings.Contains(out.String(), "device URL is required") {
		t.Fatalf("expected required message, got %q", out.String())
	}
}

func TestPromptDeviceURLEOF(t *testing.T) {
	if _, err := PromptDeviceURL(strings.NewReader(""), &bytes.Buffer{}); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
