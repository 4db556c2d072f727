// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressNeedsQuote(t *testing.T) {
	cases := map[string]bool{
		"plain":       false,
		"with space":  true,
		"tab\tvalue":  true,
		"line\nbreak": true,
		"quote\"here": true,
		"a=b":         true,
	}
	for input, expected := range cases {
		if got := progressNeedsQuote(input); got != expected {
			t.Fatalf("progressNeedsQuote(%q)=%v want %v", input, got, expected)
		}
	}
}

func TestQuoteProgressKV(t *testing.T) {
	if got := quoteProgressKV("plain"); got != "plain" {
		t.Fatalf("unexpected quote: %q", got)
	}
	if got := quoteProgressKV("has space"); got == "has space" {
		t.Fatalf("expected quoted value, got %q", got)
	}
}

func TestFormatProgressKV(t *testing.T) {
	got := formatProgressKV("action", "send", "detail", "hello world", "", "skip")
	want := "action=send detail=\"hello world\""
	if got != want {
		t.Fatalf("formatProgressKV=%q want %q", got, want)
	}
}

func TestPlainProgressLines(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewProgress(buf, false, "send", "http://device/led")
	p.Start()
	p.Step("Contacting interpreter")
	p.Done(`parsed {"action":"off"}`)
	p.Step("Sending to device")
	p.Fail("Error: device request failed")
	p.Warn("Please enter a command.")
	p.Stop()

	want := []string{
		`action=send device=http://device/led status=running step="Contacting interpreter"`,
		`action=send device=http://device/led status=ok step="Contacting interpreter" detail="parsed {\"action\":\"off\"}"`,
		`action=send device=http://device/led status=running step="Sending to device"`,
		`action=send device=http://device/led status=err step="Sending to device" detail="Error: device request failed"`,
		`action=send device=http://device/led status=warn detail="Please enter a command."`,
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected lines:\n%s", buf.String())
	}
}

func TestProgressDoneWithoutStepIsIgnored(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewProgress(buf, false, "", "")
	p.Done("nothing")
	p.Fail("nothing")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestInteractiveProgressStatusLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	p := NewProgress(buf, true, "dash", "")
	p.Step("Contacting interpreter")
	p.Done("parsed {}")
	p.Step("Sending to device")
	p.Fail("Error: boom")
	p.Stop()

	out := buf.String()
	ok := strings.Index(out, "✔ Contacting interpreter (parsed {})")
	fail := strings.Index(out, "✖ Sending to device (Error: boom)")
	if ok < 0 || fail < 0 || fail < ok {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, ColorGreen) {
		t.Fatalf("expected no color codes with NO_COLOR, got %q", out)
	}
}
