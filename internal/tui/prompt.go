// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

const (
	CommandTitle       = "Enter command"
	CommandPlaceholder = "e.g., turn off after 2 minutes"
)

// CommandPrompt reads one command per call. It shows a huh input when
// both ends are terminals and falls back to line prompts otherwise.
type CommandPrompt struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
	dialog bool
}

func NewCommandPrompt(in io.Reader, out io.Writer) *CommandPrompt {
	return &CommandPrompt{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
		dialog: useDialogPrompts(in, out),
	}
}

// NewLinePrompt always uses line prompts.
func NewLinePrompt(in io.Reader, out io.Writer) *CommandPrompt {
	p := NewCommandPrompt(in, out)
	p.dialog = false
	return p
}

// Read returns the entered text untrimmed, including blank input. It
// returns io.EOF when input ends or the form is aborted.
func (p *CommandPrompt) Read(placeholder string) (string, error) {
	if strings.TrimSpace(placeholder) == "" {
		placeholder = CommandPlaceholder
	}
	if p.dialog {
		return p.readDialog(placeholder)
	}
	fmt.Fprintf(p.out, "%s (%s)\n> ", CommandTitle, placeholder)
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.EOF
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *CommandPrompt) readDialog(placeholder string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(CommandTitle).
				Prompt("> ").
				Placeholder(placeholder).
				Value(&value),
		),
	).WithInput(p.in).WithOutput(p.out).WithTheme(promptTheme(p.out)).WithShowHelp(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", io.EOF
		}
		return "", err
	}
	return value, nil
}

func promptInput(in io.Reader, out io.Writer, title, description, placeholder string, validate func(string) error) (string, error) {
	if useDialogPrompts(in, out) {
		var value string
		input := huh.NewInput().
			Title(title).
			Description(description).
			Prompt("> ").
			Placeholder(placeholder).
			Value(&value)
		if validate != nil {
			input = input.Validate(validate)
		}
		form := huh.NewForm(huh.NewGroup(input)).WithInput(in).WithOutput(out).WithTheme(promptTheme(out))
		if err := form.Run(); err != nil {
			return "", err
		}
		return strings.TrimSpace(value), nil
	}
	reader := bufio.NewReader(in)
	printPromptHeader(out, title, description, placeholder)
	for {
		fmt.Fprint(out, "> ")
		line, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if validate != nil {
			if err := validate(line); err != nil {
				fmt.Fprintln(out, err.Error())
				continue
			}
		}
		return strings.TrimSpace(line), nil
	}
}

func useDialogPrompts(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(inFile.Fd())) {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return false
	}
	return true
}

func printPromptHeader(out io.Writer, title, description, placeholder string) {
	if strings.TrimSpace(title) != "" {
		fmt.Fprintln(out, title)
	}
	if strings.TrimSpace(description) != "" {
		fmt.Fprintln(out, description)
	}
	if strings.TrimSpace(placeholder) != "" {
		fmt.Fprintln(out, placeholder)
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.EOF
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
