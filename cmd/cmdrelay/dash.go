// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/shayne/yargs"

	"github.com/shayne/cmdrelay/internal/tui"
)

func handleDashCommand(ctx context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, dashFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	interactive := !result.SubCommandFlags.Plain && isTerminal(os.Stdin) && isTerminal(os.Stdout)

	cfg, err := loadConfig(os.Stdin, os.Stdout, interactive)
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	prompt := tui.NewLinePrompt(os.Stdin, os.Stdout)
	if interactive {
		prompt = tui.NewCommandPrompt(os.Stdin, os.Stdout)
	}
	return a.runDash(ctx, prompt, os.Stdout, interactive)
}

type commandReader interface {
	Read(placeholder string) (string, error)
}

// runDash shows the banner, then reads and submits commands one at a
// time until input ends or ctx is cancelled.
func (a *app) runDash(ctx context.Context, prompt commandReader, out io.Writer, interactive bool) error {
	tui.Banner(out, a.endpoints())
	for {
		if ctx.Err() != nil {
			return nil
		}
		text, err := prompt.Read(tui.CommandPlaceholder)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		progress := tui.NewProgress(out, interactive, "", "")
		a.dispatcher.Submit(ctx, text, progress)
		progress.Stop()
	}
}
