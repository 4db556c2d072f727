// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/shayne/yargs"

	"github.com/shayne/cmdrelay/internal/dispatch"
	"github.com/shayne/cmdrelay/internal/tui"
)

func handleSendCommand(ctx context.Context, args []string) error {
	if hasHelpFlag(args) {
		_, err := yargs.ParseAndHandleHelp[struct{}, sendFlags, struct{}](args, helpConfig)
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	parsed, err := yargs.ParseFlags[sendFlags](trimSubcommand(args, "send"))
	if err != nil {
		return err
	}
	text := strings.Join(parsed.Args, " ")
	if strings.TrimSpace(text) == "" {
		return newUsageError("Usage: cmdrelay send <text...>")
	}

	cfg, err := loadConfig(os.Stdin, os.Stdout, false)
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	interactive := !parsed.Flags.Plain && isTerminal(os.Stdout)
	return a.send(ctx, text, os.Stdout, interactive)
}

// send runs one submission. A failed submission has already been
// reported on out, so it comes back as a silent error.
func (a *app) send(ctx context.Context, text string, out io.Writer, interactive bool) error {
	progress := tui.NewProgress(out, interactive, "send", a.relay.URL())
	progress.Start()
	outcome := a.dispatcher.Submit(ctx, text, progress)
	progress.Stop()
	return submitError(outcome)
}

func submitError(outcome dispatch.Outcome) error {
	if outcome.OK() {
		return nil
	}
	return newSilentError(outcome.Err)
}
