// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shayne/yargs"
)

func main() {
	if err := runCLI(); err != nil {
		reportCLIError(err)
		os.Exit(1)
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

type silentError struct {
	err error
}

func (e silentError) Error() string {
	return e.err.Error()
}

func (e silentError) Unwrap() error {
	return e.err
}

func reportCLIError(err error) {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(os.Stderr, usageErr.message)
		return
	}
	var quietErr silentError
	if errors.As(err, &quietErr) {
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

func newUsageError(message string) error {
	return usageError{message: message}
}

func newSilentError(err error) error {
	if err == nil {
		return nil
	}
	return silentError{err: err}
}

var (
	version = "dev"
	commit  = ""
)

func runCLI() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second interrupt falls through to the default handler.
		<-ctx.Done()
		stop()
	}()

	args := ensureSubcommand(normalizeArgs(os.Args[1:]))
	handlers := map[string]yargs.SubcommandHandler{
		"dash":    handleDashCommand,
		"send":    handleSendCommand,
		"config":  handleConfigCommand,
		"version": handleVersionCommand,
	}
	if err := yargs.RunSubcommands(ctx, args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

type dashFlags struct {
	Plain bool `flag:"plain" help:"use line prompts and plain status output"`
}

type sendFlags struct {
	Plain bool `flag:"plain" help:"print key=value status lines"`
}

type configFlags struct {
	InterpreterURL string `flag:"interpreter-url" help:"set the interpreter endpoint"`
	DeviceURL      string `flag:"device-url" help:"set the device base URL"`
	DevicePath     string `flag:"device-path" help:"set the path appended to the device URL"`
	Backend        string `flag:"backend" help:"set the interpreter backend (jac or openai)"`
	Model          string `flag:"model" help:"set the model for the openai backend"`
	Timeout        string `flag:"timeout" help:"set the request timeout in seconds (0 disables it)"`
	LogLevel       string `flag:"log-level" help:"set the log level (debug, info, warn, error)"`
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "cmdrelay",
		Description: "Turn plain-language commands into device requests",
		Examples: []string{
			"cmdrelay",
			"cmdrelay send turn off after 2 minutes",
			"cmdrelay config --device-url http://192.168.1.50",
			"cmdrelay config --backend openai --model gpt-4o-mini",
			"cmdrelay --version",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"dash": {
			Name:        "dash",
			Description: "Open the interactive command prompt (default)",
			Usage:       "[--plain]",
		},
		"send": {
			Name:        "send",
			Description: "Interpret one command and send it to the device",
			Usage:       "<text...>",
			Examples: []string{
				"cmdrelay send turn on",
				"cmdrelay send --plain blink twice",
			},
		},
		"config": {
			Name:        "config",
			Description: "Show or update the local configuration",
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	},
}

func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	if args[0] == "--version" {
		return append([]string{"version"}, args[1:]...)
	}
	if args[0] == "help" {
		return rewriteHelpArgs(args[1:])
	}
	return args
}

func rewriteHelpArgs(args []string) []string {
	if len(args) == 0 || isHelpFlag(args[0]) {
		return []string{"--help"}
	}
	if isKnownCommand(args[0]) {
		return []string{args[0], "--help"}
	}
	return []string{"--help"}
}

func isKnownCommand(value string) bool {
	switch value {
	case "dash", "send", "config", "version":
		return true
	default:
		return false
	}
}

// ensureSubcommand routes a bare invocation, or one with only dash flags,
// to the dashboard.
func ensureSubcommand(args []string) []string {
	if len(args) == 0 {
		return []string{"dash"}
	}
	if isHelpFlag(args[0]) {
		return args
	}
	if isKnownCommand(args[0]) {
		return args
	}
	if strings.HasPrefix(args[0], "-") {
		return append([]string{"dash"}, args...)
	}
	return args
}

func isHelpFlag(value string) bool {
	switch strings.TrimSpace(value) {
	case "-h", "--help", "--help-llm":
		return true
	default:
		return false
	}
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if isHelpFlag(arg) {
			return true
		}
	}
	return false
}

// trimSubcommand drops the subcommand name when the handler receives it.
func trimSubcommand(args []string, name string) []string {
	if len(args) > 0 && args[0] == name {
		return args[1:]
	}
	return args
}

func handleVersionCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, versionString())
	return nil
}

func versionString() string {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		trimmed = "dev"
	}
	if c := strings.TrimSpace(commit); c != "" {
		return fmt.Sprintf("%s (%s)", trimmed, c)
	}
	return trimmed
}
