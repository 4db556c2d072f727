// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/shayne/yargs"

	"github.com/shayne/cmdrelay/internal/config"
	"github.com/shayne/cmdrelay/internal/logging"
)

func handleConfigCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, configFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to locate config: %w", err)
	}
	return runConfig(path, result.SubCommandFlags, os.Stdout)
}

// runConfig prints the effective config, or applies flags to the file
// at path. Only the file is rewritten; environment overrides are left
// out of it.
func runConfig(path string, flags configFlags, out io.Writer) error {
	if configFlagsEmpty(flags) {
		cfg, _, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return showConfig(cfg, path, out)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyConfigFlags(&cfg, flags); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(out, "wrote config to %s\n", path)
	return nil
}

func configFlagsEmpty(flags configFlags) bool {
	return flags == configFlags{}
}

func applyConfigFlags(cfg *config.Config, flags configFlags) error {
	if v := strings.TrimSpace(flags.InterpreterURL); v != "" {
		cfg.InterpreterURL = v
	}
	if v := strings.TrimSpace(flags.DeviceURL); v != "" {
		cfg.DeviceBaseURL = v
	}
	if v := strings.TrimSpace(flags.DevicePath); v != "" {
		cfg.DevicePath = v
	}
	if v := strings.TrimSpace(flags.Backend); v != "" {
		switch v {
		case config.BackendJac, config.BackendOpenAI:
			cfg.Interpreter.Backend = v
		default:
			return newUsageError(fmt.Sprintf("unknown backend %q (expected jac or openai)", v))
		}
	}
	if v := strings.TrimSpace(flags.Model); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := strings.TrimSpace(flags.Timeout); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil || sec < 0 {
			return newUsageError(fmt.Sprintf("invalid --timeout %q (expected seconds >= 0)", v))
		}
		cfg.TimeoutSec = sec
	}
	if v := strings.TrimSpace(flags.LogLevel); v != "" {
		if _, err := logging.ParseLevel(v); err != nil {
			return newUsageError(fmt.Sprintf("invalid --log-level %q", v))
		}
		cfg.LogLevel = v
	}
	return nil
}

func showConfig(cfg config.Config, path string, out io.Writer) error {
	if cfg.OpenAI.APIKey != "" {
		cfg.OpenAI.APIKey = "********"
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}
	fmt.Fprintf(out, "Config path: %s\n%s\n", path, string(data))
	return nil
}
