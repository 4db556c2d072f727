// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/shayne/cmdrelay/internal/config"
	"github.com/shayne/cmdrelay/internal/device"
	"github.com/shayne/cmdrelay/internal/dispatch"
	"github.com/shayne/cmdrelay/internal/httpjson"
	"github.com/shayne/cmdrelay/internal/interpreter"
	"github.com/shayne/cmdrelay/internal/logging"
	"github.com/shayne/cmdrelay/internal/tui"
)

// app holds everything one CLI invocation needs to run submissions.
type app struct {
	cfg        config.Config
	log        *logrus.Logger
	closeLog   func() error
	interp     interpreter.Interpreter
	relay      *device.Relay
	dispatcher *dispatch.Dispatcher
}

func newApp(cfg config.Config) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, newUsageError(fmt.Sprintf("invalid config: %v (see `cmdrelay config`)", err))
	}
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	client := httpjson.NewClient(cfg.Timeout())
	interp, err := interpreter.New(cfg, client)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	relay := device.NewRelay(cfg.DeviceURL(), client)
	log.WithFields(logrus.Fields{
		"backend": interp.Name(),
		"device":  relay.URL(),
		"timeout": cfg.Timeout().String(),
	}).Debug("cmdrelay ready")
	return &app{
		cfg:        cfg,
		log:        log,
		closeLog:   closeLog,
		interp:     interp,
		relay:      relay,
		dispatcher: dispatch.New(interp, relay, log),
	}, nil
}

func newLogger(cfg config.Config) (*logrus.Logger, func() error, error) {
	log, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return log, closeLog, nil
}

func (a *app) Close() {
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

func (a *app) endpoints() tui.Endpoints {
	ep := tui.Endpoints{Backend: a.interp.Name(), Device: a.relay.URL()}
	if a.cfg.Interpreter.Backend == config.BackendJac {
		ep.Interpreter = a.cfg.InterpreterURL
	}
	return ep
}

// loadConfig reads the config and, on a terminal, asks for a missing
// device URL and saves it.
func loadConfig(in io.Reader, out io.Writer, interactive bool) (config.Config, error) {
	cfg, path, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DeviceBaseURL != "" || !interactive {
		return cfg, nil
	}
	deviceURL, err := tui.PromptDeviceURL(in, out)
	if err != nil {
		return config.Config{}, newSilentError(err)
	}
	saved, err := config.LoadFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	saved.DeviceBaseURL = deviceURL
	if err := config.Save(path, saved); err != nil {
		return config.Config{}, fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(out, "wrote config to %s\n", path)
	cfg.DeviceBaseURL = deviceURL
	return cfg, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
