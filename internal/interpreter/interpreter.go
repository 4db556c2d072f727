// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interpreter turns command text into a structured command.
//
// Two backends exist: jac posts the text to a remote walker endpoint and
// takes the first entry of its "reports" list; openai asks an
// OpenAI-compatible chat model for a JSON object.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shayne/cmdrelay/internal/command"
	"github.com/shayne/cmdrelay/internal/config"
)

// ErrNoResult means the service answered but produced no command.
var ErrNoResult = errors.New("no interpretation result")

type Interpreter interface {
	// Name returns the backend identifier.
	Name() string

	// Interpret returns the structured command for text.
	Interpret(ctx context.Context, text string) (command.Info, error)
}

// New builds the backend named by cfg.Interpreter.Backend.
func New(cfg config.Config, client *http.Client) (Interpreter, error) {
	switch cfg.Interpreter.Backend {
	case config.BackendJac, "":
		return NewJac(cfg.InterpreterURL, client), nil
	case config.BackendOpenAI:
		return NewOpenAI(cfg.OpenAI, client), nil
	default:
		return nil, fmt.Errorf("unknown interpreter backend %q", cfg.Interpreter.Backend)
	}
}
