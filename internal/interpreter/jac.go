// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interpreter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shayne/cmdrelay/internal/command"
	"github.com/shayne/cmdrelay/internal/httpjson"
)

type jacRequest struct {
	UserInput string `json:"user_input"`
}

type jacReply struct {
	Reports []command.Info `json:"reports"`
}

// Jac talks to a walker endpoint that replies {"reports": [...]}.
type Jac struct {
	url    string
	client *http.Client
}

func NewJac(url string, client *http.Client) *Jac {
	if client == nil {
		client = httpjson.NewClient(0)
	}
	return &Jac{url: url, client: client}
}

func (j *Jac) Name() string { return "jac" }

func (j *Jac) Interpret(ctx context.Context, text string) (command.Info, error) {
	if err := command.ValidateText(text); err != nil {
		return nil, err
	}
	body, err := json.Marshal(jacRequest{UserInput: text})
	if err != nil {
		return nil, err
	}
	raw, err := httpjson.Post(ctx, j.client, j.url, body)
	if err != nil {
		return nil, fmt.Errorf("interpreter request failed: %w", err)
	}
	var reply jacReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("interpreter reply is not valid JSON: %w", err)
	}
	if len(reply.Reports) == 0 {
		return nil, ErrNoResult
	}
	return reply.Reports[0], nil
}
