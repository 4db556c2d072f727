// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package device forwards interpreted commands to the device endpoint.
package device

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shayne/cmdrelay/internal/command"
	"github.com/shayne/cmdrelay/internal/httpjson"
)

var errEmptyInfo = errors.New("nothing to relay")

// Relay posts command info to a single device URL.
type Relay struct {
	url    string
	client *http.Client
}

func NewRelay(url string, client *http.Client) *Relay {
	if client == nil {
		client = httpjson.NewClient(0)
	}
	return &Relay{url: url, client: client}
}

func (r *Relay) URL() string { return r.url }

// Send posts info byte-for-byte. Any 2xx reply counts as success; the
// reply body is not inspected.
func (r *Relay) Send(ctx context.Context, info command.Info) error {
	if info.Empty() {
		return errEmptyInfo
	}
	if _, err := httpjson.Post(ctx, r.client, r.url, info.Bytes()); err != nil {
		return fmt.Errorf("device request failed: %w", err)
	}
	return nil
}
