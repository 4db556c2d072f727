// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package httpjson posts JSON bodies and reads bounded JSON replies.
package httpjson

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// MaxBodyBytes caps how much of a reply is read.
	MaxBodyBytes = 1 << 20

	errorSnippetBytes = 1 << 12
)

// StatusError is returned for replies outside the 2xx range.
type StatusError struct {
	URL  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: status %d %s", e.URL, e.Code, http.StatusText(e.Code))
	msg = strings.TrimSpace(msg)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// NewClient returns a client with the given timeout; zero means none.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Post sends body to url with a JSON content type and returns the reply
// body of a 2xx response.
func Post(ctx context.Context, client *http.Client, url string, body []byte) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, errorSnippetBytes))
		return nil, &StatusError{URL: url, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read reply from %s: %w", url, err)
	}
	return raw, nil
}
