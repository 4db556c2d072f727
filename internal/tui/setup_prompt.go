// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"io"
	"net/url"
	"strings"
)

// PromptDeviceURL asks for the device base URL when none is configured.
func PromptDeviceURL(in io.Reader, out io.Writer) (string, error) {
	value, err := promptInput(in, out,
		"Device URL",
		"Base URL of the device that receives interpreted commands.",
		"http://192.168.1.50",
		validateDeviceURL,
	)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(value, "/"), nil
}

func validateDeviceURL(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("device URL is required")
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("enter an http:// or https:// URL")
	}
	return nil
}
