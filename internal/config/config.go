// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	BackendJac    = "jac"
	BackendOpenAI = "openai"

	DefaultInterpreterURL = "http://localhost:8000/walker/interpret_voice"
	DefaultDevicePath     = "/led"
	DefaultLogLevel       = "warn"
	DefaultOpenAIBaseURL  = "https://api.openai.com"
	DefaultOpenAIModel    = "gpt-4o-mini"
)

type Config struct {
	InterpreterURL string            `toml:"interpreter_url"`
	DeviceBaseURL  string            `toml:"device_base_url"`
	DevicePath     string            `toml:"device_path"`
	TimeoutSec     int               `toml:"timeout_sec"`
	LogLevel       string            `toml:"log_level"`
	LogFile        string            `toml:"log_file"`
	Interpreter    InterpreterConfig `toml:"interpreter"`
	OpenAI         OpenAIConfig      `toml:"openai"`
}

type InterpreterConfig struct {
	Backend string `toml:"backend"`
}

type OpenAIConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
}

// FieldError names the setting that failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func Default() Config {
	return Config{
		InterpreterURL: DefaultInterpreterURL,
		DevicePath:     DefaultDevicePath,
		LogLevel:       DefaultLogLevel,
		Interpreter:    InterpreterConfig{Backend: BackendJac},
		OpenAI: OpenAIConfig{
			BaseURL: DefaultOpenAIBaseURL,
			Model:   DefaultOpenAIModel,
		},
	}
}

// Load reads the config file, then lets .env files and the process
// environment override it.
func Load() (Config, string, error) {
	path, err := Path()
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, path, err
	}
	if _, err := LoadDotEnv(); err != nil {
		return Config{}, path, err
	}
	ApplyEnv(&cfg)
	return cfg, path, nil
}

// LoadFile returns the defaults overlaid with the file at path. A missing
// file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func Save(path string, cfg Config) error {
	cfg.normalize()
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// The file may hold an API key.
	return os.WriteFile(path, data, 0o600)
}

func Path() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}

	return filepath.Join(configHome, "cmdrelay", "config.toml"), nil
}

// DeviceURL joins the device base URL and path with exactly one slash.
func (c Config) DeviceURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.DeviceBaseURL), "/")
	path := strings.TrimSpace(c.DevicePath)
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// Timeout is the per-request client timeout; zero means none.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

func (c Config) Validate() error {
	switch c.Interpreter.Backend {
	case BackendJac:
		if err := validateHTTPURL(c.InterpreterURL); err != nil {
			return &FieldError{Field: "interpreter_url", Message: err.Error()}
		}
	case BackendOpenAI:
		if strings.TrimSpace(c.OpenAI.APIKey) == "" {
			return &FieldError{Field: "openai.api_key", Message: "required for the openai backend"}
		}
		if err := validateHTTPURL(c.OpenAI.BaseURL); err != nil {
			return &FieldError{Field: "openai.base_url", Message: err.Error()}
		}
	default:
		return &FieldError{Field: "interpreter.backend", Message: fmt.Sprintf("unknown backend %q (expected jac or openai)", c.Interpreter.Backend)}
	}
	if err := validateHTTPURL(c.DeviceBaseURL); err != nil {
		return &FieldError{Field: "device_base_url", Message: err.Error()}
	}
	if c.TimeoutSec < 0 {
		return &FieldError{Field: "timeout_sec", Message: "must not be negative"}
	}
	return nil
}

func (c *Config) normalize() {
	c.InterpreterURL = strings.TrimSpace(c.InterpreterURL)
	c.DeviceBaseURL = strings.TrimSpace(c.DeviceBaseURL)
	c.DevicePath = strings.TrimSpace(c.DevicePath)
	c.Interpreter.Backend = strings.ToLower(strings.TrimSpace(c.Interpreter.Backend))
	if c.Interpreter.Backend == "" {
		c.Interpreter.Backend = BackendJac
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func validateHTTPURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New("not set")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return nil
}
