// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envSearchDepth = 3

// LoadDotEnv loads the first .env found in the working directory or up to
// three parents. Variables already in the environment are kept. It
// returns the loaded path, or "" when there was none.
func LoadDotEnv() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", nil
	}
	for i := 0; i <= envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("failed to load %s: %w", envPath, err)
			}
			return envPath, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

// ApplyEnv overrides cfg with any non-empty CMDRELAY_* and OPENAI_*
// variables.
func ApplyEnv(cfg *Config) {
	cfg.InterpreterURL = getEnv("CMDRELAY_INTERPRETER_URL", cfg.InterpreterURL)
	cfg.DeviceBaseURL = getEnv("CMDRELAY_DEVICE_URL", cfg.DeviceBaseURL)
	cfg.DevicePath = getEnv("CMDRELAY_DEVICE_PATH", cfg.DevicePath)
	cfg.Interpreter.Backend = getEnv("CMDRELAY_BACKEND", cfg.Interpreter.Backend)
	cfg.TimeoutSec = getEnvAsInt("CMDRELAY_TIMEOUT_SEC", cfg.TimeoutSec)
	cfg.LogLevel = getEnv("CMDRELAY_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("CMDRELAY_LOG_FILE", cfg.LogFile)
	cfg.OpenAI.APIKey = getEnv("OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.BaseURL = getEnv("OPENAI_BASE_URL", cfg.OpenAI.BaseURL)
	cfg.OpenAI.Model = getEnv("OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.normalize()
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
