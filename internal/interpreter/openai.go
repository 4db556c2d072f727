// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interpreter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/shayne/cmdrelay/internal/command"
	"github.com/shayne/cmdrelay/internal/config"
)

const openAISystemPrompt = "You translate short natural-language instructions for a networked device " +
	"into a single JSON object the device can act on. " +
	"Use snake_case keys. Put the verb in \"action\" (for example \"on\", \"off\", \"toggle\", \"blink\"). " +
	"Express any delay in whole seconds as \"delay_sec\" and any duration as \"duration_sec\". " +
	"Answer with the JSON object only."

// OpenAI interprets text with an OpenAI-compatible chat completion.
type OpenAI struct {
	model  string
	client *openai.Client
}

func NewOpenAI(cfg config.OpenAIConfig, httpClient *http.Client) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); baseURL != "" {
		// go-openai expects the prefix to include /v1.
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL += "/v1"
		}
		clientCfg.BaseURL = baseURL
	}
	if httpClient != nil {
		clientCfg.HTTPClient = httpClient
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = config.DefaultOpenAIModel
	}
	return &OpenAI{model: model, client: openai.NewClientWithConfig(clientCfg)}
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Interpret(ctx context.Context, text string) (command.Info, error) {
	if err := command.ValidateText(text); err != nil {
		return nil, err
	}
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("interpreter request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoResult
	}
	content := stripCodeFence(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, ErrNoResult
	}
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("interpreter reply is not valid JSON: %q", content)
	}
	return command.NewInfo([]byte(content)), nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models add even
// in JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
