// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAITimeout = 120 * time.Second

	// generationTemperature keeps the prose varied while the JSON stays parseable.
	generationTemperature = 0.7

	systemPrompt = "You write illustrated magazines and answer with a single JSON object."
)

// OpenAI implements [Generator] with the chat completions API.
type OpenAI struct {
	model  string
	client openai.Client
}

// NewOpenAI creates a chat completions client.
//
// SDK retries are disabled: a failed generation degrades to the fallback
// layout instead of being repeated.
func NewOpenAI(settings Settings) (*OpenAI, error) {
	if strings.TrimSpace(settings.APIKey) == "" {
		return nil, errors.New("llm: openai api key missing")
	}
	if settings.Model == "" {
		settings.Model = defaultOpenAIModel
	}
	if settings.Timeout <= 0 {
		settings.Timeout = defaultOpenAITimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(settings.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(settings.Timeout),
	}
	if settings.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(settings.BaseURL))
	}

	return &OpenAI{
		model:  settings.Model,
		client: openai.NewClient(opts...),
	}, nil
}

// GenerateStructuredText sends one prompt and returns the raw answer text.
func (generator *OpenAI) GenerateStructuredText(context context.Context, prompt string) (string, error) {
	resp, err := generator.client.Chat.Completions.New(context, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(generator.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(generationTemperature),
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyChoices
	}

	return resp.Choices[0].Message.Content, nil
}

// mapOpenAIError keeps the status and message of API errors and drops the raw body.
func mapOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return fmt.Errorf("llm: openai error (status %d): %s", apiErr.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("llm: openai error (status %d)", apiErr.StatusCode)
	}
	return fmt.Errorf("llm: openai request: %w", err)
}
