// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package llm provides the text generators behind magazine generation.

Two providers exist:

  - openai: the official OpenAI SDK (or any compatible endpoint via BASE_URL).
  - mock: a deterministic offline generator for local runs and tests.

Both satisfy magazine.TextGenerator through GenerateStructuredText.
*/
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// # Provider Names

const (
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// ErrEmptyChoices is returned when the model answered without any message.
var ErrEmptyChoices = errors.New("llm: empty choices")

// Generator is the contract shared by every provider.
type Generator interface {
	GenerateStructuredText(context context.Context, prompt string) (string, error)
}

// Settings configures a provider.
type Settings struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// New builds the generator named by settings.Provider.
func New(settings Settings) (Generator, error) {
	switch settings.Provider {
	case ProviderOpenAI:
		return NewOpenAI(settings)
	case ProviderMock:
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", settings.Provider)
	}
}
