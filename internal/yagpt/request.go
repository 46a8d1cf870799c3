// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package yagpt

import (
	"fmt"
)

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// Options are the per-client generation settings. They are fixed at
// construction time and never change mid-session.
type Options struct {
	// Model is the model name, e.g. "yandexgpt/latest".
	Model string
	// Temperature is the generation temperature, within [0, 1].
	Temperature float64
	// MaxTokens is the output size limit, must be positive.
	MaxTokens int64
}

// DefaultOptions returns the stock generation settings.
func DefaultOptions() Options {
	return Options{
		Model:       ModelLatest,
		Temperature: 0.7,
		MaxTokens:   2000,
	}
}

// Validate checks the options against the API constraints.
func (o Options) Validate() error {
	if o.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if o.Temperature < 0 || o.Temperature > 1 {
		return fmt.Errorf("temperature must be within [0, 1], got %g", o.Temperature)
	}
	if o.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", o.MaxTokens)
	}
	return nil
}

// =============================================================================
// REQUEST BUILDING
// =============================================================================

// ModelURI composes the scheme-qualified model identifier:
// gpt://{catalog-id}/{model-name}.
func ModelURI(catalogID, model string) string {
	return fmt.Sprintf("gpt://%s/%s", catalogID, model)
}

// BuildPromptRequest builds the payload for a single-prompt exchange:
// exactly one user-tagged message.
func BuildPromptRequest(modelURI string, opts Options, prompt string) CompletionRequest {
	return buildRequest(modelURI, opts, []ChatMessage{
		{Role: RoleUser, Text: prompt},
	})
}

// BuildChatRequest builds the payload for a multi-turn exchange.
//
// Roles are assigned by index parity: even positions become "assistant"
// and odd positions become "user", regardless of who actually produced
// the line. This mirrors the upstream behavior the rest of the system
// depends on; if the first history entry is a user line, positions are
// mislabeled. Do not change without revisiting the session greeting.
func BuildChatRequest(modelURI string, opts Options, history []string) CompletionRequest {
	roles := [2]string{RoleAssistant, RoleUser}

	messages := make([]ChatMessage, 0, len(history))
	for i, text := range history {
		messages = append(messages, ChatMessage{
			Role: roles[i%2],
			Text: text,
		})
	}
	return buildRequest(modelURI, opts, messages)
}

// buildRequest is the single assembly point for completion payloads.
func buildRequest(modelURI string, opts Options, messages []ChatMessage) CompletionRequest {
	return CompletionRequest{
		ModelURI: modelURI,
		CompletionOptions: CompletionOptions{
			Stream:      false,
			Temperature: opts.Temperature,
			MaxTokens:   opts.MaxTokens,
		},
		Messages: messages,
	}
}
