// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package yagpt

import (
	"encoding/json"
	"testing"
)

func TestModelURI(t *testing.T) {
	got := ModelURI("b1gcatalog", ModelLatest)
	want := "gpt://b1gcatalog/yandexgpt/latest"
	if got != want {
		t.Errorf("ModelURI() = %q, want %q", got, want)
	}
}

func TestBuildPromptRequest(t *testing.T) {
	opts := Options{Model: ModelLatest, Temperature: 0.3, MaxTokens: 500}
	req := BuildPromptRequest("gpt://cat/yandexgpt/latest", opts, "hello")

	if req.ModelURI != "gpt://cat/yandexgpt/latest" {
		t.Errorf("ModelURI = %q", req.ModelURI)
	}
	if req.CompletionOptions.Stream {
		t.Error("Stream should be false")
	}
	if req.CompletionOptions.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", req.CompletionOptions.Temperature)
	}
	if req.CompletionOptions.MaxTokens != 500 {
		t.Errorf("MaxTokens = %v, want 500", req.CompletionOptions.MaxTokens)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(req.Messages))
	}
	if req.Messages[0].Role != RoleUser || req.Messages[0].Text != "hello" {
		t.Errorf("message = %+v", req.Messages[0])
	}
}

func TestBuildChatRequestRoleParity(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		roles   []string
	}{
		{
			name:    "greeting then one exchange",
			history: []string{"a", "b", "c"},
			roles:   []string{RoleAssistant, RoleUser, RoleAssistant},
		},
		{
			name:    "single entry",
			history: []string{"greeting"},
			roles:   []string{RoleAssistant},
		},
		{
			name:    "even length",
			history: []string{"g", "q1", "a1", "q2"},
			roles:   []string{RoleAssistant, RoleUser, RoleAssistant, RoleUser},
		},
		{
			name:    "empty history",
			history: nil,
			roles:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := BuildChatRequest("gpt://cat/m", DefaultOptions(), tt.history)
			if len(req.Messages) != len(tt.history) {
				t.Fatalf("got %d messages, want %d", len(req.Messages), len(tt.history))
			}
			for i, msg := range req.Messages {
				if msg.Role != tt.roles[i] {
					t.Errorf("message %d role = %q, want %q", i, msg.Role, tt.roles[i])
				}
				if msg.Text != tt.history[i] {
					t.Errorf("message %d text = %q, want %q", i, msg.Text, tt.history[i])
				}
			}
		})
	}
}

func TestCompletionRequestWireFormat(t *testing.T) {
	opts := Options{Model: ModelLatest, Temperature: 0.7, MaxTokens: 2000}
	req := BuildChatRequest("gpt://cat/yandexgpt/latest", opts, []string{"hi"})

	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"model_uri", "completion_options", "messages"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("payload missing key %q", key)
		}
	}

	co, ok := decoded["completion_options"].(map[string]any)
	if !ok {
		t.Fatal("completion_options is not an object")
	}
	for _, key := range []string{"stream", "temperature", "max_tokens"} {
		if _, ok := co[key]; !ok {
			t.Errorf("completion_options missing key %q", key)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", DefaultOptions(), false},
		{"zero temperature", Options{Model: ModelLatest, Temperature: 0, MaxTokens: 1}, false},
		{"max temperature", Options{Model: ModelLatest, Temperature: 1, MaxTokens: 1}, false},
		{"negative temperature", Options{Model: ModelLatest, Temperature: -0.1, MaxTokens: 1}, true},
		{"temperature above one", Options{Model: ModelLatest, Temperature: 1.1, MaxTokens: 1}, true},
		{"zero tokens", Options{Model: ModelLatest, Temperature: 0.5, MaxTokens: 0}, true},
		{"empty model", Options{Temperature: 0.5, MaxTokens: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
