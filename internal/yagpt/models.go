// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package yagpt

// Message roles on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Well-known model names.
const (
	ModelLatest = "yandexgpt/latest"
	ModelPro    = "yandexgpt-pro"
)

// KnownModels lists the completion models this client is known to work
// with. Other names are accepted as-is; the API decides.
var KnownModels = []string{ModelLatest, ModelPro}

// =============================================================================
// REQUEST SHAPES
// =============================================================================

// CompletionOptions controls generation for a single request.
type CompletionOptions struct {
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int64   `json:"max_tokens"`
}

// ChatMessage is one role-tagged line of the request.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// CompletionRequest is the POST body sent to the completion endpoint.
type CompletionRequest struct {
	ModelURI          string            `json:"model_uri"`
	CompletionOptions CompletionOptions `json:"completion_options"`
	Messages          []ChatMessage     `json:"messages"`
}

// =============================================================================
// RESPONSE SHAPES
// =============================================================================

// completionResponse is the success envelope returned by the API.
type completionResponse struct {
	Result resultField `json:"result"`
}

type resultField struct {
	Alternatives []alternative `json:"alternatives"`
}

type alternative struct {
	Message responseMessage `json:"message"`
}

type responseMessage struct {
	Text string `json:"text"`
}
