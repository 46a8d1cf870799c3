// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package yagpt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jeranaias/ym-tui/internal/config"
)

// userAgent is the fixed client identifier sent with every request.
const userAgent = "YM001"

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds construction-time settings for the client.
type ClientConfig struct {
	// APIURL is the completion endpoint (default: config.DefaultAPIURL).
	APIURL string

	// Access is the authorization pair. Complete fails fast with
	// ErrInvalidCredential when it is not valid.
	Access config.AccessData

	// Options are the generation settings, immutable for the client's
	// lifetime.
	Options Options
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles the exchange with the YandexGPT completion API.
//
// Example:
//
//	client, err := yagpt.NewClient(yagpt.ClientConfig{Access: access})
//	if err != nil {
//	    return err
//	}
//	answer, err := client.Ask(ctx, "What will today bring?")
type Client struct {
	apiURL     string
	access     config.AccessData
	opts       Options
	httpClient *http.Client
}

// NewClient creates a client, validating the generation options up front
// so a misconfigured temperature or token limit never reaches the API.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIURL == "" {
		cfg.APIURL = config.DefaultAPIURL
	}
	if cfg.Options == (Options{}) {
		cfg.Options = DefaultOptions()
	}
	if err := cfg.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation options: %w", err)
	}

	return &Client{
		apiURL:     cfg.APIURL,
		access:     cfg.Access,
		opts:       cfg.Options,
		httpClient: &http.Client{},
	}, nil
}

// Model returns the model name the client generates with.
func (c *Client) Model() string {
	return c.opts.Model
}

// ModelURI returns the scheme-qualified model identifier for this client.
func (c *Client) ModelURI() string {
	return ModelURI(c.access.IDCatalog, c.opts.Model)
}

// =============================================================================
// EXCHANGES
// =============================================================================

// Ask sends a single-prompt completion request and returns the answer text.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	if !c.access.Valid() {
		return "", ErrInvalidCredential
	}
	return c.complete(ctx, BuildPromptRequest(c.ModelURI(), c.opts, prompt))
}

// Chat sends the full conversation history and returns the answer text.
// History entries are role-tagged positionally; see BuildChatRequest.
func (c *Client) Chat(ctx context.Context, history []string) (string, error) {
	if !c.access.Valid() {
		return "", ErrInvalidCredential
	}
	return c.complete(ctx, BuildChatRequest(c.ModelURI(), c.opts, history))
}

// complete performs one POST and classifies the outcome.
func (c *Client) complete(ctx context.Context, reqBody CompletionRequest) (string, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Api-Key "+c.access.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures propagate unclassified.
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrInvalidCredential
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return "", &APIError{Code: resp.StatusCode, Description: string(text)}
	}

	return extractAnswer(resp.Body)
}

// extractAnswer decodes the success envelope and returns the first
// alternative's text.
func extractAnswer(body io.Reader) (string, error) {
	var parsed completionResponse
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(parsed.Result.Alternatives) == 0 {
		return "", ErrEmptyResponse
	}
	return parsed.Result.Alternatives[0].Message.Text, nil
}
