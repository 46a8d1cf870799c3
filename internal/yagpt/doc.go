// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package yagpt provides the HTTP client for the YandexGPT completion API.
//
// The package is split into three concerns:
//
//   - request building: pure conversion of a prompt or a conversation
//     history plus generation options into the wire payload
//   - the client: one POST per exchange, with response classification
//     into typed errors
//   - wire models: the request/response JSON shapes
//
// # Response classification
//
//   - 2xx with at least one alternative: the first alternative's text
//   - 2xx with no alternatives: ErrEmptyResponse
//   - 401: ErrInvalidCredential, regardless of body
//   - any other status: *APIError carrying the code and raw body
//   - transport or JSON decode failure: wrapped and propagated as-is
//
// The client performs no retries and no caching; a request, once sent,
// runs to completion under the transport's default timeout.
package yagpt
