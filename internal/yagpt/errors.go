// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package yagpt

import (
	"errors"
	"fmt"
)

// Sentinel errors for easy checking with errors.Is.
var (
	// ErrInvalidCredential covers missing, malformed or expired
	// authorization data. Returned both before any network I/O (when
	// credentials are absent) and on HTTP 401.
	ErrInvalidCredential = errors.New("authorization data is missing or no longer valid")

	// ErrEmptyResponse is a well-formed success envelope that carries
	// zero completion alternatives.
	ErrEmptyResponse = errors.New("the API returned an empty completion")
)

// APIError is any non-success HTTP status other than 401. Description
// holds the raw response body, best effort.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed: %d, %s", e.Code, e.Description)
}

// IsInvalidCredential reports whether err is the credential sentinel.
func IsInvalidCredential(err error) bool {
	return errors.Is(err, ErrInvalidCredential)
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
