// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

// completionResultMsg delivers the outcome of an exchange started by
// submitCmd. Exactly one arrives per BeginSubmit.
type completionResultMsg struct {
	answer string
	err    error
}
