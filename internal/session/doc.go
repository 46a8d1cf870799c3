// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the chat session state machine: the conversation
// history, the line editor (buffer plus cursor) and the scroll position.
//
// The package is pure state; it performs no I/O and knows nothing about
// terminals or HTTP. A driving loop (the Bubble Tea program or the plain
// REPL) feeds it edit operations, asks it for the history to send when
// the user submits, and hands back the outcome. While a submission is
// outstanding the driver must not deliver further events; Session enforces
// the same rule internally by ignoring them.
package session
