// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Bubble Tea chat screen.
//
// The screen is a thin driver over session.Session: key events become
// edit operations, Enter starts an exchange as a tea.Cmd, and the
// resulting completionResultMsg resolves it. While an exchange is
// outstanding every key event is discarded, which keeps at most one
// request in flight without any locking.
//
// Files follow the usual split: model.go (state and construction),
// update.go (message handling and commands), view.go (rendering),
// keys.go (bindings), messages.go (message types).
package chat
