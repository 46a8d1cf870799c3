// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements argument parsing and the non-TUI command
// handlers: the first-run wizard, one-shot ask, the plain REPL chat,
// status and version. The default command (no arguments) is the TUI,
// which main starts directly.
package cli
