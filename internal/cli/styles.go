// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared lipgloss styles for CLI output.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/ym-tui/internal/ui/styles"
)

var (
	// Error messages
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	// Informational lines
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)

	// Success confirmations
	successStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// Warnings and missing-setup notes
	warnStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Field labels in status output
	labelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Field values in status output
	valueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	// Speaker prefix in plain chat
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)
)
