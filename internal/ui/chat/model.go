// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/jeranaias/ym-tui/internal/config"
	"github.com/jeranaias/ym-tui/internal/session"
	"github.com/jeranaias/ym-tui/internal/ui/styles"
)

// Completer produces an answer for a conversation history. Satisfied by
// *yagpt.Client; tests substitute a stub.
type Completer interface {
	Chat(ctx context.Context, history []string) (string, error)
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	// State
	sess      *session.Session
	completer Completer

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// UI components
	spinner spinner.Model
	keyMap  KeyMap
}

// New creates the chat screen over a fresh session.
func New(completer Completer, cfg *config.Config) Model {
	theme := styles.NewTheme()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		sess:      session.New(session.DefaultGreeting, cfg.UI.VisibleLines),
		completer: completer,
		theme:     theme,
		spinner:   sp,
		keyMap:    DefaultKeyMap(),
	}
}

// Session exposes the underlying session state.
func (m Model) Session() *session.Session {
	return m.sess
}
