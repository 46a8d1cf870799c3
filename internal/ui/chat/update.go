// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ym-tui/internal/session"
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key events are discarded wholesale while
// an exchange is outstanding.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.sess.State() != session.StateRequesting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case completionResultMsg:
		m.sess.Resolve(msg.answer, msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.sess.State() == session.StateRequesting {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.sess.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Clear):
		m.sess.ClearHistory()

	case key.Matches(msg, m.keyMap.Submit):
		history, ok := m.sess.BeginSubmit()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(m.submitCmd(history), m.spinner.Tick)

	case key.Matches(msg, m.keyMap.WordLeft):
		m.sess.WordLeft()
	case key.Matches(msg, m.keyMap.WordRight):
		m.sess.WordRight()
	case key.Matches(msg, m.keyMap.Left):
		m.sess.CursorLeft()
	case key.Matches(msg, m.keyMap.Right):
		m.sess.CursorRight()
	case key.Matches(msg, m.keyMap.Home):
		m.sess.CursorHome()
	case key.Matches(msg, m.keyMap.End):
		m.sess.CursorEnd()
	case key.Matches(msg, m.keyMap.Backspace):
		m.sess.Backspace()
	case key.Matches(msg, m.keyMap.Delete):
		m.sess.Delete()

	default:
		switch msg.Type {
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.sess.InsertRune(r)
			}
		case tea.KeySpace:
			m.sess.InsertRune(' ')
		case tea.KeyTab:
			m.sess.InsertRune('\t')
		}
	}

	return m, nil
}

// submitCmd runs one exchange off the update loop. The session stays in
// Requesting until the resulting message is processed.
func (m Model) submitCmd(history []string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.completer.Chat(context.Background(), history)
		return completionResultMsg{answer: answer, err: err}
	}
}
