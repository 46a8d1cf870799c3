// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/jeranaias/ym-tui/internal/model"
	"github.com/jeranaias/ym-tui/internal/session"
	"github.com/jeranaias/ym-tui/internal/util"
)

const (
	title       = "YandexGPT Terminal Chat"
	minWidth    = 40
	cursorBlock = '█'
)

// View implements tea.Model. Layout follows the classic four-row chat
// screen: title, history box, input box, status bar.
func (m Model) View() string {
	width := m.width
	if width < minWidth {
		width = minWidth
	}
	inner := width - 4 // box borders and padding

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.renderHistory(inner))
	b.WriteString("\n")
	b.WriteString(m.renderInput(inner))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// =============================================================================
// HISTORY
// =============================================================================

// renderHistory shows the scroll window over the conversation, one line
// per message, long lines truncated to the box width.
func (m Model) renderHistory(inner int) string {
	conv := m.sess.Conversation()
	msgs := conv.Messages

	window := msgs[m.sess.Scroll():]

	lines := make([]string, 0, len(window))
	for _, msg := range window {
		lines = append(lines, m.renderMessage(msg, inner))
	}

	return m.theme.HistoryBox.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderMessage(msg *model.Message, inner int) string {
	prefix := msg.Role.DisplayName() + ": "

	switch msg.Role {
	case model.RoleUser:
		label := m.theme.UserLabel.Render(prefix)
		text := util.TruncateWidth(msg.Content, inner-util.StringWidth(prefix))
		return label + m.theme.MessageText.Render(text)
	case model.RoleAssistant:
		style := m.theme.MessageText
		if strings.HasPrefix(msg.Content, "Model error:") {
			style = m.theme.ErrorText
		}
		label := m.theme.AssistantLabel.Render(prefix)
		text := util.TruncateWidth(msg.Content, inner-util.StringWidth(prefix))
		return label + style.Render(text)
	default:
		return m.theme.SystemLabel.Render(util.TruncateWidth(msg.Content, inner))
	}
}

// =============================================================================
// INPUT
// =============================================================================

// renderInput draws the buffer with a block cursor at the cursor
// position, appended when the cursor sits past the last rune.
func (m Model) renderInput(inner int) string {
	content := renderInputWithCursor(m.sess.Input(), m.sess.Cursor())
	if m.sess.Input() == "" && m.sess.State() == session.StateIdle {
		content = m.theme.BlockCursor.Render(string(cursorBlock)) +
			m.theme.Placeholder.Render(" Type a message…")
	}
	return m.theme.InputBox.Width(inner + 2).Render(m.theme.InputText.Render(content))
}

func renderInputWithCursor(input string, cursor int) string {
	runes := []rune(input)

	var b strings.Builder
	for i, r := range runes {
		if i == cursor {
			b.WriteRune(cursorBlock)
		}
		b.WriteRune(r)
	}
	if cursor == len(runes) {
		b.WriteRune(cursorBlock)
	}
	return b.String()
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatusBar() string {
	status := fmt.Sprintf("Messages: %d | Input: %d | %s %s | %s %s",
		m.sess.Conversation().Len(),
		util.RuneLen(m.sess.Input()),
		m.theme.ShortcutKey.Render("Ctrl+R"),
		m.theme.ShortcutDesc.Render("clear"),
		m.theme.ShortcutKey.Render("Ctrl+C, Esc"),
		m.theme.ShortcutDesc.Render("quit"),
	)

	if m.sess.State() == session.StateRequesting {
		status = m.spinner.View() + " Waiting for YandexGPT… | " + status
	}
	return m.theme.StatusBar.Render(status)
}
