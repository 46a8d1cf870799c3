// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"fmt"
	"strings"

	"github.com/jeranaias/ym-tui/internal/model"
)

// DefaultGreeting is the line every fresh conversation opens with.
const DefaultGreeting = "YandexGPT is ready to chat."

// =============================================================================
// STATES
// =============================================================================

// State is the session's position in the interaction cycle.
type State int

const (
	// StateIdle means the buffer is empty and no request is outstanding.
	StateIdle State = iota

	// StateComposing means the buffer holds at least one rune.
	StateComposing

	// StateRequesting means a submission is outstanding. Edit operations
	// and further submissions are ignored until Resolve is called.
	StateRequesting

	// StateStopped is terminal. Everything is ignored.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComposing:
		return "composing"
	case StateRequesting:
		return "requesting"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// =============================================================================
// SESSION
// =============================================================================

// Session is the single owned state of one chat: the conversation, the
// line editor and the scroll position. It is not safe for concurrent use;
// the driving loop serializes access by construction.
type Session struct {
	conv       *model.Conversation
	buffer     []rune
	cursor     int
	scroll     int
	visible    int
	requesting bool
	stopped    bool
}

// New creates a session seeded with the greeting line. visibleLines is
// the history viewport height used for scroll tracking.
func New(greeting string, visibleLines int) *Session {
	if visibleLines < 1 {
		visibleLines = 1
	}
	return &Session{
		conv:    model.NewConversation(greeting),
		visible: visibleLines,
	}
}

// State derives the current state. Requesting and Stopped are sticky
// flags; Idle versus Composing follows from the buffer.
func (s *Session) State() State {
	switch {
	case s.stopped:
		return StateStopped
	case s.requesting:
		return StateRequesting
	case len(s.buffer) > 0:
		return StateComposing
	default:
		return StateIdle
	}
}

// Conversation exposes the history for rendering.
func (s *Session) Conversation() *model.Conversation {
	return s.conv
}

// Input returns the buffer contents.
func (s *Session) Input() string {
	return string(s.buffer)
}

// Cursor returns the cursor position, always within [0, buffer length].
func (s *Session) Cursor() int {
	return s.cursor
}

// Scroll returns the history scroll offset.
func (s *Session) Scroll() int {
	return s.scroll
}

// SetVisibleLines updates the viewport height (terminal resize) and
// re-anchors the scroll position.
func (s *Session) SetVisibleLines(n int) {
	if n < 1 {
		n = 1
	}
	s.visible = n
	s.updateScroll()
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// BeginSubmit starts an exchange. When the buffer trims to nothing it is
// a no-op and ok is false. Otherwise the untrimmed buffer is appended as
// a user turn, the session enters Requesting, and the full history to
// send is returned. The caller must follow up with exactly one Resolve.
func (s *Session) BeginSubmit() (history []string, ok bool) {
	if s.requesting || s.stopped {
		return nil, false
	}
	if strings.TrimSpace(string(s.buffer)) == "" {
		return nil, false
	}

	s.conv.AddUser(string(s.buffer))
	s.updateScroll()
	s.requesting = true
	return s.conv.Texts(), true
}

// Resolve completes the exchange started by BeginSubmit. The answer (or
// a readable description of the failure) is appended as an assistant
// turn, the buffer is cleared and the session returns to Idle. A failed
// exchange never stops the session.
func (s *Session) Resolve(answer string, err error) {
	if !s.requesting || s.stopped {
		return
	}

	if err != nil {
		s.conv.AddAssistant(fmt.Sprintf("Model error: %v", err))
	} else {
		s.conv.AddAssistant(answer)
	}

	s.buffer = s.buffer[:0]
	s.cursor = 0
	s.updateScroll()
	s.requesting = false
}

// ClearHistory resets the history to the greeting line and the scroll to
// the top. Buffer and cursor are untouched.
func (s *Session) ClearHistory() {
	if s.requesting || s.stopped {
		return
	}
	s.conv.Reset()
	s.scroll = 0
}

// Stop moves the session to its terminal state.
func (s *Session) Stop() {
	s.stopped = true
}

// updateScroll anchors the viewport to the most recent history lines.
// Called only after history mutations, never directly by the user.
func (s *Session) updateScroll() {
	if n := s.conv.Len(); n > s.visible {
		s.scroll = n - s.visible
	} else {
		s.scroll = 0
	}
}
