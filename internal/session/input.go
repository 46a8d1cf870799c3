// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import "unicode"

// =============================================================================
// LINE EDITOR
// =============================================================================
//
// All operations keep the invariant 0 <= cursor <= len(buffer) and are
// ignored while the session is requesting or stopped.

// editable reports whether edit operations may run right now.
func (s *Session) editable() bool {
	return !s.requesting && !s.stopped
}

// InsertRune inserts r at the cursor and advances past it.
func (s *Session) InsertRune(r rune) {
	if !s.editable() {
		return
	}
	s.buffer = append(s.buffer, 0)
	copy(s.buffer[s.cursor+1:], s.buffer[s.cursor:])
	s.buffer[s.cursor] = r
	s.cursor++
}

// InsertString inserts each rune of text at the cursor (paste path).
func (s *Session) InsertString(text string) {
	for _, r := range text {
		s.InsertRune(r)
	}
}

// Backspace removes the rune before the cursor.
func (s *Session) Backspace() {
	if !s.editable() || s.cursor == 0 {
		return
	}
	s.buffer = append(s.buffer[:s.cursor-1], s.buffer[s.cursor:]...)
	s.cursor--
}

// Delete removes the rune at the cursor.
func (s *Session) Delete() {
	if !s.editable() || s.cursor >= len(s.buffer) {
		return
	}
	s.buffer = append(s.buffer[:s.cursor], s.buffer[s.cursor+1:]...)
}

// CursorLeft moves one rune left, clamped at the start.
func (s *Session) CursorLeft() {
	if !s.editable() {
		return
	}
	if s.cursor > 0 {
		s.cursor--
	}
}

// CursorRight moves one rune right, clamped at the end.
func (s *Session) CursorRight() {
	if !s.editable() {
		return
	}
	if s.cursor < len(s.buffer) {
		s.cursor++
	}
}

// CursorHome moves to the start of the buffer.
func (s *Session) CursorHome() {
	if !s.editable() {
		return
	}
	s.cursor = 0
}

// CursorEnd moves to the end of the buffer.
func (s *Session) CursorEnd() {
	if !s.editable() {
		return
	}
	s.cursor = len(s.buffer)
}

// WordLeft steps one rune left, then continues left across the adjacent
// alphanumeric run.
func (s *Session) WordLeft() {
	if !s.editable() {
		return
	}
	if s.cursor > 0 {
		s.cursor--
	}
	for s.cursor > 0 && isWordRune(s.buffer[s.cursor-1]) {
		s.cursor--
	}
}

// WordRight skips the alphanumeric run under the cursor, then one more
// rune, clamped to the buffer length.
func (s *Session) WordRight() {
	if !s.editable() {
		return
	}
	for s.cursor < len(s.buffer) && isWordRune(s.buffer[s.cursor]) {
		s.cursor++
	}
	if s.cursor < len(s.buffer) {
		s.cursor++
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
