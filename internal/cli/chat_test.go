// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/jeranaias/ym-tui/internal/session"
)

func TestSubmitLineBlankLeavesBufferClean(t *testing.T) {
	sess := session.New(session.DefaultGreeting, 20)

	if _, ok := submitLine(sess, "   "); ok {
		t.Fatal("blank line must not start an exchange")
	}
	if sess.Input() != "" {
		t.Fatalf("blank line left %q in the buffer", sess.Input())
	}

	history, ok := submitLine(sess, "hello")
	if !ok {
		t.Fatal("submit refused for a real line")
	}
	if got := history[len(history)-1]; got != "hello" {
		t.Fatalf("user turn = %q, want %q", got, "hello")
	}
}

func TestSubmitLineEmpty(t *testing.T) {
	sess := session.New(session.DefaultGreeting, 20)
	if _, ok := submitLine(sess, ""); ok {
		t.Fatal("empty line must not start an exchange")
	}
	if sess.State() != session.StateIdle {
		t.Fatalf("state = %v, want idle", sess.State())
	}
}
