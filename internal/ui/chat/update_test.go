// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ym-tui/internal/config"
	"github.com/jeranaias/ym-tui/internal/session"
)

// stubCompleter records the history it was handed and returns a canned
// outcome.
type stubCompleter struct {
	history []string
	answer  string
	err     error
}

func (s *stubCompleter) Chat(_ context.Context, history []string) (string, error) {
	s.history = history
	return s.answer, s.err
}

func newTestModel(completer Completer) Model {
	return New(completer, config.Default())
}

func keyRunes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	chatModel, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want chat.Model", next)
	}
	return chatModel, cmd
}

func TestTypingFillsBuffer(t *testing.T) {
	m := newTestModel(&stubCompleter{})

	m, _ = update(t, m, keyRunes("hi"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, keyRunes("there"))

	if got := m.Session().Input(); got != "hi there" {
		t.Errorf("Input() = %q, want %q", got, "hi there")
	}
}

func TestEnterStartsExchange(t *testing.T) {
	stub := &stubCompleter{answer: "hello!"}
	m := newTestModel(stub)

	m, _ = update(t, m, keyRunes("hello"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("Enter on a non-empty buffer should produce a command")
	}
	if got := m.Session().State(); got != session.StateRequesting {
		t.Errorf("State() = %v, want requesting", got)
	}

	m, _ = update(t, m, completionResultMsg{answer: "hello!"})

	if got := m.Session().State(); got != session.StateIdle {
		t.Errorf("State() = %v, want idle", got)
	}
	if got := m.Session().Conversation().Len(); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
	if got := m.Session().Conversation().Last().Content; got != "hello!" {
		t.Errorf("last entry = %q", got)
	}
}

func TestEnterOnEmptyBufferIsNoOp(t *testing.T) {
	m := newTestModel(&stubCompleter{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("Enter on an empty buffer should produce no command")
	}
	if got := m.Session().Conversation().Len(); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
}

func TestKeysDiscardedWhileRequesting(t *testing.T) {
	m := newTestModel(&stubCompleter{})

	m, _ = update(t, m, keyRunes("q"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, keyRunes("x"))
	if cmd != nil {
		t.Error("keys while requesting should produce no command")
	}
	if got := m.Session().Input(); got != "q" {
		t.Errorf("buffer mutated while requesting: %q", got)
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("resubmit while requesting should produce no command")
	}
}

func TestErrorOutcomeBecomesAssistantLine(t *testing.T) {
	m := newTestModel(&stubCompleter{})

	m, _ = update(t, m, keyRunes("q"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, completionResultMsg{err: errors.New("timeout")})

	last := m.Session().Conversation().Last()
	if last.Content != "Model error: timeout" {
		t.Errorf("error line = %q", last.Content)
	}
	if got := m.Session().State(); got != session.StateIdle {
		t.Errorf("State() = %v, want idle", got)
	}
}

func TestCtrlRClearsHistory(t *testing.T) {
	m := newTestModel(&stubCompleter{answer: "a"})

	m, _ = update(t, m, keyRunes("q"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, completionResultMsg{answer: "a"})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	if got := m.Session().Conversation().Len(); got != 1 {
		t.Errorf("history length after clear = %d, want 1", got)
	}
	if got := m.Session().Conversation().Last().Content; got != session.DefaultGreeting {
		t.Errorf("remaining entry = %q", got)
	}
}

func TestQuitKeysStopTheSession(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(&stubCompleter{})
		m, cmd := update(t, m, msg)

		if got := m.Session().State(); got != session.StateStopped {
			t.Errorf("%s: State() = %v, want stopped", msg, got)
		}
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command produced %T, want tea.QuitMsg", msg, cmd())
		}
	}
}

func TestEditingKeys(t *testing.T) {
	m := newTestModel(&stubCompleter{})
	m, _ = update(t, m, keyRunes("hello world"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
	if got := m.Session().Cursor(); got != 6 {
		t.Errorf("after word-left: cursor = %d, want 6", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyHome})
	if got := m.Session().Cursor(); got != 0 {
		t.Errorf("after home: cursor = %d, want 0", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlRight})
	if got := m.Session().Cursor(); got != 6 {
		t.Errorf("after word-right: cursor = %d, want 6", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.Session().Input(); got != "hello orld" {
		t.Errorf("after delete: input = %q", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Session().Input(); got != "helloorld" {
		t.Errorf("after backspace: input = %q", got)
	}
}

func TestSubmitCmdDeliversHistoryToCompleter(t *testing.T) {
	stub := &stubCompleter{answer: "ok"}
	m := newTestModel(stub)

	m, _ = update(t, m, keyRunes("question"))
	history, ok := m.Session().BeginSubmit()
	if !ok {
		t.Fatal("BeginSubmit refused")
	}

	msg := m.submitCmd(history)()
	result, isResult := msg.(completionResultMsg)
	if !isResult {
		t.Fatalf("submitCmd produced %T", msg)
	}
	if result.answer != "ok" || result.err != nil {
		t.Errorf("result = %+v", result)
	}
	if len(stub.history) != 2 || stub.history[1] != "question" {
		t.Errorf("completer saw history %q", stub.history)
	}
}
