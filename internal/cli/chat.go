// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Plain interactive chat for ym.
//
// Command: chat
//
// A line-oriented alternative to the TUI for terminals where the
// alt-screen program is unwelcome (ssh, screen readers, logs). Input
// history and editing come from liner; requests carry the same full
// conversation history as the TUI.
//
// Slash commands:
//   /clear    reset the conversation to the greeting
//   /status   show message count and model
//   /help     list slash commands
//   /quit     leave the chat
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/ym-tui/internal/config"
	"github.com/jeranaias/ym-tui/internal/session"
	"github.com/jeranaias/ym-tui/internal/yagpt"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// chatInput wraps liner with persistent input history.
type chatInput struct {
	line        *liner.State
	historyFile string
}

func newChatInput() *chatInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	c := &chatInput{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	c.loadHistory()
	return c
}

func (c *chatInput) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// readInput reads one line, recording non-blank entries in the history.
func (c *chatInput) readInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

func (c *chatInput) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

func (c *chatInput) close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT COMMAND HANDLER
// =============================================================================

// HandleChat runs the plain REPL until /quit, Ctrl+C or EOF.
func HandleChat(client *yagpt.Client, cfg *config.Config, args Args) error {
	if !IsTTY() {
		return fmt.Errorf("chat requires an interactive terminal")
	}

	input := newChatInput()
	defer input.close()

	sess := session.New(session.DefaultGreeting, cfg.UI.VisibleLines)

	fmt.Println(infoStyle.Render(session.DefaultGreeting))
	fmt.Println(infoStyle.Render("Type /help for commands, /quit to leave."))
	fmt.Println()

	for sess.State() != session.StateStopped {
		line, err := input.readInput(promptStyle.Render("you> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println()
				break
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.HasPrefix(strings.TrimSpace(line), "/") {
			if quit := handleSlashCommand(strings.TrimSpace(line), sess, client); quit {
				sess.Stop()
			}
			continue
		}

		history, ok := submitLine(sess, line)
		if !ok {
			continue
		}

		answer, err := client.Chat(context.Background(), history)
		sess.Resolve(answer, err)

		last := sess.Conversation().Last()
		if err != nil {
			fmt.Println(errorStyle.Render(last.Content))
		} else if !last.IsEmpty() {
			displayResponse(last.Content)
		}
		fmt.Println()
	}

	return nil
}

// submitLine stages one REPL line and begins the exchange. Blank lines
// never reach the buffer, so a refused submit cannot leave stale runes
// that would prefix the next message.
func submitLine(sess *session.Session, line string) ([]string, bool) {
	if strings.TrimSpace(line) == "" {
		return nil, false
	}
	sess.InsertString(line)
	return sess.BeginSubmit()
}

// handleSlashCommand executes one slash command and reports whether the
// REPL should exit.
func handleSlashCommand(cmd string, sess *session.Session, client *yagpt.Client) bool {
	switch strings.ToLower(cmd) {
	case "/quit", "/exit", "/q":
		return true

	case "/clear":
		sess.ClearHistory()
		fmt.Println(successStyle.Render("History cleared."))

	case "/status":
		fmt.Printf("%s %s\n",
			labelStyle.Render("Messages:"),
			valueStyle.Render(fmt.Sprintf("%d", sess.Conversation().Len())))
		fmt.Printf("%s %s\n",
			labelStyle.Render("Model:"),
			valueStyle.Render(client.Model()))
		if last := sess.Conversation().Last(); last != nil && !last.IsEmpty() {
			fmt.Printf("%s %s\n",
				labelStyle.Render("Last:"),
				valueStyle.Render(last.Preview(48)))
		}

	case "/help":
		fmt.Println("Commands: /clear, /status, /help, /quit")

	default:
		fmt.Println(errorStyle.Render("Unknown command. Try /help."))
	}
	return false
}
