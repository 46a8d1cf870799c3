// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command for ym.
//
// Command: ask
//
// Examples:
//   ym ask "What is a goroutine?"
//   ym ask what is a goroutine        (words are joined)
//   ym ask "..." > answer.md          (plain text when piped)
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/ym-tui/internal/yagpt"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the glamour renderer for answer output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		// Fall back to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse prints an answer, rendered as markdown only when
// stdout is a terminal so piped output stays clean.
func displayResponse(response string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(response))
	} else {
		fmt.Println(response)
	}
}

// =============================================================================
// ASK COMMAND HANDLER
// =============================================================================

// HandleAsk sends one single-prompt completion and prints the answer.
func HandleAsk(client *yagpt.Client, args Args) error {
	if args.Query == "" {
		return fmt.Errorf("nothing to ask; usage: ym ask \"question\"")
	}

	answer, err := client.Ask(context.Background(), args.Query)
	if err != nil {
		return describeExchangeError(err)
	}

	displayResponse(answer)
	return nil
}

// describeExchangeError rewraps client errors with actionable wording
// for the command line.
func describeExchangeError(err error) error {
	switch {
	case yagpt.IsInvalidCredential(err):
		return fmt.Errorf("credentials were rejected; run \"ym init\" to update them")
	default:
		return err
	}
}
