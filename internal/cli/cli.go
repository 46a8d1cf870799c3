// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for ym.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdInit
	CmdAsk
	CmdChat
	CmdStatus
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Debug enables the Bubble Tea file log (--debug).
	Debug bool

	// Query is the joined free text after the command (ask).
	Query string

	// Raw args remaining after command extraction.
	Raw []string
}

const usageText = `ym %s - terminal chat client for YandexGPT

Usage:
  ym                    Start the chat TUI (default)
  ym init               First-run wizard: store catalog ID and API key
  ym ask "question"     One-shot question, answer to stdout
  ym chat               Plain interactive chat (line editing, history)
  ym status, s          Show configuration and masked credentials
  ym version            Show version information
  ym help               Show this help

Flags:
  --debug               Write TUI debug output to ym-debug.log

Credentials are kept in ~/.ym/access.json (created by "ym init") and can
be overridden with the YM_CATALOG_ID and YM_API_KEY environment
variables. Generation settings live in ~/.ym/config.toml.
`

// PrintUsage prints the usage text to stdout.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("ym version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses os.Args and returns the command and its arguments.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

func parseArgs(argv []string) (Command, Args) {
	var args Args

	// Global flags first, in any position.
	filtered := argv[:0:0]
	for _, arg := range argv {
		if arg == "--debug" {
			args.Debug = true
			continue
		}
		filtered = append(filtered, arg)
	}

	if len(filtered) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(filtered[0])
	remaining := filtered[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "init", "setup":
		return CmdInit, args

	case "ask":
		args.Query = strings.TrimSpace(strings.Join(remaining, " "))
		return CmdAsk, args

	case "chat":
		return CmdChat, args

	case "status", "s":
		return CmdStatus, args

	case "version", "--version", "-V":
		return CmdVersion, args

	case "help", "--help", "-h":
		return CmdHelp, args

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}
