// ym - a terminal chat client for YandexGPT.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ym-tui/internal/cli"
	"github.com/jeranaias/ym-tui/internal/config"
	"github.com/jeranaias/ym-tui/internal/ui/chat"
	"github.com/jeranaias/ym-tui/internal/yagpt"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args.Debug)
	case cli.CmdInit:
		err = cli.HandleInit(args)
	case cli.CmdAsk:
		err = withClient(func(client *yagpt.Client, _ *config.Config) error {
			return cli.HandleAsk(client, args)
		})
	case cli.CmdChat:
		err = withClient(func(client *yagpt.Client, cfg *config.Config) error {
			return cli.HandleChat(client, cfg, args)
		})
	case cli.CmdStatus:
		err = cli.HandleStatus(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withClient loads credentials and configuration, builds the completion
// client and runs fn. Missing credentials are fatal with guidance.
func withClient(fn func(*yagpt.Client, *config.Config) error) error {
	access, err := config.LoadAccess()
	if err != nil {
		return fmt.Errorf("access data is missing or damaged; run \"ym init\" to set it up")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client, err := yagpt.NewClient(yagpt.ClientConfig{
		APIURL: cfg.APIURL,
		Access: access,
		Options: yagpt.Options{
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		},
	})
	if err != nil {
		return err
	}

	return fn(client, cfg)
}

// runTUI starts the Bubble Tea chat screen on the alternate screen.
// With debug set, message traffic goes to ym-debug.log since the TUI
// owns the terminal and cannot log to it.
func runTUI(debug bool) error {
	return withClient(func(client *yagpt.Client, cfg *config.Config) error {
		if debug {
			f, err := tea.LogToFile("ym-debug.log", "debug")
			if err != nil {
				return fmt.Errorf("failed to open debug log: %w", err)
			}
			defer f.Close()
		}

		program := tea.NewProgram(chat.New(client, cfg), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("TUI terminated abnormally: %w", err)
		}
		return nil
	})
}
