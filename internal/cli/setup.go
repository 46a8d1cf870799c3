// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// setup.go - First-run wizard for ym.
//
// Command: init
// Aliases: setup
//
// The wizard collects the Yandex Cloud catalog ID (echoed) and the API
// key (hidden input), validates both, asks before overwriting an
// existing access file and saves the pair to ~/.ym/access.json.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jeranaias/ym-tui/internal/config"
	"github.com/jeranaias/ym-tui/internal/yagpt"
)

// =============================================================================
// INIT COMMAND HANDLER
// =============================================================================

// HandleInit runs the interactive credential wizard.
func HandleInit(args Args) error {
	if !IsTTY() {
		return fmt.Errorf("init requires an interactive terminal")
	}

	fmt.Println("Welcome! Let's set up your YandexGPT access.")
	fmt.Println("Details: https://yandex.cloud/en/docs/ai-studio/quickstart/yandexgpt")
	fmt.Println("Models:  https://yandex.cloud/en/docs/ai-studio/concepts/generation/models")
	fmt.Printf("Common model names: %s\n", strings.Join(yagpt.KnownModels, ", "))
	fmt.Println()

	if config.AccessFileExists() {
		path, _ := config.AccessPath()
		fmt.Println(warnStyle.Render("Access data already stored at " + path + "."))
		if !promptYesNo("Overwrite?", false) {
			fmt.Println("Nothing changed.")
			return nil
		}
	}

	catalogID := promptValidated("Catalog ID: ", config.ValidCatalogID)
	apiKey := promptSecureValidated("API key (hidden): ", config.ValidAPIKey)

	access := config.AccessData{IDCatalog: catalogID, APIKey: apiKey}
	if err := config.SaveAccess(access); err != nil {
		return fmt.Errorf("failed to save access data: %w", err)
	}

	path, _ := config.AccessPath()
	fmt.Println(successStyle.Render("Access data saved to " + path))
	fmt.Println("Run \"ym\" to start chatting.")
	return nil
}

// =============================================================================
// PROMPT HELPERS
// =============================================================================

// promptValidated asks until the echoed input passes the validator.
func promptValidated(prompt string, valid func(string) bool) string {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(prompt)
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println(errorStyle.Render("Could not read input, try again."))
			continue
		}
		input = strings.TrimSpace(input)
		if !valid(input) {
			fmt.Println(errorStyle.Render("That doesn't look right. Check the format and try again."))
			continue
		}
		return input
	}
}

// promptSecureValidated asks without echo until the input passes the
// validator.
func promptSecureValidated(prompt string, valid func(string) bool) string {
	for {
		fmt.Print(prompt)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println() // newline after hidden input
		if err != nil {
			fmt.Println(errorStyle.Render("Could not read input, try again."))
			continue
		}
		input := strings.TrimSpace(string(raw))
		if !valid(input) {
			fmt.Println(errorStyle.Render("That doesn't look right. Check the format and try again."))
			continue
		}
		return input
	}
}

// promptYesNo prompts for a yes/no answer.
func promptYesNo(prompt string, defaultYes bool) bool {
	suffix := "[Y/n]"
	if !defaultYes {
		suffix = "[y/N]"
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s %s: ", prompt, suffix)
	input, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}
