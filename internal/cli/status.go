// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Configuration summary command for ym.
package cli

import (
	"fmt"

	"github.com/jeranaias/ym-tui/internal/config"
)

// HandleStatus prints the effective configuration with masked
// credentials. It never prints the API key itself.
func HandleStatus(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	printField := func(label, value string) {
		fmt.Printf("%s %s\n", labelStyle.Render(label), valueStyle.Render(value))
	}

	fmt.Println(infoStyle.Render("ym " + Version))
	fmt.Println()

	if access, err := config.LoadAccess(); err != nil {
		fmt.Printf("%s %s\n",
			labelStyle.Render("Credentials:"),
			warnStyle.Render("not configured (run \"ym init\")"))
	} else {
		printField("Catalog ID: ", access.IDCatalog)
		printField("API key:    ", access.Masked())
	}

	printField("Model:      ", cfg.Model)
	printField("Temperature:", fmt.Sprintf("%g", cfg.Temperature))
	printField("Max tokens: ", fmt.Sprintf("%d", cfg.MaxTokens))
	printField("API URL:    ", cfg.APIURL)

	if path, err := config.ConfigPath(); err == nil {
		printField("Config file:", path)
	}
	if path, err := config.AccessPath(); err == nil {
		printField("Access file:", path)
	}
	return nil
}
