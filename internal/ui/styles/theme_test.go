// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewThemeInitializesStyles(t *testing.T) {
	theme := NewTheme()

	if !theme.Title.GetBold() {
		t.Error("Title should be bold")
	}
	if !theme.UserLabel.GetBold() || !theme.AssistantLabel.GetBold() {
		t.Error("speaker labels should be bold")
	}
	if theme.InputBox.GetBorderStyle() != theme.HistoryBox.GetBorderStyle() {
		t.Error("input and history boxes should share a border style")
	}
}

func TestAdaptiveColorsHaveBothVariants(t *testing.T) {
	colors := map[string]struct{ light, dark string }{
		"Cyan":        {Cyan.Light, Cyan.Dark},
		"Purple":      {Purple.Light, Purple.Dark},
		"Rose":        {Rose.Light, Rose.Dark},
		"TextPrimary": {TextPrimary.Light, TextPrimary.Dark},
		"TextMuted":   {TextMuted.Light, TextMuted.Dark},
		"Overlay":     {Overlay.Light, Overlay.Dark},
	}
	for name, c := range colors {
		if c.light == "" || c.dark == "" {
			t.Errorf("%s is missing a light or dark variant", name)
		}
	}
}
