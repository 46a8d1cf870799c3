// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for ym.
//
// Two files live under the ym configuration directory (~/.ym):
//
//   - config.toml: generation options and UI settings (TOML, optional;
//     built-in defaults apply when absent)
//   - access.json: YandexGPT credentials (catalog ID + API key)
//
// Generation options are validated at load time: temperature must be
// within [0, 1] and the token limit must be positive. Invalid values are
// rejected with explicit errors rather than clamped or panicked on, so
// callers decide policy.
//
// Environment overrides: YM_CATALOG_ID and YM_API_KEY take precedence
// over the access file when set.
package config
