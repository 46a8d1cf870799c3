// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/ym-tui/internal/util"
)

// AccessFileName is the name of the credential file inside the config dir.
const AccessFileName = "access.json"

// maskedVisibleChars is how many leading characters stay readable when
// credentials are shown on screen.
const maskedVisibleChars = 5

// =============================================================================
// ACCESS DATA
// =============================================================================

// AccessData holds the YandexGPT authorization pair: the cloud catalog
// identifier and the API key.
type AccessData struct {
	IDCatalog string `json:"id_catalog"`
	APIKey    string `json:"api_key"`
}

// Valid reports whether both credential fields are usable.
func (a AccessData) Valid() bool {
	return strings.TrimSpace(a.IDCatalog) != "" && strings.TrimSpace(a.APIKey) != ""
}

// Masked returns a display-safe rendering of the credentials.
func (a AccessData) Masked() string {
	return fmt.Sprintf("id-catalog: %s, api-key: %s",
		util.MaskSecret(a.IDCatalog, maskedVisibleChars),
		util.MaskSecret(a.APIKey, maskedVisibleChars))
}

// String implements fmt.Stringer without leaking secrets.
func (a AccessData) String() string {
	return "AccessData | " + a.Masked()
}

// ValidCatalogID reports whether the given catalog identifier is acceptable.
func ValidCatalogID(input string) bool {
	return strings.TrimSpace(input) != ""
}

// ValidAPIKey reports whether the given API key is acceptable.
func ValidAPIKey(input string) bool {
	return strings.TrimSpace(input) != ""
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// AccessPath returns the full path of the credential file.
func AccessPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AccessFileName), nil
}

// AccessFileExists reports whether the credential file is present.
func AccessFileExists() bool {
	path, err := AccessPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// LoadAccess reads credentials from the default location and applies
// environment overrides. A missing or unparsable file is an error; the
// CLI treats it as fatal at startup.
func LoadAccess() (AccessData, error) {
	path, err := AccessPath()
	if err != nil {
		return AccessData{}, err
	}
	access, err := LoadAccessFromPath(path)
	if err != nil {
		return AccessData{}, err
	}
	access.applyEnvOverrides()
	return access, nil
}

// LoadAccessFromPath reads credentials from an explicit path.
func LoadAccessFromPath(path string) (AccessData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AccessData{}, fmt.Errorf("access file %s is missing or unreadable: %w", path, err)
	}

	var access AccessData
	if err := json.Unmarshal(data, &access); err != nil {
		return AccessData{}, fmt.Errorf("access file %s is not valid JSON: %w", path, err)
	}
	return access, nil
}

// SaveAccess writes credentials to the default location with owner-only
// permissions.
func SaveAccess(access AccessData) error {
	path, err := AccessPath()
	if err != nil {
		return err
	}
	return SaveAccessToPath(access, path)
}

// SaveAccessToPath writes credentials to an explicit path.
func SaveAccessToPath(access AccessData, path string) error {
	data, err := json.Marshal(access)
	if err != nil {
		return fmt.Errorf("failed to encode access data: %w", err)
	}
	return util.AtomicWriteFile(path, data, 0600)
}

// applyEnvOverrides lets the environment take precedence over the file.
func (a *AccessData) applyEnvOverrides() {
	if v := os.Getenv("YM_CATALOG_ID"); v != "" {
		a.IDCatalog = v
	}
	if v := os.Getenv("YM_API_KEY"); v != "" {
		a.APIKey = v
	}
}
