// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelgallery configuration.

package config

import (
	"os"
	"path/filepath"
)

// Dir returns the directory holding texelgallery's config and log files.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelgallery"), nil
}

// Path returns the location of texelgallery.json.
func Path() (string, error) {
	return systemConfigPath()
}

func systemConfigPath() (string, error) {
	root, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}
