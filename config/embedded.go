// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Parses and caches the embedded default configuration.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/texelgallery/defaults"
)

var (
	embeddedOnce sync.Once
	embedded     Config
	embeddedErr  error
)

// embeddedDefaults returns the parsed defaults from defaults/texelgallery.json.
func embeddedDefaults() (Config, error) {
	embeddedOnce.Do(func() {
		var cfg Config
		if err := json.Unmarshal(defaults.SystemConfig(), &cfg); err != nil {
			embeddedErr = err
			return
		}
		embedded = cfg
	})
	return embedded, embeddedErr
}

// defaultSystemConfig returns a copy of the embedded defaults, or nil when
// they cannot be parsed.
func defaultSystemConfig() Config {
	cfg, err := embeddedDefaults()
	if err != nil || cfg == nil {
		return nil
	}
	return Clone(cfg)
}
