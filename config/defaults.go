// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values filled into every loaded configuration.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("gallery", Section{
		"title":       "FLOGUO LABS",
		"handle":      "X: @floguo",
		"about":       "A collection of shader experiments",
		"fps":         30,
		"tile_rows":   8,
		"columns":     2,
		"show_source": true,
	})
	cfg.RegisterDefaults("theme", Section{
		"background":   "#000000",
		"foreground":   "#ffffff",
		"accent":       "#f9e2af",
		"muted":        "#737373",
		"border":       "#262626",
		"source_style": "catppuccin-mocha",
	})
	cfg.RegisterDefaults("modal", Section{
		"backdrop_dim": 0.6,
		"fade_ms":      180,
	})
}
