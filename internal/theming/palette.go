// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theming/palette.go
// Summary: Gallery colour palette resolved from the theme config section.
// Usage: FromConfig(config.System()) once at startup; widgets read tcell styles from it.

package theming

import (
	"log"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/texelgallery/config"
)

// Palette holds the resolved gallery colours.
type Palette struct {
	Background  colorful.Color
	Foreground  colorful.Color
	Accent      colorful.Color
	Muted       colorful.Color
	Border      colorful.Color
	SourceStyle string
}

// Default returns the built-in black and white palette.
func Default() Palette {
	return Palette{
		Background:  colorful.Color{R: 0, G: 0, B: 0},
		Foreground:  colorful.Color{R: 1, G: 1, B: 1},
		Accent:      mustHex("#f9e2af"),
		Muted:       mustHex("#737373"),
		Border:      mustHex("#262626"),
		SourceStyle: "catppuccin-mocha",
	}
}

// FromConfig reads the theme section. Invalid colours are logged and keep
// their default value.
func FromConfig(cfg config.Config) Palette {
	p := Default()
	p.Background = colorOr(cfg, "background", p.Background)
	p.Foreground = colorOr(cfg, "foreground", p.Foreground)
	p.Accent = colorOr(cfg, "accent", p.Accent)
	p.Muted = colorOr(cfg, "muted", p.Muted)
	p.Border = colorOr(cfg, "border", p.Border)
	p.SourceStyle = cfg.GetString("theme", "source_style", p.SourceStyle)
	return p
}

// Base is the page style.
func (p Palette) Base() tcell.Style {
	return tcell.StyleDefault.Background(Color(p.Background)).Foreground(Color(p.Foreground))
}

// MutedStyle is used for captions.
func (p Palette) MutedStyle() tcell.Style {
	return p.Base().Foreground(Color(p.Muted))
}

// AccentStyle is used for the hovered tile and focused controls.
func (p Palette) AccentStyle() tcell.Style {
	return p.Base().Foreground(Color(p.Accent))
}

// BorderStyle is used for tile and modal frames.
func (p Palette) BorderStyle() tcell.Style {
	return p.Base().Foreground(Color(p.Border))
}

// Color converts a colorful colour to a true-colour tcell colour.
func Color(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Dim blends c towards black by amount in [0,1].
func Dim(c colorful.Color, amount float64) colorful.Color {
	if amount <= 0 {
		return c
	}
	if amount > 1 {
		amount = 1
	}
	return c.BlendRgb(colorful.Color{}, amount)
}

func colorOr(cfg config.Config, key string, fallback colorful.Color) colorful.Color {
	raw := cfg.GetString("theme", key, "")
	if raw == "" {
		return fallback
	}
	c, err := colorful.Hex(raw)
	if err != nil {
		log.Printf("Theme: invalid colour %s=%q: %v", key, raw, err)
		return fallback
	}
	return c
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
