// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/indicators.go
// Summary: Scroll indicator glyphs (▲/▼) shown when content overflows.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/texelui/core"
)

// Default indicator glyphs.
const (
	DefaultUpGlyph   = '▲'
	DefaultDownGlyph = '▼'
)

// IndicatorConfig configures the appearance of scroll indicators.
type IndicatorConfig struct {
	Style tcell.Style
	// UpGlyph is shown when content is above the viewport.
	UpGlyph rune
	// DownGlyph is shown when content is below the viewport.
	DownGlyph rune
}

// DefaultIndicatorConfig returns a configuration with the standard glyphs.
func DefaultIndicatorConfig(style tcell.Style) IndicatorConfig {
	return IndicatorConfig{Style: style, UpGlyph: DefaultUpGlyph, DownGlyph: DefaultDownGlyph}
}

// DrawIndicators renders the indicators on the right edge of rect: the up
// glyph on its first row and the down glyph on its last.
func DrawIndicators(painter *core.Painter, rect core.Rect, state State, config IndicatorConfig) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	x := rect.X + rect.W - 1
	if state.CanScrollUp() {
		glyph := config.UpGlyph
		if glyph == 0 {
			glyph = DefaultUpGlyph
		}
		painter.SetCell(x, rect.Y, glyph, config.Style)
	}
	if state.CanScrollDown() {
		glyph := config.DownGlyph
		if glyph == 0 {
			glyph = DefaultDownGlyph
		}
		painter.SetCell(x, rect.Y+rect.H-1, glyph, config.Style)
	}
}
