// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/texelui/core"
)

// Pane fills its rect with a single style.
type Pane struct {
	core.BaseWidget
	Style tcell.Style
}

func NewPane(x, y, w, h int, style tcell.Style) *Pane {
	p := &Pane{Style: style}
	p.SetPosition(x, y)
	p.Resize(w, h)
	return p
}

func (p *Pane) Draw(painter *core.Painter) {
	painter.Fill(p.Rect, ' ', p.Style)
}
