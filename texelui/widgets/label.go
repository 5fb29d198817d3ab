// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelgallery/texelui/core"
)

// Alignment of a label's text inside its rect.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Label is a single line of text, truncated with an ellipsis when it does not fit.
type Label struct {
	core.BaseWidget
	Text  string
	Style tcell.Style
	Align Alignment
}

func NewLabel(x, y, w int, text string, style tcell.Style) *Label {
	l := &Label{Text: text, Style: style}
	l.SetPosition(x, y)
	l.Resize(w, 1)
	return l
}

func (l *Label) Draw(p *core.Painter) {
	if l.Rect.W <= 0 || l.Rect.H <= 0 {
		return
	}
	text := runewidth.Truncate(l.Text, l.Rect.W, "…")
	x := l.Rect.X
	switch l.Align {
	case AlignCenter:
		x += (l.Rect.W - runewidth.StringWidth(text)) / 2
	case AlignRight:
		x += l.Rect.W - runewidth.StringWidth(text)
	}
	p.DrawText(x, l.Rect.Y, text, l.Style)
}
