// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/border.go
// Summary: Frame around a rect with an optional title.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/texelui/core"
)

// Single and rounded box charsets: h, v, tl, tr, bl, br.
var (
	SingleLine = [6]rune{'─', '│', '┌', '┐', '└', '┘'}
	Rounded    = [6]rune{'─', '│', '╭', '╮', '╰', '╯'}
)

// Border draws a frame around its Rect.
type Border struct {
	core.BaseWidget
	Style      tcell.Style
	TitleStyle tcell.Style
	Title      string
	Charset    [6]rune
}

func NewBorder(x, y, w, h int, style tcell.Style) *Border {
	b := &Border{Style: style, TitleStyle: style, Charset: SingleLine}
	b.SetPosition(x, y)
	b.Resize(w, h)
	return b
}

func (b *Border) ClientRect() core.Rect {
	return b.Rect.Inset(1)
}

func (b *Border) Draw(p *core.Painter) {
	p.DrawBorder(b.Rect, b.Style, b.Charset)
	if b.Title != "" && b.Rect.W > 4 {
		p.DrawTextClamped(b.Rect.X+2, b.Rect.Y, b.Rect.W-4, " "+b.Title+" ", b.TitleStyle)
	}
}
