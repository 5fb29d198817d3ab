// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/painter.go
// Summary: Clipped drawing helpers over a cell buffer.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelgallery/texel"
)

// Painter writes into a cell buffer, discarding anything outside its clip.
type Painter struct {
	buf  [][]texel.Cell
	clip Rect
}

// NewPainter returns a painter over buf limited to clip.
func NewPainter(buf [][]texel.Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// Clip returns the current clip rect.
func (p *Painter) Clip() Rect { return p.clip }

// WithClip returns a painter over the same buffer clipped to the
// intersection of the current clip and r.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{buf: p.buf, clip: p.clip.Intersect(r)}
}

// SetCell writes one cell if it lies inside the clip and the buffer.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) || y < 0 || y >= len(p.buf) || x < 0 || x >= len(p.buf[y]) {
		return
	}
	p.buf[y][x] = texel.Cell{Ch: ch, Style: style}
}

// Fill paints every cell of r.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	r = r.Intersect(p.clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText writes s starting at (x, y) and returns the number of columns
// used. Wide runes take two columns; the trailing column holds a blank.
func (p *Painter) DrawText(x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.SetCell(col, y, r, style)
		if w == 2 {
			p.SetCell(col+1, y, ' ', style)
		}
		col += w
	}
	return col - x
}

// DrawTextClamped writes s truncated to width columns with an ellipsis.
func (p *Painter) DrawTextClamped(x, y, width int, s string, style tcell.Style) int {
	if width <= 0 {
		return 0
	}
	return p.DrawText(x, y, runewidth.Truncate(s, width, "…"), style)
}

// DrawBorder outlines r with charset {h, v, tl, tr, bl, br}.
func (p *Painter) DrawBorder(r Rect, style tcell.Style, charset [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		p.SetCell(x, r.Y, charset[0], style)
		p.SetCell(x, y1, charset[0], style)
	}
	for y := r.Y + 1; y < y1; y++ {
		p.SetCell(r.X, y, charset[1], style)
		p.SetCell(x1, y, charset[1], style)
	}
	p.SetCell(r.X, r.Y, charset[2], style)
	p.SetCell(x1, r.Y, charset[3], style)
	p.SetCell(r.X, y1, charset[4], style)
	p.SetCell(x1, y1, charset[5], style)
}

// MapStyles rewrites the style of every cell in r. Used for overlays such
// as dimming the page behind a modal.
func (p *Painter) MapStyles(r Rect, fn func(tcell.Style) tcell.Style) {
	r = r.Intersect(p.clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		if y < 0 || y >= len(p.buf) {
			continue
		}
		row := p.buf[y]
		for x := r.X; x < r.X+r.W; x++ {
			if x < 0 || x >= len(row) {
				continue
			}
			row[x].Style = fn(row[x].Style)
		}
	}
}
