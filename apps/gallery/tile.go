// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gallery/tile.go
// Summary: Thumbnail widget: a live preview surface with the effect name below.

package gallery

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/internal/blit"
	"github.com/framegrace/texelgallery/internal/preview"
	"github.com/framegrace/texelgallery/shaders"
	"github.com/framegrace/texelgallery/texel"
	"github.com/framegrace/texelgallery/texelui/core"
)

// previewView shows the current surface of a loop. The blitted cells are
// cached until the loop draws again.
type previewView struct {
	loop  *preview.Loop
	cells [][]texel.Cell
	dirty bool
}

func newPreviewView(loop *preview.Loop) *previewView {
	v := &previewView{loop: loop, dirty: true}
	loop.OnFrame(func() { v.dirty = true })
	return v
}

func (v *previewView) draw(p *core.Painter, x, y int) {
	if v.dirty {
		v.cells = nil
		if dc := v.loop.Surface(); dc != nil {
			v.cells = blit.Cells(dc.Image())
		}
		v.dirty = false
	}
	for cy, row := range v.cells {
		for cx, cell := range row {
			p.SetCell(x+cx, y+cy, cell.Ch, cell.Style)
		}
	}
}

// resize sets the preview size in cells.
func (v *previewView) resize(cols, rows int) {
	w, h := blit.PixelSize(cols, rows)
	if err := v.loop.Resize(w, h); err != nil {
		return
	}
	v.dirty = true
}

// tile is one gallery entry.
type tile struct {
	core.BaseWidget
	g        *Gallery
	effect   *shaders.Effect
	loop     *preview.Loop
	view     *previewView
	viewport core.Rect
	pressed  bool
}

func newTile(g *Gallery, effect *shaders.Effect, loop *preview.Loop) *tile {
	t := &tile{g: g, effect: effect, loop: loop, view: newPreviewView(loop)}
	return t
}

// layout places the tile; rows is the thumbnail height in cells. Tiles
// scrolled fully out of the viewport are hidden.
func (t *tile) layout(x, y, cols, rows int, viewport core.Rect) {
	t.SetPosition(x, y)
	t.Resize(cols, rows+1)
	t.viewport = viewport
	t.view.resize(cols, rows)
	t.SetVisible(!t.Rect.Intersect(viewport).Empty())
}

func (t *tile) HitTest(x, y int) bool {
	return t.BaseWidget.HitTest(x, y) && t.viewport.Contains(x, y)
}

func (t *tile) Draw(p *core.Painter) {
	p = p.WithClip(t.viewport)
	t.view.draw(p, t.Rect.X, t.Rect.Y)

	pal := t.g.opts.Palette
	nameStyle := pal.Base()
	if t.g.hovered == t.effect.ID {
		nameStyle = pal.AccentStyle()
	}
	y := t.Rect.Y + t.Rect.H - 1
	p.Fill(core.Rect{X: t.Rect.X, Y: y, W: t.Rect.W, H: 1}, ' ', pal.Base())
	marker := "  "
	if t.g.selector.IsPlaying(t.effect.ID) {
		marker = "▶ "
	}
	n := p.DrawText(t.Rect.X, y, marker, pal.AccentStyle())
	p.DrawTextClamped(t.Rect.X+n, y, t.Rect.W-n, t.effect.Name, nameStyle)
}

// HandleMouse turns motion into a hover and a press-release inside the tile
// into a click.
func (t *tile) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.Button1 != 0:
		t.pressed = true
		return true
	case t.pressed:
		t.pressed = false
		if t.HitTest(x, y) {
			t.g.Click(t.effect.ID)
		}
		return true
	case buttons&(tcell.WheelUp|tcell.WheelDown) != 0:
		return t.g.scrollWheel(buttons)
	case buttons == tcell.ButtonNone:
		t.g.Hover(t.effect.ID)
		return true
	}
	return false
}
