// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gallery/modal.go
// Summary: Expanded view of one effect: large preview, play/pause control and source.
// Notes: The modal owns a second preview loop for its effect, closed on dismissal.

package gallery

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelgallery/internal/preview"
	"github.com/framegrace/texelgallery/internal/theming"
	"github.com/framegrace/texelgallery/shaders"
	"github.com/framegrace/texelgallery/texelui/core"
	"github.com/framegrace/texelgallery/texelui/scroll"
	"github.com/framegrace/texelgallery/texelui/widgets"
)

const (
	modalZ       = 10
	backdropZ    = 5
	maxModalCols = 72
)

type modal struct {
	core.BaseWidget
	g      *Gallery
	effect *shaders.Effect
	loop   *preview.Loop
	view   *previewView
	bg     *widgets.Pane
	frame  *widgets.Border
	button *widgets.Button

	language string
	source   [][]tcell.Style
	lines    []string
	scroll   scroll.State

	previewRect core.Rect
	sourceRect  core.Rect
}

func newModal(g *Gallery, effect *shaders.Effect, loop *preview.Loop) *modal {
	pal := g.opts.Palette
	m := &modal{
		g:        g,
		effect:   effect,
		loop:     loop,
		view:     newPreviewView(loop),
		bg:       widgets.NewPane(0, 0, 0, 0, pal.Base()),
		frame:    widgets.NewBorder(0, 0, 0, 0, pal.BorderStyle()),
		button:   widgets.NewButton(0, 0, "Pause", pal.Base()),
		language: effect.Language(),
	}
	m.frame.Charset = widgets.Rounded
	m.frame.Title = effect.Name
	m.frame.TitleStyle = pal.Base().Bold(true)
	m.button.FocusedStyle = pal.AccentStyle().Reverse(true)
	m.button.OnClick = g.TogglePlay
	m.SetFocusable(true)
	if g.opts.ShowSource {
		m.lines, m.source = sourceCells(effect, pal)
	}
	return m
}

// sourceCells flattens the highlighted source into one string and one style
// slice per line, indexed by rune.
func sourceCells(effect *shaders.Effect, pal theming.Palette) ([]string, [][]tcell.Style) {
	spans := shaders.Highlight(effect, pal.SourceStyle)
	lines := make([]string, len(spans))
	styles := make([][]tcell.Style, len(spans))
	for i, line := range spans {
		var text []rune
		var st []tcell.Style
		for _, sp := range line {
			style := pal.Base()
			if sp.HasFG {
				style = style.Foreground(tcell.NewRGBColor(int32(sp.R), int32(sp.G), int32(sp.B)))
			}
			style = style.Bold(sp.Bold).Italic(sp.Italic)
			for _, r := range sp.Text {
				if r == '\t' {
					for k := 0; k < 4; k++ {
						text = append(text, ' ')
						st = append(st, style)
					}
					continue
				}
				text = append(text, r)
				st = append(st, style)
			}
		}
		lines[i] = string(text)
		styles[i] = st
	}
	return lines, styles
}

// layout centres the modal inside a cols x rows screen.
func (m *modal) layout(cols, rows int, tileRows int) {
	w := min(cols-4, maxModalCols)
	if w < 12 {
		w = min(cols, 12)
	}
	innerW := w - 2
	previewRows := max(tileRows*3/2, 2)
	sourceRows := 0
	if len(m.lines) > 0 {
		sourceRows = len(m.lines) + 1
	}
	// border + control row + preview + source
	h := 2 + 1 + previewRows + sourceRows
	if h > rows-2 {
		h = max(rows-2, 5)
		avail := h - 3
		previewRows = min(previewRows, max(avail*2/3, 1))
		sourceRows = max(avail-previewRows, 0)
	}
	r := core.Rect{W: cols, H: rows}.Centered(w, h)
	m.SetPosition(r.X, r.Y)
	m.Resize(r.W, r.H)
	m.bg.SetPosition(r.X, r.Y)
	m.bg.Resize(r.W, r.H)
	m.frame.SetPosition(r.X, r.Y)
	m.frame.Resize(r.W, r.H)

	client := m.frame.ClientRect()
	m.updateButton()
	m.button.SetPosition(client.X+client.W-m.button.Width(), client.Y)
	m.previewRect = core.Rect{X: client.X, Y: client.Y + 1, W: innerW, H: previewRows}
	m.sourceRect = core.Rect{X: client.X, Y: m.previewRect.Y + previewRows, W: innerW, H: sourceRows}
	m.view.resize(m.previewRect.W, m.previewRect.H)
	m.clampScroll()
}

func (m *modal) updateButton() {
	label := "Play"
	if m.g.selector.IsPlaying(m.effect.ID) {
		label = "Pause"
	}
	if m.button.Label != label {
		x, y := m.button.Position()
		right := x + m.button.Width()
		m.button.SetLabel(label)
		if x != 0 || y != 0 {
			m.button.SetPosition(right-m.button.Width(), y)
		}
	}
}

func (m *modal) IsModal() bool { return m.g.modal == m }

func (m *modal) DismissModal() { m.g.CloseModal() }

func (m *modal) ZIndex() int { return modalZ }

func (m *modal) VisitChildren(fn func(core.Widget)) { fn(m.button) }

func (m *modal) Draw(p *core.Painter) {
	pal := m.g.opts.Palette
	m.bg.Draw(p)
	m.frame.Draw(p)
	client := m.frame.ClientRect()

	m.updateButton()
	state := "paused"
	if m.g.selector.IsPlaying(m.effect.ID) {
		state = "playing"
	}
	p.DrawTextClamped(client.X, client.Y, client.W-m.button.Width()-1, state, pal.MutedStyle())
	m.button.Draw(p)

	m.view.draw(p.WithClip(m.previewRect), m.previewRect.X, m.previewRect.Y)
	m.drawSource(p.WithClip(m.sourceRect))
}

func (m *modal) drawSource(p *core.Painter) {
	r := m.sourceRect
	if r.H <= 0 || len(m.lines) == 0 {
		return
	}
	pal := m.g.opts.Palette
	caption := "SOURCE"
	if m.language != "" {
		caption += " · " + m.language
	}
	p.DrawTextClamped(r.X, r.Y, r.W, caption, pal.MutedStyle())
	for row := 0; row < r.H-1; row++ {
		idx := m.scroll.Offset + row
		if idx >= len(m.lines) {
			break
		}
		x := r.X
		styles := m.source[idx]
		for i, ch := range []rune(m.lines[idx]) {
			w := runewidth.RuneWidth(ch)
			if x+w > r.X+r.W {
				break
			}
			p.SetCell(x, r.Y+1+row, ch, styles[i])
			x += max(w, 1)
		}
	}
	body := core.Rect{X: r.X, Y: r.Y + 1, W: r.W, H: r.H - 1}
	scroll.DrawIndicators(p, body, m.scroll, scroll.DefaultIndicatorConfig(pal.MutedStyle()))
}

func (m *modal) visibleSourceRows() int { return max(m.sourceRect.H-1, 0) }

func (m *modal) scrollBy(delta int) bool {
	before := m.scroll.Offset
	m.scroll = m.scroll.ScrollBy(delta)
	return m.scroll.Offset != before
}

func (m *modal) clampScroll() {
	m.scroll = m.scroll.WithContentHeight(len(m.lines)).WithViewportHeight(m.visibleSourceRows())
}

func (m *modal) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.g.CloseModal()
		return true
	case tcell.KeyEnter:
		m.g.TogglePlay()
		return true
	case tcell.KeyUp:
		return m.scrollBy(-1)
	case tcell.KeyDown:
		return m.scrollBy(1)
	case tcell.KeyPgUp:
		return m.scrollBy(-m.visibleSourceRows())
	case tcell.KeyPgDn:
		return m.scrollBy(m.visibleSourceRows())
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'p':
			m.g.TogglePlay()
			return true
		case 'q':
			m.g.CloseModal()
			return true
		}
	}
	return false
}

func (m *modal) HandleMouse(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return m.scrollBy(-1)
	case buttons&tcell.WheelDown != 0:
		return m.scrollBy(1)
	}
	return false
}

// backdropLayer draws the grid scroll indicators and dims everything below
// the modal while the backdrop is visible.
type backdropLayer struct {
	core.BaseWidget
	g *Gallery
}

func (b *backdropLayer) ZIndex() int          { return backdropZ }
func (b *backdropLayer) HitTest(x, y int) bool { return false }

func (b *backdropLayer) Draw(p *core.Painter) {
	g := b.g
	scroll.DrawIndicators(p, g.viewport, g.scroll, scroll.DefaultIndicatorConfig(g.opts.Palette.AccentStyle()))
	if g.backdrop.Level() <= 0 {
		return
	}
	p.MapStyles(p.Clip(), g.backdrop.Style)
}
