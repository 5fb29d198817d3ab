// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gallery/gallery.go
// Summary: Shader gallery app: a grid of live thumbnails and an expanded modal view.
// Usage: devshell runs New(opts); the host supplies the frame scheduler.
// Notes: Exactly one effect id plays at a time (the selector's current id).
// Every Render re-evaluates each preview loop against the selector, so a
// hover, click or toggle takes effect on the next frame.

package gallery

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/internal/effects"
	"github.com/framegrace/texelgallery/internal/frames"
	"github.com/framegrace/texelgallery/internal/playback"
	"github.com/framegrace/texelgallery/internal/preview"
	"github.com/framegrace/texelgallery/shaders"
	"github.com/framegrace/texelgallery/texel"
	"github.com/framegrace/texelgallery/texelui/adapter"
	"github.com/framegrace/texelgallery/texelui/core"
	"github.com/framegrace/texelgallery/texelui/scroll"
	"github.com/framegrace/texelgallery/texelui/widgets"
)

const (
	padX      = 2
	columnGap = 3
	rowGap    = 1
	gridTop   = 5
	minTileW  = 16
)

// Gallery is the texel.App for the shader gallery.
type Gallery struct {
	*adapter.UIApp
	ui       *core.UIManager
	opts     Options
	selector *playback.Selector
	sched    frames.Scheduler
	backdrop *effects.Backdrop

	tiles    []*tile
	modal    *modal
	hovered  int
	scroll   scroll.State
	viewport core.Rect
	cols     int
	rowsTall int

	header  *widgets.Label
	handle  *widgets.Label
	caption *widgets.Label
	about   *widgets.Label
	shade   *backdropLayer

	closeFn     func()
	unsubscribe func()
	fadeHandle  frames.Handle
}

var (
	_ texel.App            = (*Gallery)(nil)
	_ texel.MouseHandler   = (*Gallery)(nil)
	_ texel.FrameAware     = (*Gallery)(nil)
	_ texel.CloseRequester = (*Gallery)(nil)
)

// New builds a gallery. The first registry entry starts playing. Until the
// host installs a scheduler frames are queued but never delivered.
func New(opts Options) *Gallery {
	opts.normalize()
	pal := opts.Palette
	ui := core.NewUIManager(pal.Base())
	g := &Gallery{
		UIApp:    adapter.NewUIApp("Shader Gallery", ui),
		ui:       ui,
		opts:     opts,
		selector: playback.NewSelector(opts.Registry.First()),
		sched:    frames.NewQueue(),
		backdrop: effects.NewBackdrop(opts.BackdropDim, opts.Fade),
	}

	g.header = widgets.NewLabel(0, 0, 0, opts.Title, pal.Base().Bold(true))
	g.handle = widgets.NewLabel(0, 0, 0, opts.Handle, pal.Base())
	g.handle.Align = widgets.AlignRight
	g.caption = widgets.NewLabel(0, 0, 0, "ABOUT", pal.MutedStyle())
	g.about = widgets.NewLabel(0, 0, 0, opts.About, pal.Base())
	for _, l := range []*widgets.Label{g.header, g.handle, g.caption, g.about} {
		ui.AddWidget(l)
	}
	g.buildTiles()
	g.shade = &backdropLayer{g: g}
	ui.AddWidget(g.shade)

	g.unsubscribe = g.selector.Subscribe(func(current int) {
		g.ui.RequestRefresh()
	})
	g.OnResize(g.layout)
	g.OnUnhandledKey(g.handlePageKey)
	return g
}

func (g *Gallery) buildTiles() {
	for _, t := range g.tiles {
		t.loop.Close()
		g.ui.RemoveWidget(t)
	}
	g.tiles = g.tiles[:0]
	for _, e := range g.opts.Registry.Effects() {
		t := newTile(g, e, preview.New(g.sched, e))
		g.tiles = append(g.tiles, t)
		g.ui.AddWidget(t)
	}
}

// SetFrameScheduler switches every preview loop to s.
func (g *Gallery) SetFrameScheduler(s frames.Scheduler) {
	if s == nil {
		return
	}
	g.CloseModal()
	g.cancelFade()
	g.sched = s
	g.buildTiles()
	if g.ui.W > 0 || g.ui.H > 0 {
		g.layout(g.ui.W, g.ui.H)
	}
}

func (g *Gallery) SetCloseRequester(fn func()) { g.closeFn = fn }

// Selector exposes the playback selector.
func (g *Gallery) Selector() *playback.Selector { return g.selector }

// Hovered returns the id of the last hovered effect, or playback.None.
func (g *Gallery) Hovered() int { return g.hovered }

// Selected returns the effect shown in the modal, or nil.
func (g *Gallery) Selected() *shaders.Effect {
	if g.modal == nil {
		return nil
	}
	return g.modal.effect
}

// Loop returns the thumbnail loop for id.
func (g *Gallery) Loop(id int) *preview.Loop {
	if t := g.tileByID(id); t != nil {
		return t.loop
	}
	return nil
}

// ModalLoop returns the loop of the open modal, or nil.
func (g *Gallery) ModalLoop() *preview.Loop {
	if g.modal == nil {
		return nil
	}
	return g.modal.loop
}

// TileRect returns the on-screen rect of the tile for id.
func (g *Gallery) TileRect(id int) core.Rect {
	if t := g.tileByID(id); t != nil {
		return t.Rect
	}
	return core.Rect{}
}

// ButtonRect returns the rect of the modal play/pause button.
func (g *Gallery) ButtonRect() core.Rect {
	if g.modal == nil {
		return core.Rect{}
	}
	return g.modal.button.Rect
}

func (g *Gallery) tileByID(id int) *tile {
	for _, t := range g.tiles {
		if t.effect.ID == id {
			return t
		}
	}
	return nil
}

// Hover makes id the hovered and playing effect. Leaving a tile has no
// counterpart: the last hovered effect keeps playing.
func (g *Gallery) Hover(id int) {
	g.hovered = id
	g.selector.SetHoverTarget(id)
}

// Click plays id and opens it in the modal.
func (g *Gallery) Click(id int) {
	e, ok := g.opts.Registry.ByID(id)
	if !ok {
		log.Printf("Gallery: click on unknown effect %d", id)
		return
	}
	g.selector.SelectAndPlay(id)
	g.openModal(e)
}

// TogglePlay pauses or resumes the effect in the modal. Without an open
// modal nothing happens.
func (g *Gallery) TogglePlay() {
	if g.modal == nil {
		return
	}
	g.selector.TogglePlayForModal(g.modal.effect.ID)
}

func (g *Gallery) openModal(e *shaders.Effect) {
	if g.modal != nil {
		if g.modal.effect == e {
			return
		}
		g.dropModal()
	}
	g.modal = newModal(g, e, preview.New(g.sched, e))
	g.modal.layout(g.ui.W, g.ui.H, g.opts.TileRows)
	g.ui.AddWidget(g.modal)
	g.ui.Focus(g.modal)
	g.backdrop.Show()
	g.animateBackdrop()
	log.Printf("Gallery: opened %q", e.Name)
}

// CloseModal dismisses the modal and stops its loop. The playing id is left
// unchanged.
func (g *Gallery) CloseModal() {
	if g.modal == nil {
		return
	}
	log.Printf("Gallery: closed %q", g.modal.effect.Name)
	g.dropModal()
	g.backdrop.Hide()
	g.animateBackdrop()
}

func (g *Gallery) dropModal() {
	m := g.modal
	g.modal = nil
	m.loop.Close()
	g.ui.RemoveWidget(m)
}

// animateBackdrop keeps requesting frames while the backdrop fades.
func (g *Gallery) animateBackdrop() {
	if g.fadeHandle != 0 {
		return
	}
	g.fadeHandle = g.sched.Request(g.fadeFrame)
}

func (g *Gallery) fadeFrame(time.Time) {
	g.fadeHandle = 0
	g.ui.RequestRefresh()
	if g.backdrop.Animating() {
		g.fadeHandle = g.sched.Request(g.fadeFrame)
	}
}

func (g *Gallery) cancelFade() {
	if g.fadeHandle != 0 {
		g.sched.Cancel(g.fadeHandle)
		g.fadeHandle = 0
	}
}

// layout positions the header, the tile grid and the modal for a
// cols x rows screen.
func (g *Gallery) layout(cols, rows int) {
	inner := max(cols-2*padX, 0)
	g.header.SetPosition(padX, 0)
	g.header.Resize(inner/2, 1)
	g.handle.SetPosition(padX+inner/2, 0)
	g.handle.Resize(inner-inner/2, 1)
	g.caption.SetPosition(padX, 2)
	g.caption.Resize(inner, 1)
	g.about.SetPosition(padX, 3)
	g.about.Resize(inner, 1)
	g.shade.SetPosition(0, 0)
	g.shade.Resize(cols, rows)

	g.viewport = core.Rect{X: 0, Y: gridTop, W: cols, H: max(rows-gridTop, 0)}
	c := g.opts.Columns
	for c > 1 && (inner-(c-1)*columnGap)/c < minTileW {
		c--
	}
	g.cols = c
	tileW := max((inner-(c-1)*columnGap)/c, 1)
	stride := g.stride()
	g.rowsTall = (len(g.tiles) + c - 1) / c
	g.scroll = g.scroll.WithContentHeight(g.contentHeight()).WithViewportHeight(g.viewport.H)

	for i, t := range g.tiles {
		x := padX + (i%c)*(tileW+columnGap)
		y := gridTop + (i/c)*stride - g.scroll.Offset
		t.layout(x, y, tileW, g.opts.TileRows, g.viewport)
	}
	if g.modal != nil {
		g.modal.layout(cols, rows, g.opts.TileRows)
	}
}

func (g *Gallery) stride() int { return g.opts.TileRows + 1 + rowGap }

func (g *Gallery) contentHeight() int {
	if g.rowsTall == 0 {
		return 0
	}
	return g.rowsTall*g.stride() - rowGap
}

// setScroll moves the grid to next and re-lays out when the offset changed.
func (g *Gallery) setScroll(next scroll.State) bool {
	if next.Offset == g.scroll.Offset {
		return false
	}
	g.scroll = next
	g.layout(g.ui.W, g.ui.H)
	return true
}

// ensureVisible scrolls the grid so the tile for id is fully shown.
func (g *Gallery) ensureVisible(id int) {
	idx := g.opts.Registry.IndexOf(id)
	if idx < 0 || g.cols == 0 {
		return
	}
	top := (idx / g.cols) * g.stride()
	g.setScroll(g.scroll.ScrollToRange(top, top+g.opts.TileRows+1))
}

func (g *Gallery) scrollWheel(buttons tcell.ButtonMask) bool {
	switch {
	case buttons&tcell.WheelUp != 0:
		return g.setScroll(g.scroll.ScrollBy(-2))
	case buttons&tcell.WheelDown != 0:
		return g.setScroll(g.scroll.ScrollBy(2))
	}
	return false
}

// moveHover moves the keyboard hover by delta tiles and plays the new tile.
func (g *Gallery) moveHover(delta int) {
	n := g.opts.Registry.Len()
	if n == 0 {
		return
	}
	idx := g.opts.Registry.IndexOf(g.hovered)
	if idx < 0 {
		idx = max(g.opts.Registry.IndexOf(g.selector.Current()), 0)
	} else {
		idx = min(max(idx+delta, 0), n-1)
	}
	id := g.opts.Registry.At(idx).ID
	g.ensureVisible(id)
	g.Hover(id)
}

// handlePageKey handles keys while no modal is open.
func (g *Gallery) handlePageKey(ev *tcell.EventKey) {
	step := max(g.cols, 1)
	switch ev.Key() {
	case tcell.KeyDown:
		g.moveHover(step)
	case tcell.KeyUp:
		g.moveHover(-step)
	case tcell.KeyRight, tcell.KeyTab:
		g.moveHover(1)
	case tcell.KeyLeft, tcell.KeyBacktab:
		g.moveHover(-1)
	case tcell.KeyPgDn:
		g.setScroll(g.scroll.ScrollBy(g.viewport.H))
	case tcell.KeyPgUp:
		g.setScroll(g.scroll.ScrollBy(-g.viewport.H))
	case tcell.KeyHome:
		g.setScroll(g.scroll.ScrollToTop())
	case tcell.KeyEnd:
		g.setScroll(g.scroll.ScrollToBottom())
	case tcell.KeyEnter:
		g.openHovered()
	case tcell.KeyEscape:
		g.requestClose()
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.openHovered()
		case 'j':
			g.moveHover(step)
		case 'k':
			g.moveHover(-step)
		case 'q':
			g.requestClose()
		}
	}
}

func (g *Gallery) openHovered() {
	id := g.hovered
	if id == playback.None {
		id = g.selector.Current()
	}
	if id == playback.None {
		id = g.opts.Registry.First()
	}
	if id != playback.None {
		g.Click(id)
	}
}

func (g *Gallery) requestClose() {
	if g.closeFn != nil {
		g.closeFn()
	}
}

// Render evaluates every preview against the selector and composes the page.
func (g *Gallery) Render() [][]texel.Cell {
	g.evaluate()
	return g.ui.Render()
}

func (g *Gallery) evaluate() {
	for _, t := range g.tiles {
		t.loop.Evaluate(g.selector.IsPlaying(t.effect.ID))
	}
	if g.modal != nil {
		g.modal.loop.Evaluate(g.selector.IsPlaying(g.modal.effect.ID))
	}
}

// Stop closes every loop and ends Run.
func (g *Gallery) Stop() {
	g.CloseModal()
	g.cancelFade()
	for _, t := range g.tiles {
		t.loop.Close()
	}
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
	g.UIApp.Stop()
}
