// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package gallery

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/config"
	"github.com/framegrace/texelgallery/internal/frames"
	"github.com/framegrace/texelgallery/internal/playback"
	"github.com/framegrace/texelgallery/texelui/core"
)

func newTestGallery(t *testing.T, cols, rows int) (*Gallery, *frames.Queue) {
	t.Helper()
	g := New(DefaultOptions())
	q := frames.NewQueue()
	g.SetFrameScheduler(q)
	g.Resize(cols, rows)
	g.Render()
	t.Cleanup(g.Stop)
	return g, q
}

func move(g *Gallery, x, y int) {
	g.HandleMouse(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func click(g *Gallery, x, y int) {
	g.HandleMouse(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	g.HandleMouse(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func key(g *Gallery, k tcell.Key) {
	g.HandleKey(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func runeKey(g *Gallery, r rune) {
	g.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func moveOver(g *Gallery, r core.Rect) { move(g, r.X+r.W/2, r.Y+r.H/2) }

func clickOn(g *Gallery, r core.Rect) { click(g, r.X+r.W/2, r.Y+r.H/2) }

func runningTiles(g *Gallery) []int {
	var ids []int
	for _, e := range g.opts.Registry.Effects() {
		if g.Loop(e.ID).Running() {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func TestFirstTilePlaysByDefault(t *testing.T) {
	g, q := newTestGallery(t, 80, 60)

	if ids := runningTiles(g); len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("expected only tile 1 running, got %v", ids)
	}
	if q.Pending() != 1 {
		t.Fatalf("expected one frame request, got %d", q.Pending())
	}
	if g.Hovered() != playback.None {
		t.Fatalf("nothing should be hovered yet, got %d", g.Hovered())
	}
	r := g.TileRect(1)
	buf := g.Render()
	if ch := buf[r.Y+r.H-1][r.X].Ch; ch != '▶' {
		t.Fatalf("playing tile should carry a marker, got %q", ch)
	}
}

func TestGridLayout(t *testing.T) {
	g, _ := newTestGallery(t, 80, 60)
	want := map[int]core.Rect{
		1: {X: 2, Y: 5, W: 36, H: 9},
		2: {X: 41, Y: 5, W: 36, H: 9},
		3: {X: 2, Y: 15, W: 36, H: 9},
		4: {X: 41, Y: 15, W: 36, H: 9},
	}
	for id, r := range want {
		if got := g.TileRect(id); got != r {
			t.Fatalf("tile %d rect = %+v, want %+v", id, got, r)
		}
	}

	g.Resize(30, 60)
	if r := g.TileRect(2); r.X != 2 || r.Y != 15 {
		t.Fatalf("narrow screen should stack tiles, tile 2 at %+v", r)
	}
}

func TestHoverTakesOverPlayback(t *testing.T) {
	g, q := newTestGallery(t, 80, 60)

	moveOver(g, g.TileRect(2))
	g.Render()
	if ids := runningTiles(g); len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("hover should play tile 2 only, got %v", ids)
	}
	if g.Hovered() != 2 {
		t.Fatalf("Hovered() = %d", g.Hovered())
	}
	if q.Pending() != 1 {
		t.Fatalf("expected a single frame request, got %d", q.Pending())
	}

	// Leaving the tile keeps it playing.
	move(g, 0, 1)
	g.Render()
	if ids := runningTiles(g); len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("leaving a tile must not stop it, got %v", ids)
	}
}

func TestClickOpensModalAndPlays(t *testing.T) {
	g, _ := newTestGallery(t, 80, 60)

	clickOn(g, g.TileRect(3))
	g.Render()
	if e := g.Selected(); e == nil || e.ID != 3 {
		t.Fatalf("expected modal for effect 3, got %v", e)
	}
	if !g.UI().ModalOpen() {
		t.Fatalf("UI should report an open modal")
	}
	if g.Selector().Current() != 3 {
		t.Fatalf("click should play 3, current = %d", g.Selector().Current())
	}
	if ml := g.ModalLoop(); ml == nil || !ml.Running() {
		t.Fatalf("modal preview should be running")
	}
	if ids := runningTiles(g); len(ids) != 1 || ids[0] != 3 {
		t.Fatalf("only tile 3 may play, got %v", ids)
	}

	// Tiles below the modal no longer see the pointer.
	moveOver(g, g.TileRect(1))
	if g.Selector().Current() != 3 {
		t.Fatalf("hover under the modal changed playback to %d", g.Selector().Current())
	}
}

func TestModalButtonAndSpaceToggle(t *testing.T) {
	g, q := newTestGallery(t, 80, 60)
	clickOn(g, g.TileRect(2))
	g.Render()
	if g.modal.button.Label != "Pause" {
		t.Fatalf("playing modal should offer Pause, got %q", g.modal.button.Label)
	}

	b := g.ButtonRect()
	click(g, b.X, b.Y)
	g.Render()
	if g.Selector().Current() != playback.None {
		t.Fatalf("button should pause, current = %d", g.Selector().Current())
	}
	if g.ModalLoop().Running() || len(runningTiles(g)) != 0 {
		t.Fatalf("paused gallery still runs a loop")
	}
	if g.modal.button.Label != "Play" {
		t.Fatalf("paused modal should offer Play, got %q", g.modal.button.Label)
	}
	g.cancelFade()
	if q.Pending() != 0 {
		t.Fatalf("paused gallery left %d frame requests", q.Pending())
	}

	runeKey(g, ' ')
	g.Render()
	if g.Selector().Current() != 2 || !g.ModalLoop().Running() {
		t.Fatalf("space should resume effect 2")
	}
	if g.modal.button.Label != "Pause" {
		t.Fatalf("label = %q after resume", g.modal.button.Label)
	}
}

func TestModalDismissal(t *testing.T) {
	cases := map[string]func(g *Gallery){
		"escape":        func(g *Gallery) { key(g, tcell.KeyEscape) },
		"q":             func(g *Gallery) { runeKey(g, 'q') },
		"outside click": func(g *Gallery) { click(g, 0, 0) },
	}
	for name, dismiss := range cases {
		t.Run(name, func(t *testing.T) {
			g, _ := newTestGallery(t, 80, 60)
			closed := false
			g.SetCloseRequester(func() { closed = true })

			clickOn(g, g.TileRect(4))
			g.Render()
			ml := g.ModalLoop()

			dismiss(g)
			g.Render()
			if g.Selected() != nil || g.UI().ModalOpen() {
				t.Fatalf("modal still open")
			}
			if ml.Surface() != nil || ml.Pending() {
				t.Fatalf("modal loop was not closed")
			}
			if g.Selector().Current() != 4 || !g.Loop(4).Running() {
				t.Fatalf("closing the modal must keep effect 4 playing")
			}
			if closed {
				t.Fatalf("dismissing the modal must not quit the app")
			}
		})
	}
}

func TestTogglePlayWithoutModalIsNoop(t *testing.T) {
	g, _ := newTestGallery(t, 80, 60)
	g.TogglePlay()
	if g.Selector().Current() != 1 {
		t.Fatalf("toggle without modal changed playback to %d", g.Selector().Current())
	}
	g.Click(99)
	if g.Selected() != nil {
		t.Fatalf("unknown effect opened a modal")
	}
}

func TestKeyboardNavigation(t *testing.T) {
	g, _ := newTestGallery(t, 80, 60)

	key(g, tcell.KeyRight)
	if g.Hovered() != 1 {
		t.Fatalf("first move should land on the playing tile, got %d", g.Hovered())
	}
	key(g, tcell.KeyRight)
	key(g, tcell.KeyDown)
	g.Render()
	if g.Hovered() != 4 {
		t.Fatalf("hovered = %d, want 4", g.Hovered())
	}
	if ids := runningTiles(g); len(ids) != 1 || ids[0] != 4 {
		t.Fatalf("keyboard hover should play 4, got %v", ids)
	}
	key(g, tcell.KeyDown)
	if g.Hovered() != 4 {
		t.Fatalf("moving past the last tile should clamp, got %d", g.Hovered())
	}

	key(g, tcell.KeyEnter)
	if e := g.Selected(); e == nil || e.ID != 4 {
		t.Fatalf("enter should open the hovered effect")
	}
	key(g, tcell.KeyEscape)

	closed := false
	g.SetCloseRequester(func() { closed = true })
	runeKey(g, 'q')
	if !closed {
		t.Fatalf("q on the page should request close")
	}
}

func TestKeyboardScrollsHoveredTileIntoView(t *testing.T) {
	g, _ := newTestGallery(t, 80, 20)
	if buf := g.Render(); buf[19][79].Ch != '▼' || buf[5][79].Ch == '▲' {
		t.Fatalf("expected only a down indicator before scrolling")
	}

	key(g, tcell.KeyRight)
	key(g, tcell.KeyDown)
	if g.Hovered() != 3 {
		t.Fatalf("hovered = %d, want 3", g.Hovered())
	}
	r := g.TileRect(3)
	if r.Y+r.H > 20 {
		t.Fatalf("tile 3 not scrolled into view: %+v", r)
	}
	if g.TileRect(1).Y >= 5 {
		t.Fatalf("grid did not scroll, tile 1 at %+v", g.TileRect(1))
	}

	if buf := g.Render(); buf[5][79].Ch != '▲' {
		t.Fatalf("expected an up indicator after scrolling")
	}

	key(g, tcell.KeyUp)
	if g.TileRect(1).Y != 5 {
		t.Fatalf("moving up should scroll back, tile 1 at %+v", g.TileRect(1))
	}
}

func TestTilesScrolledOutAreHidden(t *testing.T) {
	g, _ := newTestGallery(t, 30, 20)
	for _, id := range []int{1, 2} {
		if !g.tileByID(id).Visible() {
			t.Fatalf("tile %d should be visible at the top", id)
		}
	}

	key(g, tcell.KeyEnd)
	want := map[int]bool{1: false, 2: false, 3: true, 4: true}
	for id, vis := range want {
		if got := g.tileByID(id).Visible(); got != vis {
			t.Fatalf("after End tile %d visible = %v, want %v (rect %+v)", id, got, vis, g.TileRect(id))
		}
	}

	key(g, tcell.KeyHome)
	if !g.tileByID(1).Visible() || g.tileByID(4).Visible() {
		t.Fatalf("Home should show tile 1 and hide tile 4")
	}
}

func TestModalSourceScrolls(t *testing.T) {
	g, _ := newTestGallery(t, 80, 20)
	g.Click(2)
	g.Render()
	m := g.modal
	if m.visibleSourceRows() >= len(m.lines) {
		t.Fatalf("source should overflow: %d rows for %d lines", m.visibleSourceRows(), len(m.lines))
	}

	key(g, tcell.KeyDown)
	if m.scroll.Offset != 1 {
		t.Fatalf("offset = %d after down", m.scroll.Offset)
	}
	key(g, tcell.KeyPgDn)
	key(g, tcell.KeyPgDn)
	if m.scroll.Offset != m.scroll.MaxOffset() {
		t.Fatalf("page down should reach the end, offset %d", m.scroll.Offset)
	}
	key(g, tcell.KeyUp)
	if m.scroll.Offset != m.scroll.MaxOffset()-1 {
		t.Fatalf("offset = %d after up", m.scroll.Offset)
	}
	if g.Hovered() != playback.None {
		t.Fatalf("arrow keys in the modal must not move the grid hover")
	}
}

func TestBackdropFadesWithFrames(t *testing.T) {
	g, q := newTestGallery(t, 80, 60)
	now := time.Unix(100, 0)
	g.backdrop.Timeline().SetClock(func() time.Time { return now })

	clickOn(g, g.TileRect(1))
	if !g.backdrop.Animating() || g.fadeHandle == 0 {
		t.Fatalf("opening the modal should start a fade")
	}
	now = now.Add(time.Second)
	q.Flush(now)
	if g.backdrop.Animating() || g.fadeHandle != 0 {
		t.Fatalf("fade should have settled")
	}
	if lvl := g.backdrop.Level(); lvl < 0.59 || lvl > 0.61 {
		t.Fatalf("backdrop level = %v", lvl)
	}

	buf := g.Render()
	fg, _, _ := buf[0][2].Style.Decompose()
	if r, _, _ := fg.RGB(); r >= 255 {
		t.Fatalf("header should be dimmed behind the modal, fg = %v", fg)
	}

	key(g, tcell.KeyEscape)
	now = now.Add(time.Second)
	q.Flush(now)
	if g.backdrop.Level() != 0 {
		t.Fatalf("backdrop should fade out, level = %v", g.backdrop.Level())
	}
	buf = g.Render()
	fg, _, _ = buf[0][2].Style.Decompose()
	if r, _, _ := fg.RGB(); r != 255 {
		t.Fatalf("header should be restored, fg = %v", fg)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Config{
		"gallery": map[string]interface{}{
			"title":       "LAB",
			"tile_rows":   float64(6),
			"columns":     float64(3),
			"show_source": false,
		},
		"theme": map[string]interface{}{"accent": "#ff0000"},
		"modal": map[string]interface{}{"backdrop_dim": 0.3, "fade_ms": float64(50)},
	}
	opts := OptionsFromConfig(cfg, nil)
	if opts.Title != "LAB" || opts.TileRows != 6 || opts.Columns != 3 || opts.ShowSource {
		t.Fatalf("gallery section not applied: %+v", opts)
	}
	if opts.Handle != "X: @floguo" {
		t.Fatalf("missing keys should keep defaults, handle = %q", opts.Handle)
	}
	if opts.BackdropDim != 0.3 || opts.Fade != 50*time.Millisecond {
		t.Fatalf("modal section not applied: dim=%v fade=%v", opts.BackdropDim, opts.Fade)
	}
	if opts.Palette.Accent.Hex() != "#ff0000" {
		t.Fatalf("accent = %s", opts.Palette.Accent.Hex())
	}
	if opts.Registry == nil || opts.Registry.Len() != 4 {
		t.Fatalf("nil registry should fall back to the builtins")
	}
}
