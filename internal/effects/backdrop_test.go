// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time           { return c.now }
func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestBackdropFadesInAndOut(t *testing.T) {
	clk := &stepClock{now: time.Unix(50, 0)}
	b := NewBackdrop(0.6, 100*time.Millisecond)
	b.Timeline().SetClock(clk.Now)

	if b.Level() != 0 || b.Animating() {
		t.Fatalf("new backdrop should be hidden")
	}
	b.Show()
	if !b.Animating() {
		t.Fatalf("expected fade in progress")
	}
	clk.Advance(50 * time.Millisecond)
	if lvl := b.Level(); lvl <= 0 || lvl >= 0.6 {
		t.Fatalf("mid-fade level = %v", lvl)
	}
	clk.Advance(100 * time.Millisecond)
	if lvl := b.Level(); lvl != 0.6 || b.Animating() {
		t.Fatalf("fade-in should settle at 0.6, got %v", lvl)
	}

	b.Hide()
	clk.Advance(time.Second)
	if b.Level() != 0 {
		t.Fatalf("fade-out should reach 0, got %v", b.Level())
	}
}

func TestBackdropWithoutFadeIsInstant(t *testing.T) {
	b := NewBackdrop(2, 0)
	b.Show()
	if b.Level() != 1 {
		t.Fatalf("dim should clamp to 1 and apply instantly, got %v", b.Level())
	}
}

func TestDimStyle(t *testing.T) {
	s := tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 100, 50))
	fg, bg, _ := DimStyle(s, 0.5).Decompose()
	if fg != tcell.NewRGBColor(100, 50, 25) {
		t.Fatalf("dimmed fg = %v", fg)
	}
	if bg != tcell.ColorDefault {
		t.Fatalf("default bg should stay default, got %v", bg)
	}
	if DimStyle(s, 0) != s {
		t.Fatalf("zero amount changed the style")
	}
}

func TestTimelineEasesWithInjectedClock(t *testing.T) {
	clk := &stepClock{now: time.Unix(0, 0)}
	tl := NewTimeline(0)
	tl.SetClock(clk.Now)
	tl.AnimateToWithOptions("k", 1, AnimateOptions{Duration: time.Second, Easing: EaseLinear})
	clk.Advance(250 * time.Millisecond)
	if v := tl.Get("k"); v != 0.25 {
		t.Fatalf("linear value at 250ms = %v", v)
	}
	if !tl.IsAnimating("k") {
		t.Fatalf("expected active animation")
	}
	clk.Advance(time.Second)
	if v := tl.Get("k"); v != 1 {
		t.Fatalf("settled value = %v", v)
	}
	if tl.IsAnimating("k") {
		t.Fatalf("settled key still animating")
	}
	if tl.Get("other") != 0 {
		t.Fatalf("unknown key should return the initial value")
	}
}
