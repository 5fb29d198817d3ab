// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scroll

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/texel"
	"github.com/framegrace/texelgallery/texelui/core"
)

func TestStateClamps(t *testing.T) {
	s := NewState(20, 5)
	if s.MaxOffset() != 15 {
		t.Fatalf("MaxOffset = %d", s.MaxOffset())
	}
	if s = s.ScrollBy(100); s.Offset != 15 || s.CanScrollDown() || !s.CanScrollUp() {
		t.Fatalf("scroll past end: %+v", s)
	}
	if s = s.ScrollBy(-100); s.Offset != 0 || s.CanScrollUp() {
		t.Fatalf("scroll past start: %+v", s)
	}
	if s = s.ScrollToBottom().WithContentHeight(8); s.Offset != 3 {
		t.Fatalf("shrinking content should clamp, got %d", s.Offset)
	}
	if s = s.WithViewportHeight(10); s.Offset != 0 || s.CanScrollDown() {
		t.Fatalf("content fits, got %+v", s)
	}
	if s := NewState(3, 10); s.MaxOffset() != 0 {
		t.Fatalf("short content MaxOffset = %d", s.MaxOffset())
	}
}

func TestScrollToRangeMovesMinimally(t *testing.T) {
	s := NewState(30, 10)
	if got := s.ScrollToRange(2, 6).Offset; got != 0 {
		t.Fatalf("visible range moved offset to %d", got)
	}
	if got := s.ScrollToRange(12, 16).Offset; got != 6 {
		t.Fatalf("range below: offset %d, want 6", got)
	}
	s = s.ScrollBy(15)
	if got := s.ScrollToRange(4, 8).Offset; got != 4 {
		t.Fatalf("range above: offset %d, want 4", got)
	}
	if got := s.ScrollToRange(20, 40).Offset; got != 20 {
		t.Fatalf("tall range should align its top, got %d", got)
	}
	if got := s.ScrollTo(29).Offset; got != 20 {
		t.Fatalf("ScrollTo(29) = %d", got)
	}
	if got := s.ScrollToTop().Offset; got != 0 {
		t.Fatalf("ScrollToTop = %d", got)
	}
}

func TestDrawIndicators(t *testing.T) {
	buf := make([][]texel.Cell, 4)
	for y := range buf {
		buf[y] = make([]texel.Cell, 3)
	}
	p := core.NewPainter(buf, core.Rect{W: 3, H: 4})
	rect := core.Rect{W: 3, H: 4}

	DrawIndicators(p, rect, NewState(10, 4).ScrollBy(2), DefaultIndicatorConfig(tcell.StyleDefault))
	if buf[0][2].Ch != DefaultUpGlyph || buf[3][2].Ch != DefaultDownGlyph {
		t.Fatalf("expected both glyphs, got %q %q", buf[0][2].Ch, buf[3][2].Ch)
	}

	buf[0][2].Ch, buf[3][2].Ch = 0, 0
	DrawIndicators(p, rect, NewState(2, 4), IndicatorConfig{})
	if buf[0][2].Ch != 0 || buf[3][2].Ch != 0 {
		t.Fatalf("fitting content should draw no glyphs")
	}
}
