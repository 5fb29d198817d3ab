// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/state.go
// Summary: Vertical scroll offset over content taller than its viewport.
// Usage: Widgets keep a State value and replace it with the result of each
// operation; every result is already clamped.

package scroll

// State is an immutable scroll position. Offset is the first visible content row.
type State struct {
	Offset         int
	ContentHeight  int
	ViewportHeight int
}

// NewState returns a state scrolled to the top.
func NewState(contentHeight, viewportHeight int) State {
	return State{ContentHeight: max(contentHeight, 0), ViewportHeight: max(viewportHeight, 0)}
}

// MaxOffset is the largest valid offset.
func (s State) MaxOffset() int {
	return max(s.ContentHeight-s.ViewportHeight, 0)
}

func (s State) clamp() State {
	s.Offset = min(max(s.Offset, 0), s.MaxOffset())
	return s
}

// WithContentHeight keeps the offset where possible.
func (s State) WithContentHeight(h int) State {
	s.ContentHeight = max(h, 0)
	return s.clamp()
}

// WithViewportHeight keeps the offset where possible.
func (s State) WithViewportHeight(h int) State {
	s.ViewportHeight = max(h, 0)
	return s.clamp()
}

// ScrollBy moves the offset by delta rows (positive scrolls down).
func (s State) ScrollBy(delta int) State {
	s.Offset += delta
	return s.clamp()
}

// ScrollTo makes row visible with minimal movement.
func (s State) ScrollTo(row int) State {
	return s.ScrollToRange(row, row+1)
}

// ScrollToRange makes rows [top, bottom) visible with minimal movement. When
// the range is taller than the viewport its top wins.
func (s State) ScrollToRange(top, bottom int) State {
	switch {
	case top < s.Offset:
		s.Offset = top
	case bottom-top > s.ViewportHeight:
		s.Offset = top
	case bottom > s.Offset+s.ViewportHeight:
		s.Offset = bottom - s.ViewportHeight
	}
	return s.clamp()
}

// ScrollToTop resets the offset.
func (s State) ScrollToTop() State {
	s.Offset = 0
	return s
}

// ScrollToBottom shows the last rows.
func (s State) ScrollToBottom() State {
	s.Offset = s.MaxOffset()
	return s
}

func (s State) CanScrollUp() bool   { return s.Offset > 0 }
func (s State) CanScrollDown() bool { return s.Offset < s.MaxOffset() }
