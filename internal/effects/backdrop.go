// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/backdrop.go
// Summary: Fading dim overlay for the page behind an open modal.
// Usage: Show/Hide on modal open/close; map cell styles through Style while Level > 0.

package effects

import (
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const backdropKey = "backdrop"

// Backdrop animates a dim level between 0 and a configured maximum.
type Backdrop struct {
	timeline *Timeline
	dim      float32
	fade     time.Duration
}

// NewBackdrop returns a hidden backdrop. dim is clamped to [0,1].
func NewBackdrop(dim float64, fade time.Duration) *Backdrop {
	if dim < 0 {
		dim = 0
	} else if dim > 1 {
		dim = 1
	}
	if fade < 0 {
		fade = 0
	}
	return &Backdrop{timeline: NewTimeline(0), dim: float32(dim), fade: fade}
}

// Timeline exposes the underlying timeline, mainly to swap its clock.
func (b *Backdrop) Timeline() *Timeline { return b.timeline }

// Show fades the dim in.
func (b *Backdrop) Show() {
	b.timeline.AnimateToWithOptions(backdropKey, b.dim, AnimateOptions{Duration: b.fade, Easing: EaseOutCubic})
}

// Hide fades the dim out.
func (b *Backdrop) Hide() {
	b.timeline.AnimateToWithOptions(backdropKey, 0, AnimateOptions{Duration: b.fade, Easing: EaseOutCubic})
}

// Level is the current dim amount.
func (b *Backdrop) Level() float32 { return b.timeline.Get(backdropKey) }

// Animating reports whether a fade is in progress.
func (b *Backdrop) Animating() bool { return b.timeline.IsAnimating(backdropKey) }

// Style returns s with both colours blended towards black by the current level.
func (b *Backdrop) Style(s tcell.Style) tcell.Style {
	return DimStyle(s, float64(b.Level()))
}

// DimStyle blends the explicit colours of s towards black. Default colours
// are left alone since their value is up to the terminal.
func DimStyle(s tcell.Style, amount float64) tcell.Style {
	if amount <= 0 {
		return s
	}
	fg, bg, _ := s.Decompose()
	return s.Foreground(dimColor(fg, amount)).Background(dimColor(bg, amount))
}

func dimColor(c tcell.Color, amount float64) tcell.Color {
	if c == tcell.ColorDefault || !c.Valid() {
		return c
	}
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	src := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	out := src.BlendRgb(colorful.Color{}, amount)
	or, og, ob := out.Clamped().RGB255()
	return tcell.NewRGBColor(int32(or), int32(og), int32(ob))
}
