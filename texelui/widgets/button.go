// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/button.go
// Summary: Clickable "[ label ]" button activated by mouse or Enter/Space.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelgallery/texelui/core"
)

// Button runs OnClick on a left click release inside it, or on Enter/Space
// while focused.
type Button struct {
	core.BaseWidget
	Label        string
	Style        tcell.Style
	FocusedStyle tcell.Style
	OnClick      func()
	pressed      bool
}

func NewButton(x, y int, label string, style tcell.Style) *Button {
	b := &Button{Label: label, Style: style, FocusedStyle: style.Reverse(true)}
	b.SetPosition(x, y)
	b.Resize(b.Width(), 1)
	b.SetFocusable(true)
	return b
}

// Width is the number of columns the button needs for its label.
func (b *Button) Width() int {
	return runewidth.StringWidth(b.text())
}

func (b *Button) text() string { return "[ " + b.Label + " ]" }

// SetLabel changes the label and resizes the button to fit.
func (b *Button) SetLabel(label string) {
	b.Label = label
	b.Resize(b.Width(), 1)
}

func (b *Button) Draw(p *core.Painter) {
	style := b.Style
	if b.IsFocused() || b.pressed {
		style = b.FocusedStyle
	}
	p.DrawTextClamped(b.Rect.X, b.Rect.Y, b.Rect.W, b.text(), style)
}

func (b *Button) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
		b.activate()
		return true
	}
	return false
}

func (b *Button) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down:
		b.pressed = true
	case b.pressed:
		b.pressed = false
		if b.HitTest(x, y) {
			b.activate()
		}
	default:
		return false
	}
	return true
}

func (b *Button) activate() {
	if b.OnClick != nil {
		b.OnClick()
	}
}
