// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/uimanager.go
// Summary: Owns a z-ordered widget list, routes input and composes frames.
// Notes: While a Modal widget is open it receives every key, mouse events
// outside it never reach the widgets below, and a press outside dismisses it.

package core

import (
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/texel"
)

// UIManager owns a small widget tree and composes it into a cell buffer.
type UIManager struct {
	mu       sync.Mutex // protects widgets, focus, capture, buffer
	notifyMu sync.Mutex // protects notifier
	W, H     int
	widgets  []Widget // later entries draw on top within the same z-index
	bgStyle  tcell.Style
	notifier chan<- bool
	focused  Widget
	capture  Widget
	buf      [][]texel.Cell
}

// NewUIManager returns a manager that clears to bg before every frame.
func NewUIManager(bg tcell.Style) *UIManager {
	return &UIManager{bgStyle: bg}
}

func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.notifyMu.Lock()
	defer u.notifyMu.Unlock()
	u.notifier = ch
}

// RequestRefresh asks the host for a new frame without blocking.
func (u *UIManager) RequestRefresh() {
	u.notifyMu.Lock()
	ch := u.notifier
	u.notifyMu.Unlock()

	if ch == nil {
		return
	}
	select {
	case ch <- true:
	default:
	}
}

func (u *UIManager) Resize(w, h int) {
	u.mu.Lock()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	u.W, u.H = w, h
	u.buf = nil
	u.mu.Unlock()
	u.RequestRefresh()
}

func (u *UIManager) AddWidget(w Widget) {
	u.mu.Lock()
	u.widgets = append(u.widgets, w)
	u.mu.Unlock()
	u.RequestRefresh()
}

// RemoveWidget drops w and clears focus or capture pointing at it.
func (u *UIManager) RemoveWidget(w Widget) {
	u.mu.Lock()
	kept := u.widgets[:0]
	for _, existing := range u.widgets {
		if existing != w {
			kept = append(kept, existing)
		}
	}
	u.widgets = kept
	if u.focused != nil && containsWidget(w, u.focused) {
		u.focused.Blur()
		u.focused = nil
	}
	if u.capture != nil && containsWidget(w, u.capture) {
		u.capture = nil
	}
	u.mu.Unlock()
	u.RequestRefresh()
}

func (u *UIManager) Focus(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.focusLocked(w)
}

// Focused returns the focused widget, or nil.
func (u *UIManager) Focused() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.focused
}

func (u *UIManager) focusLocked(w Widget) {
	if w == nil || !w.Focusable() {
		return
	}
	if u.focused == w {
		return
	}
	if u.focused != nil {
		u.focused.Blur()
	}
	u.focused = w
	u.focused.Focus()
}

// HandleKey offers ev to the open modal, or else to the focused widget.
func (u *UIManager) HandleKey(ev *tcell.EventKey) bool {
	u.mu.Lock()
	target := u.focused
	modal := u.activeModalLocked()
	u.mu.Unlock()

	if modal != nil {
		target = modal
	}
	if target == nil {
		return false
	}
	handled := target.HandleKey(ev)
	if handled || modal != nil {
		u.RequestRefresh()
	}
	// An open modal swallows keys it does not use.
	return handled || modal != nil
}

// ModalOpen reports whether a Modal widget is currently open.
func (u *UIManager) ModalOpen() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.activeModalLocked() != nil
}

// HandleMouse routes presses, drags and motion to the widget under the pointer.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	u.mu.Lock()
	x, y := ev.Position()
	buttons := ev.Buttons()
	prevDown := u.capture != nil
	nowDown := buttons&tcell.Button1 != 0
	modal := u.activeModalLocked()

	if modal != nil && nowDown && !prevDown && !modal.HitTest(x, y) {
		u.mu.Unlock()
		modal.(Modal).DismissModal()
		u.RequestRefresh()
		return true
	}

	// Press: focus and capture the widget under the pointer.
	if nowDown && !prevDown {
		w := u.targetAtLocked(modal, x, y)
		if w == nil {
			u.mu.Unlock()
			return false
		}
		u.focusLocked(w)
		u.capture = w
		u.mu.Unlock()
		if mw, ok := w.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		u.RequestRefresh()
		return true
	}

	// While captured, forward everything and release on button up.
	if u.capture != nil {
		w := u.capture
		if !nowDown {
			u.capture = nil
		}
		u.mu.Unlock()
		if mw, ok := w.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		u.RequestRefresh()
		return true
	}

	// Motion and wheel go to the widget under the pointer.
	w := u.targetAtLocked(modal, x, y)
	u.mu.Unlock()
	if w == nil {
		return false
	}
	if mw, ok := w.(MouseAware); ok && mw.HandleMouse(ev) {
		u.RequestRefresh()
		return true
	}
	return false
}

func (u *UIManager) targetAtLocked(modal Widget, x, y int) Widget {
	if modal != nil {
		return deepHit(modal, x, y)
	}
	return u.topmostAtLocked(x, y)
}

func (u *UIManager) activeModalLocked() Widget {
	sorted := u.sortedWidgetsLocked()
	for i := len(sorted) - 1; i >= 0; i-- {
		if m, ok := sorted[i].(Modal); ok && m.IsModal() {
			return sorted[i]
		}
	}
	return nil
}

func (u *UIManager) topmostAtLocked(x, y int) Widget {
	sorted := u.sortedWidgetsLocked()
	for i := len(sorted) - 1; i >= 0; i-- {
		if w := deepHit(sorted[i], x, y); w != nil {
			return w
		}
	}
	return nil
}

// deepHit returns the innermost widget at (x, y) that is mouse aware, or the
// outermost hit when no descendant is.
func deepHit(w Widget, x, y int) Widget {
	if !visible(w) || !w.HitTest(x, y) {
		return nil
	}
	if cc, ok := w.(ChildContainer); ok {
		var res Widget
		cc.VisitChildren(func(child Widget) {
			if dw := deepHit(child, x, y); dw != nil {
				if _, ok := dw.(MouseAware); ok {
					res = dw
				}
			}
		})
		if res != nil {
			return res
		}
	}
	return w
}

func containsWidget(w, target Widget) bool {
	if w == target {
		return true
	}
	found := false
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) {
			if !found && containsWidget(child, target) {
				found = true
			}
		})
	}
	return found
}

func visible(w Widget) bool {
	if h, ok := w.(Hideable); ok {
		return h.Visible()
	}
	return true
}

func getZIndex(w Widget) int {
	if zi, ok := w.(ZIndexer); ok {
		return zi.ZIndex()
	}
	return 0
}

// sortedWidgetsLocked returns a copy of widgets sorted by z-index (stable sort).
func (u *UIManager) sortedWidgetsLocked() []Widget {
	sorted := make([]Widget, len(u.widgets))
	copy(sorted, u.widgets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return getZIndex(sorted[i]) < getZIndex(sorted[j])
	})
	return sorted
}

func (u *UIManager) ensureBufferLocked() {
	if u.buf != nil && len(u.buf) == u.H && (u.H == 0 || len(u.buf[0]) == u.W) {
		return
	}
	u.buf = make([][]texel.Cell, u.H)
	for y := range u.buf {
		u.buf[y] = make([]texel.Cell, u.W)
	}
}

// Render composes every visible widget in z order and returns the buffer.
// The buffer is reused between calls.
func (u *UIManager) Render() [][]texel.Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.ensureBufferLocked()
	full := Rect{W: u.W, H: u.H}
	p := NewPainter(u.buf, full)
	p.Fill(full, ' ', u.bgStyle)
	for _, w := range u.sortedWidgetsLocked() {
		if visible(w) {
			w.Draw(p)
		}
	}
	return u.buf
}
