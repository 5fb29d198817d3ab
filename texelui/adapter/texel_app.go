// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/adapter/texel_app.go
// Summary: Adapts a UIManager to the texel.App contract.

package adapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/texel"
	"github.com/framegrace/texelgallery/texelui/core"
)

// UIApp adapts a TexelUI UIManager to the texel.App interface.
type UIApp struct {
	title    string
	ui       *core.UIManager
	stopCh   chan struct{}
	onResize func(w, h int)
	onKey    func(ev *tcell.EventKey)
}

func NewUIApp(title string, ui *core.UIManager) *UIApp {
	if ui == nil {
		ui = core.NewUIManager(tcell.StyleDefault)
	}
	return &UIApp{title: title, ui: ui, stopCh: make(chan struct{})}
}

func (a *UIApp) Run() error { <-a.stopCh; return nil }

func (a *UIApp) Stop() {
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}
}

func (a *UIApp) Resize(cols, rows int) {
	a.ui.Resize(cols, rows)
	if a.onResize != nil {
		a.onResize(cols, rows)
	}
}

func (a *UIApp) Render() [][]texel.Cell { return a.ui.Render() }

func (a *UIApp) GetTitle() string {
	if a.title == "" {
		return "TexelUI"
	}
	return a.title
}

// HandleKey offers the key to the widgets first and then to the fallback
// installed with OnUnhandledKey.
func (a *UIApp) HandleKey(ev *tcell.EventKey) {
	if a.ui.HandleKey(ev) {
		return
	}
	if a.onKey != nil {
		a.onKey(ev)
	}
}

func (a *UIApp) HandleMouse(ev *tcell.EventMouse) { a.ui.HandleMouse(ev) }

func (a *UIApp) SetRefreshNotifier(ch chan<- bool) { a.ui.SetRefreshNotifier(ch) }

// OnResize installs a layout callback run after the UI was resized.
func (a *UIApp) OnResize(fn func(w, h int)) { a.onResize = fn }

// OnUnhandledKey installs a fallback for keys no widget consumed.
func (a *UIApp) OnUnhandledKey(fn func(ev *tcell.EventKey)) { a.onKey = fn }

// UI exposes the manager for composition.
func (a *UIApp) UI() *core.UIManager { return a.ui }
