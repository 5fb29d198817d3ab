// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app.go
// Summary: Core app and cell types shared by the gallery runtime.
// Usage: Apps implement App and return Cell buffers from Render.

package texel

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/internal/frames"
)

// Cell is a single terminal cell of a rendered buffer.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// App is the contract every runnable application fulfils.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(refreshChan chan<- bool)
	GetTitle() string
}

// MouseHandler is implemented by apps that consume mouse events.
type MouseHandler interface {
	HandleMouse(ev *tcell.EventMouse)
}

// FrameAware apps receive the host frame scheduler before their first resize.
type FrameAware interface {
	SetFrameScheduler(s frames.Scheduler)
}

// CloseRequester apps can ask the host to exit (e.g. on 'q').
type CloseRequester interface {
	SetCloseRequester(fn func())
}
