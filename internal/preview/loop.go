// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/preview/loop.go
// Summary: Per-preview animation driver with Stopped/Running states.
// Usage: The host calls Evaluate(selector.IsPlaying(id)) on every render pass.
// Notes: A Loop is driven from the UI goroutine only. Frame callbacks arrive
// through the frames.Scheduler on that same goroutine.

package preview

import (
	"time"

	"github.com/framegrace/texelgallery/internal/frames"
	"github.com/framegrace/texelgallery/shaders"
	"github.com/gogpu/gg"
)

// Loop animates one effect on one surface. While running it re-arms a frame
// request after every rendered frame; while stopped it shows the last frame.
type Loop struct {
	sched   frames.Scheduler
	effect  *shaders.Effect
	surface *gg.Context

	evaluated bool
	running   bool
	closed    bool

	handle  frames.Handle
	start   time.Time
	started bool

	// elapsed is the time of the most recently rendered frame in seconds.
	elapsed float64
	frames  int
	onFrame func()
}

// New creates a stopped loop for effect. Nothing is drawn until a surface is
// attached and Evaluate is called.
func New(sched frames.Scheduler, effect *shaders.Effect) *Loop {
	return &Loop{sched: sched, effect: effect}
}

// Attach sets the surface the loop draws into. Ownership passes to the loop;
// Close releases it.
func (l *Loop) Attach(surface *gg.Context) {
	if l.closed {
		return
	}
	l.surface = surface
}

// OnFrame installs a callback run after every drawn frame.
func (l *Loop) OnFrame(fn func()) {
	l.onFrame = fn
}

// Evaluate reacts to the derived active flag. Only edges matter, except for
// the first evaluation which always draws (a static frame when inactive).
// Without a surface the call is ignored so the next one performs the edge.
func (l *Loop) Evaluate(active bool) {
	if l.closed || l.surface == nil {
		return
	}
	if l.evaluated && active == l.running {
		return
	}
	l.evaluated = true
	if active {
		l.enterRunning()
	} else {
		l.enterStopped()
	}
}

// SetEffect swaps the effect. A running loop restarts from elapsed 0; a
// stopped one draws the new effect at the frozen time.
func (l *Loop) SetEffect(effect *shaders.Effect) {
	if l.closed || effect == l.effect {
		return
	}
	l.effect = effect
	if l.surface == nil || !l.evaluated {
		return
	}
	if l.running {
		l.enterRunning()
	} else {
		l.draw(l.elapsed)
	}
}

// Resize replaces the surface with one of the given pixel size. The frozen
// frame is redrawn right away; a running loop picks the size up on its next frame.
func (l *Loop) Resize(width, height int) error {
	if l.closed || width <= 0 || height <= 0 {
		return nil
	}
	if l.surface == nil {
		l.surface = gg.NewContext(width, height)
		return nil
	}
	if l.surface.Width() == width && l.surface.Height() == height {
		return nil
	}
	if err := l.surface.Resize(width, height); err != nil {
		return err
	}
	if l.evaluated && !l.running {
		l.draw(l.elapsed)
	}
	return nil
}

// Close cancels any outstanding frame and releases the surface. Later calls
// on the loop are ignored.
func (l *Loop) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.cancel()
	l.running = false
	if l.surface != nil {
		_ = l.surface.Close()
	}
}

func (l *Loop) enterRunning() {
	l.cancel()
	l.running = true
	l.started = false
	l.handle = l.sched.Request(l.frame)
}

func (l *Loop) enterStopped() {
	l.cancel()
	l.running = false
	l.draw(l.elapsed)
}

func (l *Loop) cancel() {
	if l.handle != 0 {
		l.sched.Cancel(l.handle)
		l.handle = 0
	}
}

func (l *Loop) frame(now time.Time) {
	l.handle = 0
	if l.closed || !l.running {
		return
	}
	if !l.started {
		l.start = now
		l.started = true
	}
	l.elapsed = now.Sub(l.start).Seconds()
	l.draw(l.elapsed)
	l.handle = l.sched.Request(l.frame)
}

func (l *Loop) draw(elapsed float64) {
	if l.surface == nil {
		return
	}
	l.effect.Draw(l.surface, elapsed)
	l.frames++
	if l.onFrame != nil {
		l.onFrame()
	}
}

// Running reports whether the loop is in the Running state.
func (l *Loop) Running() bool { return l.running }

// Elapsed returns the run time in seconds. It is 0 from the moment the loop
// enters Running until the first frame of that run has rendered. A loop that
// stops before then still shows the previous frame.
func (l *Loop) Elapsed() float64 {
	if l.running && !l.started {
		return 0
	}
	return l.elapsed
}

// Frames counts draws since creation, static frames included.
func (l *Loop) Frames() int { return l.frames }

// Pending reports whether a frame request is outstanding.
func (l *Loop) Pending() bool { return l.handle != 0 }

// Surface returns the attached surface, or nil.
func (l *Loop) Surface() *gg.Context {
	if l.closed {
		return nil
	}
	return l.surface
}

// Effect returns the effect being shown.
func (l *Loop) Effect() *shaders.Effect { return l.effect }
