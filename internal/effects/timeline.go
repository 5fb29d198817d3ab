// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Per-key animation timeline with easing, driven by an injectable clock.
// Usage: The modal backdrop animates its dim level with AnimateToWithOptions and reads it with Get.

package effects

import (
	"sync"
	"time"
)

// EasingFunc defines an easing function that maps progress [0,1] to eased value [0,1]
type EasingFunc func(progress float32) float32

// Common easing functions
var (
	// EaseLinear - No easing, constant speed
	EaseLinear EasingFunc = func(t float32) float32 { return t }

	// EaseSmoothstep - Smooth S-curve (default, recommended for most animations)
	// Accelerates at start, decelerates at end
	EaseSmoothstep EasingFunc = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseOutCubic - Cubic ease-out
	EaseOutCubic EasingFunc = func(t float32) float32 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}
)

// AnimateOptions configures an animation transition
type AnimateOptions struct {
	Duration time.Duration // Animation duration (default: 0 = instant)
	Easing   EasingFunc    // Easing function (default: EaseSmoothstep)
}

// keyState tracks animation state for a single key
type keyState struct {
	current   float32
	start     float32
	target    float32
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
}

// Timeline provides thread-safe, per-key animation timelines with automatic state management
type Timeline struct {
	states         map[interface{}]*keyState
	mu             sync.RWMutex
	defaultEasing  EasingFunc
	defaultInitial float32
	now            func() time.Time
}

// NewTimeline creates a new timeline manager
// defaultInitial: initial value for uninitialized keys (typically 0.0)
func NewTimeline(defaultInitial float32) *Timeline {
	return &Timeline{
		states:         make(map[interface{}]*keyState),
		defaultEasing:  EaseSmoothstep,
		defaultInitial: defaultInitial,
		now:            time.Now,
	}
}

// SetClock replaces the time source. Tests use it to step animations.
func (tl *Timeline) SetClock(now func() time.Time) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	if now == nil {
		now = time.Now
	}
	tl.now = now
}

// AnimateToWithOptions starts or retargets the animation for key and
// returns the value at this moment. A retarget starts from the current value.
//
//	value := timeline.AnimateToWithOptions(key, target, AnimateOptions{
//	    Duration: 300*time.Millisecond,
//	    Easing: EaseOutCubic,
//	})
func (tl *Timeline) AnimateToWithOptions(key interface{}, target float32, opts AnimateOptions) float32 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	now := tl.now()
	state := tl.states[key]

	if state == nil {
		// Initialize new key
		state = &keyState{
			current:  tl.defaultInitial,
			start:    tl.defaultInitial,
			target:   target,
			duration: opts.Duration,
			easing:   opts.Easing,
		}
		if opts.Easing == nil {
			state.easing = tl.defaultEasing
		}
		tl.states[key] = state

		// If duration is zero, jump to target immediately
		if opts.Duration <= 0 {
			state.current = target
			return target
		}

		state.startTime = now
		return state.current
	}

	// Update existing animation
	// First, compute current value to use as new start
	current := tl.computeValue(state, now)

	// Start new animation from current position
	state.current = current
	state.start = current
	state.target = target
	state.startTime = now
	state.duration = opts.Duration
	if opts.Easing != nil {
		state.easing = opts.Easing
	}

	// If duration is zero or already at target, finish immediately
	if opts.Duration <= 0 || current == target {
		state.current = target
		return target
	}

	return current
}

// Get returns the current animated value for a key
// If the key hasn't been initialized, returns the default initial value
func (tl *Timeline) Get(key interface{}) float32 {
	tl.mu.RLock()
	state := tl.states[key]
	tl.mu.RUnlock()

	if state == nil {
		return tl.defaultInitial
	}

	tl.mu.Lock()
	value := tl.computeValue(state, tl.now())
	state.current = value
	tl.mu.Unlock()

	return value
}

// IsAnimating returns true if the key is currently animating
func (tl *Timeline) IsAnimating(key interface{}) bool {
	tl.mu.RLock()
	defer tl.mu.RUnlock()

	state := tl.states[key]
	if state == nil || state.duration <= 0 {
		return false
	}

	return tl.now().Sub(state.startTime) < state.duration && tl.computeValue(state, tl.now()) != state.target
}

// computeValue calculates the current value for a state at the given time
// Must be called with lock held
func (tl *Timeline) computeValue(state *keyState, now time.Time) float32 {
	if state.duration <= 0 {
		return state.target
	}

	if now.Before(state.startTime) {
		return state.start
	}

	elapsed := now.Sub(state.startTime)
	if elapsed >= state.duration {
		return state.target
	}

	// Calculate progress [0, 1]
	progress := float32(elapsed) / float32(state.duration)
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	// Apply easing function
	easing := state.easing
	if easing == nil {
		easing = tl.defaultEasing
	}
	easedProgress := easing(progress)

	// Interpolate
	return state.start + (state.target-state.start)*easedProgress
}
