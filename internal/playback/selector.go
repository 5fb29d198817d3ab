// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/playback/selector.go
// Summary: Page-lifetime selection of the single effect that is animating.
// Usage: The gallery writes it on click, hover and modal toggle; previews read it every render.
// Notes: Ids are not validated. An id absent from the registry simply means nothing plays.

package playback

import "sync"

// None marks "nothing playing".
const None = 0

// Selector holds the id of the currently playing effect.
type Selector struct {
	mu        sync.RWMutex
	current   int
	nextSub   int
	listeners map[int]func(current int)
}

// NewSelector starts with initial playing. Pass the first registry id to open
// the gallery with one animation running.
func NewSelector(initial int) *Selector {
	return &Selector{
		current:   initial,
		listeners: make(map[int]func(int)),
	}
}

// Current returns the playing id, or None.
func (s *Selector) Current() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsPlaying reports whether id is the selection. None is never playing.
func (s *Selector) IsPlaying(id int) bool {
	if id == None {
		return false
	}
	return s.Current() == id
}

// SelectAndPlay makes id the playing effect (click on a tile).
func (s *Selector) SelectAndPlay(id int) {
	s.set(id)
}

// SetHoverTarget makes id the playing effect (pointer entered a tile). There
// is no counterpart for leaving a tile: the last hovered or
// clicked effect keeps playing until another selection event.
func (s *Selector) SetHoverTarget(id int) {
	s.set(id)
}

// TogglePlayForModal pauses modalID if it is playing, otherwise plays it.
func (s *Selector) TogglePlayForModal(modalID int) {
	s.mu.Lock()
	if s.current == modalID {
		s.current = None
	} else {
		s.current = modalID
	}
	current := s.current
	listeners := s.snapshotLocked()
	s.mu.Unlock()
	notify(listeners, current)
}

// Subscribe registers fn to run after every write. The returned func removes it.
func (s *Selector) Subscribe(fn func(current int)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Selector) set(id int) {
	s.mu.Lock()
	s.current = id
	listeners := s.snapshotLocked()
	s.mu.Unlock()
	notify(listeners, id)
}

func (s *Selector) snapshotLocked() []func(int) {
	if len(s.listeners) == 0 {
		return nil
	}
	out := make([]func(int), 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []func(int), current int) {
	for _, fn := range listeners {
		fn(current)
	}
}
