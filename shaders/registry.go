// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shaders/registry.go
// Summary: Effect type and the ordered, immutable registry the gallery displays.
// Usage: Builtins() returns the stock effects; NewRegistry validates custom sets.

package shaders

import (
	"fmt"

	"github.com/gogpu/gg"
)

// RenderFunc draws one frame into dc for the given elapsed seconds. It must
// be deterministic for a given surface size and elapsed time.
type RenderFunc func(dc *gg.Context, elapsed float64)

// Effect is a named animation the gallery can preview.
type Effect struct {
	ID     int
	Name   string
	Render RenderFunc

	// Source is the shader program shown in the expanded view, and
	// SourceName the file name it would live in (used for language detection).
	Source     string
	SourceName string
}

// Draw renders one frame, tolerating a nil surface or render func.
func (e *Effect) Draw(dc *gg.Context, elapsed float64) {
	if e == nil || e.Render == nil || dc == nil {
		return
	}
	e.Render(dc, elapsed)
}

// Registry is an ordered list of effects fixed at construction.
type Registry struct {
	effects []*Effect
	byID    map[int]*Effect
}

// NewRegistry validates ids (positive, unique) and keeps the given order.
func NewRegistry(effects ...*Effect) (*Registry, error) {
	r := &Registry{
		effects: make([]*Effect, 0, len(effects)),
		byID:    make(map[int]*Effect, len(effects)),
	}
	for _, e := range effects {
		if e == nil {
			return nil, fmt.Errorf("shaders: nil effect")
		}
		if e.ID <= 0 {
			return nil, fmt.Errorf("shaders: effect %q has non-positive id %d", e.Name, e.ID)
		}
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("shaders: duplicate effect id %d", e.ID)
		}
		r.effects = append(r.effects, e)
		r.byID[e.ID] = e
	}
	return r, nil
}

// Effects returns the effects in display order. The slice is a copy.
func (r *Registry) Effects() []*Effect {
	out := make([]*Effect, len(r.effects))
	copy(out, r.effects)
	return out
}

// Len returns the number of effects.
func (r *Registry) Len() int { return len(r.effects) }

// At returns the i-th effect in display order.
func (r *Registry) At(i int) *Effect {
	if i < 0 || i >= len(r.effects) {
		return nil
	}
	return r.effects[i]
}

// ByID looks an effect up by id.
func (r *Registry) ByID(id int) (*Effect, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// First returns the first effect's id, or 0 for an empty registry.
func (r *Registry) First() int {
	if len(r.effects) == 0 {
		return 0
	}
	return r.effects[0].ID
}

// IndexOf returns the display position of id, or -1.
func (r *Registry) IndexOf(id int) int {
	for i, e := range r.effects {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Builtins returns the stock gallery effects.
func Builtins() *Registry {
	r, err := NewRegistry(
		Ripple(1),
		PlasmaWave(2),
		FractalNoise(3),
		WarmDayMeadow(4),
	)
	if err != nil {
		panic(err)
	}
	return r
}
