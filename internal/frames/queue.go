// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/frames/queue.go
// Summary: Display-refresh style frame queue shared by every preview loop.
// Usage: Loops call Request to receive the next tick; the host calls Flush once per tick.
// Notes: Callbacks registered while a flush is running are delivered on the following flush.

package frames

import (
	"sync"
	"time"
)

// FrameFunc is invoked once with the timestamp of the tick it was delivered on.
type FrameFunc func(now time.Time)

// Handle identifies an outstanding frame request. The zero Handle is never issued.
type Handle uint64

// Scheduler is the host capability preview loops register frames against.
type Scheduler interface {
	Request(fn FrameFunc) Handle
	Cancel(h Handle)
}

// Queue is a Scheduler that delivers pending callbacks when Flush is called.
type Queue struct {
	mu      sync.Mutex
	next    Handle
	pending map[Handle]FrameFunc
	order   []Handle
	wakeup  func()
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{pending: make(map[Handle]FrameFunc)}
}

// SetWakeup installs a callback fired when a request lands on an idle queue.
// Pumps use it to resume ticking without polling.
func (q *Queue) SetWakeup(fn func()) {
	q.mu.Lock()
	q.wakeup = fn
	q.mu.Unlock()
}

// Request registers fn for the next flush.
func (q *Queue) Request(fn FrameFunc) Handle {
	if fn == nil {
		return 0
	}
	q.mu.Lock()
	q.next++
	h := q.next
	wasIdle := len(q.pending) == 0
	q.pending[h] = fn
	q.order = append(q.order, h)
	wake := q.wakeup
	q.mu.Unlock()

	if wasIdle && wake != nil {
		wake()
	}
	return h
}

// Cancel drops a pending request. Unknown or already delivered handles are ignored.
func (q *Queue) Cancel(h Handle) {
	if h == 0 {
		return
	}
	q.mu.Lock()
	delete(q.pending, h)
	q.mu.Unlock()
}

// Pending reports how many requests are waiting for a flush.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush delivers every request registered before the call, in registration
// order, and returns how many callbacks ran. A callback cancelled by an
// earlier callback of the same flush is skipped.
func (q *Queue) Flush(now time.Time) int {
	q.mu.Lock()
	batch := q.order
	q.order = nil
	q.mu.Unlock()

	ran := 0
	for _, h := range batch {
		q.mu.Lock()
		fn, ok := q.pending[h]
		if ok {
			delete(q.pending, h)
		}
		q.mu.Unlock()
		if !ok {
			continue
		}
		fn(now)
		ran++
	}
	q.compact()
	return ran
}

// compact drops handles from order that were cancelled before their flush.
func (q *Queue) compact() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.order) == len(q.pending) {
		return
	}
	kept := q.order[:0]
	for _, h := range q.order {
		if _, ok := q.pending[h]; ok {
			kept = append(kept, h)
		}
	}
	q.order = kept
}
