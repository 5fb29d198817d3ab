// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/frames/pump.go
// Summary: Ticker that asks the host event loop to flush a Queue at a fixed rate.
// Usage: The devshell posts a tcell interrupt from post; the UI goroutine then calls Flush.
// Notes: The ticker parks while the queue is empty and resumes on the queue wakeup.

package frames

import (
	"log"
	"sync"
	"time"
)

// DefaultFPS is used when a non-positive rate is configured.
const DefaultFPS = 30

// Pump converts wall-clock ticks into flush requests for a Queue.
type Pump struct {
	queue    *Queue
	interval time.Duration
	post     func()

	wake     chan struct{}
	stop     chan struct{}
	done     chan struct{}
	startMu  sync.Mutex
	started  bool
	stopOnce sync.Once
}

// NewPump creates a pump for queue ticking at fps. post is called from the
// pump goroutine and must not block.
func NewPump(queue *Queue, fps int, post func()) *Pump {
	return &Pump{
		queue:    queue,
		interval: Interval(fps),
		post:     post,
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Interval returns the tick period for fps.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Start launches the pump goroutine. Calling Start twice is a no-op.
func (p *Pump) Start() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.started {
		return
	}
	p.started = true
	p.queue.SetWakeup(p.poke)
	log.Printf("Frames: pump started (%v per tick)", p.interval)
	go p.run()
}

// Stop halts the pump and waits for its goroutine to exit.
func (p *Pump) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
		p.queue.SetWakeup(nil)
	})
	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if started {
		<-p.done
	}
}

func (p *Pump) poke() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Pump) run() {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			if p.queue.Pending() == 0 {
				ticker.Stop()
				select {
				case <-p.wake:
					ticker.Reset(p.interval)
				case <-p.stop:
					return
				}
				continue
			}
			if p.post != nil {
				p.post()
			}
		}
	}
}
