// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app_lifecycle.go
// Summary: Runs an app's Run loop in-process and reports its exit.

package texel

import "sync"

// LocalAppLifecycle runs apps in-process on the local machine. It spawns each
// app's Run loop in a goroutine and delegates Stop calls directly.
type LocalAppLifecycle struct {
	wg sync.WaitGroup
}

// StartApp launches the app's Run method asynchronously. The returned channel
// receives Run's result once and is then closed.
func (l *LocalAppLifecycle) StartApp(app App) <-chan error {
	done := make(chan error, 1)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer close(done)
		done <- app.Run()
	}()
	return done
}

// StopApp forwards the stop request to the app implementation.
func (l *LocalAppLifecycle) StopApp(app App) {
	app.Stop()
}

// Wait blocks until all started apps have exited. Primarily useful for tests.
func (l *LocalAppLifecycle) Wait() {
	l.wg.Wait()
}
