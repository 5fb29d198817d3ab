// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a texel.App inside a local tcell screen with a frame pump.
// Usage: cmd/texelgallery calls Run with the gallery builder.
// Notes: Frame callbacks, input and rendering all happen on the goroutine
// that calls Run. The pump only posts interrupts.

package devshell

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/internal/frames"
	"github.com/framegrace/texelgallery/texel"
)

// Builder constructs a texel.App, optionally using CLI args.
type Builder func(args []string) (texel.App, error)

// Options tune the runner.
type Options struct {
	// FPS is the frame pump rate. Zero selects frames.DefaultFPS.
	FPS int
}

var registry = map[string]Builder{}

// Register makes a builder available to RunApp.
func Register(name string, b Builder) {
	registry[name] = b
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// frameTick marks interrupts posted by the pump.
type frameTick struct{}

// quitRequest marks interrupts posted by an app asking to close.
type quitRequest struct{}

// Run executes the provided builder inside a local tcell screen.
func Run(builder Builder, args []string, opts Options) error {
	app, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.DisableMouse()

	queue := frames.NewQueue()
	pump := frames.NewPump(queue, opts.FPS, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(frameTick{}))
	})
	if fa, ok := app.(texel.FrameAware); ok {
		fa.SetFrameScheduler(queue)
	}
	if cr, ok := app.(texel.CloseRequester); ok {
		cr.SetCloseRequester(func() {
			_ = screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
		})
	}

	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)
	width, height := screen.Size()
	app.Resize(width, height)

	draw := func() {
		buffer := app.Render()
		screen.Clear()
		for y, row := range buffer {
			for x, cell := range row {
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		screen.Show()
	}

	var lifecycle texel.LocalAppLifecycle
	runErr := lifecycle.StartApp(app)
	defer lifecycle.Wait()
	defer lifecycle.StopApp(app)

	pump.Start()
	defer pump.Stop()

	stopRefresh := make(chan struct{})
	defer close(stopRefresh)
	go func() {
		for {
			select {
			case <-refreshCh:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-stopRefresh:
				return
			}
		}
	}()

	draw()
	log.Printf("Devshell: running %q at %v per frame", app.GetTitle(), frames.Interval(opts.FPS))

	for {
		select {
		case err := <-runErr:
			return err
		default:
		}

		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			switch tev.Data().(type) {
			case frameTick:
				queue.Flush(time.Now())
			case quitRequest:
				return nil
			}
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			app.HandleKey(tev)
			draw()
		case *tcell.EventMouse:
			if mh, ok := app.(texel.MouseHandler); ok {
				mh.HandleMouse(tev)
				draw()
			}
		}
	}
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string, opts Options) error {
	buildApp, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	return Run(buildApp, args, opts)
}
