// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelgallery/main.go
// Summary: Terminal shader gallery with live previews.
// Usage: Run `texelgallery` in a terminal, or `texelgallery -export DIR` to write PNGs.

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/term"

	"github.com/framegrace/texelgallery/apps/gallery"
	"github.com/framegrace/texelgallery/config"
	"github.com/framegrace/texelgallery/internal/devshell"
	"github.com/framegrace/texelgallery/internal/frames"
	"github.com/framegrace/texelgallery/internal/snapshot"
	"github.com/framegrace/texelgallery/shaders"
	"github.com/framegrace/texelgallery/texel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("texelgallery", flag.ContinueOnError)

	fps := fs.Int("fps", 0, "Frame rate (default: gallery.fps from the config file)")
	logPath := fs.String("log", "", "Log file (default: <config dir>/texelgallery.log)")
	list := fs.Bool("list", false, "List the built-in effects and exit")
	reset := fs.Bool("reset-config", false, "Rewrite the config file with default values and exit")

	// Export flags
	exportDir := fs.String("export", "", "Write one PNG per effect into this directory and exit")
	at := fs.Float64("at", 1, "Effect time in seconds for -export")
	size := fs.String("size", "400x300", "Pixel size for -export")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	reg := shaders.Builtins()
	if *list {
		for _, e := range reg.Effects() {
			fmt.Printf("%d\t%-16s\t%s (%s)\n", e.ID, e.Name, e.SourceName, e.Language())
		}
		return nil
	}

	logFile, err := setupLogging(*logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	gg.SetLogger(slog.New(slog.NewTextHandler(log.Writer(), nil)))

	if *reset {
		path, err := resetConfig()
		if err != nil {
			return fmt.Errorf("reset config: %w", err)
		}
		fmt.Println(path)
		return nil
	}

	if err := config.Err(); err != nil {
		log.Printf("Config: %v (using defaults)", err)
	}
	cfg := config.System()
	opts := gallery.OptionsFromConfig(cfg, reg)

	if *exportDir != "" {
		w, h, err := parseSize(*size)
		if err != nil {
			return err
		}
		snap := snapshot.DefaultOptions()
		snap.Width, snap.Height = w, h
		snap.Elapsed = *at
		snap.Palette = opts.Palette
		paths, err := snapshot.ExportAll(*exportDir, reg, snap)
		for _, p := range paths {
			fmt.Println(p)
		}
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal (use -export to write PNGs instead)")
	}

	rate := *fps
	if rate <= 0 {
		rate = cfg.GetInt("gallery", "fps", frames.DefaultFPS)
	}
	devshell.Register("gallery", func(args []string) (texel.App, error) {
		return gallery.New(opts), nil
	})
	return devshell.RunApp("gallery", fs.Args(), devshell.Options{FPS: rate})
}
