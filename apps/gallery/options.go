// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gallery/options.go
// Summary: Gallery options and their mapping from the config store.

package gallery

import (
	"time"

	"github.com/framegrace/texelgallery/config"
	"github.com/framegrace/texelgallery/internal/theming"
	"github.com/framegrace/texelgallery/shaders"
)

// Options configure a Gallery.
type Options struct {
	Registry *shaders.Registry
	Palette  theming.Palette

	Title  string
	Handle string
	About  string

	// TileRows is the height of a thumbnail in cell rows.
	TileRows int
	// Columns is the preferred number of tile columns; narrow screens use fewer.
	Columns    int
	ShowSource bool

	BackdropDim float64
	Fade        time.Duration
}

// DefaultOptions returns options for the built-in effects.
func DefaultOptions() Options {
	return Options{
		Registry:    shaders.Builtins(),
		Palette:     theming.Default(),
		Title:       "FLOGUO LABS",
		Handle:      "X: @floguo",
		About:       "A collection of shader experiments",
		TileRows:    8,
		Columns:     2,
		ShowSource:  true,
		BackdropDim: 0.6,
		Fade:        180 * time.Millisecond,
	}
}

// OptionsFromConfig reads the gallery, theme and modal sections.
func OptionsFromConfig(cfg config.Config, reg *shaders.Registry) Options {
	opts := DefaultOptions()
	if reg != nil {
		opts.Registry = reg
	}
	opts.Palette = theming.FromConfig(cfg)
	opts.Title = cfg.GetString("gallery", "title", opts.Title)
	opts.Handle = cfg.GetString("gallery", "handle", opts.Handle)
	opts.About = cfg.GetString("gallery", "about", opts.About)
	opts.TileRows = cfg.GetInt("gallery", "tile_rows", opts.TileRows)
	opts.Columns = cfg.GetInt("gallery", "columns", opts.Columns)
	opts.ShowSource = cfg.GetBool("gallery", "show_source", opts.ShowSource)
	opts.BackdropDim = cfg.GetFloat("modal", "backdrop_dim", opts.BackdropDim)
	opts.Fade = cfg.GetMillis("modal", "fade_ms", opts.Fade)
	return opts
}

func (o *Options) normalize() {
	if o.Registry == nil {
		o.Registry = shaders.Builtins()
	}
	if o.TileRows < 2 {
		o.TileRows = 2
	}
	if o.Columns < 1 {
		o.Columns = 1
	}
}
