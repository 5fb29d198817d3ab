// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/snapshot/snapshot.go
// Summary: Renders effects at a fixed time into PNG files.
// Usage: texelgallery -export DIR writes one captioned PNG per registry entry.

package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/framegrace/texelgallery/internal/theming"
	"github.com/framegrace/texelgallery/shaders"
)

// captionHeight is the height of the name strip in pixels.
const captionHeight = 18

// Options control a snapshot.
type Options struct {
	Width, Height int
	// Elapsed is the effect time in seconds.
	Elapsed float64
	// Caption appends a strip with the effect name below the frame.
	Caption bool
	Palette theming.Palette
}

// DefaultOptions matches the virtual canvas of the per-pixel effects.
func DefaultOptions() Options {
	return Options{Width: 400, Height: 300, Elapsed: 1, Caption: true, Palette: theming.Default()}
}

// Render draws e at opts.Elapsed and returns the resulting image.
func Render(e *shaders.Effect, opts Options) (*image.RGBA, error) {
	if e == nil {
		return nil, fmt.Errorf("snapshot: nil effect")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("snapshot: invalid size %dx%d", opts.Width, opts.Height)
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()
	e.Draw(dc, opts.Elapsed)
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", e.Name, err)
	}
	frame := dc.Image()

	h := opts.Height
	if opts.Caption {
		h += captionHeight
	}
	out := image.NewRGBA(image.Rect(0, 0, opts.Width, h))
	draw.Draw(out, frame.Bounds(), frame, image.Point{}, draw.Src)
	if opts.Caption {
		drawCaption(out, opts, fmt.Sprintf("%s  t=%.2fs", e.Name, opts.Elapsed))
	}
	return out, nil
}

func drawCaption(dst *image.RGBA, opts Options, text string) {
	strip := image.Rect(0, opts.Height, opts.Width, opts.Height+captionHeight)
	draw.Draw(dst, strip, image.NewUniform(rgba(opts.Palette.Background)), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(rgba(opts.Palette.Foreground)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, opts.Height+captionHeight-5),
	}
	d.DrawString(text)
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Encode writes e as a PNG.
func Encode(w io.Writer, e *shaders.Effect, opts Options) error {
	img, err := Render(e, opts)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	return dc.EncodePNG(w)
}

// FileName returns the export name for e, e.g. "02-plasma-wave.png".
func FileName(e *shaders.Effect) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(e.Name))
	return fmt.Sprintf("%02d-%s.png", e.ID, slug)
}

// ExportAll writes one PNG per effect of reg into dir and returns the paths
// written so far. The first failure stops the export.
func ExportAll(dir string, reg *shaders.Registry, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	var written []string
	for _, e := range reg.Effects() {
		path := filepath.Join(dir, FileName(e))
		if err := writeFile(path, e, opts); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, e *shaders.Effect, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, e, opts); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
