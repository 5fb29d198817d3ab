// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package blit

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/texel"
)

func TestCellsMapsTopAndBottomPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{G: 255, A: 255})
	img.SetRGBA(1, 2, color.RGBA{B: 255, A: 255})

	cells := Cells(img)
	if len(cells) != 2 || len(cells[0]) != 2 {
		t.Fatalf("unexpected grid %dx%d", len(cells[0]), len(cells))
	}
	fg, bg, _ := cells[0][0].Style.Decompose()
	if cells[0][0].Ch != HalfBlock {
		t.Fatalf("expected half block, got %q", cells[0][0].Ch)
	}
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 255, 0) {
		t.Fatalf("cell (0,0) fg=%v bg=%v", fg, bg)
	}
	// Odd height: the last row repeats its only pixel.
	fg, bg, _ = cells[1][1].Style.Decompose()
	if fg != tcell.NewRGBColor(0, 0, 255) || bg != fg {
		t.Fatalf("cell (1,1) fg=%v bg=%v", fg, bg)
	}
}

func TestDrawClipsToDestination(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dst := make([][]texel.Cell, 2)
	for i := range dst {
		dst[i] = make([]texel.Cell, 3)
	}
	Draw(dst, 1, 1, img, tcell.StyleDefault)
	if dst[0][0].Ch != 0 || dst[1][0].Ch != 0 {
		t.Fatalf("cells outside the target were touched")
	}
	if dst[1][1].Ch != HalfBlock || dst[1][2].Ch != HalfBlock {
		t.Fatalf("expected blitted cells at row 1")
	}
}

func TestDrawAcceptsGenericImages(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 2))
	img.SetGray(0, 0, color.Gray{Y: 200})
	cells := Cells(img)
	fg, _, _ := cells[0][0].Style.Decompose()
	if fg != tcell.NewRGBColor(200, 200, 200) {
		t.Fatalf("gray pixel mapped to %v", fg)
	}
}

func TestPixelSizeRoundTrip(t *testing.T) {
	w, h := PixelSize(10, 4)
	if w != 10 || h != 8 {
		t.Fatalf("PixelSize = %dx%d", w, h)
	}
	if c, r := CellSize(w, h); c != 10 || r != 4 {
		t.Fatalf("CellSize = %dx%d", c, r)
	}
}
