// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/blit/blit.go
// Summary: Converts pixel images into terminal cells, two pixels per cell.
// Usage: Cells(img) for a full image; Draw paints straight into a cell grid.
// Notes: Each cell shows '▀' with the top pixel as foreground and the bottom
// pixel as background. Odd heights repeat the last row.

package blit

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/texel"
)

// HalfBlock is the glyph used for every cell.
const HalfBlock = '▀'

// PixelSize returns the pixel size a surface needs to fill cols x rows cells.
func PixelSize(cols, rows int) (int, int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols, rows * 2
}

// CellSize is the inverse of PixelSize.
func CellSize(width, height int) (int, int) {
	return width, (height + 1) / 2
}

// Cells returns the cell grid for img.
func Cells(img image.Image) [][]texel.Cell {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	cols, rows := CellSize(b.Dx(), b.Dy())
	out := make([][]texel.Cell, rows)
	for y := range out {
		out[y] = make([]texel.Cell, cols)
	}
	Draw(out, 0, 0, img, tcell.StyleDefault)
	return out
}

// Draw paints img into dst with its top-left cell at (x, y), clipping to
// dst. base supplies attributes other than the colours.
func Draw(dst [][]texel.Cell, x, y int, img image.Image, base tcell.Style) {
	if img == nil {
		return
	}
	b := img.Bounds()
	cols, rows := CellSize(b.Dx(), b.Dy())
	rgba, _ := img.(*image.RGBA)
	for cy := 0; cy < rows; cy++ {
		ty := y + cy
		if ty < 0 || ty >= len(dst) {
			continue
		}
		row := dst[ty]
		py := b.Min.Y + cy*2
		pyBottom := py + 1
		if pyBottom >= b.Max.Y {
			pyBottom = py
		}
		for cx := 0; cx < cols; cx++ {
			tx := x + cx
			if tx < 0 || tx >= len(row) {
				continue
			}
			px := b.Min.X + cx
			top := pixel(img, rgba, px, py)
			bottom := pixel(img, rgba, px, pyBottom)
			row[tx] = texel.Cell{
				Ch:    HalfBlock,
				Style: base.Foreground(top).Background(bottom),
			}
		}
	}
}

func pixel(img image.Image, rgba *image.RGBA, x, y int) tcell.Color {
	if rgba != nil {
		c := rgba.RGBAAt(x, y)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
