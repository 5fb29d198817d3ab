package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgallery/texel"
)

func newBuf(w, h int) [][]texel.Cell {
	buf := make([][]texel.Cell, h)
	for y := range buf {
		buf[y] = make([]texel.Cell, w)
	}
	return buf
}

func TestPainterRespectsClip(t *testing.T) {
	buf := newBuf(5, 3)
	p := NewPainter(buf, Rect{X: 1, Y: 1, W: 2, H: 1})
	p.Fill(Rect{W: 5, H: 3}, '#', tcell.StyleDefault)
	count := 0
	for _, row := range buf {
		for _, c := range row {
			if c.Ch == '#' {
				count++
			}
		}
	}
	if count != 2 || buf[1][1].Ch != '#' || buf[1][2].Ch != '#' {
		t.Fatalf("fill escaped clip, %d cells", count)
	}
}

func TestPainterWideRunes(t *testing.T) {
	buf := newBuf(4, 1)
	p := NewPainter(buf, Rect{W: 4, H: 1})
	if n := p.DrawText(0, 0, "日a", tcell.StyleDefault); n != 3 {
		t.Fatalf("DrawText width = %d", n)
	}
	if buf[0][0].Ch != '日' || buf[0][1].Ch != ' ' || buf[0][2].Ch != 'a' {
		t.Fatalf("unexpected cells %q %q %q", buf[0][0].Ch, buf[0][1].Ch, buf[0][2].Ch)
	}
}

func TestMapStylesAndRectHelpers(t *testing.T) {
	buf := newBuf(3, 3)
	p := NewPainter(buf, Rect{W: 3, H: 3})
	p.MapStyles(Rect{X: 1, Y: 1, W: 5, H: 5}, func(s tcell.Style) tcell.Style { return s.Bold(true) })
	_, _, attr := buf[2][2].Style.Decompose()
	if attr&tcell.AttrBold == 0 {
		t.Fatalf("style not mapped")
	}
	_, _, attr = buf[0][0].Style.Decompose()
	if attr&tcell.AttrBold != 0 {
		t.Fatalf("style mapped outside rect")
	}

	r := Rect{X: 0, Y: 0, W: 10, H: 6}
	if c := r.Centered(4, 2); c != (Rect{X: 3, Y: 2, W: 4, H: 2}) {
		t.Fatalf("Centered = %+v", c)
	}
	if in := r.Inset(1); in != (Rect{X: 1, Y: 1, W: 8, H: 4}) {
		t.Fatalf("Inset = %+v", in)
	}
	if !r.Intersect(Rect{X: 20, Y: 20, W: 1, H: 1}).Empty() {
		t.Fatalf("disjoint rects should not intersect")
	}
}
