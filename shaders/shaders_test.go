// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package shaders

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func TestBuiltinsOrderAndIDs(t *testing.T) {
	reg := Builtins()
	want := []string{"Ripple Effect", "Plasma Wave", "Fractal Noise", "Warm Day Meadow"}
	if reg.Len() != len(want) {
		t.Fatalf("expected %d effects, got %d", len(want), reg.Len())
	}
	for i, name := range want {
		e := reg.At(i)
		if e.Name != name || e.ID != i+1 {
			t.Fatalf("effect %d = (%d, %q), want (%d, %q)", i, e.ID, e.Name, i+1, name)
		}
	}
	if reg.First() != 1 {
		t.Fatalf("First() = %d", reg.First())
	}
	if _, ok := reg.ByID(99); ok {
		t.Fatalf("unexpected effect for unknown id")
	}
	if reg.IndexOf(3) != 2 || reg.IndexOf(99) != -1 {
		t.Fatalf("IndexOf mismatch")
	}
}

func TestNewRegistryRejectsBadIDs(t *testing.T) {
	cases := map[string][]*Effect{
		"zero id":   {{ID: 0, Name: "a"}},
		"duplicate": {{ID: 1, Name: "a"}, {ID: 1, Name: "b"}},
		"nil":       {nil},
	}
	for name, effects := range cases {
		if _, err := NewRegistry(effects...); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	empty, err := NewRegistry()
	if err != nil || empty.First() != 0 || empty.At(0) != nil {
		t.Fatalf("empty registry misbehaves: %v", err)
	}
}

func pixels(t *testing.T, e *Effect, w, h int, elapsed float64) []byte {
	t.Helper()
	dc := gg.NewContext(w, h)
	defer dc.Close()
	e.Draw(dc, elapsed)
	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		t.Fatalf("unexpected image type %T", dc.Image())
	}
	return img.Pix
}

func TestEffectsAreDeterministic(t *testing.T) {
	for _, e := range Builtins().Effects() {
		a := pixels(t, e, 24, 12, 1.25)
		b := pixels(t, e, 24, 12, 1.25)
		if !bytes.Equal(a, b) {
			t.Fatalf("%s: same elapsed time produced different frames", e.Name)
		}
	}
}

func TestAnimatedEffectsChangeOverTime(t *testing.T) {
	for _, e := range Builtins().Effects() {
		a := pixels(t, e, 24, 12, 0)
		b := pixels(t, e, 24, 12, 0.7)
		if bytes.Equal(a, b) {
			t.Fatalf("%s: frame did not change with time", e.Name)
		}
	}
}

func TestRippleKeepsBlueChannelSaturated(t *testing.T) {
	pix := pixels(t, Ripple(1), 8, 6, 0.3)
	for i := 0; i < len(pix); i += 4 {
		if pix[i+2] != 255 {
			t.Fatalf("pixel %d blue = %d, want 255", i/4, pix[i+2])
		}
	}
}

func TestFractalNoiseIsGrey(t *testing.T) {
	pix := pixels(t, FractalNoise(3), 8, 6, 2)
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+1] || pix[i+1] != pix[i+2] {
			t.Fatalf("pixel %d not grey: %v", i/4, pix[i:i+3])
		}
	}
}

func TestDrawToleratesMissingSurface(t *testing.T) {
	var e *Effect
	e.Draw(nil, 0)
	Ripple(1).Draw(nil, 0)
}

func TestSourceLanguageAndHighlight(t *testing.T) {
	e := PlasmaWave(2)
	if lang := e.Language(); lang != "GLSL" {
		t.Fatalf("Language() = %q, want GLSL", lang)
	}
	lines := Highlight(e, "")
	want := strings.Count(e.Source, "\n")
	if len(lines) != want {
		t.Fatalf("expected %d highlighted lines, got %d", want, len(lines))
	}
	var first strings.Builder
	for _, sp := range lines[0] {
		first.WriteString(sp.Text)
	}
	if first.String() != "uniform float time;" {
		t.Fatalf("first line = %q", first.String())
	}
	colored := false
	for _, line := range lines {
		for _, sp := range line {
			if sp.HasFG {
				colored = true
			}
		}
	}
	if !colored {
		t.Fatalf("expected at least one coloured token")
	}
}

func TestHighlightWithoutSource(t *testing.T) {
	if lines := Highlight(&Effect{ID: 1}, ""); lines != nil {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
}
