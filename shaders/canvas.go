// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shaders/canvas.go
// Summary: Per-pixel effects (ripple, plasma, fractal noise).
// Notes: Pixels are sampled on a virtual 400x300 canvas so thumbnails and the
// expanded view show the same pattern at different resolutions.

package shaders

import (
	"math"

	"github.com/gogpu/gg"
)

const (
	canvasWidth  = 400.0
	canvasHeight = 300.0
)

// pixelFunc returns 0-255 channel values for a point of the virtual canvas.
type pixelFunc func(x, y, t float64) (r, g, b float64)

// pixelEffect adapts a pixelFunc to a RenderFunc.
func pixelEffect(fn pixelFunc) RenderFunc {
	return func(dc *gg.Context, t float64) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		sx := canvasWidth / float64(w)
		sy := canvasHeight / float64(h)
		for py := 0; py < h; py++ {
			y := (float64(py) + 0.5) * sy
			for px := 0; px < w; px++ {
				x := (float64(px) + 0.5) * sx
				r, g, b := fn(x, y, t)
				dc.SetPixel(px, py, gg.RGB(channel(r), channel(g), channel(b)))
			}
		}
	}
}

// channel maps a 0-255 value onto gg's 0-1 range.
func channel(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 1
	}
	return v / 255
}

// Ripple draws concentric blue rings moving outwards from the centre.
func Ripple(id int) *Effect {
	return &Effect{
		ID:   id,
		Name: "Ripple Effect",
		Render: pixelEffect(func(x, y, t float64) (float64, float64, float64) {
			dx := x - canvasWidth/2
			dy := y - canvasHeight/2
			distance := math.Sqrt(dx*dx + dy*dy)
			intensity := math.Sin(distance*0.1-t*5)*127 + 128
			return intensity, intensity, 255
		}),
		SourceName: "ripple.glsl",
		Source: `uniform float time;
uniform vec2 resolution;

void main() {
    vec2 p = gl_FragCoord.xy - resolution * 0.5;
    float intensity = sin(length(p) * 0.1 - time * 5.0) * 0.5 + 0.5;
    gl_FragColor = vec4(intensity, intensity, 1.0, 1.0);
}
`,
	}
}

// PlasmaWave draws a slowly drifting rainbow plasma.
func PlasmaWave(id int) *Effect {
	const third = 2 * math.Pi / 3
	return &Effect{
		ID:   id,
		Name: "Plasma Wave",
		Render: pixelEffect(func(x, y, t float64) (float64, float64, float64) {
			value := math.Sin(x*0.01+t) + math.Sin(y*0.01+t)
			r := math.Sin(value*math.Pi)*127 + 128
			g := math.Sin(value*math.Pi+third)*127 + 128
			b := math.Sin(value*math.Pi+2*third)*127 + 128
			return r, g, b
		}),
		SourceName: "plasma.glsl",
		Source: `uniform float time;

const float PI = 3.14159265;

void main() {
    vec2 p = gl_FragCoord.xy;
    float v = sin(p.x * 0.01 + time) + sin(p.y * 0.01 + time);
    vec3 col = sin(v * PI + vec3(0.0, 2.0 * PI / 3.0, 4.0 * PI / 3.0)) * 0.5 + 0.5;
    gl_FragColor = vec4(col, 1.0);
}
`,
	}
}

// FractalNoise draws a grey interference field that pulses over time.
func FractalNoise(id int) *Effect {
	return &Effect{
		ID:   id,
		Name: "Fractal Noise",
		Render: pixelEffect(func(x, y, t float64) (float64, float64, float64) {
			value := (math.Sin(x*0.01) + math.Sin(y*0.01) + math.Sin(t)) * 0.33
			intensity := (value + 1) * 127.5
			return intensity, intensity, intensity
		}),
		SourceName: "noise.glsl",
		Source: `uniform float time;

void main() {
    vec2 p = gl_FragCoord.xy;
    float v = (sin(p.x * 0.01) + sin(p.y * 0.01) + sin(time)) * 0.33;
    gl_FragColor = vec4(vec3((v + 1.0) * 0.5), 1.0);
}
`,
	}
}
