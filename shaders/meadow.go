// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shaders/meadow.go
// Summary: Warm Day Meadow, a small composed scene (sky, rays, sun, pollen).
// Notes: Layers are evaluated in uv space (origin bottom-left, y up) and blended
// additively over the sky like the original material stack.

package shaders

import (
	"math"
	"math/rand"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// layer shades one uv point over the colour produced by the layers below it.
type layer interface {
	shade(u, v, t float64, below gg.RGBA) gg.RGBA
}

// sprite is drawn with vector paths after all layers were shaded.
type sprite interface {
	draw(dc *gg.Context, t float64)
}

// scene is an ordered stack of layers followed by sprites.
type scene struct {
	layers  []layer
	sprites []sprite
}

func (s *scene) render(dc *gg.Context, t float64) {
	w, h := dc.Width(), dc.Height()
	if w <= 0 || h <= 0 {
		return
	}
	for py := 0; py < h; py++ {
		v := 1 - (float64(py)+0.5)/float64(h)
		for px := 0; px < w; px++ {
			u := (float64(px) + 0.5) / float64(w)
			c := gg.Black
			for _, l := range s.layers {
				c = l.shade(u, v, t, c)
			}
			c.A = 1
			dc.SetPixel(px, py, c)
		}
	}
	for _, sp := range s.sprites {
		sp.draw(dc, t)
	}
}

type skyLayer struct {
	brush *gg.LinearGradientBrush
}

func newSkyLayer() *skyLayer {
	horizon := colorful.Color{R: 0.9, G: 0.8, B: 0.7}
	sky := colorful.Color{R: 0.4, G: 0.7, B: 1.0}
	mid := horizon.BlendRgb(sky, 0.5)
	// The gradient runs from v=0.2 (horizon) to v=0.8 (open sky).
	brush := gg.NewLinearGradientBrush(0, 0.2, 0, 0.8).
		AddColorStop(0, toRGBA(horizon)).
		AddColorStop(0.5, toRGBA(mid)).
		AddColorStop(1, toRGBA(sky))
	return &skyLayer{brush: brush}
}

func (l *skyLayer) shade(u, v, _ float64, _ gg.RGBA) gg.RGBA {
	return l.brush.ColorAt(u, v)
}

type sunRaysLayer struct {
	cx, cy float64
}

func (l *sunRaysLayer) shade(u, v, t float64, below gg.RGBA) gg.RGBA {
	dist := math.Hypot(u-l.cx, v-l.cy)
	angle := math.Atan2(v-l.cy, u-l.cx)
	rays := math.Sin(angle*8+t)*0.5 + 0.5
	opacity := rays * smoothstep(0.5, 0.2, dist) * 0.3
	return addRGB(below, 1.0*opacity, 0.9*opacity, 0.5*opacity)
}

type sunLayer struct {
	cx, cy float64
}

func (l *sunLayer) shade(u, v, _ float64, below gg.RGBA) gg.RGBA {
	circle := smoothstep(0.2, 0.19, math.Hypot(u-l.cx, v-l.cy))
	return addRGB(below, 1.0*circle, 0.8*circle, 0.2*circle)
}

type pollen struct {
	u, v, phase float64
}

type pollenSprite struct {
	motes []pollen
	brush gg.Brush
}

func newPollenSprite(count int, seed int64) *pollenSprite {
	rng := rand.New(rand.NewSource(seed))
	motes := make([]pollen, count)
	for i := range motes {
		motes[i] = pollen{
			u:     rng.Float64(),
			v:     rng.Float64() * 0.5,
			phase: rng.Float64() * 2 * math.Pi,
		}
	}
	return &pollenSprite{
		motes: motes,
		brush: gg.Solid(gg.RGBA2(1, 1, 0.88, 0.85)),
	}
}

func (s *pollenSprite) draw(dc *gg.Context, t float64) {
	w, h := float64(dc.Width()), float64(dc.Height())
	radius := math.Max(0.6, w/160)
	sway := math.Sin(t*0.2) * 0.02
	dc.SetFillBrush(s.brush)
	for _, m := range s.motes {
		u := m.u + math.Sin(t*0.5+m.phase)*0.02
		v := m.v + sway
		dc.DrawCircle(u*w, (1-v)*h, radius)
	}
	_ = dc.Fill()
}

// WarmDayMeadow is a warm sky with a glowing sun, turning rays and drifting pollen.
func WarmDayMeadow(id int) *Effect {
	sc := &scene{
		layers: []layer{
			newSkyLayer(),
			&sunRaysLayer{cx: 0.5, cy: 0.6},
			&sunLayer{cx: 0.5, cy: 0.6},
		},
		sprites: []sprite{newPollenSprite(120, 7)},
	}
	return &Effect{
		ID:         id,
		Name:       "Warm Day Meadow",
		Render:     sc.render,
		SourceName: "sun_rays.glsl",
		Source: `uniform float time;
uniform vec2 resolution;
varying vec2 vUv;

void main() {
    vec2 center = vec2(0.5, 0.6);
    float dist = distance(vUv, center);
    float angle = atan(vUv.y - center.y, vUv.x - center.x);
    float rays = sin(angle * 8.0 + time) * 0.5 + 0.5;
    float opacity = rays * smoothstep(0.5, 0.2, dist);
    vec3 rayColor = vec3(1.0, 0.9, 0.5);
    gl_FragColor = vec4(rayColor, opacity * 0.3);
}
`,
	}
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func addRGB(c gg.RGBA, r, g, b float64) gg.RGBA {
	return gg.RGBA{
		R: math.Min(1, c.R+r),
		G: math.Min(1, c.G+g),
		B: math.Min(1, c.B+b),
		A: c.A,
	}
}

func toRGBA(c colorful.Color) gg.RGBA {
	r, g, b := c.Clamped().RGB255()
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}
