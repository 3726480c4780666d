package pager

import (
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// cell colors one character at grid position (x, y). Outside spotlight
// mode every cell gets the fixed ink-on-parchment style.
func (p *Pager) cell(x, y int, ch rune) Cell {
	if !p.enabled {
		return Cell{Ch: ch, Fg: p.ink, Bg: p.parchment}
	}

	dx := float64(x-p.pointerX) * p.aspectX
	dy := float64(y-p.pointerY) * p.aspectY

	// Square root of the Euclidean length, not the squared distance.
	// With the default 1.5 floor the lerp parameter below is always
	// saturated, so the tint comes out uniform.
	dist := math.Sqrt(math.Hypot(dx, dy))
	if dist < p.minDistance {
		dist = p.minDistance
	}
	blend := lerp(0, p.maxBlend, dist)

	bg := p.parchmentRGB.BlendRgb(p.shadowRGB, blend)
	return Cell{Ch: ch, Fg: p.ink, Bg: fromColorful(bg)}
}

// lerp interpolates between lo and hi, saturating t into [0, 1].
func lerp(lo, hi, t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lo + (hi-lo)*t
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
