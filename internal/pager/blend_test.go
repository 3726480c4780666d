package pager

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSpotlightOffUsesFixedPalette(t *testing.T) {
	p := newTestPager("abc")
	cells := p.Frame(3, 1)
	parchment := tcell.NewRGBColor(0xF0, 0xE6, 0x8C)
	for i, c := range cells {
		if c.Bg != parchment {
			t.Fatalf("cell %d bg = %v, want parchment", i, c.Bg)
		}
	}
}

func TestSpotlightFarPointerSaturates(t *testing.T) {
	p := newTestPager("abc", "def")
	p.ToggleSpotlight()
	p.SetPointer(1000, 1000)

	want := fromColorful(p.parchmentRGB.BlendRgb(p.shadowRGB, 0.25))
	cells := p.Frame(3, 2)
	for i, c := range cells {
		if c.Bg != want {
			t.Fatalf("cell %d bg = %v, want saturated blend %v", i, c.Bg, want)
		}
	}
}

func TestSpotlightDistanceFloorMakesTintUniform(t *testing.T) {
	// The 1.5 distance floor saturates the lerp parameter even at the
	// pointer cell itself, so the cell under the pointer gets the same
	// background as one far away.
	p := newTestPager("abc", "def")
	p.ToggleSpotlight()
	p.SetPointer(0, 0)

	cells := p.Frame(3, 2)
	under := cells[0].Bg
	far := cells[1*3+2].Bg
	if under != far {
		t.Fatalf("bg under pointer %v != far bg %v", under, far)
	}
}

func TestSpotlightForegroundStaysInk(t *testing.T) {
	p := newTestPager("abc")
	p.ToggleSpotlight()
	ink := tcell.NewRGBColor(0, 0, 0)
	for i, c := range p.Frame(3, 1) {
		if c.Fg != ink {
			t.Fatalf("cell %d fg = %v, want ink", i, c.Fg)
		}
	}
}

func TestLerpSaturates(t *testing.T) {
	if got := lerp(0, 0.25, -1); got != 0 {
		t.Fatalf("lerp(-1) = %v, want 0", got)
	}
	if got := lerp(0, 0.25, 0.5); got != 0.125 {
		t.Fatalf("lerp(0.5) = %v, want 0.125", got)
	}
	if got := lerp(0, 0.25, 7); got != 0.25 {
		t.Fatalf("lerp(7) = %v, want 0.25", got)
	}
}

func TestParseColor(t *testing.T) {
	if got := parseColor("#102030", tcell.ColorBlack); got != tcell.NewRGBColor(0x10, 0x20, 0x30) {
		t.Fatalf("parseColor hex = %v", got)
	}
	if got := parseColor("", tcell.ColorRed); got != tcell.ColorRed {
		t.Fatalf("parseColor empty = %v, want fallback", got)
	}
	if got := parseColor("#zzzzzz", tcell.ColorRed); got != tcell.ColorRed {
		t.Fatalf("parseColor garbage = %v, want fallback", got)
	}
}
