package pager

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one styled character of a rendered frame. Cells are plain
// values, produced fresh on every repaint.
type Cell struct {
	Ch rune
	Fg tcell.Color
	Bg tcell.Color
}

// Frame renders the current state into a w*h grid of cells, row-major.
// It is a pure function of the pager state and the grid size.
func (p *Pager) Frame(w, h int) []Cell {
	if w <= 0 || h <= 0 {
		return nil
	}

	cells := make([]Cell, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells[y*w+x] = p.cell(x, y, ' ')
		}
	}

	// The subtraction is skipped when it would underflow; the raw
	// offset is kept instead of clamping to zero.
	raw := p.doc.Len() - p.pos
	skip := raw
	if hm := h - 1; raw >= hm {
		skip = raw - hm
	}

	x, y := 0, 0
	for i := skip; i < p.doc.Len(); i++ {
		if y >= h {
			break
		}
		for _, ch := range p.doc.Line(i) {
			if x >= w {
				x = 0
				y++
			}
			if y < h {
				cells[y*w+x] = p.cell(x, y, ch)
			}
			x++
		}
		// fill in the rest of the row
		for x < w {
			if y < h {
				cells[y*w+x] = p.cell(x, y, ' ')
			}
			x++
		}
		x = 0
		y++
	}

	return cells
}

// Render recomputes the full frame at the screen's current size and
// pushes it to the screen.
func (p *Pager) Render(s tcell.Screen) {
	w, h := s.Size()
	cells := p.Frame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
			s.SetContent(x, y, c.Ch, nil, style)
		}
	}
	s.Show()
}
