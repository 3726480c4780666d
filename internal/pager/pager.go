package pager

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/kobzarvs/qpage/internal/config"
	"github.com/kobzarvs/qpage/internal/document"
)

// Pager holds the whole viewport state: the scroll cursor, the
// spotlight flag and the last observed pointer position. It is
// mutated only by the four operations below, one per input event.
type Pager struct {
	doc      *document.Document
	pos      int
	enabled  bool
	pointerX int
	pointerY int

	ink          tcell.Color
	parchment    tcell.Color
	parchmentRGB colorful.Color
	shadowRGB    colorful.Color
	aspectX      float64
	aspectY      float64
	minDistance  float64
	maxBlend     float64
}

// New builds a Pager over doc. The scroll cursor starts at the line
// count, which places the view at the top of the document.
func New(doc *document.Document, cfg config.Config) *Pager {
	ink := parseColor(cfg.Theme.Ink, tcell.ColorBlack)
	parchment := parseColor(cfg.Theme.Parchment, tcell.ColorKhaki)
	shadow := parseColor(cfg.Theme.Shadow, tcell.ColorDarkGray)
	return &Pager{
		doc:          doc,
		pos:          doc.Len(),
		ink:          ink,
		parchment:    parchment,
		parchmentRGB: toColorful(parchment),
		shadowRGB:    toColorful(shadow),
		aspectX:      cfg.Spotlight.AspectX,
		aspectY:      cfg.Spotlight.AspectY,
		minDistance:  cfg.Spotlight.MinDistance,
		maxBlend:     cfg.Spotlight.MaxBlend,
	}
}

// ScrollUp moves the scroll cursor toward 0, saturating there.
func (p *Pager) ScrollUp(delta int) {
	p.pos -= delta
	if p.pos < 0 {
		p.pos = 0
	}
}

// ScrollDown moves the scroll cursor toward the line count, saturating there.
func (p *Pager) ScrollDown(delta int) {
	p.pos += delta
	if p.pos > p.doc.Len() {
		p.pos = p.doc.Len()
	}
}

// ToggleSpotlight flips the spotlight mode.
func (p *Pager) ToggleSpotlight() {
	p.enabled = !p.enabled
}

// SetPointer records the pointer position in grid coordinates.
func (p *Pager) SetPointer(x, y int) {
	p.pointerX = x
	p.pointerY = y
}

func (p *Pager) Pos() int {
	return p.pos
}

func (p *Pager) Spotlight() bool {
	return p.enabled
}

func (p *Pager) Pointer() (int, int) {
	return p.pointerX, p.pointerY
}
