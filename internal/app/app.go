package app

import (
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qpage/internal/config"
	"github.com/kobzarvs/qpage/internal/document"
	"github.com/kobzarvs/qpage/internal/logger"
	"github.com/kobzarvs/qpage/internal/pager"
)

// App is the top-level runtime for qpage.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

// Run loads the document, acquires the terminal and drives the
// blocking event loop until a quit key arrives. Exactly one repaint
// follows each recognized event; everything else is skipped.
func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log.Debug); err != nil {
		return err
	}
	defer logger.Close()

	var doc *document.Document
	if len(a.args) > 0 {
		doc, err = document.Load(a.args[0])
	} else {
		doc, err = document.Read(os.Stdin)
	}
	if err != nil {
		return err
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.EnableMouse()
	defer s.Fini()

	p := pager.New(doc, cfg)
	logger.Info("qpage started", "lines", doc.Len(), "args", len(a.args))

	p.Render(s)
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyUp:
				p.ScrollDown(1)
			case ev.Key() == tcell.KeyDown:
				p.ScrollUp(1)
			case ev.Key() == tcell.KeyPgUp:
				_, h := s.Size()
				p.ScrollDown(h * cfg.Pager.PageJump)
			case ev.Key() == tcell.KeyPgDn:
				_, h := s.Size()
				p.ScrollUp(h * cfg.Pager.PageJump)
			case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				p.ToggleSpotlight()
				logger.Debug("spotlight toggled", "enabled", p.Spotlight())
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				logger.Info("quit")
				return nil
			default:
				continue
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			p.SetPointer(x, y)
			switch ev.Buttons() {
			case tcell.WheelUp:
				p.ScrollUp(cfg.Pager.WheelStep)
			case tcell.WheelDown:
				p.ScrollDown(cfg.Pager.WheelStep)
			}
		default:
			// Resize is deliberately unhandled; the next repaint picks
			// up the new size anyway.
			continue
		}
		p.Render(s)
	}
}
