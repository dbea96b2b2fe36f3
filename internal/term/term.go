// Package term runs the game in a terminal with tcell. Every board cell
// is drawn two columns wide so the grid looks square.
package term

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"snakearcade/internal/flow"
	"snakearcade/internal/game"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleApple  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePrompt = tcell.StyleDefault.Foreground(tcell.ColorWhite).Underline(true)
	styleBoard  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

type Options struct {
	Board   game.Board
	Store   flow.Store
	Cues    game.Cues
	Rand    *rand.Rand
	Now     func() time.Time
	GameTPS int
	MenuTPS int
}

type Terminal struct {
	screen   tcell.Screen
	board    game.Board
	director *flow.Director
	score    int
}

// New builds a terminal frontend on an initialised screen.
func New(screen tcell.Screen, opts Options) *Terminal {
	t := &Terminal{screen: screen, board: opts.Board}
	t.director = flow.NewDirector(flow.Deps{
		Board:   opts.Board,
		Cues:    opts.Cues,
		Display: t,
		Store:   opts.Store,
		Rand:    opts.Rand,
		Now:     opts.Now,
		GameTPS: opts.GameTPS,
		MenuTPS: opts.MenuTPS,
	})
	return t
}

func (t *Terminal) Director() *flow.Director { return t.director }
func (t *Terminal) ShowScore(total int)      { t.score = total }

// Run drives the director from a ticker at the current scene's rate until
// the player quits.
func (t *Terminal) Run() error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pump(t.screen, events, done)

	rate := t.director.Scene().TPS()
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()
	t.Draw()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := t.Handle(ev)
			if err != nil || quit {
				return err
			}
		case <-ticker.C:
			if err := t.director.Tick(); err != nil {
				if errors.Is(err, flow.ErrQuit) {
					return nil
				}
				return err
			}
		}
		if r := t.director.Scene().TPS(); r != rate {
			rate = r
			ticker.Reset(time.Second / time.Duration(rate))
			log.Debug().Int("tps", rate).Msg("tick rate changed")
		}
		t.Draw()
	}
}

// pump forwards screen events until the screen is finalised or done is
// closed.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Handle applies one terminal event and reports whether the game should
// end.
func (t *Terminal) Handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}
		err := t.director.Press(mapKey(ev))
		if errors.Is(err, flow.ErrQuit) {
			return true, nil
		}
		return false, err
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false, nil
}

func mapKey(ev *tcell.EventKey) flow.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return flow.KeyUp
	case tcell.KeyDown:
		return flow.KeyDown
	case tcell.KeyLeft:
		return flow.KeyLeft
	case tcell.KeyRight:
		return flow.KeyRight
	case tcell.KeyEscape:
		return flow.KeyEscape
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return flow.KeyUp
		case 's', 'S':
			return flow.KeyDown
		case 'a', 'A':
			return flow.KeyLeft
		case 'd', 'D':
			return flow.KeyRight
		}
	}
	return flow.KeyOther
}
