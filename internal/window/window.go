// Package window runs the game in a desktop window with ebiten.
package window

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"snakearcade/internal/asset"
	"snakearcade/internal/flow"
	"snakearcade/internal/game"
	"snakearcade/internal/panel"
)

const tps = 60

type Options struct {
	Width   int
	Height  int
	Board   game.Board
	Store   flow.Store
	Loader  *asset.Loader
	Rand    *rand.Rand
	Now     func() time.Time
	GameTPS int
	MenuTPS int

	DebugOverlay bool
}

// Window implements ebiten.Game on top of a flow.Director.
type Window struct {
	opts     Options
	director *flow.Director
	fonts    *panel.Fonts
	sprites  *sprites
	screens  *screens
	cues     *cues
	score    *ebiten.Image

	keys    []ebiten.Key
	scene   flow.Scene
	frame   int
	caption string
}

func New(opts Options) (*Window, error) {
	fonts, err := panel.LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	w := &Window{opts: opts, fonts: fonts}

	if w.sprites, err = loadSprites(opts.Loader, opts.Board.Cell); err != nil {
		return nil, err
	}
	if w.screens, err = renderScreens(opts.Width, opts.Height, fonts, opts.Loader); err != nil {
		return nil, err
	}
	if w.cues, err = loadCues(audio.NewContext(sampleRate), opts.Loader); err != nil {
		return nil, err
	}
	log.Info().Int("sprites", 3).Int("sounds", len(w.cues.players)).Msg("assets loaded")

	w.director = flow.NewDirector(flow.Deps{
		Board:   opts.Board,
		Cues:    w.cues,
		Display: w,
		Store:   opts.Store,
		Rand:    opts.Rand,
		Now:     opts.Now,
		GameTPS: opts.GameTPS,
		MenuTPS: opts.MenuTPS,
	})
	return w, nil
}

// Run blocks until the player quits or closes the window.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.director.Scene().Caption())
	ebiten.SetTPS(tps)
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// ShowScore re-renders the score label; the session only calls it when
// the total changes.
func (w *Window) ShowScore(total int) {
	if w.score != nil {
		w.score.Deallocate()
	}
	w.score = ebiten.NewImageFromImage(panel.ScoreLabel(w.fonts, total))
}

func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		if err := w.director.Press(mapKey(k)); err != nil {
			if errors.Is(err, flow.ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}

	scene := w.director.Scene()
	if scene != w.scene {
		w.scene = scene
		w.frame = 0
	}
	w.frame++
	if w.frame%framesPerTick(scene.TPS()) == 0 {
		if err := w.director.Tick(); err != nil {
			if errors.Is(err, flow.ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}

	if c := w.director.Scene().Caption(); c != w.caption {
		w.caption = c
		ebiten.SetWindowTitle(c)
	}
	return nil
}

func framesPerTick(sceneTPS int) int {
	if sceneTPS <= 0 || sceneTPS >= tps {
		return 1
	}
	return tps / sceneTPS
}

func (w *Window) Draw(screen *ebiten.Image) {
	switch s := w.director.Scene().(type) {
	case *flow.TextScene:
		screen.DrawImage(w.screens.text[s.Kind()], nil)
	case *flow.PlayScene:
		w.drawBoard(screen, s.Session())
	case *flow.GameOverScene:
		w.drawBoard(screen, s.Session())
		screen.DrawImage(w.screens.gameOver, nil)
	case *flow.LeaderboardScene:
		screen.DrawImage(w.screens.leaderboard(w.opts.Width, w.opts.Height, w.fonts, s), nil)
	}

	if w.opts.DebugOverlay {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()), 4, 4)
	}
}

func (w *Window) drawBoard(screen *ebiten.Image, s *game.Session) {
	if a := s.Apple(); a.Present() {
		w.drawAt(screen, w.sprites.apple, a.Position())
	}
	for _, p := range s.Snake().Body().Segments() {
		w.drawAt(screen, w.sprites.body, p)
	}
	if s.Snake().Alive() {
		w.drawAt(screen, w.sprites.head, s.Snake().Position())
	}

	if w.score != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, float64(w.opts.Height-w.score.Bounds().Dy()))
		screen.DrawImage(w.score, op)
	}
}

func (w *Window) drawAt(screen, img *ebiten.Image, p game.Position) {
	x, y := w.opts.Board.Pixel(p)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.opts.Width, w.opts.Height
}

func mapKey(k ebiten.Key) flow.Key {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return flow.KeyUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return flow.KeyDown
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return flow.KeyLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return flow.KeyRight
	case ebiten.KeyEscape:
		return flow.KeyEscape
	}
	return flow.KeyOther
}
