package flow

import (
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"snakearcade/internal/game"
	"snakearcade/internal/record"
)

// Store is what the director needs from persistence.
type Store interface {
	LeaderboardSource
	Save(rec record.Session) error
}

type Deps struct {
	Board   game.Board
	Cues    game.Cues
	Display game.ScoreDisplay
	Store   Store
	Rand    *rand.Rand
	Now     func() time.Time

	GameTPS int
	MenuTPS int
}

// Director owns the current scene and moves to the next one when it is
// done.
type Director struct {
	deps     Deps
	scene    Scene
	ticks    int64
	sessions int
}

func NewDirector(deps Deps) *Director {
	if deps.Cues == nil {
		deps.Cues = game.Silent
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.GameTPS <= 0 {
		deps.GameTPS = 6
	}
	if deps.MenuTPS <= 0 {
		deps.MenuTPS = 60
	}
	return &Director{deps: deps, scene: NewRulesScene(deps.MenuTPS)}
}

func (d *Director) Scene() Scene  { return d.scene }
func (d *Director) Sessions() int { return d.sessions }

// Press routes a key to the current scene. Escape quits from anywhere.
func (d *Director) Press(k Key) error {
	if k == KeyEscape {
		return ErrQuit
	}
	if d.scene.Press(k) {
		d.advance()
	}
	return nil
}

// Tick advances the current scene by one period of its own tick rate.
func (d *Director) Tick() error {
	dt := game.TickLength(d.ticks, d.scene.TPS())
	d.ticks++
	done, err := d.scene.Tick(dt)
	if err != nil {
		return err
	}
	if done {
		d.advance()
	}
	return nil
}

func (d *Director) advance() {
	prev := d.scene
	d.ticks = 0
	if c, ok := prev.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Stringer("scene", prev.Kind()).Msg("close scene")
		}
	}

	switch s := prev.(type) {
	case *PlayScene:
		d.scene = NewGameOverScene(s.Session(), d.deps.Cues, d.deps.MenuTPS)
	case *GameOverScene:
		if d.deps.Store != nil {
			d.scene = NewLeaderboardScene(d.deps.Store, d.deps.MenuTPS)
		} else {
			d.scene = d.newPlay()
		}
	default:
		switch prev.Kind() {
		case KindRules:
			d.scene = NewControlsScene(d.deps.MenuTPS)
		case KindControls:
			d.scene = NewStartScene(d.deps.MenuTPS)
		default:
			d.scene = d.newPlay()
		}
	}
	log.Debug().Stringer("from", prev.Kind()).Stringer("to", d.scene.Kind()).Msg("scene change")
}

func (d *Director) newPlay() *PlayScene {
	opts := game.Options{
		Board:   d.deps.Board,
		Cues:    d.deps.Cues,
		Display: d.deps.Display,
		Rand:    d.deps.Rand,
		Now:     d.deps.Now,
	}
	if d.deps.Store != nil {
		opts.Recorder = d.deps.Store
	}
	d.sessions++
	return NewPlayScene(game.NewSession(opts), d.deps.GameTPS)
}
