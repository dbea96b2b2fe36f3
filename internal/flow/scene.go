// Package flow sequences the screens of the game: rules, controls and the
// start prompt once, then play, game over and the leaderboard in a loop.
// It knows nothing about how screens are drawn; frontends render the
// current Scene and feed it keys and ticks.
package flow

import (
	"time"

	"snakearcade/internal/game"
)

var ErrQuit = game.ErrQuit

type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

type Kind int

const (
	KindRules Kind = iota
	KindControls
	KindStart
	KindPlay
	KindGameOver
	KindLeaderboard
)

func (k Kind) String() string {
	switch k {
	case KindRules:
		return "rules"
	case KindControls:
		return "controls"
	case KindStart:
		return "start"
	case KindPlay:
		return "play"
	case KindGameOver:
		return "game-over"
	case KindLeaderboard:
		return "leaderboard"
	}
	return "unknown"
}

// Scene is one screen with its own input handling and tick rate.
type Scene interface {
	Kind() Kind
	Caption() string
	TPS() int
	// Press handles a key and reports whether the scene is finished.
	Press(k Key) bool
	// Tick advances the scene by dt and reports whether it is finished.
	Tick(dt time.Duration) (bool, error)
}
