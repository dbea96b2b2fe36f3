package game

import "errors"

// ErrQuit is returned when the player asks to leave the game.
var ErrQuit = errors.New("quit requested")

// Cue names a sound the gameplay asks the frontend to play.
type Cue int

const (
	TurnVertical Cue = iota
	TurnHorizontal
	AppleSpawn
	AppleEaten
	GameOver
)

func (c Cue) String() string {
	switch c {
	case TurnVertical:
		return "turn-vertical"
	case TurnHorizontal:
		return "turn-horizontal"
	case AppleSpawn:
		return "apple-spawn"
	case AppleEaten:
		return "apple-eaten"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

type Cues interface {
	Play(c Cue)
}

type CueFunc func(c Cue)

func (f CueFunc) Play(c Cue) { f(c) }

// Silent drops every cue.
var Silent Cues = CueFunc(func(Cue) {})
