package flow

import (
	"strconv"

	"snakearcade/internal/game"
	"snakearcade/internal/record"
)

const (
	CaptionRules       = "Snake Game - Rules"
	CaptionControls    = "Snake Game - Controls"
	CaptionStart       = "Snake Game - Main Menu"
	CaptionPlay        = "Snake Game"
	CaptionGameOver    = "Snake Game - Game Over"
	CaptionLeaderboard = "Snake Game - Leaderboard"
)

const (
	PromptContinue = "Press Any Key (except for Escape) to Continue"
	PromptStart    = "Press Any Key to Start"
	PromptNext     = "Press Any Key to Continue"
	PromptExit     = "Press the Escape Key to Exit the Game"
	TitleText      = "SNAKE GAME"
	GameOverText   = "GAME OVER"
	BoardTitle     = "Leaderboard"
)

var RulesText = []string{
	"RULES",
	"1) Score points by keeping the snake alive and eating apples.",
	"2) The game ends when the snake's head touches",
	"     its own body or moves outside the window screen.",
	"3) Eating apples will elongate the snake's body.",
	"4) The player (snake) only has one life.",
	"     Ending the game requires the player to",
	"     start from the beginning again.",
}

var ControlsText = []string{
	"CONTROLS",
	"W = Up",
	"A = Left, S = Down, D = Right",
	"or",
	"Up Arrow = Up",
	"Left Arrow = Left, Down Arrow = Down, Right Arrow = Right",
	`Press the "Escape" key to quit from the game any time.`,
}

// Sprite files and the size they are drawn at.
const (
	HeadImage  = "snake.png"
	BodyImage  = "snake_body.png"
	AppleImage = "apple.png"

	SpriteSize = 49
	AppleSize  = 50
	TitleSize  = 300
	ExampleArt = 110
)

type SoundSpec struct {
	File   string
	Volume float64
}

// Sounds maps every gameplay cue to its file and playback volume.
var Sounds = map[game.Cue]SoundSpec{
	game.TurnVertical:   {"whiish.wav", 0.11},
	game.TurnHorizontal: {"whoosh.wav", 0.11},
	game.AppleSpawn:     {"baby.wav", 0.5},
	game.AppleEaten:     {"sneeze.wav", 0.14},
	game.GameOver:       {"church_bell.wav", 0.14},
}

// Row is one leaderboard line as displayed.
type Row struct {
	Place   string
	Score   string
	Seconds string
	Date    string
}

var ordinals = [10]string{"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th", "9th", "10th"}

func Rows(lb record.Leaderboard) []Row {
	rows := make([]Row, len(lb))
	for i, e := range lb {
		rows[i] = Row{
			Place:   ordinals[i] + " Place",
			Score:   strconv.Itoa(e.Score),
			Seconds: strconv.Itoa(e.Seconds),
			Date:    e.Date,
		}
	}
	return rows
}

func ScoreText(total int) string {
	return "Score: " + strconv.Itoa(total)
}
