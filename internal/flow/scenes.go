package flow

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"snakearcade/internal/game"
	"snakearcade/internal/record"
)

// TextScene is an informational screen that any key dismisses.
type TextScene struct {
	kind    Kind
	caption string
	tps     int
	Lines   []string
	Prompt  string
}

func (s *TextScene) Kind() Kind                       { return s.kind }
func (s *TextScene) Caption() string                  { return s.caption }
func (s *TextScene) TPS() int                         { return s.tps }
func (s *TextScene) Press(Key) bool                   { return true }
func (s *TextScene) Tick(time.Duration) (bool, error) { return false, nil }

func NewRulesScene(tps int) *TextScene {
	return &TextScene{kind: KindRules, caption: CaptionRules, tps: tps, Lines: RulesText, Prompt: PromptContinue}
}

func NewControlsScene(tps int) *TextScene {
	return &TextScene{kind: KindControls, caption: CaptionControls, tps: tps, Lines: ControlsText, Prompt: PromptContinue}
}

func NewStartScene(tps int) *TextScene {
	return &TextScene{kind: KindStart, caption: CaptionStart, tps: tps, Lines: []string{TitleText}, Prompt: PromptStart}
}

// PlayScene runs one game session. Direction keys are queued and handed
// to the session on its next tick.
type PlayScene struct {
	session *game.Session
	tps     int
	queue   []game.Input
	saveErr error
}

func NewPlayScene(session *game.Session, tps int) *PlayScene {
	return &PlayScene{session: session, tps: tps}
}

func (s *PlayScene) Kind() Kind             { return KindPlay }
func (s *PlayScene) Caption() string        { return CaptionPlay }
func (s *PlayScene) TPS() int               { return s.tps }
func (s *PlayScene) Session() *game.Session { return s.session }
func (s *PlayScene) SaveErr() error         { return s.saveErr }
func (s *PlayScene) Queued() []game.Input   { return s.queue }

func (s *PlayScene) Press(k Key) bool {
	switch k {
	case KeyUp:
		s.queue = append(s.queue, game.InputUp)
	case KeyDown:
		s.queue = append(s.queue, game.InputDown)
	case KeyLeft:
		s.queue = append(s.queue, game.InputLeft)
	case KeyRight:
		s.queue = append(s.queue, game.InputRight)
	case KeyEscape:
		s.queue = append(s.queue, game.InputQuit)
	}
	return false
}

func (s *PlayScene) Tick(dt time.Duration) (bool, error) {
	inputs := s.queue
	s.queue = nil
	over, err := s.session.Step(dt, inputs)
	if errors.Is(err, game.ErrQuit) {
		return false, err
	}
	if err != nil {
		// The game goes on to the game over screen; only the record is lost.
		log.Error().Err(err).Msg("session not saved")
		s.saveErr = err
	}
	return over, nil
}

// GameOverScene sits over the final board until a key is pressed.
type GameOverScene struct {
	session *game.Session
	tps     int
}

func NewGameOverScene(session *game.Session, cues game.Cues, tps int) *GameOverScene {
	cues.Play(game.GameOver)
	return &GameOverScene{session: session, tps: tps}
}

func (s *GameOverScene) Kind() Kind                       { return KindGameOver }
func (s *GameOverScene) Caption() string                  { return CaptionGameOver }
func (s *GameOverScene) TPS() int                         { return s.tps }
func (s *GameOverScene) Press(Key) bool                   { return true }
func (s *GameOverScene) Tick(time.Duration) (bool, error) { return false, nil }
func (s *GameOverScene) Session() *game.Session           { return s.session }
func (s *GameOverScene) Result() record.Session           { return s.session.Result() }

type LeaderboardSource interface {
	Leaderboard() (record.Leaderboard, error)
	LeaderboardPath() string
}

// LeaderboardScene shows the stored top ten and reloads it if the file
// changes while it is on screen.
type LeaderboardScene struct {
	src     LeaderboardSource
	tps     int
	watcher *record.Watcher

	Board   record.Leaderboard
	Err     error
	Version int
}

func NewLeaderboardScene(src LeaderboardSource, tps int) *LeaderboardScene {
	s := &LeaderboardScene{src: src, tps: tps}
	s.reload()
	w, err := record.Watch(src.LeaderboardPath())
	if err != nil {
		log.Warn().Err(err).Msg("leaderboard will not refresh while shown")
	} else {
		s.watcher = w
	}
	return s
}

func (s *LeaderboardScene) Kind() Kind      { return KindLeaderboard }
func (s *LeaderboardScene) Caption() string { return CaptionLeaderboard }
func (s *LeaderboardScene) TPS() int        { return s.tps }
func (s *LeaderboardScene) Press(Key) bool  { return true }
func (s *LeaderboardScene) Rows() []Row     { return Rows(s.Board) }

func (s *LeaderboardScene) Tick(time.Duration) (bool, error) {
	if s.watcher != nil && s.watcher.Changed() {
		s.reload()
		log.Debug().Int("version", s.Version).Msg("leaderboard reloaded")
	}
	return false, nil
}

func (s *LeaderboardScene) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

func (s *LeaderboardScene) reload() {
	s.Board, s.Err = s.src.Leaderboard()
	if s.Err != nil {
		log.Error().Err(s.Err).Msg("leaderboard unreadable")
	}
	s.Version++
}
