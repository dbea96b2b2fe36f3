package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snakearcade/internal/flow"
	"snakearcade/internal/game"
)

const (
	glyphSnake = '█'
	glyphApple = '●'
)

// Draw renders the current scene and shows it.
func (t *Terminal) Draw() {
	t.screen.Clear()
	switch s := t.director.Scene().(type) {
	case *flow.TextScene:
		t.drawText(s)
	case *flow.PlayScene:
		t.drawBoard(s.Session())
	case *flow.GameOverScene:
		t.drawBoard(s.Session())
		t.drawGameOver()
	case *flow.LeaderboardScene:
		t.drawLeaderboard(s)
	}
	t.screen.Show()
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Terminal) center(y int, s string, style tcell.Style) {
	w, _ := t.screen.Size()
	t.print((w-len([]rune(s)))/2, y, s, style)
}

func (t *Terminal) drawText(s *flow.TextScene) {
	_, h := t.screen.Size()
	for i, line := range s.Lines {
		style := styleText
		if i == 0 {
			style = style.Bold(true)
		}
		t.print(2, 1+i*2, line, style)
	}
	t.center(h-2, s.Prompt, stylePrompt)
}

// cell returns the screen column and row of board position p.
func cell(p game.Position) (int, int) {
	return 1 + p.X*2, 1 + p.Y
}

func (t *Terminal) drawBoard(s *game.Session) {
	w, h := t.board.Cols*2+2, t.board.Rows+2
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, 0, '─', nil, styleBorder)
		t.screen.SetContent(x, h-1, '─', nil, styleBorder)
	}
	for y := 0; y < h; y++ {
		t.screen.SetContent(0, y, '│', nil, styleBorder)
		t.screen.SetContent(w-1, y, '│', nil, styleBorder)
	}
	t.screen.SetContent(0, 0, '┌', nil, styleBorder)
	t.screen.SetContent(w-1, 0, '┐', nil, styleBorder)
	t.screen.SetContent(0, h-1, '└', nil, styleBorder)
	t.screen.SetContent(w-1, h-1, '┘', nil, styleBorder)

	if a := s.Apple(); a.Present() {
		x, y := cell(a.Position())
		t.screen.SetContent(x, y, glyphApple, nil, styleApple)
		t.screen.SetContent(x+1, y, ' ', nil, styleApple)
	}
	for _, p := range s.Snake().Body().Segments() {
		t.fill(p, styleBody)
	}
	if s.Snake().Alive() {
		t.fill(s.Snake().Position(), styleHead)
	}
	t.print(0, h, flow.ScoreText(t.score), styleText)
}

func (t *Terminal) fill(p game.Position, style tcell.Style) {
	x, y := cell(p)
	t.screen.SetContent(x, y, glyphSnake, nil, style)
	t.screen.SetContent(x+1, y, glyphSnake, nil, style)
}

func (t *Terminal) drawGameOver() {
	mid := (t.board.Rows + 2) / 2
	w := t.board.Cols*2 + 2
	line := func(y int, s string, style tcell.Style) {
		t.print((w-len([]rune(s)))/2, y, s, style)
	}
	line(mid-2, flow.GameOverText, styleOver)
	line(mid, flow.PromptNext, styleText)
	line(mid+1, flow.PromptExit, styleText)
}

func (t *Terminal) drawLeaderboard(s *flow.LeaderboardScene) {
	t.center(1, flow.BoardTitle, styleText.Bold(true))
	row := func(y int, cols [4]string, style tcell.Style) {
		t.center(y, fmt.Sprintf(" %-11s %8s %9s %-11s ", cols[0], cols[1], cols[2], cols[3]), style)
	}
	row(3, [4]string{"Place", "Score", "Lifetime", "Date"}, styleBoard.Bold(true))
	for i, r := range s.Rows() {
		row(4+i, [4]string{r.Place, r.Score, r.Seconds, r.Date}, styleBoard)
	}
	if s.Err != nil {
		t.center(15, s.Err.Error(), styleOver)
	}
	_, h := t.screen.Size()
	t.center(h-2, flow.PromptNext, stylePrompt)
}
