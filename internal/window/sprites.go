package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"snakearcade/internal/asset"
	"snakearcade/internal/flow"
	"snakearcade/internal/panel"
)

type sprites struct {
	head  *ebiten.Image
	body  *ebiten.Image
	apple *ebiten.Image
}

// screens holds the pre-rendered panels. The leaderboard is rebuilt when
// its scene reloads.
type screens struct {
	text     map[flow.Kind]*ebiten.Image
	gameOver *ebiten.Image

	board        *ebiten.Image
	boardScene   *flow.LeaderboardScene
	boardVersion int
}

func loadSprites(loader *asset.Loader, cell int) (*sprites, error) {
	load := func(name string, size int) (*ebiten.Image, error) {
		img, _, err := loader.Image(name, asset.ImageOptions{Alpha: true, Width: size, Height: size})
		if err != nil {
			return nil, err
		}
		return ebiten.NewImageFromImage(img), nil
	}
	var s sprites
	var err error
	if s.head, err = load(flow.HeadImage, cell); err != nil {
		return nil, err
	}
	if s.body, err = load(flow.BodyImage, cell); err != nil {
		return nil, err
	}
	// The apple sprite is a pixel larger than a cell.
	if s.apple, err = load(flow.AppleImage, cell+flow.AppleSize-flow.SpriteSize); err != nil {
		return nil, err
	}
	return &s, nil
}

func renderScreens(w, h int, f *panel.Fonts, loader *asset.Loader) (*screens, error) {
	art := func(name string, size int) (image.Image, error) {
		img, _, err := loader.Image(name, asset.ImageOptions{Width: size, Height: size})
		return img, err
	}
	head, err := art(flow.HeadImage, flow.ExampleArt)
	if err != nil {
		return nil, err
	}
	body, err := art(flow.BodyImage, flow.ExampleArt)
	if err != nil {
		return nil, err
	}
	apple, err := art(flow.AppleImage, flow.ExampleArt)
	if err != nil {
		return nil, err
	}
	title, err := art(flow.HeadImage, flow.TitleSize)
	if err != nil {
		return nil, err
	}

	s := &screens{text: make(map[flow.Kind]*ebiten.Image, 3)}
	s.text[flow.KindRules] = ebiten.NewImageFromImage(panel.Text(w, h, f, flow.NewRulesScene(0), head, body, apple))
	s.text[flow.KindControls] = ebiten.NewImageFromImage(panel.Text(w, h, f, flow.NewControlsScene(0)))
	s.text[flow.KindStart] = ebiten.NewImageFromImage(panel.Text(w, h, f, flow.NewStartScene(0), title))
	s.gameOver = ebiten.NewImageFromImage(panel.GameOver(w, h, f))
	return s, nil
}

// leaderboard returns the panel for ls, re-rendering it only when the
// scene is new or has reloaded.
func (s *screens) leaderboard(w, h int, f *panel.Fonts, ls *flow.LeaderboardScene) *ebiten.Image {
	if s.board != nil && s.boardScene == ls && s.boardVersion == ls.Version {
		return s.board
	}
	if s.board != nil {
		s.board.Deallocate()
	}
	s.board = ebiten.NewImageFromImage(panel.Leaderboard(w, h, f, ls.Rows()))
	s.boardScene = ls
	s.boardVersion = ls.Version
	return s.board
}
