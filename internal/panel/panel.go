// Package panel renders the text screens of the game into images. The
// window frontend uploads them as textures; nothing here touches a
// display.
package panel

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"snakearcade/internal/flow"
)

const (
	HeaderSize = 86
	PromptSize = 36
	TextSize   = 28
	BoardSize  = 20
)

var (
	black     = color.Black
	white     = color.White
	gameOver  = color.RGBA{200, 0, 0, 255}
	boardGrey = color.RGBA{220, 220, 220, 255}
)

type Fonts struct {
	Header font.Face
	Prompt font.Face
	Text   font.Face
	Board  font.Face
}

func LoadFonts() (*Fonts, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	italic, err := truetype.Parse(goitalic.TTF)
	if err != nil {
		return nil, err
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Fonts{
		Header: truetype.NewFace(bold, &truetype.Options{Size: HeaderSize}),
		Prompt: truetype.NewFace(italic, &truetype.Options{Size: PromptSize}),
		Text:   truetype.NewFace(regular, &truetype.Options{Size: TextSize}),
		Board:  truetype.NewFace(regular, &truetype.Options{Size: BoardSize}),
	}, nil
}

// Text draws an informational scene: its header line, the remaining lines
// below it and the prompt at the bottom. Art, when given, is laid out in a
// row between the text and the prompt.
func Text(w, h int, f *Fonts, s *flow.TextScene, art ...image.Image) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(black)
	dc.Clear()
	dc.SetColor(white)

	y := 20.0
	lines := s.Lines
	if len(lines) > 0 {
		dc.SetFontFace(f.Header)
		dc.DrawStringAnchored(lines[0], float64(w)/2, y, 0.5, 1)
		y += HeaderSize * 1.2
		lines = lines[1:]
	}

	dc.SetFontFace(f.Text)
	wrap := float64(w) - 40
	for _, line := range lines {
		n := len(dc.WordWrap(line, wrap))
		dc.DrawStringWrapped(line, 20, y, 0, 0, wrap, 1.3, gg.AlignLeft)
		y += float64(n) * TextSize * 1.3
	}

	row(dc, art, y+10, float64(h)-PromptSize*2.5)
	prompt(dc, f, s.Prompt, w, h)
	return dc.Image()
}

// row centers imgs horizontally between top and bottom.
func row(dc *gg.Context, imgs []image.Image, top, bottom float64) {
	if len(imgs) == 0 {
		return
	}
	total := 0
	tallest := 0
	for _, img := range imgs {
		b := img.Bounds()
		total += b.Dx()
		tallest = max(tallest, b.Dy())
	}
	x := (dc.Width() - total) / 2
	y := int(top + (bottom-top-float64(tallest))/2)
	for _, img := range imgs {
		dc.DrawImage(img, x, y)
		x += img.Bounds().Dx()
	}
}

func prompt(dc *gg.Context, f *Fonts, text string, w, h int) {
	if text == "" {
		return
	}
	dc.SetFontFace(f.Prompt)
	dc.SetColor(white)
	y := float64(h) - PromptSize
	dc.DrawStringAnchored(text, float64(w)/2, y, 0.5, 0.5)
	tw, _ := dc.MeasureString(text)
	dc.SetLineWidth(2)
	dc.DrawLine(float64(w)/2-tw/2, y+PromptSize/2, float64(w)/2+tw/2, y+PromptSize/2)
	dc.Stroke()
}

// GameOver is a transparent overlay drawn over the final board.
func GameOver(w, h int, f *Fonts) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(gameOver)
	dc.SetFontFace(f.Header)
	dc.DrawStringAnchored(flow.GameOverText, float64(w)/2, float64(h)/2-HeaderSize, 0.5, 0.5)

	dc.SetColor(white)
	dc.SetFontFace(f.Prompt)
	dc.DrawStringAnchored(flow.PromptNext, float64(w)/2, float64(h)/2, 0.5, 0.5)
	dc.DrawStringAnchored(flow.PromptExit, float64(w)/2, float64(h)/2+PromptSize*1.5, 0.5, 0.5)
	return dc.Image()
}

// Leaderboard draws the top ten on a grey box covering 65% of the screen.
func Leaderboard(w, h int, f *Fonts, rows []flow.Row) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(black)
	dc.Clear()

	bw, bh := float64(w)*0.65, float64(h)*0.65
	bx, by := (float64(w)-bw)/2, (float64(h)-bh)/2
	dc.SetColor(boardGrey)
	dc.DrawRectangle(bx, by, bw, bh)
	dc.Fill()

	// The title sits above the box.
	dc.SetColor(white)
	dc.SetFontFace(f.Header)
	dc.DrawStringAnchored(flow.BoardTitle, float64(w)/2, by-8, 0.5, 0)

	dc.SetColor(black)
	cols := [4]float64{bx + bw*0.15, bx + bw*0.40, bx + bw*0.62, bx + bw*0.85}
	line := bh / float64(len(rows)+1)
	y := by + line/2

	dc.SetFontFace(f.Board)
	header := [4]string{"Place", "Score", "Lifetime", "Date"}
	for i, s := range header {
		dc.DrawStringAnchored(s, cols[i], y, 0.5, 0.5)
	}
	for _, r := range rows {
		y += line
		for i, s := range [4]string{r.Place, r.Score, r.Seconds, r.Date} {
			dc.DrawStringAnchored(s, cols[i], y, 0.5, 0.5)
		}
	}

	prompt(dc, f, flow.PromptNext, w, h)
	return dc.Image()
}

// ScoreLabel renders the running score on a black strip sized to fit it.
func ScoreLabel(f *Fonts, total int) image.Image {
	text := flow.ScoreText(total)
	measure := gg.NewContext(1, 1)
	measure.SetFontFace(f.Text)
	tw, th := measure.MeasureString(text)

	dc := gg.NewContext(int(tw)+12, int(th)+12)
	dc.SetColor(black)
	dc.Clear()
	dc.SetColor(white)
	dc.SetFontFace(f.Text)
	dc.DrawStringAnchored(text, 6, float64(dc.Height())/2, 0, 0.5)
	return dc.Image()
}
