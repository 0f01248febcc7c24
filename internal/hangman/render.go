package hangman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// Layout constants, in cells.
const (
	tileWidth = 4 // "[A] "
	keyWidth  = 4 // " A  " or "[A] "

	// MinScreenW and MinScreenH are the smallest screen the layout fits.
	MinScreenW = 48
	MinScreenH = 22
)

// Palette assigns colours to the parts of the screen.
type Palette struct {
	Title    core.Color
	Gallows  core.Color
	Figure   core.Color
	Tile     core.Color
	Hidden   core.Color
	Text     core.Color
	Key      core.Color
	Hit      core.Color // guessed key that is in the word
	Miss     core.Color // guessed key that is not
	Cursor   core.Color
	Disabled core.Color
	Win      core.Color
	Loss     core.Color
}

// DefaultPalette mirrors the embedded default theme.
func DefaultPalette() Palette {
	return Palette{
		Title:    core.ColorBrightCyan,
		Gallows:  core.ColorBrown,
		Figure:   core.ColorBrightWhite,
		Tile:     core.ColorBrightWhite,
		Hidden:   core.ColorGray,
		Text:     core.ColorWhite,
		Key:      core.ColorWhite,
		Hit:      core.ColorGreen,
		Miss:     core.ColorGray,
		Cursor:   core.ColorBrightYellow,
		Disabled: core.ColorGray,
		Win:      core.ColorBrightGreen,
		Loss:     core.ColorBrightRed,
	}
}

// Renderer draws a Game onto a screen. It never mutates the game.
type Renderer struct {
	Palette Palette

	// RevealOnLoss shows the answer under the loss message.
	RevealOnLoss bool
}

// NewRenderer returns a renderer with the default palette.
func NewRenderer() Renderer {
	return Renderer{Palette: DefaultPalette(), RevealOnLoss: true}
}

// Render draws the whole game screen. kb may be nil when no on-screen
// keyboard should be shown.
func (r Renderer) Render(dst *core.Screen, g *Game, kb *Keyboard) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		r.renderTooSmall(dst)
		return
	}

	dst.DrawTextCentered(0, "H A N G M A N", r.Palette.Title)

	figX := (dst.Width() - FigureWidth) / 2
	r.renderFigure(dst, figX, 2, g.Incorrect())

	remaining := fmt.Sprintf("Guesses Remaining: %d", g.Remaining())
	dst.DrawTextCentered(11, remaining, r.Palette.Text)

	r.renderTiles(dst, 13, g)
	r.renderStatus(dst, 15, g)

	if kb != nil {
		r.renderKeyboard(dst, 19, g, kb)
	}
}

func (r Renderer) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2

	box := core.NewRect((dst.Width()-22)/2, y-1, 22, 4)
	if box.X >= 0 && box.Y >= 0 && box.Right() <= dst.Width() && box.Bottom() <= dst.Height() {
		dst.DrawBox(box, r.Palette.Hidden)
	}
	dst.DrawTextCentered(y, "Window too small", r.Palette.Text)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), r.Palette.Text)
}

func (r Renderer) renderFigure(dst *core.Screen, x, y, incorrect int) {
	for _, p := range figureParts {
		if p.stage > incorrect {
			continue
		}
		color := r.Palette.Figure
		if p.stage == 0 || p.stage == 1 {
			// Gallows and rope share the wood colour.
			color = r.Palette.Gallows
		}
		dst.SetWithColor(x+p.x, y+p.y, p.r, color)
	}
}

// renderTiles draws one bracketed tile per character of the word.
func (r Renderer) renderTiles(dst *core.Screen, y int, g *Game) {
	reveal := g.Reveal()
	width := len(reveal)*tileWidth - 1
	x := (dst.Width() - width) / 2

	for i, ch := range reveal {
		tx := x + i*tileWidth
		color := r.Palette.Tile
		if ch == '_' {
			color = r.Palette.Hidden
			ch = ' '
		}
		dst.SetWithColor(tx, y, '[', r.Palette.Hidden)
		dst.SetWithColor(tx+1, y, ch, color)
		dst.SetWithColor(tx+2, y, ']', r.Palette.Hidden)
	}
}

func (r Renderer) renderStatus(dst *core.Screen, y int, g *Game) {
	switch g.Status() {
	case StatusWon:
		dst.DrawTextCentered(y, "You Won!", r.Palette.Win)
	case StatusLost:
		dst.DrawTextCentered(y, "Game Over!", r.Palette.Loss)
		if word, ok := g.Answer(); ok && r.RevealOnLoss {
			dst.DrawTextCentered(y+1, "Word was: "+word, r.Palette.Text)
		}
	default:
		return
	}
	dst.DrawTextCentered(y+2, "Enter or Ctrl+N: new game", r.Palette.Text)
}

func (r Renderer) renderKeyboard(dst *core.Screen, y int, g *Game, kb *Keyboard) {
	over := g.GameOver()
	cursor := kb.Selected()

	for i, row := range kb.Rows() {
		width := len(row)*keyWidth - 1
		x := (dst.Width() - width) / 2

		for j, letter := range row {
			kx := x + j*keyWidth
			color := r.keyColor(g, letter, over)

			if !over && letter == cursor {
				dst.SetWithColor(kx, y+i, '[', r.Palette.Cursor)
				dst.SetWithColor(kx+1, y+i, letter, r.Palette.Cursor)
				dst.SetWithColor(kx+2, y+i, ']', r.Palette.Cursor)
				continue
			}
			dst.SetWithColor(kx+1, y+i, letter, color)
		}
	}
}

func (r Renderer) keyColor(g *Game, letter rune, over bool) core.Color {
	switch {
	case over:
		return r.Palette.Disabled
	case !g.HasGuessed(letter):
		return r.Palette.Key
	case strings.ContainsRune(g.word, letter):
		return r.Palette.Hit
	default:
		return r.Palette.Miss
	}
}
