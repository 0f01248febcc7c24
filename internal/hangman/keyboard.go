package hangman

import "github.com/vovakirdan/tui-hangman/internal/core"

// Layout names an on-screen keyboard arrangement.
type Layout string

const (
	LayoutQWERTY Layout = "qwerty"
	LayoutABC    Layout = "abc"
)

var layouts = map[Layout][]string{
	LayoutQWERTY: {"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"},
	LayoutABC:    {"ABCDEFGHI", "JKLMNOPQR", "STUVWXYZ"},
}

// Direction moves the keyboard cursor.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Keyboard is the on-screen letter grid with a cursor.
type Keyboard struct {
	rows     [][]rune
	row, col int
}

// NewKeyboard builds a keyboard for layout, falling back to QWERTY for
// unknown names.
func NewKeyboard(layout Layout) *Keyboard {
	src, ok := layouts[layout]
	if !ok {
		src = layouts[LayoutQWERTY]
	}
	rows := make([][]rune, len(src))
	for i, s := range src {
		rows[i] = []rune(s)
	}
	return &Keyboard{rows: rows}
}

// Rows returns the letter rows, top to bottom.
func (k *Keyboard) Rows() [][]rune {
	return k.rows
}

// Selected returns the letter under the cursor.
func (k *Keyboard) Selected() rune {
	return k.rows[k.row][k.col]
}

// Move shifts the cursor. Left and right wrap within a row; up and down
// keep the column, clamped to the shorter row.
func (k *Keyboard) Move(d Direction) {
	switch d {
	case DirLeft:
		n := len(k.rows[k.row])
		k.col = (k.col - 1 + n) % n
	case DirRight:
		k.col = (k.col + 1) % len(k.rows[k.row])
	case DirUp:
		k.setRow(k.row - 1)
	case DirDown:
		k.setRow(k.row + 1)
	}
}

func (k *Keyboard) setRow(row int) {
	k.row = core.Clamp(row, 0, len(k.rows)-1)
	k.col = core.Clamp(k.col, 0, len(k.rows[k.row])-1)
}

// Focus moves the cursor onto letter if the layout contains it.
func (k *Keyboard) Focus(letter rune) bool {
	for y, row := range k.rows {
		for x, r := range row {
			if r == letter {
				k.row, k.col = y, x
				return true
			}
		}
	}
	return false
}
