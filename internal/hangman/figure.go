package hangman

import "strings"

// Figure dimensions in cells.
const (
	FigureWidth  = 10
	FigureHeight = 8
)

// figurePart is one glyph of the drawing, shown once the wrong-guess count
// reaches stage. Stage 0 is the gallows, always visible.
type figurePart struct {
	stage int
	x, y  int
	r     rune
}

var figureParts = buildFigure()

func buildFigure() []figurePart {
	var parts []figurePart
	add := func(stage, x, y int, r rune) {
		parts = append(parts, figurePart{stage: stage, x: x, y: y, r: r})
	}

	// Gallows: base, pole, beam.
	for x := range 7 {
		add(0, x, 7, '═')
	}
	add(0, 2, 7, '╧')
	for y := 1; y < 7; y++ {
		add(0, 2, y, '│')
	}
	add(0, 2, 0, '┌')
	for x := 3; x < 7; x++ {
		add(0, x, 0, '─')
	}
	add(0, 7, 0, '┐')

	add(1, 7, 1, '│') // rope
	add(2, 7, 2, 'O') // head
	add(3, 7, 3, '│') // body
	add(3, 7, 4, '│')
	add(4, 6, 3, '/')  // left arm
	add(5, 8, 3, '\\') // right arm
	add(6, 6, 5, '/')  // legs
	add(6, 8, 5, '\\')

	return parts
}

// Figure returns the drawing for the given number of wrong guesses as
// FigureHeight rows of FigureWidth runes.
func Figure(incorrect int) []string {
	grid := make([][]rune, FigureHeight)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", FigureWidth))
	}
	for _, p := range figureParts {
		if p.stage <= incorrect {
			grid[p.y][p.x] = p.r
		}
	}

	rows := make([]string, FigureHeight)
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows
}
