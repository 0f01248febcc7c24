package hangman

import (
	"strings"
	"testing"
)

func TestFigureStages(t *testing.T) {
	// Cells of the hanging figure, by the count at which they appear.
	tests := []struct {
		incorrect int
		x, y      int
		r         rune
	}{
		{1, 7, 1, '│'},
		{2, 7, 2, 'O'},
		{3, 7, 3, '│'},
		{3, 7, 4, '│'},
		{4, 6, 3, '/'},
		{5, 8, 3, '\\'},
		{6, 6, 5, '/'},
		{6, 8, 5, '\\'},
	}

	for _, tc := range tests {
		before := []rune(Figure(tc.incorrect - 1)[tc.y])[tc.x]
		if before == tc.r {
			t.Errorf("%q at (%d,%d) visible before %d wrong guesses", tc.r, tc.x, tc.y, tc.incorrect)
		}
		at := []rune(Figure(tc.incorrect)[tc.y])[tc.x]
		if at != tc.r {
			t.Errorf("Figure(%d) at (%d,%d) = %q, want %q", tc.incorrect, tc.x, tc.y, at, tc.r)
		}
	}
}

func TestFigureGallowsAlwaysDrawn(t *testing.T) {
	rows := Figure(0)
	if len(rows) != FigureHeight {
		t.Fatalf("Figure(0) has %d rows, want %d", len(rows), FigureHeight)
	}
	for _, row := range rows {
		if n := len([]rune(row)); n != FigureWidth {
			t.Errorf("row %q has width %d, want %d", row, n, FigureWidth)
		}
	}
	if !strings.HasPrefix(rows[0], "  ┌────┐") {
		t.Errorf("beam row = %q", rows[0])
	}
	if !strings.Contains(rows[7], "╧") {
		t.Errorf("base row = %q", rows[7])
	}
	if strings.ContainsAny(strings.Join(rows, ""), "O/\\") {
		t.Error("no body parts should be drawn at zero wrong guesses")
	}
}

func TestFigureFull(t *testing.T) {
	want := []string{
		"  ┌────┐  ",
		"  │    │  ",
		"  │    O  ",
		"  │   /│\\ ",
		"  │    │  ",
		"  │   / \\ ",
		"  │       ",
		"══╧════   ",
	}
	got := Figure(MaxIncorrectGuesses)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}
