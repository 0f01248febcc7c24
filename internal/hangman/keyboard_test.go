package hangman

import "testing"

func TestKeyboardLayouts(t *testing.T) {
	tests := []struct {
		layout Layout
		first  string
	}{
		{LayoutQWERTY, "QWERTYUIOP"},
		{LayoutABC, "ABCDEFGHI"},
		{Layout("dvorak"), "QWERTYUIOP"},
	}

	for _, tc := range tests {
		t.Run(string(tc.layout), func(t *testing.T) {
			kb := NewKeyboard(tc.layout)
			if got := string(kb.Rows()[0]); got != tc.first {
				t.Errorf("first row = %q, want %q", got, tc.first)
			}

			seen := make(map[rune]bool)
			for _, row := range kb.Rows() {
				for _, r := range row {
					seen[r] = true
				}
			}
			if len(seen) != 26 {
				t.Errorf("layout covers %d letters, want 26", len(seen))
			}
		})
	}
}

func TestKeyboardMove(t *testing.T) {
	kb := NewKeyboard(LayoutQWERTY)
	if kb.Selected() != 'Q' {
		t.Fatalf("initial Selected() = %q, want Q", kb.Selected())
	}

	kb.Move(DirLeft)
	if kb.Selected() != 'P' {
		t.Errorf("left from Q = %q, want P (wrap)", kb.Selected())
	}
	kb.Move(DirRight)
	if kb.Selected() != 'Q' {
		t.Errorf("right from P = %q, want Q (wrap)", kb.Selected())
	}

	kb.Move(DirUp)
	if kb.Selected() != 'Q' {
		t.Errorf("up from top row = %q, want Q", kb.Selected())
	}

	kb.Move(DirDown)
	if kb.Selected() != 'A' {
		t.Errorf("down from Q = %q, want A", kb.Selected())
	}
	kb.Move(DirDown)
	kb.Move(DirDown)
	if kb.Selected() != 'Z' {
		t.Errorf("down past bottom = %q, want Z", kb.Selected())
	}
}

func TestKeyboardMoveClampsColumn(t *testing.T) {
	kb := NewKeyboard(LayoutQWERTY)
	kb.Focus('P')

	kb.Move(DirDown)
	if kb.Selected() != 'L' {
		t.Errorf("down from P = %q, want L", kb.Selected())
	}
	kb.Move(DirDown)
	if kb.Selected() != 'M' {
		t.Errorf("down from L = %q, want M", kb.Selected())
	}
}

func TestKeyboardFocus(t *testing.T) {
	kb := NewKeyboard(LayoutABC)
	if !kb.Focus('X') {
		t.Fatal("Focus(X) = false")
	}
	if kb.Selected() != 'X' {
		t.Errorf("Selected() = %q, want X", kb.Selected())
	}
	if kb.Focus('1') {
		t.Error("Focus(1) should fail")
	}
	if kb.Selected() != 'X' {
		t.Error("failed Focus should not move the cursor")
	}
}
