package hangman

import (
	"math/rand"
	"slices"
	"testing"
)

// newSwift returns a game whose word is always SWIFT.
func newSwift() *Game {
	return newWithWords(rand.New(rand.NewSource(42)), []string{"SWIFT"})
}

func TestNewGameState(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))

	if !slices.Contains(Words, g.word) {
		t.Errorf("word %q not from the word list", g.word)
	}
	if g.Incorrect() != 0 {
		t.Errorf("Incorrect() = %d, want 0", g.Incorrect())
	}
	if len(g.Guessed()) != 0 {
		t.Errorf("Guessed() = %q, want empty", string(g.Guessed()))
	}
	if g.GameOver() {
		t.Error("fresh game should not be over")
	}
	if g.Status() != StatusPlaying {
		t.Errorf("Status() = %q, want playing", g.Status())
	}
}

func TestNilRandIsUsable(t *testing.T) {
	g := New(nil)
	if !slices.Contains(Words, g.word) {
		t.Errorf("word %q not from the word list", g.word)
	}
}

func TestEmptyWordListFallsBack(t *testing.T) {
	g := newWithWords(rand.New(rand.NewSource(1)), nil)
	if g.word != FallbackWord {
		t.Errorf("word = %q, want fallback %q", g.word, FallbackWord)
	}

	g.NewGame()
	if g.word != FallbackWord {
		t.Errorf("after NewGame word = %q, want fallback %q", g.word, FallbackWord)
	}
}

func TestWordListIsUppercase(t *testing.T) {
	for _, w := range Words {
		for _, r := range w {
			if !isLetter(r) {
				t.Errorf("word %q contains %q", w, r)
			}
		}
	}
}

func TestSwiftWinScenario(t *testing.T) {
	g := newSwift()

	for i, letter := range "SWIFT" {
		if g.Won() {
			t.Fatalf("won too early before %q", letter)
		}
		g.Guess(letter)
		if g.Incorrect() != 0 {
			t.Errorf("after %q Incorrect() = %d, want 0", letter, g.Incorrect())
		}
		if i < 4 && g.GameOver() {
			t.Fatalf("game over after %q", letter)
		}
	}

	if !g.Won() {
		t.Error("Won() = false after guessing every letter")
	}
	if !g.GameOver() {
		t.Error("GameOver() = false after win")
	}
	if g.Lost() {
		t.Error("Lost() = true after win")
	}
	if g.Status() != StatusWon {
		t.Errorf("Status() = %q, want won", g.Status())
	}
}

func TestSwiftLossScenario(t *testing.T) {
	g := newSwift()

	g.Guess('Z')
	g.Guess('Z')
	g.Guess('Z')
	if g.Incorrect() != 1 {
		t.Fatalf("repeated Z counted %d times", g.Incorrect())
	}

	for _, letter := range "QXJBV" {
		g.Guess(letter)
	}

	if g.Incorrect() != MaxIncorrectGuesses {
		t.Errorf("Incorrect() = %d, want %d", g.Incorrect(), MaxIncorrectGuesses)
	}
	if !g.Lost() {
		t.Error("Lost() = false after six wrong letters")
	}
	if g.Status() != StatusLost {
		t.Errorf("Status() = %q, want lost", g.Status())
	}

	before := g.Snapshot()
	for _, letter := range "SWIFTKLM" {
		g.Guess(letter)
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("guesses after loss changed state: %+v -> %+v", before, after)
	}
}

func TestWrongLetterCountsOnce(t *testing.T) {
	for _, letter := range "ABCDEGHJKLMNOPQRUVXYZ" {
		g := newSwift()
		g.Guess(letter)
		if g.Incorrect() != 1 {
			t.Errorf("first %q: Incorrect() = %d, want 1", letter, g.Incorrect())
		}
		g.Guess(letter)
		if g.Incorrect() != 1 {
			t.Errorf("second %q: Incorrect() = %d, want 1", letter, g.Incorrect())
		}
		if got := string(g.Guessed()); got != string(letter) {
			t.Errorf("Guessed() = %q, want %q", got, string(letter))
		}
	}
}

func TestCorrectLetterNeverCounts(t *testing.T) {
	g := newSwift()
	g.Guess('A')
	g.Guess('B')

	for _, letter := range "TFIWS" {
		g.Guess(letter)
		if g.Incorrect() != 2 {
			t.Errorf("correct %q changed Incorrect() to %d", letter, g.Incorrect())
		}
	}
}

func TestWinInAnyOrder(t *testing.T) {
	orders := []string{"SWIFT", "TFIWS", "ITSWF", "FWTIS"}
	for _, order := range orders {
		t.Run(order, func(t *testing.T) {
			g := newSwift()
			for i, letter := range order {
				g.Guess(letter)
				if want := i == len(order)-1; g.Won() != want {
					t.Errorf("after %q Won() = %v, want %v", letter, g.Won(), want)
				}
			}
		})
	}
}

func TestWinWithRepeatedLetters(t *testing.T) {
	g := newWithWords(rand.New(rand.NewSource(1)), []string{"DATABASE"})
	for _, letter := range "DTBSE" {
		g.Guess(letter)
	}
	if g.Won() {
		t.Fatal("won without guessing A")
	}
	g.Guess('A')
	if !g.Won() {
		t.Error("Won() = false once every distinct letter is guessed")
	}
}

func TestIncorrectNeverExceedsMax(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 200 {
		g := New(rng)
		for range 60 {
			g.Guess(rune('A' + rng.Intn(26)))
			if g.Incorrect() > MaxIncorrectGuesses {
				t.Fatalf("Incorrect() = %d exceeds max", g.Incorrect())
			}
		}
	}
}

func TestTerminalStateIsIdempotent(t *testing.T) {
	g := newSwift()
	for _, letter := range "SWIFT" {
		g.Guess(letter)
	}
	before := g.Snapshot()

	for letter := 'A'; letter <= 'Z'; letter++ {
		g.Guess(letter)
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("guesses after win changed state: %+v -> %+v", before, after)
	}
}

func TestInvalidInputIsIgnored(t *testing.T) {
	g := newSwift()
	for _, r := range []rune{'s', 'z', '1', ' ', 'É', 0} {
		g.Guess(r)
	}
	if len(g.Guessed()) != 0 || g.Incorrect() != 0 {
		t.Errorf("invalid runes changed state: guessed=%q incorrect=%d", string(g.Guessed()), g.Incorrect())
	}
}

func TestNewGameResets(t *testing.T) {
	g := New(rand.New(rand.NewSource(3)))
	for _, letter := range "QXZJ" {
		g.Guess(letter)
	}

	for range 20 {
		g.NewGame()
		if g.Incorrect() != 0 || len(g.Guessed()) != 0 {
			t.Fatalf("NewGame did not reset: incorrect=%d guessed=%q", g.Incorrect(), string(g.Guessed()))
		}
		if !slices.Contains(Words, g.word) {
			t.Fatalf("word %q not from the word list", g.word)
		}
		g.Guess('Q')
	}
}

func TestNewGameAfterLoss(t *testing.T) {
	g := newSwift()
	for _, letter := range "ZQXJBV" {
		g.Guess(letter)
	}
	if !g.Lost() {
		t.Fatal("setup: expected loss")
	}

	g.NewGame()
	if g.GameOver() {
		t.Error("NewGame should return to playing")
	}
	g.Guess('S')
	if !g.HasGuessed('S') {
		t.Error("guesses should be accepted again after NewGame")
	}
}

func TestWordSelectionCoversList(t *testing.T) {
	g := New(rand.New(rand.NewSource(11)))
	seen := make(map[string]bool)
	for range 500 {
		g.NewGame()
		seen[g.word] = true
	}
	if len(seen) != len(Words) {
		t.Errorf("saw %d distinct words in 500 rounds, want %d", len(seen), len(Words))
	}
}

func TestSeededSelectionIsDeterministic(t *testing.T) {
	a := New(rand.New(rand.NewSource(99)))
	b := New(rand.New(rand.NewSource(99)))
	for range 10 {
		if a.word != b.word {
			t.Fatalf("same seed gave %q and %q", a.word, b.word)
		}
		a.NewGame()
		b.NewGame()
	}
}

func TestRevealAndAnswer(t *testing.T) {
	g := newSwift()
	if got := string(g.Reveal()); got != "_____" {
		t.Errorf("Reveal() = %q, want _____", got)
	}
	if _, ok := g.Answer(); ok {
		t.Error("Answer() should be hidden while playing")
	}

	g.Guess('I')
	g.Guess('S')
	if got := string(g.Reveal()); got != "S_I__" {
		t.Errorf("Reveal() = %q, want S_I__", got)
	}

	for _, letter := range "ZQXJBV" {
		g.Guess(letter)
	}
	word, ok := g.Answer()
	if !ok || word != "SWIFT" {
		t.Errorf("Answer() = %q, %v after loss", word, ok)
	}
}

func TestRemaining(t *testing.T) {
	g := newSwift()
	if g.Remaining() != MaxIncorrectGuesses {
		t.Errorf("Remaining() = %d, want %d", g.Remaining(), MaxIncorrectGuesses)
	}
	g.Guess('Z')
	g.Guess('S')
	if g.Remaining() != MaxIncorrectGuesses-1 {
		t.Errorf("Remaining() = %d, want %d", g.Remaining(), MaxIncorrectGuesses-1)
	}
}

func TestSnapshot(t *testing.T) {
	g := newSwift()
	g.Guess('T')
	g.Guess('A')
	g.Guess('S')

	want := Snapshot{
		Status:     StatusPlaying,
		Reveal:     "S___T",
		Guessed:    "AST",
		Incorrect:  1,
		Remaining:  5,
		WordLength: 5,
	}
	if got := g.Snapshot(); got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}
