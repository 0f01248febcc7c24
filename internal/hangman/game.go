package hangman

import (
	"math/rand"
	"slices"
	"strings"
)

// Status is the derived phase of a round.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Game holds one round of hangman.
// It is not safe for concurrent use; the platform owns a single instance
// per session and mutates it from its update loop only.
type Game struct {
	rng   *rand.Rand
	words []string

	word      string
	guessed   map[rune]struct{}
	incorrect int
}

// New creates a game drawing words from Words with rng and starts a round.
// A nil rng is seeded with 1.
func New(rng *rand.Rand) *Game {
	return newWithWords(rng, Words)
}

func newWithWords(rng *rand.Rand, words []string) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	g := &Game{
		rng:   rng,
		words: words,
	}
	g.NewGame()
	return g
}

// NewGame discards the current round and starts a fresh one.
func (g *Game) NewGame() {
	g.word = g.pickWord()
	g.guessed = make(map[rune]struct{})
	g.incorrect = 0
}

// pickWord draws uniformly from the word list.
func (g *Game) pickWord() string {
	if len(g.words) == 0 {
		return FallbackWord
	}
	return g.words[g.rng.Intn(len(g.words))]
}

// Guess submits a letter. It is a no-op when the round is over, when the
// letter was already guessed, or when letter is not an uppercase A-Z rune.
func (g *Game) Guess(letter rune) {
	if g.GameOver() || !isLetter(letter) || g.HasGuessed(letter) {
		return
	}

	g.guessed[letter] = struct{}{}
	if !strings.ContainsRune(g.word, letter) {
		g.incorrect++
	}
}

// HasGuessed reports whether letter was submitted this round.
func (g *Game) HasGuessed(letter rune) bool {
	_, ok := g.guessed[letter]
	return ok
}

// Guessed returns the submitted letters in alphabetical order.
func (g *Game) Guessed() []rune {
	letters := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}

// Incorrect returns the number of wrong guesses so far.
func (g *Game) Incorrect() int {
	return g.incorrect
}

// Remaining returns how many more wrong guesses the player can afford.
func (g *Game) Remaining() int {
	return max(MaxIncorrectGuesses-g.incorrect, 0)
}

// Won reports whether every letter of the word has been guessed.
func (g *Game) Won() bool {
	for _, r := range g.word {
		if !g.HasGuessed(r) {
			return false
		}
	}
	return true
}

// Lost reports whether the wrong-guess limit has been reached.
func (g *Game) Lost() bool {
	return g.incorrect >= MaxIncorrectGuesses
}

// GameOver reports whether the round has ended either way.
func (g *Game) GameOver() bool {
	return g.Won() || g.Lost()
}

// Status returns the derived phase of the round.
func (g *Game) Status() Status {
	switch {
	case g.Won():
		return StatusWon
	case g.Lost():
		return StatusLost
	default:
		return StatusPlaying
	}
}

// Reveal projects the word onto what the player may see: guessed letters
// in place, '_' for the rest.
func (g *Game) Reveal() []rune {
	out := make([]rune, 0, len(g.word))
	for _, r := range g.word {
		if g.HasGuessed(r) {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	return out
}

// Answer returns the word once the round is over.
func (g *Game) Answer() (string, bool) {
	if !g.GameOver() {
		return "", false
	}
	return g.word, true
}
