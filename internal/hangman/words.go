// Package hangman implements the word-guessing game: word selection, guess
// validation, win/loss derivation and the pure renderer that draws the
// gallows, letter tiles and on-screen keyboard from the game state.
package hangman

// MaxIncorrectGuesses is the number of wrong letters that loses a round.
const MaxIncorrectGuesses = 6

// FallbackWord is used when the word list is empty.
const FallbackWord = "SWIFT"

// Words is the fixed list a round's word is drawn from.
var Words = []string{
	"SWIFT",
	"XCODE",
	"IPHONE",
	"DEVELOPER",
	"PROGRAMMING",
	"APPLICATION",
	"COMPUTER",
	"KEYBOARD",
	"ALGORITHM",
	"DATABASE",
}

// isLetter reports whether r is an uppercase ASCII letter.
func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
