package hangman

// Snapshot is a read-only copy of a round for observers and tests.
type Snapshot struct {
	Status     Status
	Reveal     string // e.g. "S_I_T"
	Guessed    string // alphabetical, e.g. "IST"
	Incorrect  int
	Remaining  int
	WordLength int
}

// Snapshot captures the current round.
func (g *Game) Snapshot() Snapshot {
	reveal := g.Reveal()
	return Snapshot{
		Status:     g.Status(),
		Reveal:     string(reveal),
		Guessed:    string(g.Guessed()),
		Incorrect:  g.incorrect,
		Remaining:  g.Remaining(),
		WordLength: len(reveal),
	}
}
