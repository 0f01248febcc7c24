package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeyMap holds the non-letter bindings. Every letter key is a guess, so
// commands live on arrows, Enter, Tab, Esc and control chords.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	NewGame key.Binding
	Tally   key.Binding
	Reset   key.Binding
	Back    key.Binding
	Quit    key.Binding

	// caser is not safe for concurrent use, so each KeyMap owns one.
	caser cases.Caser
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.NewGame, k.Tally, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.NewGame, k.Tally},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("a-z/enter", "guess"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new game"),
		),
		Tally: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "tally"),
		),
		Reset: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "reset tally"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		caser: cases.Upper(language.Und),
	}
}

// Letter extracts a guess from a key press. Lowercase input is folded to
// uppercase; anything other than a single A-Z letter is rejected.
func (k KeyMap) Letter(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}

	folded := []rune(k.caser.String(string(msg.Runes)))
	if len(folded) != 1 || folded[0] < 'A' || folded[0] > 'Z' {
		return 0, false
	}
	return folded[0], true
}
