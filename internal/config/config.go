// Package config loads the presentation settings for the game: theme
// colours, keyboard layout and display options. Settings come from YAML
// with HANGMAN_* environment overrides applied on top.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Config is the full set of user-tunable settings.
type Config struct {
	Theme    ThemeConfig    `yaml:"theme"    envPrefix:"THEME_"`
	Keyboard KeyboardConfig `yaml:"keyboard" envPrefix:"KEYBOARD_"`
	Display  DisplayConfig  `yaml:"display"  envPrefix:"DISPLAY_"`
}

// ThemeConfig names a colour for each screen element.
// Valid names are those accepted by core.ParseColor.
type ThemeConfig struct {
	Title    string `yaml:"title"    env:"TITLE"`
	Gallows  string `yaml:"gallows"  env:"GALLOWS"`
	Figure   string `yaml:"figure"   env:"FIGURE"`
	Tile     string `yaml:"tile"     env:"TILE"`
	Hidden   string `yaml:"hidden"   env:"HIDDEN"`
	Text     string `yaml:"text"     env:"TEXT"`
	Key      string `yaml:"key"      env:"KEY"`
	Hit      string `yaml:"hit"      env:"HIT"`
	Miss     string `yaml:"miss"     env:"MISS"`
	Cursor   string `yaml:"cursor"   env:"CURSOR"`
	Disabled string `yaml:"disabled" env:"DISABLED"`
	Win      string `yaml:"win"      env:"WIN"`
	Loss     string `yaml:"loss"     env:"LOSS"`
}

// KeyboardConfig selects the on-screen keyboard arrangement.
type KeyboardConfig struct {
	Layout string `yaml:"layout" env:"LAYOUT"` // "qwerty" or "abc"
}

// DisplayConfig toggles optional screen elements.
type DisplayConfig struct {
	RevealOnLoss bool `yaml:"reveal_on_loss" env:"REVEAL_ON_LOSS"`
	ShowHelp     bool `yaml:"show_help"      env:"SHOW_HELP"`
}

// Validate checks colour names and the keyboard layout.
func (c Config) Validate() error {
	var bad []string
	for name, value := range c.Theme.fields() {
		if _, ok := core.ParseColor(value); !ok {
			bad = append(bad, fmt.Sprintf("theme.%s=%q", name, value))
		}
	}
	switch hangman.Layout(c.Keyboard.Layout) {
	case hangman.LayoutQWERTY, hangman.LayoutABC:
	default:
		bad = append(bad, fmt.Sprintf("keyboard.layout=%q", c.Keyboard.Layout))
	}
	if len(bad) > 0 {
		return fmt.Errorf("config: invalid values: %s", strings.Join(bad, ", "))
	}
	return nil
}

func (t ThemeConfig) fields() map[string]string {
	return map[string]string{
		"title":    t.Title,
		"gallows":  t.Gallows,
		"figure":   t.Figure,
		"tile":     t.Tile,
		"hidden":   t.Hidden,
		"text":     t.Text,
		"key":      t.Key,
		"hit":      t.Hit,
		"miss":     t.Miss,
		"cursor":   t.Cursor,
		"disabled": t.Disabled,
		"win":      t.Win,
		"loss":     t.Loss,
	}
}

// Palette converts the theme to renderer colours. Unknown names fall back
// to the default palette entry.
func (c Config) Palette() hangman.Palette {
	p := hangman.DefaultPalette()
	set := func(dst *core.Color, name string) {
		if color, ok := core.ParseColor(name); ok {
			*dst = color
		}
	}
	set(&p.Title, c.Theme.Title)
	set(&p.Gallows, c.Theme.Gallows)
	set(&p.Figure, c.Theme.Figure)
	set(&p.Tile, c.Theme.Tile)
	set(&p.Hidden, c.Theme.Hidden)
	set(&p.Text, c.Theme.Text)
	set(&p.Key, c.Theme.Key)
	set(&p.Hit, c.Theme.Hit)
	set(&p.Miss, c.Theme.Miss)
	set(&p.Cursor, c.Theme.Cursor)
	set(&p.Disabled, c.Theme.Disabled)
	set(&p.Win, c.Theme.Win)
	set(&p.Loss, c.Theme.Loss)
	return p
}

// Renderer builds a renderer from the theme and display settings.
func (c Config) Renderer() hangman.Renderer {
	return hangman.Renderer{
		Palette:      c.Palette(),
		RevealOnLoss: c.Display.RevealOnLoss,
	}
}

// KeyboardLayout returns the configured layout.
func (c Config) KeyboardLayout() hangman.Layout {
	return hangman.Layout(c.Keyboard.Layout)
}
