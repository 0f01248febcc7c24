package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in settings. It matches the embedded
// defaults/hangman.yaml and is used if that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Title:    "bright_cyan",
			Gallows:  "brown",
			Figure:   "bright_white",
			Tile:     "bright_white",
			Hidden:   "gray",
			Text:     "white",
			Key:      "white",
			Hit:      "green",
			Miss:     "gray",
			Cursor:   "bright_yellow",
			Disabled: "gray",
			Win:      "bright_green",
			Loss:     "bright_red",
		},
		Keyboard: KeyboardConfig{
			Layout: string(hangman.LayoutQWERTY),
		},
		Display: DisplayConfig{
			RevealOnLoss: true,
			ShowHelp:     true,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
