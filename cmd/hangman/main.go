// hangman is a terminal word-guessing game.
//
// Usage:
//
//	hangman                  - Play a round (same as "hangman play")
//	hangman play             - Play in this terminal
//	hangman words            - Print the word list
//	hangman serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible word picks
//	--config <path>  - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word before the figure is drawn",
	Long: `Hangman picks a word and you guess it one letter at a time.
Six wrong letters and the round is lost.

Available commands:
  play     - Play in this terminal (default)
  words    - Show the word list
  serve    - Start SSH server for remote play

Examples:
  hangman
  hangman play --seed 7
  hangman serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the presentation config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
