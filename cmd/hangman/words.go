package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print the word list",
	Long:  `Shows every word a round can pick from.`,
	Args:  cobra.NoArgs,
	Run:   runWords,
}

func runWords(_ *cobra.Command, _ []string) {
	fmt.Printf("%d words:\n\n", len(hangman.Words))
	for i, w := range hangman.Words {
		fmt.Printf("  %2d  %s\n", i+1, w)
	}
}
