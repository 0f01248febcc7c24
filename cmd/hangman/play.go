package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a round in this terminal.

Controls:
  A-Z          - Guess a letter
  Arrows       - Move the keyboard cursor
  Enter        - Guess the letter under the cursor (new game when over)
  Ctrl+N       - New game
  Tab          - Session tally
  Esc/Ctrl+C   - Quit

Examples:
  hangman play
  hangman play --seed 42
  hangman play --log-file ./hangman.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// The tally lives for this process only.
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open session tally", "error", err)
		store = nil
	}

	logger.Info("session started", "seed", flagSeed)
	runErr := tui.Run(tui.ModelOptions{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
	})
	logger.Info("session ended")

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a file logger, or a discarding one when path is empty.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
