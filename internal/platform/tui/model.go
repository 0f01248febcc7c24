// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH. It maps key presses to guesses, draws the game through the hangman
// renderer and keeps the session tally.
package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Model is the Bubble Tea model for one play session.
type Model struct {
	game     *hangman.Game
	keyboard *hangman.Keyboard
	renderer hangman.Renderer
	screen   *core.Screen
	styles   ScreenStyles
	store    *storage.Store
	logger   *log.Logger

	keys     KeyMap
	help     help.Model
	showHelp bool

	tally     TallyModel
	showTally bool

	runtime    core.RuntimeConfig
	roundSaved bool // current round already written to the tally
	quitting   bool
}

// ModelOptions configures NewModel. Store, Logger and Styles are optional.
type ModelOptions struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Logger  *log.Logger
	Styles  ScreenStyles
}

// NewModel creates a session with a fresh round.
func NewModel(opts ModelOptions) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	styles := opts.Styles
	if styles == nil {
		styles = NewScreenStyles(nil)
	}

	m := Model{
		game:     hangman.New(rand.New(rand.NewSource(rt.Seed))),
		keyboard: hangman.NewKeyboard(opts.Config.KeyboardLayout()),
		renderer: opts.Config.Renderer(),
		styles:   styles,
		store:    opts.Store,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		showHelp: opts.Config.Display.ShowHelp,
		runtime:  rt,
	}
	m.screen = core.NewScreen(rt.ScreenW, m.screenHeight(rt.ScreenH))
	m.tally = NewTallyModel(opts.Store, rt.ScreenW, rt.ScreenH)
	m.help.Width = rt.ScreenW

	m.logger.Debug("round started", "seed", rt.Seed, "length", len(m.game.Reveal()))
	return m
}

// screenHeight leaves a line for the help bar when it is shown.
func (m Model) screenHeight(total int) int {
	if m.showHelp {
		return max(total-1, 0)
	}
	return total
}

// Init implements tea.Model. There is nothing to start: the game only
// changes in response to input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if m.showTally {
			return m.handleTallyKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.screenHeight(msg.Height))
	m.tally.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewGame):
		m.newRound()

	case key.Matches(msg, m.keys.Tally):
		m.tally.Reload()
		m.showTally = true

	case key.Matches(msg, m.keys.Select):
		if m.game.GameOver() {
			m.newRound()
		} else {
			m.guess(m.keyboard.Selected())
		}

	case key.Matches(msg, m.keys.Left):
		m.keyboard.Move(hangman.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.keyboard.Move(hangman.DirRight)
	case key.Matches(msg, m.keys.Up):
		m.keyboard.Move(hangman.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.keyboard.Move(hangman.DirDown)

	default:
		if letter, ok := m.keys.Letter(msg); ok {
			m.keyboard.Focus(letter)
			m.guess(letter)
		}
	}

	return m, nil
}

func (m Model) handleTallyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tally), key.Matches(msg, m.keys.Back):
		m.showTally = false
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.tally.Reset()
		m.logger.Info("tally reset")
		return m, nil
	}

	var cmd tea.Cmd
	m.tally, cmd = m.tally.Update(msg)
	return m, cmd
}

// guess forwards a letter to the game and records the round once it ends.
func (m *Model) guess(letter rune) {
	if m.game.GameOver() || m.game.HasGuessed(letter) {
		return
	}

	before := m.game.Incorrect()
	m.game.Guess(letter)
	m.logger.Debug("guess", "letter", string(letter), "hit", m.game.Incorrect() == before)

	if m.game.GameOver() && !m.roundSaved {
		m.recordRound()
	}
}

func (m *Model) recordRound() {
	m.roundSaved = true

	word, _ := m.game.Answer()
	won := m.game.Won()
	m.logger.Info("round over",
		"word", word,
		"won", won,
		"incorrect", m.game.Incorrect(),
	)

	if m.store == nil {
		return
	}
	round := storage.Round{
		Word:      word,
		Won:       won,
		Incorrect: m.game.Incorrect(),
		Guesses:   len(m.game.Guessed()),
	}
	if _, err := m.store.SaveRound(round); err != nil {
		m.logger.Warn("could not record round", "error", err)
	}
}

func (m *Model) newRound() {
	m.game.NewGame()
	m.roundSaved = false
	m.logger.Debug("round started", "length", len(m.game.Reveal()))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showTally {
		return m.tally.View()
	}

	m.renderer.Render(m.screen, m.game, m.keyboard)
	out := m.styles.RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}


// Run starts a local Bubble Tea program.
func Run(opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
