package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/storage"
)

const maxTallyRounds = 100

// TallyModel shows the rounds played this session.
type TallyModel struct {
	store  *storage.Store
	table  table.Model
	tally  storage.Tally
	rounds []storage.Round
	err    error
	width  int
	height int
}

// NewTallyModel creates the tally view. store may be nil.
func NewTallyModel(store *storage.Store, width, height int) TallyModel {
	m := TallyModel{
		store:  store,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

func (m *TallyModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Word", Width: 14},
		{Title: "Result", Width: 8},
		{Title: "Wrong", Width: 6},
		{Title: "Letters", Width: 8},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload re-reads the tally from the store.
func (m *TallyModel) Reload() {
	m.err = nil
	if m.store == nil {
		m.rounds = nil
		m.tally = storage.Tally{}
		m.updateRows()
		return
	}

	tally, err := m.store.Tally()
	if err != nil {
		m.err = err
	}
	rounds, err := m.store.RecentRounds(maxTallyRounds)
	if err != nil {
		m.err = err
	}
	m.tally = tally
	m.rounds = rounds
	m.updateRows()
}

func (m *TallyModel) updateRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Word,
			result,
			fmt.Sprintf("%d", r.Incorrect),
			fmt.Sprintf("%d", r.Guesses),
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Reset deletes every recorded round and reloads.
func (m *TallyModel) Reset() {
	if m.store == nil {
		return
	}
	if err := m.store.Clear(); err != nil {
		m.err = err
		return
	}
	m.Reload()
}

// Tally returns the last loaded summary.
func (m TallyModel) Tally() storage.Tally {
	return m.tally
}

// Resize adapts the table to a new window size.
func (m *TallyModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateRows()
}

// Update forwards scrolling keys to the table.
func (m TallyModel) Update(msg tea.Msg) (TallyModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the tally screen.
func (m TallyModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SESSION TALLY", m.width)))
	b.WriteString("\n\n")

	switch {
	case m.store == nil:
		b.WriteString(centerText("Tally unavailable for this session.", m.width))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(centerText("Could not load tally: "+m.err.Error(), m.width))
		b.WriteString("\n")
	case m.tally.Played == 0:
		b.WriteString(centerText("No rounds finished yet.", m.width))
		b.WriteString("\n")
	default:
		summary := fmt.Sprintf("Played %d  Won %d  Lost %d  Streak %d  Best %d",
			m.tally.Played, m.tally.Won, m.tally.Lost, m.tally.CurrentStreak, m.tally.BestStreak)
		b.WriteString(centerText(summary, m.width))
		b.WriteString("\n\n")
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render("↑/↓ scroll • backspace reset • tab/esc back • ctrl+c quit"))

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
