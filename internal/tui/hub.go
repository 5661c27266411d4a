package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

func (m *Model) updateHub(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(menuItems)
	case key.Matches(msg, m.keys.Select):
		m.open(m.cursor)
	}
	return nil
}

// open switches to the game at menu index i, resuming it if it exists.
func (m *Model) open(i int) {
	var err error
	switch i {
	case 0:
		if _, err = m.wordle(); err == nil {
			m.screen = screenWordle
		}
	case 1:
		if _, err = m.scramble(); err == nil {
			m.screen = screenUnscramble
		}
	}
	m.err = err
	if err != nil {
		log.Error().Err(err).Str("game", menuItems[i]).Msg("failed to open game")
	}
}

func (m *Model) viewHub() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to the Game Hub!"))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}

	st := m.tally.Snapshot()
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Played %d · Won %d · Streak %d · Best %d",
		st.Played, st.Wins, st.Streak, st.MaxStreak)))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(bindings{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Quit}))
	return b.String()
}

func placeCenter(w, h int, body string) string {
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, body)
}
