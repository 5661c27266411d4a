package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhub/internal/game"
)

func (m *Model) updateWordle(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Exit) {
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Back) {
		m.leaveWordle()
		return nil
	}
	s, err := m.wordle()
	if err != nil {
		m.err = err
		m.screen = screenHub
		return nil
	}

	var st game.State
	switch {
	case s.State().IsGameOver:
		if !key.Matches(msg, m.keys.Again) {
			return nil
		}
		st = s.Apply(game.Event{Kind: game.EventRestart})
		m.recorded = false
	case key.Matches(msg, m.keys.Submit):
		st = s.Apply(game.Event{Kind: game.EventSubmit})
	case key.Matches(msg, m.keys.Delete):
		st = s.Apply(game.Event{Kind: game.EventDelete})
	default:
		for _, r := range letters(msg) {
			st = s.Apply(game.LetterEvent(r))
		}
	}
	m.finish(st)
	return nil
}

// leaveWordle returns to the hub. A finished game is discarded so the next
// visit starts a new one; an unfinished game stays in the store.
func (m *Model) leaveWordle() {
	m.screen = screenHub
	s, err := m.wordles.Get(context.Background(), m.wordleID)
	if err != nil || !s.State().IsGameOver {
		return
	}
	if err := m.wordles.Delete(context.Background(), m.wordleID); err != nil {
		log.Warn().Err(err).Str("session", m.wordleID).Msg("failed to discard wordle session")
		return
	}
	m.wordleID = ""
}

// finish tallies and logs a finished game the first time it is seen.
func (m *Model) finish(st game.State) {
	if !st.IsGameOver || m.recorded {
		return
	}
	m.recorded = true
	stats := m.tally.Record(st.IsGameWon)
	log.Info().
		Str("session", st.ID).
		Str("status", st.Status()).
		Str("target", st.TargetWord).
		Int("guesses", len(st.Guesses)).
		Int("played", stats.Played).
		Int("streak", stats.Streak).
		Msg("wordle game finished")
}

func (m *Model) viewWordle() string {
	s, err := m.wordle()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	st := s.State()

	rows := make([]string, 0, st.MaxAttempts)
	for _, g := range st.Guesses {
		rows = append(rows, guessRow(g))
	}
	if len(st.Guesses) < st.MaxAttempts {
		rows = append(rows, typingRow(st.CurrentInput, st.WordLength))
	}
	for len(rows) < st.MaxAttempts {
		rows = append(rows, emptyRow(st.WordLength))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Wordle"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")

	if st.IsGameOver {
		msg := "Game Over. The word was " + st.TargetWord
		if st.IsGameWon {
			msg = "Congratulations! You guessed the word!"
		}
		b.WriteString(dialogStyle.Render(msg + "\n\n" + subtleStyle.Render("Press enter to play again")))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(bindings{m.keys.Again, m.keys.Back, m.keys.Exit}))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(bindings{m.keys.Submit, m.keys.Delete, m.keys.Back, m.keys.Exit}))
	return b.String()
}

func guessRow(g game.WordGuess) string {
	tiles := make([]string, len(g.Letters))
	for i, l := range g.Letters {
		tiles[i] = resultTile(l.Result).Render(string(l.Char))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func typingRow(input string, length int) string {
	in := []rune(input)
	tiles := make([]string, length)
	for i := range tiles {
		if i < len(in) {
			tiles[i] = typedTile.Render(string(in[i]))
		} else {
			tiles[i] = emptyTile.Render("_")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func emptyRow(length int) string {
	tiles := make([]string, length)
	for i := range tiles {
		tiles[i] = emptyTile.Render("·")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
