package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhub/internal/unscramble"
)

func (m *Model) updateUnscramble(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Exit) {
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Back) {
		m.leaveUnscramble()
		return nil
	}
	s, err := m.scramble()
	if err != nil {
		m.err = err
		m.screen = screenHub
		return nil
	}

	if s.State().IsGameOver {
		if key.Matches(msg, m.keys.Again) {
			s.Restart()
		}
		return nil
	}

	var st unscramble.State
	switch {
	case key.Matches(msg, m.keys.Submit):
		st = s.OnSubmit()
	case key.Matches(msg, m.keys.Delete):
		st = s.OnDeleteLetter()
	case key.Matches(msg, m.keys.Skip):
		st = s.Skip()
	default:
		for _, r := range letters(msg) {
			st = s.OnLetterInput(r)
		}
	}
	if st.IsGameOver {
		log.Info().Str("session", st.ID).Int("score", st.Score).Msg("unscramble game finished")
	}
	return nil
}

func (m *Model) leaveUnscramble() {
	m.screen = screenHub
	s, err := m.scrambles.Get(context.Background(), m.scrambleID)
	if err != nil || !s.State().IsGameOver {
		return
	}
	if err := m.scrambles.Delete(context.Background(), m.scrambleID); err != nil {
		log.Warn().Err(err).Str("session", m.scrambleID).Msg("failed to discard unscramble session")
		return
	}
	m.scrambleID = ""
}

func (m *Model) viewUnscramble() string {
	s, err := m.scramble()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	st := s.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Unscramble"))
	b.WriteString("\n\n")

	if st.IsGameOver {
		b.WriteString(dialogStyle.Render(fmt.Sprintf("You scored %d!", st.Score) +
			"\n\n" + subtleStyle.Render("Press enter to play again")))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(bindings{m.keys.Again, m.keys.Back, m.keys.Exit}))
		return b.String()
	}

	b.WriteString(subtleStyle.Render(fmt.Sprintf("Word %d/%d · Score %d", st.WordCount, st.MaxWords, st.Score)))
	b.WriteString("\n\n")
	b.WriteString(scrambledStyle.Render(st.Scrambled))
	b.WriteString("\n\n")
	b.WriteString("> " + st.Input)
	if st.IsGuessWrong {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Wrong guess!"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(bindings{m.keys.Submit, m.keys.Delete, m.keys.Skip, m.keys.Back, m.keys.Exit}))
	return b.String()
}
