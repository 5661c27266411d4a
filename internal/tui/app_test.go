package tui

import (
	"context"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordhub/internal/game"
	"github.com/robalobadob/wordhub/internal/store"
)

var testWords = []string{"PLANET", "GARDEN", "PENCIL", "MARKET", "BUTTON", "JACKET"}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return New(Options{
		Words:  testWords,
		Picker: game.FixedPicker(0),
		Rand:   rand.New(rand.NewSource(1)),
	})
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	down      = tea.KeyMsg{Type: tea.KeyDown}
	up        = tea.KeyMsg{Type: tea.KeyUp}
	tab       = tea.KeyMsg{Type: tea.KeyTab}
)

func wordleState(t *testing.T, m *Model) game.State {
	t.Helper()
	s, err := m.wordles.Get(context.Background(), m.wordleID)
	require.NoError(t, err)
	return s.State()
}

func TestHub_View(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	v := m.View()
	assert.Contains(t, v, "Welcome to the Game Hub!")
	assert.Contains(t, v, "Play Wordle")
	assert.Contains(t, v, "Play Unscramble")
	assert.Contains(t, v, "Played 0")
}

func TestHub_Navigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	send(m, down)
	assert.Equal(t, 1, m.cursor)
	send(m, down)
	assert.Equal(t, 0, m.cursor, "cursor wraps")
	send(m, up)
	assert.Equal(t, 1, m.cursor)

	send(m, enter)
	assert.Equal(t, screenUnscramble, m.screen)
	assert.Contains(t, m.View(), "Unscramble")

	send(m, esc)
	assert.Equal(t, screenHub, m.screen)
}

func TestHub_Quit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	cmd := send(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	cmd = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHub_OpenError(t *testing.T) {
	t.Parallel()

	m := New(Options{Words: []string{"PLANET", "CRANE"}})
	send(m, enter)
	assert.Equal(t, screenHub, m.screen)
	assert.ErrorIs(t, m.err, game.ErrMixedWordLength)
	assert.Contains(t, m.View(), "differ in length")
}

func TestWordle_TypingFiltersNonLetters(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	send(m, enter)
	require.Equal(t, screenWordle, m.screen)

	send(m, runes("p1a"), runes(" "), tea.KeyMsg{Type: tea.KeySpace}, runes("n"))
	assert.Equal(t, "PAN", wordleState(t, m).CurrentInput)

	send(m, backspace)
	assert.Equal(t, "PA", wordleState(t, m).CurrentInput)

	// q is a letter on the game screen, not quit.
	cmd := send(m, runes("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, "PAQ", wordleState(t, m).CurrentInput)
}

func TestWordle_WinRecordsTallyOnce(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	send(m, enter, runes("planet"), enter)

	st := wordleState(t, m)
	assert.True(t, st.IsGameWon)
	assert.Contains(t, m.View(), "Congratulations! You guessed the word!")
	assert.Equal(t, 1, m.Tally().Played)
	assert.Equal(t, 1, m.Tally().Wins)

	// Further keys while over do not record again.
	send(m, runes("abc"), backspace)
	assert.Equal(t, 1, m.Tally().Played)

	send(m, enter)
	st = wordleState(t, m)
	assert.False(t, st.IsGameOver)
	assert.Empty(t, st.Guesses)
}

func TestWordle_Loss(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	send(m, enter)
	for _, w := range []string{"garden", "pencil", "market", "button", "jacket", "garden"} {
		send(m, runes(w), enter)
	}

	st := wordleState(t, m)
	assert.True(t, st.IsGameOver)
	assert.False(t, st.IsGameWon)
	assert.Contains(t, m.View(), "Game Over. The word was PLANET")

	stats := m.Tally()
	assert.Equal(t, 1, stats.Played)
	assert.Equal(t, 0, stats.Wins)
	assert.Equal(t, 0, stats.Streak)
}

func TestWordle_NavigationResumesSession(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	send(m, enter, runes("garden"), enter, runes("pen"))
	id := m.wordleID
	before := wordleState(t, m)

	send(m, esc)
	assert.Equal(t, screenHub, m.screen)
	send(m, enter)
	assert.Equal(t, screenWordle, m.screen)

	assert.Equal(t, id, m.wordleID)
	after := wordleState(t, m)
	assert.Equal(t, before, after)
	assert.Equal(t, "PEN", after.CurrentInput)
	require.Len(t, after.Guesses, 1)
	assert.Equal(t, "GARDEN", after.Guesses[0].Word())
}

func TestWordle_LeavingFinishedGameDiscardsIt(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	send(m, enter, runes("planet"), enter)
	id := m.wordleID
	require.True(t, wordleState(t, m).IsGameOver)

	send(m, esc)
	assert.Equal(t, screenHub, m.screen)
	assert.Empty(t, m.wordleID)
	_, err := m.wordles.Get(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	send(m, enter)
	assert.Equal(t, screenWordle, m.screen)
	assert.NotEqual(t, id, m.wordleID)
	st := wordleState(t, m)
	assert.False(t, st.IsGameOver)
	assert.Empty(t, st.Guesses)
	assert.Equal(t, 1, m.Tally().Played)
}

func TestUnscramble_LeavingFinishedGameDiscardsIt(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	send(m, down, enter)
	id := m.scrambleID
	for i := 0; i < 10; i++ {
		send(m, tab)
	}
	send(m, esc)
	_, err := m.scrambles.Get(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	send(m, enter)
	assert.NotEqual(t, id, m.scrambleID)
	assert.Equal(t, screenUnscramble, m.screen)
}

func TestUnscramble_Flow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	send(m, down, enter)
	require.Equal(t, screenUnscramble, m.screen)

	s, err := m.scrambles.Get(context.Background(), m.scrambleID)
	require.NoError(t, err)

	send(m, runes("zz"), enter)
	st := s.State()
	assert.True(t, st.IsGuessWrong)
	assert.Contains(t, m.View(), "Wrong guess!")

	for i := 0; i < st.MaxWords; i++ {
		send(m, tab)
	}
	st = s.State()
	assert.True(t, st.IsGameOver)
	assert.Equal(t, 0, st.Score)
	assert.Contains(t, m.View(), "You scored 0!")

	send(m, enter)
	assert.False(t, s.State().IsGameOver)

	id := m.scrambleID
	send(m, esc)
	require.Equal(t, 1, m.cursor)
	send(m, enter)
	assert.Equal(t, id, m.scrambleID)
	assert.Equal(t, screenUnscramble, m.screen)
}

func TestModel_WindowSize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.width)
	assert.Contains(t, m.View(), "Welcome to the Game Hub!")
}
