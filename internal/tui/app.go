// internal/tui/app.go
//
// Root Bubble Tea model for the game hub.
// Responsibilities:
//   - Route key messages to the hub menu or the active game screen.
//   - Keep every opened game in a session store so leaving and re-entering a
//     game resumes it.
//   - Record finished Wordle games in the tally and log each outcome once.
//
// Notes:
//   - Only A–Z letters are forwarded to the game sessions; the sessions
//     themselves do not filter.

package tui

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhub/internal/game"
	"github.com/robalobadob/wordhub/internal/store"
	"github.com/robalobadob/wordhub/internal/unscramble"
)

type screen int

const (
	screenHub screen = iota
	screenWordle
	screenUnscramble
)

var menuItems = []string{"Play Wordle", "Play Unscramble"}

// Options configures the hub.
type Options struct {
	Words       []string
	MaxAttempts int
	Picker      game.Picker // nil means game.RandomPicker
	Rand        *rand.Rand  // unscramble shuffles; nil means clock-seeded
}

// Model is the root tea.Model.
type Model struct {
	opts Options

	wordles    store.Store[*game.Session]
	scrambles  store.Store[*unscramble.Session]
	wordleID   string
	scrambleID string
	recorded   bool // current Wordle outcome already tallied
	tally      *store.Tally

	screen screen
	cursor int
	width  int
	height int
	err    error

	keys keyMap
	help help.Model
}

// New builds the hub model. Games are created when first opened.
func New(opts Options) *Model {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Model{
		opts:      opts,
		wordles:   store.NewMemoryStore[*game.Session](),
		scrambles: store.NewMemoryStore[*unscramble.Session](),
		tally:     &store.Tally{},
		keys:      defaultKeys(),
		help:      help.New(),
	}
}

// Tally exposes the finished-game counters.
func (m *Model) Tally() store.Stats { return m.tally.Snapshot() }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.screen {
		case screenWordle:
			return m, m.updateWordle(msg)
		case screenUnscramble:
			return m, m.updateUnscramble(msg)
		default:
			return m, m.updateHub(msg)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenWordle:
		body = m.viewWordle()
	case screenUnscramble:
		body = m.viewUnscramble()
	default:
		body = m.viewHub()
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	return placeCenter(m.width, m.height, body)
}

// wordle returns the current Wordle session, creating and storing one on
// first use.
func (m *Model) wordle() (*game.Session, error) {
	ctx := context.Background()
	if m.wordleID != "" {
		s, err := m.wordles.Get(ctx, m.wordleID)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	s, err := game.NewSession(game.Config{
		Words:       m.opts.Words,
		MaxAttempts: m.opts.MaxAttempts,
		Picker:      m.opts.Picker,
	})
	if err != nil {
		return nil, err
	}
	if err := m.wordles.Save(ctx, s); err != nil {
		return nil, err
	}
	m.wordleID = s.ID()
	m.recorded = false
	log.Debug().Str("session", s.ID()).Msg("wordle session created")
	return s, nil
}

func (m *Model) scramble() (*unscramble.Session, error) {
	ctx := context.Background()
	if m.scrambleID != "" {
		s, err := m.scrambles.Get(ctx, m.scrambleID)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	s, err := unscramble.NewSession(unscramble.Config{Words: m.opts.Words, Rand: m.opts.Rand})
	if err != nil {
		return nil, err
	}
	if err := m.scrambles.Save(ctx, s); err != nil {
		return nil, err
	}
	m.scrambleID = s.ID()
	log.Debug().Str("session", s.ID()).Msg("unscramble session created")
	return s, nil
}

// letters returns the A–Z runes of a key message, uppercased.
func letters(msg tea.KeyMsg) []rune {
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	var out []rune
	for _, r := range msg.Runes {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r)
		case r >= 'a' && r <= 'z':
			out = append(out, r-'a'+'A')
		}
	}
	return out
}
