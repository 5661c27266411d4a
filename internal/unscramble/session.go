// internal/unscramble/session.go
//
// Engine for the word-unscramble game.
// The player sees a shuffled word and types the unscrambled word. A correct answer
// scores and moves on; a wrong one is flagged and the input cleared. Skipping
// moves on without scoring. A game is MaxWords words long.
//
// Notes:
//   - Words are deduplicated case-insensitively and not repeated within a
//     game until the list is exhausted.
//   - Shuffling draws from the configured *rand.Rand, so tests can seed it.

package unscramble

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const (
	DefaultMaxWords      = 10
	DefaultScoreIncrease = 20
)

var ErrEmptyWordList = errors.New("unscramble: word list is empty")

// Config is the construction-time configuration of a session.
type Config struct {
	Words         []string
	Rand          *rand.Rand // nil means seeded from the clock
	MaxWords      int        // zero means DefaultMaxWords
	ScoreIncrease int        // zero means DefaultScoreIncrease
}

// State is a snapshot of an unscramble game.
type State struct {
	ID           string
	Scrambled    string // shuffled letters of the current word
	Input        string // player's unsubmitted answer
	Score        int
	WordCount    int // 1-based position of the current word
	MaxWords     int
	IsGuessWrong bool // last submission was wrong
	IsGameOver   bool
}

// Session owns one unscramble game.
type Session struct {
	mu    sync.Mutex
	id    string
	words []string
	rnd   *rand.Rand
	inc   int
	used  map[string]struct{}

	answer string
	state  State
}

// NewSession validates cfg and deals the first word.
func NewSession(cfg Config) (*Session, error) {
	words := make([]string, 0, len(cfg.Words))
	seen := make(map[string]struct{}, len(cfg.Words))
	for _, w := range cfg.Words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	maxWords := cfg.MaxWords
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	inc := cfg.ScoreIncrease
	if inc <= 0 {
		inc = DefaultScoreIncrease
	}

	s := &Session{
		id:    uuid.NewString(),
		words: words,
		rnd:   rnd,
		inc:   inc,
	}
	s.reset(maxWords)
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnLetterInput appends the uppercased rune, up to the current word's length.
func (s *Session) OnLetterInput(r rune) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsGameOver || len([]rune(s.state.Input)) >= len([]rune(s.answer)) {
		return s.state
	}
	s.state.Input += string(unicode.ToUpper(r))
	s.state.IsGuessWrong = false
	return s.state
}

// OnDeleteLetter removes the last rune of the input.
func (s *Session) OnDeleteLetter() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsGameOver || s.state.Input == "" {
		return s.state
	}
	in := []rune(s.state.Input)
	s.state.Input = string(in[:len(in)-1])
	return s.state
}

// OnSubmit checks the input against the current word.
// Empty input is ignored.
func (s *Session) OnSubmit() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsGameOver || s.state.Input == "" {
		return s.state
	}
	if s.state.Input != s.answer {
		s.state.IsGuessWrong = true
		s.state.Input = ""
		return s.state
	}
	s.state.Score += s.inc
	s.advance()
	return s.state
}

// Skip moves to the next word without scoring.
func (s *Session) Skip() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsGameOver {
		return s.state
	}
	s.advance()
	return s.state
}

// Restart starts a new game with the same configuration.
func (s *Session) Restart() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(s.state.MaxWords)
	return s.state
}

func (s *Session) reset(maxWords int) {
	s.used = make(map[string]struct{}, len(s.words))
	s.state = State{ID: s.id, MaxWords: maxWords, WordCount: 1}
	s.deal()
}

// advance ends the game after the last word, otherwise deals the next one.
func (s *Session) advance() {
	s.state.Input = ""
	s.state.IsGuessWrong = false
	if s.state.WordCount >= s.state.MaxWords {
		s.state.IsGameOver = true
		return
	}
	s.state.WordCount++
	s.deal()
}

// deal picks an unused word and shuffles it.
func (s *Session) deal() {
	candidates := s.unused()
	if len(candidates) == 0 {
		s.used = make(map[string]struct{}, len(s.words))
		candidates = s.unused()
	}
	s.answer = candidates[s.rnd.Intn(len(candidates))]
	s.used[s.answer] = struct{}{}
	s.state.Scrambled = Scramble(s.rnd, s.answer)
}

func (s *Session) unused() []string {
	var out []string
	for _, w := range s.words {
		if _, ok := s.used[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

// Scramble shuffles the runes of word. The result differs from word whenever
// word has at least two distinct runes.
func Scramble(rnd *rand.Rand, word string) string {
	runes := []rune(word)
	if !hasDistinct(runes) {
		return word
	}
	for {
		rnd.Shuffle(len(runes), func(i, j int) { runes[i], runes[j] = runes[j], runes[i] })
		if string(runes) != word {
			return string(runes)
		}
	}
}

func hasDistinct(runes []rune) bool {
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return true
		}
	}
	return false
}
