// internal/game/session.go
//
// State machine for a single Wordle session.
// Responsibilities:
//   - Choose the target word through an injected Picker.
//   - Apply input events (letter, delete, submit, restart) one at a time.
//   - Score submitted guesses and track playing → won/lost.
//
// Notes:
//   - Invalid play events are absorbed as no-ops; they never return errors.
//   - Every event returns a State snapshot that shares no slices with the
//     session, so neither side can alter the other's guess history.
//   - The session performs no I/O and does not log.

package game

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
)

const (
	DefaultMaxAttempts = 6
	DefaultWordLength  = 6
)

var (
	ErrEmptyWordList      = errors.New("game: word list is empty")
	ErrMixedWordLength    = errors.New("game: words differ in length")
	ErrInvalidMaxAttempts = errors.New("game: max attempts must be positive")
)

// Config is the construction-time configuration of a session.
type Config struct {
	Words       []string // Candidate targets, all the same length.
	MaxAttempts int      // Zero means DefaultMaxAttempts.
	Picker      Picker   // Nil means RandomPicker.
}

// Session owns the state of one game. Events are serialized by a mutex, so a
// session may be shared between goroutines.
type Session struct {
	mu       sync.Mutex
	id       string
	words    []string
	length   int
	attempts int
	picker   Picker
	state    State
}

// NewSession validates cfg and starts a session with a freshly picked target.
func NewSession(cfg Config) (*Session, error) {
	if len(cfg.Words) == 0 {
		return nil, ErrEmptyWordList
	}
	attempts := cfg.MaxAttempts
	if attempts == 0 {
		attempts = DefaultMaxAttempts
	}
	if attempts < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxAttempts, attempts)
	}

	words := make([]string, len(cfg.Words))
	length := -1
	for i, w := range cfg.Words {
		w = strings.ToUpper(strings.TrimSpace(w))
		n := len([]rune(w))
		if n == 0 {
			return nil, fmt.Errorf("%w: blank word at index %d", ErrEmptyWordList, i)
		}
		if length == -1 {
			length = n
		} else if n != length {
			return nil, fmt.Errorf("%w: %q has %d letters, expected %d", ErrMixedWordLength, w, n, length)
		}
		words[i] = w
	}

	picker := cfg.Picker
	if picker == nil {
		picker = RandomPicker{}
	}

	s := &Session{
		id:       uuid.NewString(),
		words:    words,
		length:   length,
		attempts: attempts,
		picker:   picker,
	}
	s.state = s.fresh()
	return s, nil
}

// ID returns the session identifier. It does not change on restart.
func (s *Session) ID() string { return s.id }

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// OnLetterInput appends the uppercased rune to the input buffer.
// No-op when the game is over or the buffer is full. The rune is not
// checked for being a letter; filtering is the caller's job.
func (s *Session) OnLetterInput(r rune) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.IsGameOver || st.InputLen() >= st.WordLength {
		return st.clone()
	}
	st.CurrentInput += string(unicode.ToUpper(r))
	s.state = st
	return st.clone()
}

// OnDeleteLetter removes the last rune of the input buffer.
// No-op when the game is over or the buffer is empty.
func (s *Session) OnDeleteLetter() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.IsGameOver || st.CurrentInput == "" {
		return st.clone()
	}
	in := []rune(st.CurrentInput)
	st.CurrentInput = string(in[:len(in)-1])
	s.state = st
	return st.clone()
}

// OnSubmitGuess scores the input buffer against the target.
// No-op when the game is over or the buffer is not exactly WordLength runes.
//
// State transitions:
//   - Input equal to the target → IsGameOver = IsGameWon = true.
//   - Else if the number of guesses reaches MaxAttempts → IsGameOver = true (loss).
func (s *Session) OnSubmitGuess() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.IsGameOver || st.InputLen() != st.WordLength {
		return st.clone()
	}

	guess := st.CurrentInput
	results := MustScore(guess, st.TargetWord)
	letters := make([]Letter, len(results))
	for i, ch := range []rune(guess) {
		letters[i] = Letter{Char: ch, Result: results[i]}
	}

	guesses := make([]WordGuess, len(st.Guesses), len(st.Guesses)+1)
	copy(guesses, st.Guesses)
	st.Guesses = append(guesses, WordGuess{Letters: letters})

	st.IsGameWon = guess == st.TargetWord
	st.CurrentInput = ""
	st.IsGameOver = st.IsGameWon || len(st.Guesses) >= st.MaxAttempts
	s.state = st
	return st.clone()
}

// Restart discards the current game and starts a new one with a newly picked
// target, empty history and empty input.
func (s *Session) Restart() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.fresh()
	return s.state.clone()
}

// fresh builds a new initial state. Callers hold s.mu or own s exclusively.
func (s *Session) fresh() State {
	return State{
		ID:          s.id,
		TargetWord:  s.words[pickIndex(s.picker, len(s.words))],
		Guesses:     []WordGuess{},
		MaxAttempts: s.attempts,
		WordLength:  s.length,
	}
}
