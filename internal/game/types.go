// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterResult: per-letter result of a guess (correct/wrong position/incorrect).
//   - Letter, WordGuess: one scored guess, immutable once built.
//   - State: read-only snapshot of a session, emitted after every event.

package game

import "strings"

// LetterResult represents the evaluation result for a single letter in a guess.
// Possible values:
//   - Correct:       letter is in the target at this position.
//   - WrongPosition: letter is in the target at another, unclaimed position.
//   - Incorrect:     letter is absent, or every occurrence is already claimed.
type LetterResult int

const (
	Incorrect LetterResult = iota
	WrongPosition
	Correct
)

func (r LetterResult) String() string {
	switch r {
	case Correct:
		return "CORRECT"
	case WrongPosition:
		return "WRONG_POSITION"
	case Incorrect:
		return "INCORRECT"
	default:
		return "UNKNOWN"
	}
}

// Letter pairs a guessed character with its result.
type Letter struct {
	Char   rune
	Result LetterResult
}

// WordGuess is one completed, scored attempt.
type WordGuess struct {
	Letters []Letter
}

// Word returns the guessed characters as a string.
func (g WordGuess) Word() string {
	var b strings.Builder
	for _, l := range g.Letters {
		b.WriteRune(l.Char)
	}
	return b.String()
}

// Solved reports whether every letter is Correct.
func (g WordGuess) Solved() bool {
	if len(g.Letters) == 0 {
		return false
	}
	for _, l := range g.Letters {
		if l.Result != Correct {
			return false
		}
	}
	return true
}

// State holds a snapshot of a single Wordle session.
// Snapshots are values: later events never modify one already returned.
type State struct {
	ID           string      // Session identifier.
	TargetWord   string      // The solution word (uppercase).
	CurrentInput string      // Unsubmitted input, 0..WordLength runes.
	Guesses      []WordGuess // Scored guesses, oldest first.
	IsGameOver   bool        // True once won or out of attempts.
	IsGameWon    bool        // True if the last guess matched the target.
	MaxAttempts  int         // Maximum number of guesses (default 6).
	WordLength   int         // Letters per word (default 6).
}

// clone returns a copy of s that shares no slices with it.
func (s State) clone() State {
	guesses := make([]WordGuess, len(s.Guesses))
	for i, g := range s.Guesses {
		guesses[i] = WordGuess{Letters: append([]Letter(nil), g.Letters...)}
	}
	s.Guesses = guesses
	return s
}

// Status reports a coarse string form of the state: "playing", "won" or "lost".
func (s State) Status() string {
	if s.IsGameOver {
		if s.IsGameWon {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// AttemptsLeft is the number of guesses still available.
func (s State) AttemptsLeft() int {
	return s.MaxAttempts - len(s.Guesses)
}

// InputLen is the rune length of CurrentInput.
func (s State) InputLen() int {
	return len([]rune(s.CurrentInput))
}
