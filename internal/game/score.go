// internal/game/score.go
//
// Guess scoring for the Wordle engine.

package game

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when a guess and target differ in length.
var ErrInvalidLength = errors.New("game: guess and target length differ")

// Score compares guess against target and returns one LetterResult per
// position.
//
// Pass 1:
//   - Mark exact matches Correct and consume those target positions.
//
// Pass 2:
//   - For each non-correct guess letter, claim the leftmost unconsumed target
//     position holding the same letter and mark WrongPosition; otherwise leave
//     Incorrect.
//
// Pass 1 finishes before pass 2 starts, so an exact match always wins a
// shared letter over a position-agnostic one.
func Score(guess, target string) ([]LetterResult, error) {
	g := []rune(guess)
	t := []rune(target)
	if len(g) != len(t) {
		return nil, fmt.Errorf("%w: guess has %d letters, target has %d", ErrInvalidLength, len(g), len(t))
	}

	res := make([]LetterResult, len(g))
	consumed := make([]bool, len(t))

	// First pass: exact matches.
	for i := range g {
		if g[i] == t[i] {
			res[i] = Correct
			consumed[i] = true
		}
	}

	// Second pass: present elsewhere.
	for i := range g {
		if res[i] == Correct {
			continue
		}
		for j := range t {
			if !consumed[j] && t[j] == g[i] {
				res[i] = WrongPosition
				consumed[j] = true
				break
			}
		}
	}
	return res, nil
}

// MustScore is like Score but panics on mismatched lengths.
// Callers must guarantee both strings have the same rune length.
func MustScore(guess, target string) []LetterResult {
	res, err := Score(guess, target)
	if err != nil {
		panic(err)
	}
	return res
}

