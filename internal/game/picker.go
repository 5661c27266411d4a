package game

import (
	"crypto/rand"
	"math/big"
	"sync"
)

// Picker chooses the index of the next target word from a list of n words.
// Implementations may return any int; the session reduces it modulo n.
type Picker interface {
	Pick(n int) int
}

// RandomPicker picks uniformly using crypto/rand.
type RandomPicker struct{}

// Pick returns a uniformly random index in [0,n).
func (RandomPicker) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// FixedPicker always returns the same index.
type FixedPicker int

// Pick returns the fixed index.
func (p FixedPicker) Pick(int) int { return int(p) }

// SequencePicker returns its indices in order, cycling when exhausted.
// It is safe for concurrent use.
type SequencePicker struct {
	mu   sync.Mutex
	seq  []int
	next int
}

// NewSequencePicker returns a picker yielding seq in order.
func NewSequencePicker(seq ...int) *SequencePicker {
	return &SequencePicker{seq: append([]int(nil), seq...)}
}

// Pick returns the next index in the sequence (0 if the sequence is empty).
func (p *SequencePicker) Pick(int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.seq) == 0 {
		return 0
	}
	i := p.seq[p.next%len(p.seq)]
	p.next++
	return i
}

// pickIndex normalizes a picker result into [0,n).
func pickIndex(p Picker, n int) int {
	i := p.Pick(n) % n
	if i < 0 {
		i += n
	}
	return i
}
