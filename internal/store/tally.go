package store

import "sync"

// Stats is a snapshot of finished-game counters.
type Stats struct {
	Played    int
	Wins      int
	Streak    int
	MaxStreak int
}

// Tally counts finished games for the lifetime of the process.
type Tally struct {
	mu    sync.Mutex
	stats Stats
}

// Record increments games played; updates wins and streak based on result.
func (t *Tally) Record(won bool) Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats.Played++
	if won {
		t.stats.Wins++
		t.stats.Streak++
		if t.stats.Streak > t.stats.MaxStreak {
			t.stats.MaxStreak = t.stats.Streak
		}
	} else {
		t.stats.Streak = 0
	}
	return t.stats
}

// Snapshot returns the current counters.
func (t *Tally) Snapshot() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}
