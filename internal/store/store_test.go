package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	id   string
	note string
}

func (f *fakeSession) ID() string { return f.id }

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := NewMemoryStore[*fakeSession]()

	s := &fakeSession{id: "a", note: "first"}
	require.NoError(t, st.Save(ctx, s))

	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, st.Save(ctx, &fakeSession{id: "a", note: "second"}))
	got, err = st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "second", got.note)

	require.NoError(t, st.Delete(ctx, "a"))
	_, err = st.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, st.Delete(ctx, "a"), ErrNotFound)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := NewMemoryStore[*fakeSession]()
	assert.ErrorIs(t, st.Save(ctx, &fakeSession{id: "x"}), context.Canceled)
	_, err := st.Get(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, st.Delete(ctx, "x"), context.Canceled)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := NewMemoryStore[*fakeSession]()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i)
			_ = st.Save(ctx, &fakeSession{id: id})
			_, _ = st.Get(ctx, id)
		}(i)
	}
	wg.Wait()
	for i := 0; i < 20; i++ {
		_, err := st.Get(ctx, fmt.Sprintf("s%d", i))
		assert.NoError(t, err)
	}
}

func TestTally(t *testing.T) {
	t.Parallel()

	var tl Tally
	assert.Equal(t, Stats{}, tl.Snapshot())

	tl.Record(true)
	tl.Record(true)
	s := tl.Record(false)
	assert.Equal(t, Stats{Played: 3, Wins: 2, Streak: 0, MaxStreak: 2}, s)

	s = tl.Record(true)
	assert.Equal(t, Stats{Played: 4, Wins: 3, Streak: 1, MaxStreak: 2}, s)
	assert.Equal(t, s, tl.Snapshot())
}
