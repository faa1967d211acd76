package conversation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrCreateIsIdempotent(t *testing.T) {
	s := NewStore()

	first := s.GetOrCreate("session-1")
	second := s.GetOrCreate("session-1")

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Evict(t *testing.T) {
	s := NewStore()
	first := s.GetOrCreate("session-1")
	first.AppendUser("hello")

	s.Evict("session-1")
	assert.Equal(t, 0, s.Len())

	recreated := s.GetOrCreate("session-1")
	assert.NotSame(t, first, recreated)
	assert.Equal(t, 0, recreated.Len())

	// Evicting an unknown session is a no-op.
	s.Evict("never-existed")
}

func TestStore_SweepRemovesIdleSessions(t *testing.T) {
	s := NewStore()
	s.GetOrCreate("idle")
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, 0, s.Sweep(time.Hour))
	assert.Equal(t, 1, s.Len())

	assert.Equal(t, 1, s.Sweep(time.Millisecond))
	assert.Equal(t, 0, s.Len())
}

func TestStore_SweepKeepsActiveSessions(t *testing.T) {
	s := NewStore()
	s.GetOrCreate("stale")
	time.Sleep(5 * time.Millisecond)
	s.GetOrCreate("fresh").AppendUser("still here")

	assert.Equal(t, 1, s.Sweep(2*time.Millisecond))
	assert.Equal(t, 1, s.Len())
	assert.Same(t, s.GetOrCreate("fresh"), s.GetOrCreate("fresh"))
}

func TestStore_ConcurrentGetOrCreate(t *testing.T) {
	s := NewStore()
	contexts := make([]*Context, 50)

	var wg sync.WaitGroup
	for i := range contexts {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			contexts[n] = s.GetOrCreate("shared")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, s.Len())
	for _, c := range contexts {
		assert.Same(t, contexts[0], c)
	}
}
