package conversation

import (
	"sync"
	"time"
)

// Store is a process-local session store mapping session IDs to their
// conversation contexts. Sessions are created lazily on first access. All
// methods are safe under concurrent calls from multiple in-flight requests.
type Store struct {
	mu       sync.Mutex
	contexts map[string]*Context
}

// NewStore constructs an empty session store.
func NewStore() *Store {
	return &Store{contexts: make(map[string]*Context)}
}

// GetOrCreate returns the context for sessionID, creating it on first call.
// Subsequent calls with the same ID return the same context.
func (s *Store) GetOrCreate(sessionID string) *Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, ok := s.contexts[sessionID]
	if !ok {
		ctx = newContext(sessionID)
		s.contexts[sessionID] = ctx
	}
	return ctx
}

// Evict removes the session immediately. Evicting an unknown session is a
// no-op.
func (s *Store) Evict(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contexts, sessionID)
}

// Sweep removes sessions idle longer than maxAge and reports how many were
// removed. When to run it is the caller's policy; the store itself never
// schedules sweeps.
func (s *Store) Sweep(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, ctx := range s.contexts {
		if ctx.LastActive().Before(cutoff) {
			delete(s.contexts, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contexts)
}
