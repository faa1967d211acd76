// Package conversation owns per-session conversational memory: a bounded,
// ordered log of turns per session plus a concurrency-safe store keyed by
// session ID. Contexts are mutated only under their internal lock and read
// via snapshot copies, so no caller ever observes a mutation mid-read.
package conversation

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Role identifies who produced a turn.
type Role string

const (
	// RoleUser marks a turn written by the end user.
	RoleUser Role = "user"
	// RoleResponder marks a turn written by one of the responders.
	RoleResponder Role = "responder"
)

// Turn is one message stored in a session's conversational memory.
type Turn struct {
	Role   Role
	Origin string
	Text   string
}

// maxTurns caps the context window; inserting beyond it evicts the oldest
// turn first (FIFO).
const maxTurns = 20

// summaryTurns and summaryChars bound the diagnostic Summary output.
const (
	summaryTurns = 5
	summaryChars = 100
)

// Context is the bounded ordered log of turns for one session. It is safe
// for concurrent use; callers never receive a live reference to internal
// storage.
type Context struct {
	sessionID string

	mu      sync.Mutex
	turns   []Turn
	touched time.Time
}

func newContext(sessionID string) *Context {
	return &Context{sessionID: sessionID, touched: time.Now()}
}

// SessionID returns the opaque session key owning this context.
func (c *Context) SessionID() string { return c.sessionID }

// AppendUser records a user turn.
func (c *Context) AppendUser(text string) {
	c.append(Turn{Role: RoleUser, Origin: "user", Text: text})
}

// AppendResponder records a turn produced by the named responder.
func (c *Context) AppendResponder(origin, text string) {
	c.append(Turn{Role: RoleResponder, Origin: origin, Text: text})
}

func (c *Context) append(t Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, t)
	if len(c.turns) > maxTurns {
		c.turns = c.turns[1:]
	}
	c.touched = time.Now()
}

// Recent returns a snapshot of the most recent n turns in chronological
// order. n is clamped to the current length.
func (c *Context) Recent(n int) []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > len(c.turns) {
		n = len(c.turns)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Turn, n)
	copy(out, c.turns[len(c.turns)-n:])
	return out
}

// Len returns the current number of stored turns.
func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}

// LastActive reports when the context was last written to.
func (c *Context) LastActive() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched
}

// Summary renders a human-readable trailing window of the conversation for
// diagnostics. It is not used for correctness anywhere.
func (c *Context) Summary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.turns) == 0 {
		return "No previous conversation"
	}
	start := len(c.turns) - summaryTurns
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	b.WriteString("Recent conversation:\n")
	for i, t := range c.turns[start:] {
		if i > 0 {
			b.WriteByte('\n')
		}
		text := t.Text
		if len(text) > summaryChars {
			text = text[:summaryChars]
		}
		fmt.Fprintf(&b, "%s: %s...", t.Origin, text)
	}
	return b.String()
}
