// Package dealdesk provides a high-level façade over the routing-and-
// streaming orchestration engine. Most applications interact with this
// package by:
//  1. Creating a DealDesk via New() with a model.Generator
//  2. Submitting messages with Chat (classifier-routed) or Proposal
//     (fixed pricing → legal → finance → executive sequence)
//  3. Draining the returned event stream until it closes
//
// Sessions are held in process memory only; SweepSessions implements the
// idle-eviction hook for callers that want a lifecycle policy.
package dealdesk

import (
	"context"
	"time"

	"github.com/hupe1980/dealdesk/conversation"
	"github.com/hupe1980/dealdesk/logging"
	"github.com/hupe1980/dealdesk/model"
	"github.com/hupe1980/dealdesk/orchestrator"
	"github.com/hupe1980/dealdesk/responder"
	"github.com/hupe1980/dealdesk/router"
)

// Options configure a DealDesk instance.
type Options struct {
	// Logger defaults to a no-op logger.
	Logger logging.Logger
	// EventDelay paces emitted events; zero disables pacing.
	EventDelay time.Duration
	// HistoryWindow is how many recent turns each responder sees.
	HistoryWindow int
	// Instructions overrides the default role instructions per responder.
	Instructions map[responder.ID]string
}

// DealDesk aggregates the session store, responder pool, router and
// orchestrator behind a small API.
type DealDesk struct {
	store *conversation.Store
	orch  *orchestrator.Orchestrator
}

// New wires a complete deal desk around one generation backend.
func New(gen model.Generator, optFns ...func(o *Options)) *DealDesk {
	opts := Options{
		Logger:        logging.NoOpLogger{},
		EventDelay:    300 * time.Millisecond,
		HistoryWindow: 5,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	store := conversation.NewStore()
	pool := responder.NewPool(gen, func(o *responder.PoolOptions) {
		o.Instructions = opts.Instructions
	})
	rt := router.New(gen, func(o *router.Options) {
		o.Logger = opts.Logger
	})
	orch := orchestrator.New(rt, pool, store, func(o *orchestrator.Options) {
		o.EventDelay = opts.EventDelay
		o.HistoryWindow = opts.HistoryWindow
		o.Logger = opts.Logger
	})

	return &DealDesk{store: store, orch: orch}
}

// Chat submits a message for classifier-routed handling. See
// orchestrator.Orchestrator.Chat for stream semantics.
func (d *DealDesk) Chat(ctx context.Context, sessionID, message string) (<-chan orchestrator.Event, error) {
	return d.orch.Chat(ctx, sessionID, message)
}

// Proposal submits a full-proposal request running the fixed responder
// sequence.
func (d *DealDesk) Proposal(ctx context.Context, sessionID, message string) (<-chan orchestrator.Event, error) {
	return d.orch.Proposal(ctx, sessionID, message)
}

// EvictSession drops one session's conversational memory immediately.
func (d *DealDesk) EvictSession(sessionID string) {
	d.store.Evict(sessionID)
}

// SweepSessions removes sessions idle longer than maxAge and reports how
// many were removed.
func (d *DealDesk) SweepSessions(maxAge time.Duration) int {
	return d.store.Sweep(maxAge)
}
