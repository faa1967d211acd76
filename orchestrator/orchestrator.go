// Package orchestrator drives the end-to-end flow for one request: context
// update, routing, sequenced responder calls, status aggregation and event
// emission. The responder loop is deliberately sequential within a request
// so the stream order is deterministic and concurrent generation calls per
// request stay bounded; separate requests run their own loops in parallel.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/dealdesk/conversation"
	"github.com/hupe1980/dealdesk/core"
	"github.com/hupe1980/dealdesk/deal"
	"github.com/hupe1980/dealdesk/logging"
	"github.com/hupe1980/dealdesk/responder"
	"github.com/hupe1980/dealdesk/router"
)

// ErrEmptyMessage is returned before any orchestration begins when the
// message is empty or whitespace.
var ErrEmptyMessage = errors.New("message is required")

// systemSpeaker authors fault events not attributable to a single responder.
const systemSpeaker = "System"

// genericPlaceholder is the placeholder text for routed dispatches.
const genericPlaceholder = "Analyzing your request..."

// Options configure an Orchestrator.
type Options struct {
	// EventDelay paces emitted events as a throttle on downstream
	// consumers. Not a correctness requirement; zero disables it.
	EventDelay time.Duration
	// HistoryWindow is how many recent turns each responder sees.
	HistoryWindow int
	// EventBufferSize sets channel buffering for the event stream. The
	// producer blocks when the sink is full.
	EventBufferSize int
	Logger          logging.Logger
}

// Orchestrator coordinates routing, responder invocation and status
// aggregation for incoming requests. Safe for concurrent use.
type Orchestrator struct {
	router *router.Router
	pool   *responder.Pool
	store  *conversation.Store

	delay   time.Duration
	window  int
	bufSize int
	logger  logging.Logger
}

// New constructs an Orchestrator with optional overrides.
func New(rt *router.Router, pool *responder.Pool, store *conversation.Store, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		EventDelay:      300 * time.Millisecond,
		HistoryWindow:   5,
		EventBufferSize: 16,
		Logger:          logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Orchestrator{
		router:  rt,
		pool:    pool,
		store:   store,
		delay:   opts.EventDelay,
		window:  opts.HistoryWindow,
		bufSize: opts.EventBufferSize,
		logger:  opts.Logger,
	}
}

// Chat handles one routed request. It returns the event stream immediately;
// events arrive in strict order (per responder: a processing placeholder,
// then a completed or error response) and the channel is closed after the
// terminal completion marker. Cancelling ctx stops the stream at the next
// suspension point.
func (o *Orchestrator) Chat(ctx context.Context, sessionID, message string) (<-chan Event, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	events := make(chan Event, o.bufSize)
	go o.runChat(ctx, sessionID, message, events)
	return events, nil
}

func (o *Orchestrator) runChat(ctx context.Context, sessionID, message string, events chan Event) {
	defer close(events)
	defer o.recoverToErrorEvent(ctx, events)

	conv := o.store.GetOrCreate(sessionID)
	conv.AppendUser(message)

	decision := o.router.Classify(ctx, message)
	o.logger.Info("processing chat message",
		"session_id", sessionID,
		"agents", decision.RelevantAgents,
		"message_type", decision.MessageType,
		"reasoning", decision.Reasoning,
	)

	status := deal.NewStatus()
	for _, id := range decision.RelevantAgents {
		if !o.dispatch(ctx, conv, id, message, genericPlaceholder, &status, events) {
			return
		}
	}
	o.emit(ctx, events, completeEvent(status))
}

// dispatch runs one responder: placeholder first, then the generation call,
// then either the completed result (recorded in context and folded into the
// status) or an error notice isolated to this responder. It returns false
// when the request should unwind (cancellation or a blocked sink).
func (o *Orchestrator) dispatch(
	ctx context.Context,
	conv *conversation.Context,
	id responder.ID,
	prompt, placeholder string,
	status *deal.Status,
	events chan Event,
) bool {
	r := o.pool.Get(id)
	speaker := r.ID().DisplayName()

	if !o.emit(ctx, events, responseEvent(core.NewAgentResponse(speaker, placeholder, core.StatusProcessing))) {
		return false
	}

	text, err := r.Respond(ctx, prompt, conv.Recent(o.window))
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		o.logger.Error("responder failed", "responder", r.ID(), "error", err)
		notice := fmt.Sprintf("I'm experiencing technical difficulties. Please try again later. Error: %v", err)
		return o.emit(ctx, events, responseEvent(core.NewAgentResponse(speaker, notice, core.StatusError)))
	}

	conv.AppendResponder(string(r.ID()), text)
	resp := core.NewAgentResponse(speaker, text, core.StatusCompleted)
	resp.Data = deal.ExtractSignals(r.ID().ApprovalTag(), text)
	*status = deal.Apply(*status, resp)
	return o.emit(ctx, events, responseEvent(resp))
}

// emit delivers one event, honoring cancellation and the pacing delay.
// Returns false when the context is done.
func (o *Orchestrator) emit(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case <-ctx.Done():
		return false
	case events <- ev:
	}
	if o.delay > 0 {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(o.delay):
		}
	}
	return true
}

// recoverToErrorEvent converts a fault outside the per-responder path into a
// single System error event. The stream then terminates without the
// completion marker.
func (o *Orchestrator) recoverToErrorEvent(ctx context.Context, events chan<- Event) {
	rec := recover()
	if rec == nil {
		return
	}
	o.logger.Error("request failed", "panic", rec)
	resp := core.NewAgentResponse(systemSpeaker, fmt.Sprintf("Error processing request: %v", rec), core.StatusError)
	select {
	case <-ctx.Done():
	case events <- responseEvent(resp):
	}
}
