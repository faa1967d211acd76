package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/dealdesk/deal"
	"github.com/hupe1980/dealdesk/responder"
)

// proposalSequence is the fixed responder order for full-proposal requests.
var proposalSequence = []responder.ID{
	responder.Pricing,
	responder.Legal,
	responder.Finance,
	responder.VP,
}

var proposalPlaceholders = map[responder.ID]string{
	responder.Pricing: "Analyzing pricing and discount policy...",
	responder.Legal:   "Reviewing legal implications and risk factors...",
	responder.Finance: "Analyzing financial impact and profitability...",
	responder.VP:      "Making final approval decision based on all analysis...",
}

// Proposal handles one "generate a full proposal" request: the same state
// machine as Chat with a statically fixed routing decision. Responders run
// in the fixed pricing, legal, finance, executive-approval order; the
// executive step receives the accumulated deal status instead of only the
// raw message.
func (o *Orchestrator) Proposal(ctx context.Context, sessionID, message string) (<-chan Event, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	events := make(chan Event, o.bufSize)
	go o.runProposal(ctx, sessionID, message, events)
	return events, nil
}

func (o *Orchestrator) runProposal(ctx context.Context, sessionID, message string, events chan Event) {
	defer close(events)
	defer o.recoverToErrorEvent(ctx, events)

	conv := o.store.GetOrCreate(sessionID)
	conv.AppendUser(message)
	o.logger.Info("processing deal proposal", "session_id", sessionID)

	status := deal.NewStatus()
	for _, id := range proposalSequence {
		prompt := message
		if id == responder.VP {
			prompt = executivePrompt(message, status)
		}
		placeholder := proposalPlaceholders[id]
		if placeholder == "" {
			placeholder = genericPlaceholder
		}
		if !o.dispatch(ctx, conv, id, prompt, placeholder, &status, events) {
			return
		}
	}
	o.logger.Info("proposal decision reached", "deal_id", status.DealID, "decision", status.FinalDecision)
	o.emit(ctx, events, completeEvent(status))
}

func executivePrompt(message string, status deal.Status) string {
	return fmt.Sprintf(
		"Make the final approval decision for this deal request.\n\nRequest: %s\n\nAccumulated deal status:\n%s",
		message, status.Summary(),
	)
}
