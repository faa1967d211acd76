package orchestrator

import (
	"github.com/hupe1980/dealdesk/core"
	"github.com/hupe1980/dealdesk/deal"
)

// EventType discriminates stream payloads.
type EventType string

const (
	// EventResponse carries one AgentResponse.
	EventResponse EventType = "response"
	// EventComplete is the terminal marker ending a successful stream.
	EventComplete EventType = "complete"
)

// Event is one unit on a request's output stream: either an agent response
// (placeholder, result or failure notice) or the terminal completion marker.
// Events are immutable once emitted and delivered strictly in generation
// order.
type Event struct {
	Type     EventType
	Response *core.AgentResponse // set when Type == EventResponse
	Deal     *deal.Status        // final aggregate, set when Type == EventComplete
	Message  string              // human-readable completion note
}

func responseEvent(r core.AgentResponse) Event {
	return Event{Type: EventResponse, Response: &r}
}

func completeEvent(s deal.Status) Event {
	return Event{Type: EventComplete, Deal: &s, Message: "Deal processing complete"}
}
