package core

import (
	"time"

	"github.com/google/uuid"
)

// Status values for the lifecycle of an AgentResponse. A placeholder is
// emitted as "processing" before its responder runs; the follow-up carries
// either "completed" or "error".
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// AgentData carries the optional structured fields a responder can attach to
// a response. All fields are sparse: pointers / empty slices distinguish
// absence from zero values. Field names on the wire are a compatibility
// contract with existing clients and must stay lowerCamelCase.
type AgentData struct {
	Margin         *float64       `json:"margin,omitempty"`
	LegalRiskScore *int           `json:"legalRiskScore,omitempty"`
	ARRImpact      *float64       `json:"arrImpact,omitempty"`
	Approvals      []string       `json:"approvals,omitempty"`
	Blockers       []string       `json:"blockers,omitempty"`
	DealStatus     string         `json:"dealStatus,omitempty"`
	Additional     map[string]any `json:"additionalData,omitempty"`
}

// AgentResponse is the primary unit of communication between the orchestrator
// and external clients: one entry in a request's output stream, representing
// either a placeholder or a finished/failed responder result. After emission
// it must be treated as immutable.
type AgentResponse struct {
	Speaker   string     `json:"speaker"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
	Status    string     `json:"status"`
	Data      *AgentData `json:"data,omitempty"`
}

// NewAgentResponse constructs a response stamped with the current UTC time.
func NewAgentResponse(speaker, text, status string) AgentResponse {
	return AgentResponse{
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now().UTC(),
		Status:    status,
	}
}

// NewID generates a unique identifier usable for deal and correlation IDs.
func NewID() string { return uuid.NewString() }
