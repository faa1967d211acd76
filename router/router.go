// Package router classifies an incoming message into the set of responders
// that should handle it. Classification is delegated to a text generator
// expected to emit strict JSON; every failure mode collapses into a
// deterministic fallback so the orchestrator always has at least one
// responder to invoke.
package router

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hupe1980/dealdesk/logging"
	"github.com/hupe1980/dealdesk/model"
	"github.com/hupe1980/dealdesk/responder"
)

// MessageType categorizes the incoming message.
type MessageType string

const (
	// TypeQuestion is a direct question to one or more specialists.
	TypeQuestion MessageType = "question"
	// TypeProposalRequest asks for a complete deal proposal.
	TypeProposalRequest MessageType = "proposal_request"
	// TypeAnalysisRequest asks for an analysis of an existing deal.
	TypeAnalysisRequest MessageType = "analysis_request"
	// TypeGeneral is anything outside the expertise areas.
	TypeGeneral MessageType = "general"
)

// Decision is the classifier's output: which responders should handle the
// message, in invocation order, and why. Produced fresh per message, never
// persisted.
type Decision struct {
	RelevantAgents []responder.ID `json:"relevantAgents"`
	Reasoning      string         `json:"reasoning"`
	MessageType    MessageType    `json:"messageType"`
}

// Options configure a Router.
type Options struct {
	Logger logging.Logger
}

// Router delegates classification to a generator and parses its output.
type Router struct {
	gen    model.Generator
	logger logging.Logger
}

// New constructs a Router.
func New(gen model.Generator, optFns ...func(o *Options)) *Router {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Router{gen: gen, logger: opts.Logger}
}

// Classify routes a message. It never returns an error: on generation
// failure, non-JSON output or an empty agent list it falls back to the
// general assistant.
func (r *Router) Classify(ctx context.Context, message string) Decision {
	raw, err := r.gen.Generate(ctx, model.Request{
		Instructions: routingInstructions,
		Message:      message,
	})
	if err != nil {
		r.logger.Warn("routing generation failed, defaulting to general assistant", "error", err)
		return fallback("Error in routing analysis")
	}

	var decision Decision
	if err := json.Unmarshal([]byte(stripFences(raw)), &decision); err != nil || len(decision.RelevantAgents) == 0 {
		r.logger.Warn("unusable routing response, defaulting to general assistant", "response", raw)
		return fallback("Unable to determine specific expertise area")
	}

	if decision.MessageType == "" {
		decision.MessageType = TypeGeneral
	}
	r.logger.Info("routed message", "agents", decision.RelevantAgents, "type", decision.MessageType)
	return decision
}

func fallback(reason string) Decision {
	return Decision{
		RelevantAgents: []responder.ID{responder.General},
		Reasoning:      reason,
		MessageType:    TypeGeneral,
	}
}

// stripFences removes a surrounding markdown code fence, which chat models
// frequently wrap JSON in despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

const routingInstructions = `You are an intelligent message router for an AI Deal Desk Assistant. Your job
is to analyze incoming messages and determine which expert agents should
respond.

Available agents and their expertise:
- PricingAgent: Pricing strategy, discounts, revenue analysis, margin calculations, payment terms
- LegalAgent: Contract terms, compliance, risk assessment, legal implications, SLA requirements
- FinanceAgent: Financial projections, ROI analysis, budget impact, cash flow, ARR calculations
- VPAgent: Strategic decisions, executive recommendations, final approvals, high-level business impact
- SalesRepAgent: Customer relationship, deal coordination, sales process, customer requirements
- GeneralAssistant: General questions outside the specific expertise areas above

Analyze the user's message and respond with ONLY a JSON object in this exact format:
{
  "relevantAgents": ["AgentName1", "AgentName2"],
  "reasoning": "Brief explanation of why these agents are relevant",
  "messageType": "question|proposal_request|analysis_request|general"
}

Rules:
- If asking about pricing, discounts, or financial terms: include PricingAgent and possibly FinanceAgent
- If asking about contracts, legal terms, or compliance: include LegalAgent
- If asking about financial impact, ROI, or budgets: include FinanceAgent
- If asking for executive decision or strategic advice: include VPAgent
- If asking about sales process or customer management: include SalesRepAgent
- If asking for a complete deal proposal: include PricingAgent, LegalAgent, FinanceAgent, VPAgent
- If the question is outside all expertise areas: use GeneralAssistant only
- Maximum 3 agents per response unless it's a complete proposal request`
