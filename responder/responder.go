// Package responder defines the closed set of specialized responders and the
// pool that binds each one to a text-generation capability. Lookup fails
// closed: an identifier outside the configured set resolves to the general
// assistant instead of silently no-op-ing.
package responder

import (
	"context"

	"github.com/hupe1980/dealdesk/conversation"
	"github.com/hupe1980/dealdesk/model"
)

// ID identifies a responder. The set is fixed; these are also the names the
// classifier is instructed to emit.
type ID string

const (
	// Pricing handles pricing strategy, discounts and margin analysis.
	Pricing ID = "PricingAgent"
	// Legal handles contract terms, compliance and risk assessment.
	Legal ID = "LegalAgent"
	// Finance handles projections, ROI, cash flow and ARR impact.
	Finance ID = "FinanceAgent"
	// VP handles strategic decisions and final approvals.
	VP ID = "VPAgent"
	// SalesRep handles customer relationship and deal coordination.
	SalesRep ID = "SalesRepAgent"
	// General handles everything outside the expertise areas above. It is
	// also the fallback target for unmatched identifiers.
	General ID = "GeneralAssistant"
)

// All returns every responder ID in a stable order.
func All() []ID {
	return []ID{Pricing, Legal, Finance, VP, SalesRep, General}
}

// DisplayName is the speaker name used on emitted responses.
func (id ID) DisplayName() string {
	if id == General {
		return "General Assistant"
	}
	return string(id)
}

// ApprovalTag maps a responder to the approval checklist entry it can sign
// off, or "" for responders that carry no approval authority.
func (id ID) ApprovalTag() string {
	switch id {
	case Pricing:
		return "pricing"
	case Legal:
		return "legal"
	case Finance:
		return "finance"
	case VP:
		return "vp"
	default:
		return ""
	}
}

// Responder binds an identity and role instructions to a generator.
type Responder struct {
	id           ID
	instructions string
	gen          model.Generator
}

// New constructs a responder.
func New(id ID, instructions string, gen model.Generator) *Responder {
	return &Responder{id: id, instructions: instructions, gen: gen}
}

// ID returns the responder's identifier.
func (r *Responder) ID() ID { return r.id }

// Respond invokes the underlying generator with this responder's
// instructions, the supplied conversation window and the current message.
func (r *Responder) Respond(ctx context.Context, message string, history []conversation.Turn) (string, error) {
	return r.gen.Generate(ctx, model.Request{
		Instructions: r.instructions,
		History:      history,
		Message:      message,
	})
}
