// Package deal tracks the cumulative decision state of one multi-responder
// request: metrics, approvals, blockers and the final verdict. The aggregate
// is folded forward one responder result at a time; approvals only ever move
// from pending to completed and blockers only append.
package deal

import (
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/dealdesk/core"
)

// Deal states.
const (
	StateProcessing = "processing"
	StateApproved   = "approved"
	StateDenied     = "denied"
)

// Checklist returns the fixed approval checklist. CompletedApprovals and
// PendingApprovals always partition this set.
func Checklist() []string {
	return []string{"pricing", "legal", "finance", "vp"}
}

// Status is the cumulative record for one top-level request. Wire field
// names are lowerCamelCase for client compatibility.
type Status struct {
	DealID             string    `json:"dealId"`
	Status             string    `json:"status"`
	TotalMargin        *float64  `json:"totalMargin,omitempty"`
	LegalRiskScore     *int      `json:"legalRiskScore,omitempty"`
	ARRImpact          *float64  `json:"arrImpact,omitempty"`
	CompletedApprovals []string  `json:"completedApprovals"`
	PendingApprovals   []string  `json:"pendingApprovals"`
	Blockers           []string  `json:"blockers"`
	CreatedAt          time.Time `json:"createdAt"`
	LastUpdated        time.Time `json:"lastUpdated"`
	FinalDecision      string    `json:"finalDecision,omitempty"`
	Reasoning          string    `json:"decisionReasoning,omitempty"`
}

// NewStatus creates a fresh processing-state record with the full checklist
// pending.
func NewStatus() Status {
	now := time.Now().UTC()
	return Status{
		DealID:             core.NewID(),
		Status:             StateProcessing,
		CompletedApprovals: []string{},
		PendingApprovals:   Checklist(),
		Blockers:           []string{},
		CreatedAt:          now,
		LastUpdated:        now,
	}
}

// Summary renders the accumulated state for inclusion in an executive
// prompt.
func (s Status) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s\n", s.Status)
	if s.TotalMargin != nil {
		fmt.Fprintf(&b, "Margin: %.1f%%\n", *s.TotalMargin)
	}
	if s.LegalRiskScore != nil {
		fmt.Fprintf(&b, "Legal risk score: %d/10\n", *s.LegalRiskScore)
	}
	if s.ARRImpact != nil {
		fmt.Fprintf(&b, "ARR impact: $%.0f\n", *s.ARRImpact)
	}
	fmt.Fprintf(&b, "Completed approvals: %s\n", joinOrNone(s.CompletedApprovals))
	fmt.Fprintf(&b, "Pending approvals: %s\n", joinOrNone(s.PendingApprovals))
	fmt.Fprintf(&b, "Blockers: %s", joinOrNone(s.Blockers))
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func (s Status) clone() Status {
	out := s
	out.CompletedApprovals = append([]string(nil), s.CompletedApprovals...)
	out.PendingApprovals = append([]string(nil), s.PendingApprovals...)
	out.Blockers = append([]string(nil), s.Blockers...)
	if s.TotalMargin != nil {
		v := *s.TotalMargin
		out.TotalMargin = &v
	}
	if s.LegalRiskScore != nil {
		v := *s.LegalRiskScore
		out.LegalRiskScore = &v
	}
	if s.ARRImpact != nil {
		v := *s.ARRImpact
		out.ARRImpact = &v
	}
	return out
}
