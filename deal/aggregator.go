package deal

import (
	"slices"
	"time"

	"github.com/hupe1980/dealdesk/core"
)

// Apply folds one responder result into the status, returning the updated
// record without mutating the input. Rules run in a fixed order: present
// metric fields overwrite, approvals move pending to completed exactly once,
// blockers append (duplicates allowed, it is a log), and a present deal
// status sets both the running state and the final decision. A later
// response lacking a field never clears it.
func Apply(s Status, r core.AgentResponse) Status {
	if r.Data == nil {
		return s
	}
	out := s.clone()

	if r.Data.Margin != nil {
		v := *r.Data.Margin
		out.TotalMargin = &v
	}
	if r.Data.LegalRiskScore != nil {
		v := *r.Data.LegalRiskScore
		out.LegalRiskScore = &v
	}
	if r.Data.ARRImpact != nil {
		v := *r.Data.ARRImpact
		out.ARRImpact = &v
	}

	for _, approval := range r.Data.Approvals {
		if slices.Contains(out.CompletedApprovals, approval) {
			continue
		}
		out.CompletedApprovals = append(out.CompletedApprovals, approval)
		if i := slices.Index(out.PendingApprovals, approval); i >= 0 {
			out.PendingApprovals = slices.Delete(out.PendingApprovals, i, i+1)
		}
	}

	out.Blockers = append(out.Blockers, r.Data.Blockers...)

	if r.Data.DealStatus != "" {
		out.Status = r.Data.DealStatus
		out.FinalDecision = r.Data.DealStatus
	}

	out.LastUpdated = time.Now().UTC()
	return out
}
