package deal

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hupe1980/dealdesk/core"
)

// Specialist responders conclude their answers with a marker line such as
//
//	MARGIN: 68% | RECOMMENDATION: approve
//	RISK_SCORE: 2 | BLOCKERS: no | RECOMMENDATION: approve
//	ARR_IMPACT: $300,000 | MARGIN: 68% | RECOMMENDATION: approve
//	FINAL_DECISION: APPROVED | REASONING: Strong metrics with low risk
//
// ExtractSignals parses those markers into structured fields for the
// aggregator.
var (
	marginRe   = regexp.MustCompile(`(?i)\bMARGIN:\s*([0-9]+(?:\.[0-9]+)?)\s*%`)
	riskRe     = regexp.MustCompile(`(?i)\bRISK_SCORE:\s*([0-9]+)`)
	arrRe      = regexp.MustCompile(`(?i)\bARR_IMPACT:\s*\$?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)
	blockersRe = regexp.MustCompile(`(?i)\bBLOCKERS:\s*([^|\n]+)`)
	approveRe  = regexp.MustCompile(`(?i)\bRECOMMENDATION:\s*approve\b`)
	decisionRe = regexp.MustCompile(`(?i)\bFINAL_DECISION:\s*(APPROVED|DENIED)\b`)
)

// ExtractSignals parses marker lines out of a responder's text. approvalTag
// is the checklist entry the responder is allowed to sign off ("" for none);
// the tag is granted on an approve recommendation or an approved final
// decision. Returns nil when the text carries no signals at all.
func ExtractSignals(approvalTag, text string) *core.AgentData {
	data := &core.AgentData{}
	found := false

	if m := marginRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			data.Margin = &v
			found = true
		}
	}
	if m := riskRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			data.LegalRiskScore = &v
			found = true
		}
	}
	if m := arrRe.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			data.ARRImpact = &v
			found = true
		}
	}
	if m := blockersRe.FindStringSubmatch(text); m != nil {
		if blockers := parseBlockers(m[1]); len(blockers) > 0 {
			data.Blockers = blockers
			found = true
		}
	}

	approved := false
	if m := decisionRe.FindStringSubmatch(text); m != nil {
		data.DealStatus = strings.ToLower(m[1])
		approved = data.DealStatus == StateApproved
		found = true
	}
	if approveRe.MatchString(text) {
		approved = true
		found = true
	}
	if approved && approvalTag != "" {
		data.Approvals = []string{approvalTag}
	}

	if !found {
		return nil
	}
	return data
}

func parseBlockers(raw string) []string {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "no", "none":
		return nil
	}
	var blockers []string
	for _, item := range strings.Split(raw, ";") {
		if item = strings.TrimSpace(item); item != "" {
			blockers = append(blockers, item)
		}
	}
	return blockers
}
