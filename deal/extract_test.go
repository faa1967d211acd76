package deal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSignals_PricingMarkers(t *testing.T) {
	text := "The requested 20% discount is within policy.\n\nMARGIN: 68% | RECOMMENDATION: approve"

	data := ExtractSignals("pricing", text)
	require.NotNil(t, data)
	require.NotNil(t, data.Margin)
	assert.Equal(t, 68.0, *data.Margin)
	assert.Equal(t, []string{"pricing"}, data.Approvals)
	assert.Empty(t, data.Blockers)
	assert.Empty(t, data.DealStatus)
}

func TestExtractSignals_LegalMarkersNoBlockers(t *testing.T) {
	text := "Total risk assessment: low.\n\nRISK_SCORE: 2 | BLOCKERS: no | RECOMMENDATION: approve"

	data := ExtractSignals("legal", text)
	require.NotNil(t, data)
	require.NotNil(t, data.LegalRiskScore)
	assert.Equal(t, 2, *data.LegalRiskScore)
	assert.Empty(t, data.Blockers)
	assert.Equal(t, []string{"legal"}, data.Approvals)
}

func TestExtractSignals_BlockerList(t *testing.T) {
	text := "RISK_SCORE: 7 | BLOCKERS: missing security review; non-standard SLA | RECOMMENDATION: deny"

	data := ExtractSignals("legal", text)
	require.NotNil(t, data)
	assert.Equal(t, []string{"missing security review", "non-standard SLA"}, data.Blockers)
	assert.Empty(t, data.Approvals, "a deny recommendation grants no approval")
}

func TestExtractSignals_FinanceMarkers(t *testing.T) {
	text := "Strong metrics.\n\nARR_IMPACT: $300,000 | MARGIN: 68% | RECOMMENDATION: approve"

	data := ExtractSignals("finance", text)
	require.NotNil(t, data)
	require.NotNil(t, data.ARRImpact)
	assert.Equal(t, 300000.0, *data.ARRImpact)
	require.NotNil(t, data.Margin)
	assert.Equal(t, 68.0, *data.Margin)
	assert.Equal(t, []string{"finance"}, data.Approvals)
}

func TestExtractSignals_FinalDecision(t *testing.T) {
	text := "All departments recommend approval.\n\nFINAL_DECISION: APPROVED | REASONING: Strong metrics with low risk"

	data := ExtractSignals("vp", text)
	require.NotNil(t, data)
	assert.Equal(t, StateApproved, data.DealStatus)
	assert.Equal(t, []string{"vp"}, data.Approvals)

	denied := ExtractSignals("vp", "FINAL_DECISION: DENIED | REASONING: Margin below threshold")
	require.NotNil(t, denied)
	assert.Equal(t, StateDenied, denied.DealStatus)
	assert.Empty(t, denied.Approvals)
}

func TestExtractSignals_CaseInsensitive(t *testing.T) {
	data := ExtractSignals("pricing", "margin: 42.5% | recommendation: Approve")
	require.NotNil(t, data)
	require.NotNil(t, data.Margin)
	assert.Equal(t, 42.5, *data.Margin)
	assert.Equal(t, []string{"pricing"}, data.Approvals)
}

func TestExtractSignals_NoApprovalTag(t *testing.T) {
	data := ExtractSignals("", "MARGIN: 10% | RECOMMENDATION: approve")
	require.NotNil(t, data)
	assert.Empty(t, data.Approvals)
}

func TestExtractSignals_PlainTextYieldsNil(t *testing.T) {
	assert.Nil(t, ExtractSignals("pricing", "Happy to help with your question about onboarding."))
	assert.Nil(t, ExtractSignals("pricing", ""))
}
