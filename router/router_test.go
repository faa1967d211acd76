package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dealdesk/model"
	"github.com/hupe1980/dealdesk/responder"
)

func TestClassify_ValidJSON(t *testing.T) {
	gen := model.NewMock()
	gen.AddResponse(
		"What are standard discount rates for deals over $500K?",
		`{"relevantAgents":["PricingAgent","FinanceAgent"],"reasoning":"Discount rates are a pricing question with financial impact","messageType":"question"}`,
	)
	r := New(gen)

	decision := r.Classify(context.Background(), "What are standard discount rates for deals over $500K?")

	require.Equal(t, []responder.ID{responder.Pricing, responder.Finance}, decision.RelevantAgents)
	assert.Equal(t, TypeQuestion, decision.MessageType)
	assert.NotEmpty(t, decision.Reasoning)
}

func TestClassify_PreservesClassifierOrder(t *testing.T) {
	gen := model.NewMock()
	gen.AddResponse("full proposal please",
		`{"relevantAgents":["PricingAgent","LegalAgent","FinanceAgent","VPAgent"],"reasoning":"complete proposal","messageType":"proposal_request"}`,
	)
	r := New(gen)

	decision := r.Classify(context.Background(), "full proposal please")

	assert.Equal(t, []responder.ID{responder.Pricing, responder.Legal, responder.Finance, responder.VP}, decision.RelevantAgents)
	assert.Equal(t, TypeProposalRequest, decision.MessageType)
}

func TestClassify_CaseInsensitiveKeys(t *testing.T) {
	gen := model.NewMock()
	gen.AddResponse("contract question",
		`{"RelevantAgents":["LegalAgent"],"Reasoning":"contract terms","MessageType":"question"}`,
	)
	r := New(gen)

	decision := r.Classify(context.Background(), "contract question")

	assert.Equal(t, []responder.ID{responder.Legal}, decision.RelevantAgents)
}

func TestClassify_StripsCodeFences(t *testing.T) {
	gen := model.NewMock()
	gen.AddResponse("fenced", "```json\n{\"relevantAgents\":[\"FinanceAgent\"],\"reasoning\":\"roi\",\"messageType\":\"analysis_request\"}\n```")
	r := New(gen)

	decision := r.Classify(context.Background(), "fenced")

	assert.Equal(t, []responder.ID{responder.Finance}, decision.RelevantAgents)
	assert.Equal(t, TypeAnalysisRequest, decision.MessageType)
}

func TestClassify_NonJSONFallsBack(t *testing.T) {
	gen := model.NewMock()
	gen.AddResponse("weird", "I think the PricingAgent should answer this one.")
	r := New(gen)

	decision := r.Classify(context.Background(), "weird")

	assert.Equal(t, []responder.ID{responder.General}, decision.RelevantAgents)
	assert.Equal(t, TypeGeneral, decision.MessageType)
	assert.Equal(t, "Unable to determine specific expertise area", decision.Reasoning)
}

func TestClassify_EmptyAgentListFallsBack(t *testing.T) {
	gen := model.NewMock()
	gen.AddResponse("empty", `{"relevantAgents":[],"reasoning":"none","messageType":"general"}`)
	r := New(gen)

	decision := r.Classify(context.Background(), "empty")

	require.NotEmpty(t, decision.RelevantAgents)
	assert.Equal(t, []responder.ID{responder.General}, decision.RelevantAgents)
}

func TestClassify_GenerationErrorFallsBack(t *testing.T) {
	gen := model.NewMock()
	gen.Err = errors.New("backend unavailable")
	r := New(gen)

	decision := r.Classify(context.Background(), "anything")

	assert.Equal(t, []responder.ID{responder.General}, decision.RelevantAgents)
	assert.Equal(t, TypeGeneral, decision.MessageType)
	assert.Equal(t, "Error in routing analysis", decision.Reasoning)
}

func TestClassify_MissingMessageTypeDefaultsToGeneral(t *testing.T) {
	gen := model.NewMock()
	gen.AddResponse("typed", `{"relevantAgents":["SalesRepAgent"],"reasoning":"sales process"}`)
	r := New(gen)

	decision := r.Classify(context.Background(), "typed")

	assert.Equal(t, TypeGeneral, decision.MessageType)
}

func TestClassify_SendsRoutingInstructions(t *testing.T) {
	gen := model.NewMock()
	r := New(gen)

	r.Classify(context.Background(), "hello")

	calls := gen.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Instructions, "message router")
	assert.Equal(t, "hello", calls[0].Message)
}
