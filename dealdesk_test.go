package dealdesk

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dealdesk/model"
	"github.com/hupe1980/dealdesk/orchestrator"
)

func newTestDesk(t *testing.T) *DealDesk {
	t.Helper()
	gen := model.GeneratorFunc(func(_ context.Context, req model.Request) (string, error) {
		if strings.Contains(req.Instructions, "message router") {
			return `{"relevantAgents":["FinanceAgent"],"reasoning":"roi question","messageType":"question"}`, nil
		}
		return "Projected payback is under a year.", nil
	})
	return New(gen, func(o *Options) {
		o.EventDelay = 0
	})
}

func TestDealDesk_ChatEndToEnd(t *testing.T) {
	desk := newTestDesk(t)

	events, err := desk.Chat(context.Background(), "s1", "What is the ROI on this deal?")
	require.NoError(t, err)

	var got []orchestrator.Event
	for ev := range events {
		got = append(got, ev)
	}

	require.Len(t, got, 3)
	assert.Equal(t, "FinanceAgent", got[0].Response.Speaker)
	assert.Equal(t, orchestrator.EventComplete, got[2].Type)
}

func TestDealDesk_SessionLifecycle(t *testing.T) {
	desk := newTestDesk(t)

	events, err := desk.Chat(context.Background(), "s1", "question one")
	require.NoError(t, err)
	for range events {
	}
	assert.Equal(t, 1, desk.store.Len())

	desk.EvictSession("s1")
	assert.Equal(t, 0, desk.store.Len())
}

func TestDealDesk_SweepSessions(t *testing.T) {
	desk := newTestDesk(t)

	events, err := desk.Chat(context.Background(), "stale", "question")
	require.NoError(t, err)
	for range events {
	}

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, desk.SweepSessions(time.Hour), "active sessions survive the sweep")
	assert.Equal(t, 1, desk.SweepSessions(time.Millisecond), "idle sessions are removed")
}
