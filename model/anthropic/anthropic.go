// Package anthropic provides a model.Generator backed by the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hupe1980/dealdesk/conversation"
	"github.com/hupe1980/dealdesk/model"
)

// Options configure the Anthropic generator (model id, temperature, max
// tokens, API key).
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Generator wraps the Anthropic Messages API behind model.Generator.
type Generator struct {
	client *anthropic.Client
	opts   Options
}

// New creates a Generator using the official client. Without an explicit
// APIKey the client falls back to the ANTHROPIC_API_KEY environment variable.
func New(optFns ...func(o *Options)) *Generator {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)
	return &Generator{client: &client, opts: opts}
}

// NewFromClient creates a Generator from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Generator {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Generator{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.2,
		MaxTokens:   1024,
	}
}

// Generate implements model.Generator.
func (g *Generator) Generate(ctx context.Context, req model.Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       g.opts.Model,
		Messages:    buildMessages(req),
		MaxTokens:   g.opts.MaxTokens,
		Temperature: anthropic.Float(g.opts.Temperature),
	}
	if req.Instructions != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.Instructions}}
	}
	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", &model.GenerationError{Provider: "anthropic", Err: err}
	}
	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}
	return sb.String(), nil
}

// buildMessages converts the conversation window plus current message into
// Anthropic messages. Consecutive turns with the same role are merged since
// the Messages API requires alternating roles.
func buildMessages(req model.Request) []anthropic.MessageParam {
	type chunk struct {
		user bool
		text string
	}
	var chunks []chunk
	add := func(user bool, text string) {
		if n := len(chunks); n > 0 && chunks[n-1].user == user {
			chunks[n-1].text += "\n\n" + text
			return
		}
		chunks = append(chunks, chunk{user: user, text: text})
	}
	for _, t := range req.History {
		add(t.Role == conversation.RoleUser, t.Text)
	}
	if n := len(req.History); n == 0 || req.History[n-1].Text != req.Message {
		add(true, req.Message)
	}

	messages := make([]anthropic.MessageParam, 0, len(chunks))
	for _, c := range chunks {
		if c.user {
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(c.text)))
		} else {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(c.text)))
		}
	}
	return messages
}
