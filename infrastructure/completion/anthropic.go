// Package completion provides the clients that turn a composed prompt into
// reply text: a hosted Anthropic client for live mode and a deterministic
// mock for offline operation.
package completion

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"valet-backend/domain/prompt"
)

// AnthropicClient forwards composed prompts to the hosted chat-completion
// API with a fixed model identifier. The call is synchronous; callers impose
// timeouts through ctx.
type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
	logger    *zap.Logger
}

// NewAnthropicClient creates a live completion client.
func NewAnthropicClient(apiKey, model string, maxTokens int, logger *zap.Logger) *AnthropicClient {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &c,
		model:     anthropic.Model(model),
		maxTokens: int64(maxTokens),
		logger:    logger,
	}
}

// Complete sends the message sequence and returns the concatenated text
// blocks of the response.
func (c *AnthropicClient) Complete(ctx context.Context, msgs []prompt.Message) (string, error) {
	var system []anthropic.TextBlockParam
	var turns []anthropic.MessageParam

	for _, m := range msgs {
		switch m.Role {
		case prompt.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
		case prompt.RoleUser:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  turns,
		System:    system,
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude API error: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	c.logger.Debug("Completion received",
		zap.Int("inputTokens", int(resp.Usage.InputTokens)),
		zap.Int("outputTokens", int(resp.Usage.OutputTokens)),
	)

	return b.String(), nil
}
