package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/docimprove/internal/budget"
)

// DefaultMaxTokens is the output budget used when none is configured.
const DefaultMaxTokens = 2000

// stopSequences is the fixed stop list sent with every completion request.
var stopSequences = []string{"\n\n"}

// Completer wraps a single "complete this prompt" capability against one
// fixed model. The request is synchronous and blocking; API errors are
// returned to the caller, which treats them as a per-URL failure.
type Completer struct {
	Client    Client
	Model     string
	MaxTokens int
}

// Complete submits the prompt as a single user message and returns the raw
// completion text. An endpoint response with no choices is tolerated and
// reported as an empty string, not an error.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if c.Client == nil || strings.TrimSpace(c.Model) == "" {
		return "", errors.New("completer not configured")
	}
	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	// Advisory only: warn when the prompt likely exceeds the model context.
	if est := budget.EstimateTokens(prompt); !budget.FitsInContext(c.Model, maxTokens, est) {
		log.Warn().
			Str("model", c.Model).
			Int("promptTokens", est).
			Int("maxTokens", maxTokens).
			Msg("prompt may exceed model context window")
	}

	req := openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Stop:        stopSequences,
		Temperature: 0.1,
		N:           1,
	}
	resp, err := c.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("completion call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
