package llm

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type capturingClient struct {
	lastReq openai.ChatCompletionRequest
	resp    openai.ChatCompletionResponse
	err     error
}

func (c *capturingClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.lastReq = req
	return c.resp, c.err
}

func TestComplete_RequestShape(t *testing.T) {
	cc := &capturingClient{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "better docs"},
		}},
	}}
	c := &Completer{Client: cc, Model: "test-model", MaxTokens: 512}

	out, err := c.Complete(context.Background(), "improve this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "better docs" {
		t.Fatalf("unexpected completion: %q", out)
	}
	if cc.lastReq.Model != "test-model" {
		t.Fatalf("unexpected model: %q", cc.lastReq.Model)
	}
	if cc.lastReq.MaxTokens != 512 {
		t.Fatalf("unexpected max tokens: %d", cc.lastReq.MaxTokens)
	}
	if len(cc.lastReq.Stop) != 1 || cc.lastReq.Stop[0] != "\n\n" {
		t.Fatalf("expected double-newline stop sequence, got %v", cc.lastReq.Stop)
	}
	if len(cc.lastReq.Messages) != 1 || cc.lastReq.Messages[0].Content != "improve this" {
		t.Fatalf("expected single user message with prompt, got %+v", cc.lastReq.Messages)
	}
}

func TestComplete_DefaultMaxTokens(t *testing.T) {
	cc := &capturingClient{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "x"}}},
	}}
	c := &Completer{Client: cc, Model: "test-model"}
	if _, err := c.Complete(context.Background(), "p"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cc.lastReq.MaxTokens != DefaultMaxTokens {
		t.Fatalf("expected default max tokens %d, got %d", DefaultMaxTokens, cc.lastReq.MaxTokens)
	}
}

func TestComplete_EmptyChoicesIsEmptyString(t *testing.T) {
	cc := &capturingClient{resp: openai.ChatCompletionResponse{}}
	c := &Completer{Client: cc, Model: "test-model"}
	out, err := c.Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty string for missing completion, got %q", out)
	}
}

func TestComplete_PropagatesAPIError(t *testing.T) {
	cc := &capturingClient{err: errors.New("quota exceeded")}
	c := &Completer{Client: cc, Model: "test-model"}
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatalf("expected API error to propagate")
	}
}

func TestComplete_NotConfigured(t *testing.T) {
	c := &Completer{}
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatalf("expected configuration error")
	}
}
