package gateway

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionRequest is one unit of work for the text-generation provider:
// a system instruction, a user message and whether the reply must be a JSON
// object.
type CompletionRequest struct {
	System   string
	User     string
	JSONMode bool
}

// Provider is the external text-generation collaborator. Implementations
// must honor ctx cancellation; the gateway issues at most one call per unit
// of work and never retries.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// OpenAIProvider completes requests through the OpenAI chat completions API.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a provider for the given key and model with a
// per-call timeout.
func NewOpenAIProvider(apiKey, model string, timeout time.Duration) *OpenAIProvider {
	return &OpenAIProvider{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
