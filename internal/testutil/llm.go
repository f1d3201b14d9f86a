// Package testutil holds test doubles shared across packages.
package testutil

import (
	"context"
	"sync"

	"github.com/mark-torres10/personal-tribe-of-mentors/internal/adapter/llm"
)

// RecordingLLMClient is an llm.LLMClient that records every request it
// receives and answers with a fixed reply or error.
type RecordingLLMClient struct {
	Reply string
	Err   error

	mu       sync.Mutex
	requests []llm.ChatCompletionRequest
	contexts []context.Context
}

var _ llm.LLMClient = (*RecordingLLMClient)(nil)

// CreateChatCompletion records req and returns the configured outcome.
func (r *RecordingLLMClient) CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	r.mu.Lock()
	cp := *req
	cp.Messages = append([]llm.ChatMessage(nil), req.Messages...)
	r.requests = append(r.requests, cp)
	r.contexts = append(r.contexts, ctx)
	r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	reply := r.Reply
	return &llm.ChatCompletionResponse{
		ID:     "stub-1",
		Object: "chat.completion",
		Model:  req.Model,
		Choices: []llm.Choice{
			{Index: 0, Message: &llm.ResponseMessage{Role: "assistant", Content: &reply}, FinishReason: "stop"},
		},
	}, nil
}

// Calls returns the number of requests received.
func (r *RecordingLLMClient) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

// Requests returns a copy of the recorded requests in call order.
func (r *RecordingLLMClient) Requests() []llm.ChatCompletionRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]llm.ChatCompletionRequest(nil), r.requests...)
}

// LastContext returns the context passed to the most recent call.
func (r *RecordingLLMClient) LastContext() context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.contexts) == 0 {
		return nil
	}
	return r.contexts[len(r.contexts)-1]
}

// EmptyLLMClient answers every request with a response carrying no choices.
type EmptyLLMClient struct{}

func (EmptyLLMClient) CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	return &llm.ChatCompletionResponse{Model: req.Model}, nil
}
