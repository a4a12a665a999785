package llm

import (
	"context"
	"sync/atomic"

	"offerforge/ports"
)

// MockClient is a scripted GenerationClient for tests
type MockClient struct {
	Response string
	Err      error
	calls    int64
}

func (m *MockClient) Complete(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (*ports.CompletionResponse, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.Err != nil {
		return nil, m.Err
	}
	return &ports.CompletionResponse{
		Content: m.Response,
		Usage:   &ports.UsageData{PromptTokens: 100, CompletionTokens: 200, TotalTokens: 300, Model: "mock"},
	}, nil
}

// Calls reports how many times Complete was invoked
func (m *MockClient) Calls() int {
	return int(atomic.LoadInt64(&m.calls))
}
