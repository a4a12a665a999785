package ports

import "context"

// UsageData represents raw usage data from LLM provider APIs
type UsageData struct {
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	Model            string `json:"model"`
}

// CompletionResponse is a raw generation result with usage accounting
type CompletionResponse struct {
	Content string
	Usage   *UsageData
}

// GenerationClient is the external text-generation collaborator.
// A returned error means the collaborator was unreachable or timed out;
// malformed-but-present content is returned as-is and left to the parser.
type GenerationClient interface {
	Complete(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (*CompletionResponse, error)
}
