// Package llm implements the GenerationClient port against the OpenAI
// chat completions API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"offerforge/internal/config"
	"offerforge/internal/errors"
	"offerforge/ports"
)

// OpenAIClient implements ports.GenerationClient
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	timeout time.Duration
	http    *http.Client
}

// NewOpenAIClient builds a client from AI config
func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIClient{
		apiKey:  cfg.OpenAIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Complete makes a single, non-streaming chat completion call. Any
// transport-level failure surfaces as a generation transport error;
// response content is returned unparsed.
func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (*ports.CompletionResponse, error) {
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type responseFormat struct {
		Type string `json:"type"`
	}
	type reqBody struct {
		Model          string         `json:"model"`
		Messages       []msg          `json:"messages"`
		Temperature    float64        `json:"temperature,omitempty"`
		MaxTokens      int            `json:"max_tokens,omitempty"`
		ResponseFormat responseFormat `json:"response_format"`
	}

	body := reqBody{
		Model: c.model,
		Messages: []msg{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "marshal completion request")
	}

	url := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "build completion request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	log.Printf("[LLMClient] Sending completion request - model=%s, promptLength=%d", c.model, len(prompt))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.GenerationTransport(err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.GenerationTransport(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.GenerationTransport(
			fmt.Errorf("openai status %d: %s", resp.StatusCode, truncate(string(respRaw), 300)))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(respRaw, &parsed); err != nil {
		return nil, errors.GenerationTransport(fmt.Errorf("malformed completion envelope: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.GenerationTransport(fmt.Errorf("no choices in completion response"))
	}

	log.Printf("[LLMClient] Completion received - tokens=%d", parsed.Usage.TotalTokens)

	return &ports.CompletionResponse{
		Content: parsed.Choices[0].Message.Content,
		Usage: &ports.UsageData{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			TotalTokens:      parsed.Usage.TotalTokens,
			Model:            c.model,
		},
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
