// Package llm provides a minimal OpenAI-compatible chat-completions
// client used by the analyzer. Both api.openai.com and Azure OpenAI
// deployments are supported; the differences are confined to URL
// construction and the auth header.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrRateLimited marks HTTP 429 responses so callers can apply their
// own backoff policy.
var ErrRateLimited = errors.New("rate limited by provider")

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage is the provider-reported token accounting for one call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Request is one chat-completion request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
	// JSONObject forces response_format {"type":"json_object"}.
	JSONObject bool
}

// Result is the completed response.
type Result struct {
	Content string
	Model   string
	Usage   Usage
}

// Client issues chat completions against one configured endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	authHeader string
	authValue  string
	model      string
}

// NewOpenAI builds a client for api.openai.com (or a compatible base
// URL such as Groq's) with bearer auth.
func NewOpenAI(baseURL, apiKey, model string) *Client {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		url:        base + "/chat/completions",
		authHeader: "Authorization",
		authValue:  "Bearer " + apiKey,
		model:      model,
	}
}

// NewAzure builds a client for an Azure OpenAI deployment. Azure keys
// go in the api-key header and the model is fixed by the deployment.
func NewAzure(endpoint, apiKey, apiVersion, deployment string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		url: fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
			strings.TrimRight(endpoint, "/"), deployment, apiVersion),
		authHeader: "api-key",
		authValue:  apiKey,
		model:      deployment,
	}
}

// Model returns the model (or deployment) name this client targets.
func (c *Client) Model() string {
	return c.model
}

type chatRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete issues one chat completion and returns the first choice.
func (c *Client) Complete(ctx context.Context, req Request) (*Result, error) {
	body := chatRequest{
		Model:       c.model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONObject {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("llm: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("llm: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(c.authHeader, c.authValue)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("llm: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("llm: read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("llm: %w (status 429): %s", ErrRateLimited, truncate(string(raw), 200))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llm: unexpected status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("llm: decode response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("llm: provider error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("llm: response contained no choices")
	}

	model := parsed.Model
	if model == "" {
		model = c.model
	}
	return &Result{
		Content: parsed.Choices[0].Message.Content,
		Model:   model,
		Usage:   parsed.Usage,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
