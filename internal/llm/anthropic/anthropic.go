// Package anthropic is a minimal client for the Anthropic messages API.
// One request per run, no retries.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jagaleanoob/llm-commit/internal/config"
)

const (
	anthropicVersion = "2023-06-01"
	messagesPath     = "/v1/messages"
	clientTimeout    = 30 * time.Second
)

// GenerationError wraps any failure talking to the messages API. Callers
// treat it as recoverable and degrade to a deterministic message.
type GenerationError struct {
	Msg string
	Err error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation service: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("generation service: %s", e.Msg)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type Client struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	baseURL     string
	httpClient  *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  &http.Client{Timeout: clientTimeout},
	}
}

type messagesResponse struct {
	Type    string `json:"type"`
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt as the sole user turn and returns the text of
// the first content segment. Responses with multiple segments are valid;
// everything past the first segment is intentionally ignored.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	requestBody, err := json.Marshal(map[string]interface{}{
		"model":       c.model,
		"max_tokens":  c.maxTokens,
		"temperature": c.temperature,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
	})
	if err != nil {
		return "", &GenerationError{Msg: "failed to marshal request body", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", &GenerationError{Msg: "failed to create request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GenerationError{Msg: "failed to send request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{Msg: "failed to read response body", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &GenerationError{Msg: fmt.Sprintf("API request failed with status code %d: %s", resp.StatusCode, string(body))}
	}

	var response messagesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &GenerationError{Msg: "failed to unmarshal response", Err: err}
	}

	if response.Type == "error" && response.Error != nil {
		return "", &GenerationError{Msg: fmt.Sprintf("API error: %s - %s", response.Error.Type, response.Error.Message)}
	}

	if len(response.Content) == 0 {
		return "", &GenerationError{Msg: "no content in response"}
	}

	return strings.TrimSpace(response.Content[0].Text), nil
}
