// Package genai implements the ai.TextGenerator port against the Gemini
// generateContent REST API.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	portsai "github.com/FlowCashApp/flowcash_backend/internal/core/ports/ai"
)

// Config configures the Gemini endpoint and HTTP behavior.
type Config struct {
	APIKey     string
	BaseURL    string // default https://generativelanguage.googleapis.com/v1beta
	Model      string // default model when a request names none
	HTTPClient *http.Client
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	cfg Config
}

// NewClient builds a Gemini text-generation client.
func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	return &Client{cfg: cfg}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *portsai.Schema `json:"responseSchema,omitempty"`
}

// Generate sends the prompt and returns the generated text. A well-formed
// response without any text (e.g. no candidates) yields "" with a nil error;
// transport failures, non-2xx statuses and undecodable bodies yield an error.
func (c *Client) Generate(ctx context.Context, req portsai.GenerateRequest) (string, error) {
	apiKey := strings.TrimSpace(c.cfg.APIKey)
	if apiKey == "" {
		return "", fmt.Errorf("api key is required")
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return "", fmt.Errorf("prompt is required")
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = c.cfg.Model
	}

	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if req.ResponseMIMEType != "" || req.ResponseSchema != nil {
		body.GenerationConfig = &generationConfig{
			ResponseMIMEType: req.ResponseMIMEType,
			ResponseSchema:   req.ResponseSchema,
		}
	}
	requestBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.cfg.BaseURL, "/"), model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// Credential material is sent only as a header and is never echoed in
	// errors or response payloads.
	httpReq.Header.Set("x-goog-api-key", apiKey)

	res, err := c.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		errBody, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return "", fmt.Errorf("read generate error body: %w", err)
		}
		return "", fmt.Errorf("generate request status %d: %s", res.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var payload struct {
		Candidates []struct {
			Content struct {
				Parts []part `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	var sb strings.Builder
	for _, cand := range payload.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		// Only the first candidate is consumed.
		break
	}
	return strings.TrimSpace(sb.String()), nil
}

var _ portsai.TextGenerator = (*Client)(nil)
