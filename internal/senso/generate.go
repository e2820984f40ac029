// ABOUTME: Content generation against /generate and /generate/prompt.
// ABOUTME: Generation draws on stored knowledge and can optionally save the result.

package senso

import (
	"context"
	"errors"
	"net/http"
)

// DefaultMaxResults is how many source entries generation consults when the
// caller does not say otherwise.
const DefaultMaxResults = 5

// Source identifies a knowledge-base entry used during generation.
type Source struct {
	ContentID string `json:"content_id"`
	Title     string `json:"title"`
}

// GenerateRequest is the body for ad-hoc generation.
type GenerateRequest struct {
	ContentType  string `json:"content_type"`
	Instructions string `json:"instructions"`
	Save         bool   `json:"save"`
	MaxResults   int    `json:"max_results"`
}

// GenerateResponse carries the generated text, the id it was saved under
// (when saving was requested), and the sources consulted.
type GenerateResponse struct {
	GeneratedText string   `json:"generated_text"`
	ContentID     string   `json:"content_id,omitempty"`
	Sources       []Source `json:"sources,omitempty"`
}

// Generate produces new content from instructions and existing knowledge.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if req.ContentType == "" || req.Instructions == "" {
		return nil, errors.New("content type and instructions are required")
	}
	if req.MaxResults <= 0 {
		req.MaxResults = DefaultMaxResults
	}

	var resp GenerateResponse
	if err := c.doJSON(ctx, http.MethodPost, "/generate", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GeneratePromptRequest is the body for generation driven by a saved prompt.
type GeneratePromptRequest struct {
	PromptID    string `json:"prompt_id"`
	ContentType string `json:"content_type"`
	TemplateID  string `json:"template_id,omitempty"`
	Save        bool   `json:"save"`
	MaxResults  int    `json:"max_results"`
}

// GeneratePromptResponse extends the plain generation response with the
// prompt and template that shaped the output.
type GeneratePromptResponse struct {
	GeneratedText string    `json:"generated_text"`
	ContentID     string    `json:"content_id,omitempty"`
	Sources       []Source  `json:"sources,omitempty"`
	Prompt        Prompt    `json:"prompt"`
	Template      *Template `json:"template,omitempty"`
}

// GenerateWithPrompt produces content using a saved prompt and an optional
// output template.
func (c *Client) GenerateWithPrompt(ctx context.Context, req GeneratePromptRequest) (*GeneratePromptResponse, error) {
	if req.PromptID == "" || req.ContentType == "" {
		return nil, errors.New("prompt id and content type are required")
	}
	if req.MaxResults <= 0 {
		req.MaxResults = 25
	}

	var resp GeneratePromptResponse
	if err := c.doJSON(ctx, http.MethodPost, "/generate/prompt", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
