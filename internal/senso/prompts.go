// ABOUTME: Saved prompt management against the /prompts endpoints.
// ABOUTME: Prompts are named generation instructions with {{variable}} slots.

package senso

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// MaxPageSize caps list pagination, matching the remote API's limit.
const MaxPageSize = 100

// Prompt is a saved generation prompt.
type Prompt struct {
	PromptID  string `json:"prompt_id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreatePrompt registers a new prompt under a unique name.
func (c *Client) CreatePrompt(ctx context.Context, name, text string) (*Prompt, error) {
	if name == "" || text == "" {
		return nil, errors.New("name and text are required")
	}

	body := map[string]string{"name": name, "text": text}
	var resp Prompt
	if err := c.doJSON(ctx, http.MethodPost, "/prompts", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPrompts pages through the organization's prompts.
func (c *Client) ListPrompts(ctx context.Context, limit, offset int) ([]Prompt, error) {
	var resp []Prompt
	if err := c.doJSON(ctx, http.MethodGet, "/prompts", pageParams(limit, offset), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdatePrompt replaces an existing prompt's name and text.
func (c *Client) UpdatePrompt(ctx context.Context, promptID, name, text string) (*Prompt, error) {
	if promptID == "" || name == "" || text == "" {
		return nil, errors.New("prompt id, name, and text are required")
	}

	body := map[string]string{"name": name, "text": text}
	var resp Prompt
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/prompts/%s", promptID), nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func pageParams(limit, offset int) url.Values {
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	return params
}
