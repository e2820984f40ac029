// ABOUTME: Output template management against the /templates endpoints.
// ABOUTME: Templates format generated content as json or plain text.

package senso

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Template output types accepted by the remote API.
const (
	OutputTypeText = "text"
	OutputTypeJSON = "json"
)

// Template is a saved output-formatting template.
type Template struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
	Text       string `json:"text"`
	OutputType string `json:"output_type"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// ValidOutputType reports whether t is an output type the API accepts.
func ValidOutputType(t string) bool {
	return t == OutputTypeText || t == OutputTypeJSON
}

// CreateTemplate registers a new template under a unique name.
func (c *Client) CreateTemplate(ctx context.Context, name, text, outputType string) (*Template, error) {
	if name == "" || text == "" {
		return nil, errors.New("name and text are required")
	}
	if outputType == "" {
		outputType = OutputTypeText
	}
	if !ValidOutputType(outputType) {
		return nil, fmt.Errorf("output type must be %q or %q", OutputTypeJSON, OutputTypeText)
	}

	body := map[string]string{"name": name, "text": text, "output_type": outputType}
	var resp Template
	if err := c.doJSON(ctx, http.MethodPost, "/templates", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTemplates pages through the organization's templates.
func (c *Client) ListTemplates(ctx context.Context, limit, offset int) ([]Template, error) {
	var resp []Template
	if err := c.doJSON(ctx, http.MethodGet, "/templates", pageParams(limit, offset), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateTemplate replaces an existing template's name, text, and output type.
func (c *Client) UpdateTemplate(ctx context.Context, templateID, name, text, outputType string) (*Template, error) {
	if templateID == "" || name == "" || text == "" {
		return nil, errors.New("template id, name, and text are required")
	}
	if outputType == "" {
		outputType = OutputTypeText
	}
	if !ValidOutputType(outputType) {
		return nil, fmt.Errorf("output type must be %q or %q", OutputTypeJSON, OutputTypeText)
	}

	body := map[string]string{"name": name, "text": text, "output_type": outputType}
	var resp Template
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/templates/%s", templateID), nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
