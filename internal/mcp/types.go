// ABOUTME: Typed parameter structs for each MCP tool.
// ABOUTME: Arguments are validated at the dispatch boundary before any network call.

package mcp

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/senso-ai/senso-mcp/internal/senso"
)

type addContentParams struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Text    string `json:"text"`
}

func (p *addContentParams) validate() error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Text == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

type searchContentParams struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func (p *searchContentParams) validate() error {
	if p.Query == "" {
		return fmt.Errorf("query is required")
	}
	if p.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	return nil
}

type generateContentParams struct {
	Topic       string `json:"topic"`
	Save        bool   `json:"save"`
	ContentType string `json:"content_type"`
	MaxResults  int    `json:"max_results"`
}

func (p *generateContentParams) validate() error {
	if p.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	return nil
}

type createPromptParams struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

func (p *createPromptParams) validate() error {
	if p.Name == "" || p.Text == "" {
		return fmt.Errorf("name and text are required")
	}
	return nil
}

type listParams struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type updatePromptParams struct {
	PromptID string `json:"prompt_id"`
	Name     string `json:"name"`
	Text     string `json:"text"`
}

func (p *updatePromptParams) validate() error {
	if p.PromptID == "" || p.Name == "" || p.Text == "" {
		return fmt.Errorf("prompt_id, name, and text are required")
	}
	return requireUUID("prompt_id", p.PromptID)
}

type createTemplateParams struct {
	Name       string `json:"name"`
	Text       string `json:"text"`
	OutputType string `json:"output_type"`
}

func (p *createTemplateParams) validate() error {
	if p.Name == "" || p.Text == "" {
		return fmt.Errorf("name and text are required")
	}
	if p.OutputType != "" && !senso.ValidOutputType(p.OutputType) {
		return fmt.Errorf("output_type must be 'json' or 'text'")
	}
	return nil
}

type updateTemplateParams struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
	Text       string `json:"text"`
	OutputType string `json:"output_type"`
}

func (p *updateTemplateParams) validate() error {
	if p.TemplateID == "" || p.Name == "" || p.Text == "" {
		return fmt.Errorf("template_id, name, and text are required")
	}
	if p.OutputType != "" && !senso.ValidOutputType(p.OutputType) {
		return fmt.Errorf("output_type must be 'json' or 'text'")
	}
	return requireUUID("template_id", p.TemplateID)
}

type generateWithPromptParams struct {
	PromptID    string `json:"prompt_id"`
	ContentType string `json:"content_type"`
	TemplateID  string `json:"template_id"`
	Save        bool   `json:"save"`
	MaxResults  int    `json:"max_results"`
}

func (p *generateWithPromptParams) validate() error {
	if p.PromptID == "" || p.ContentType == "" {
		return fmt.Errorf("prompt_id and content_type are required")
	}
	if err := requireUUID("prompt_id", p.PromptID); err != nil {
		return err
	}
	if p.TemplateID != "" {
		return requireUUID("template_id", p.TemplateID)
	}
	return nil
}

func requireUUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%s must be a valid UUID", field)
	}
	return nil
}
