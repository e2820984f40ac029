// ABOUTME: MCP tools for knowledge-base content, search, generation, prompts, and templates.
// ABOUTME: Each tool is one request/response round trip against the Senso API.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/senso-ai/senso-mcp/internal/senso"
)

func (s *Server) registerTools() {
	// add_content
	s.server.AddTool(&mcp.Tool{
		Name:        "add_content",
		Description: "Add raw text content to the knowledge base",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Title of the content"},
				"summary": {"type": "string", "description": "Optional summary"},
				"text": {"type": "string", "description": "The raw text content to add"}
			},
			"required": ["title", "text"]
		}`),
	}, s.handleAddContent)

	// search_content
	s.server.AddTool(&mcp.Tool{
		Name:        "search_content",
		Description: "Search for content in the knowledge base",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Search query"},
				"limit": {"type": "integer", "description": "Max results (server default when omitted)"}
			},
			"required": ["query"]
		}`),
	}, s.handleSearchContent)

	// generate_content
	s.server.AddTool(&mcp.Tool{
		Name:        "generate_content",
		Description: "Generate content from a topic using existing knowledge",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"topic": {"type": "string", "description": "What to write about"},
				"save": {"type": "boolean", "description": "Save the generated content", "default": false},
				"content_type": {"type": "string", "description": "Type of content to generate", "default": "text"},
				"max_results": {"type": "integer", "description": "Max source results to consult", "default": 5}
			},
			"required": ["topic"]
		}`),
	}, s.handleGenerateContent)

	// create_prompt
	s.server.AddTool(&mcp.Tool{
		Name:        "create_prompt",
		Description: "Create a new generation prompt with {{variable}} slots",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"name": {"type": "string", "description": "Unique prompt name"},
				"text": {"type": "string", "description": "Prompt text"}
			},
			"required": ["name", "text"]
		}`),
	}, s.handleCreatePrompt)

	// list_prompts
	s.server.AddTool(&mcp.Tool{
		Name:        "list_prompts",
		Description: "List saved prompts",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"limit": {"type": "integer", "description": "Max prompts to return (max 100)", "default": 10},
				"offset": {"type": "integer", "description": "Prompts to skip for pagination", "default": 0}
			}
		}`),
	}, s.handleListPrompts)

	// update_prompt
	s.server.AddTool(&mcp.Tool{
		Name:        "update_prompt",
		Description: "Update an existing prompt",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"prompt_id": {"type": "string", "description": "Prompt ID"},
				"name": {"type": "string", "description": "New name"},
				"text": {"type": "string", "description": "New text"}
			},
			"required": ["prompt_id", "name", "text"]
		}`),
	}, s.handleUpdatePrompt)

	// create_template
	s.server.AddTool(&mcp.Tool{
		Name:        "create_template",
		Description: "Create a new output-formatting template",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"name": {"type": "string", "description": "Unique template name"},
				"text": {"type": "string", "description": "Template text"},
				"output_type": {"type": "string", "description": "Output format: json or text", "default": "text"}
			},
			"required": ["name", "text"]
		}`),
	}, s.handleCreateTemplate)

	// list_templates
	s.server.AddTool(&mcp.Tool{
		Name:        "list_templates",
		Description: "List saved templates",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"limit": {"type": "integer", "description": "Max templates to return (max 100)", "default": 10},
				"offset": {"type": "integer", "description": "Templates to skip for pagination", "default": 0}
			}
		}`),
	}, s.handleListTemplates)

	// update_template
	s.server.AddTool(&mcp.Tool{
		Name:        "update_template",
		Description: "Update an existing template",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"template_id": {"type": "string", "description": "Template ID"},
				"name": {"type": "string", "description": "New name"},
				"text": {"type": "string", "description": "New text"},
				"output_type": {"type": "string", "description": "Output format: json or text"}
			},
			"required": ["template_id", "name", "text"]
		}`),
	}, s.handleUpdateTemplate)

	// generate_with_prompt
	s.server.AddTool(&mcp.Tool{
		Name:        "generate_with_prompt",
		Description: "Generate content using a saved prompt and optional template",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"prompt_id": {"type": "string", "description": "Prompt ID to use"},
				"content_type": {"type": "string", "description": "What to search for in the knowledge base"},
				"template_id": {"type": "string", "description": "Optional template ID for output formatting"},
				"save": {"type": "boolean", "description": "Save the generated content", "default": false},
				"max_results": {"type": "integer", "description": "Max source results to consult", "default": 25}
			},
			"required": ["prompt_id", "content_type"]
		}`),
	}, s.handleGenerateWithPrompt)
}

// errorResult wraps a user-visible failure as error content. Tool failures
// never crash the process.
func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// Tool handlers. Each unmarshals into a typed parameter struct, validates,
// and delegates to a core method that does the single API round trip.

func (s *Server) handleAddContent(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params addContentParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}
	if err := params.validate(); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	text, err := s.addContent(ctx, params)
	if err != nil {
		return errorResult("failed to add content: %v", err), nil
	}
	return textResult(text), nil
}

func (s *Server) addContent(ctx context.Context, params addContentParams) (string, error) {
	resp, err := s.client.AddRawContent(ctx, senso.AddContentRequest{
		Title:   params.Title,
		Summary: params.Summary,
		Text:    params.Text,
	})
	if err != nil {
		return "", err
	}

	title := resp.Title
	if title == "" {
		title = "Untitled"
	}
	return fmt.Sprintf("Content successfully added with ID: %s\nTitle: %s", resp.ID, title), nil
}

func (s *Server) handleSearchContent(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params searchContentParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}
	if err := params.validate(); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	text, err := s.searchContent(ctx, params)
	if err != nil {
		return errorResult("search failed: %v", err), nil
	}
	return textResult(text), nil
}

func (s *Server) searchContent(ctx context.Context, params searchContentParams) (string, error) {
	resp, err := s.client.Search(ctx, params.Query, params.Limit)
	if err != nil {
		return "", err
	}

	if len(resp.Results) == 0 {
		return fmt.Sprintf("No relevant information found for query: '%s'.", params.Query), nil
	}

	answer := resp.Answer
	if answer == "" {
		answer = "No answer generated."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Answer: %s\n\n", answer)
	fmt.Fprintf(&sb, "Found %d relevant results for '%s':\n\n", len(resp.Results), params.Query)
	for i, r := range resp.Results {
		title := r.Title
		if title == "" {
			title = "No title"
		}
		chunk := r.ChunkText
		if chunk == "" {
			chunk = "No content"
		}
		fmt.Fprintf(&sb, "Result %d:\nTitle: %s\nContent: %s\nID: %s\n\n", i+1, title, chunk, r.ContentID)
	}
	return sb.String(), nil
}

func (s *Server) handleGenerateContent(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params generateContentParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}
	if err := params.validate(); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	text, err := s.generateContent(ctx, params)
	if err != nil {
		return errorResult("content generation failed: %v", err), nil
	}
	return textResult(text), nil
}

func (s *Server) generateContent(ctx context.Context, params generateContentParams) (string, error) {
	contentType := params.ContentType
	if contentType == "" {
		contentType = "text"
	}

	resp, err := s.client.Generate(ctx, senso.GenerateRequest{
		ContentType:  contentType,
		Instructions: params.Topic,
		Save:         params.Save,
		MaxResults:   params.MaxResults,
	})
	if err != nil {
		return "", err
	}

	generated := resp.GeneratedText
	if generated == "" {
		generated = "No content generated."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generated content about %s:\n\n%s\n\n", params.Topic, generated)
	if params.Save && resp.ContentID != "" {
		fmt.Fprintf(&sb, "Content was saved with ID: %s\n\n", resp.ContentID)
	}
	if len(resp.Sources) > 0 {
		sb.WriteString("Sources used for generation:\n")
		for i, src := range resp.Sources {
			title := src.Title
			if title == "" {
				title = "No title"
			}
			fmt.Fprintf(&sb, "Source %d: %s\n", i+1, title)
		}
	}
	return sb.String(), nil
}

func (s *Server) handleCreatePrompt(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params createPromptParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}
	if err := params.validate(); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	prompt, err := s.client.CreatePrompt(ctx, params.Name, params.Text)
	if err != nil {
		return errorResult("failed to create prompt: %v", err), nil
	}
	return textResult(fmt.Sprintf("Prompt created successfully!\nID: %s\nName: %s", prompt.PromptID, prompt.Name)), nil
}

func (s *Server) handleListPrompts(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params listParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	text, err := s.listPrompts(ctx, params)
	if err != nil {
		return errorResult("failed to list prompts: %v", err), nil
	}
	return textResult(text), nil
}

func (s *Server) listPrompts(ctx context.Context, params listParams) (string, error) {
	prompts, err := s.client.ListPrompts(ctx, params.Limit, params.Offset)
	if err != nil {
		return "", err
	}
	if len(prompts) == 0 {
		return "No prompts found.", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Prompts (showing %d results):\n\n", len(prompts))
	for _, p := range prompts {
		fmt.Fprintf(&sb, "ID: %s\nName: %s\nText: %s\nCreated: %s\n\n",
			p.PromptID, p.Name, truncate(p.Text, 100), orUnknown(p.CreatedAt))
	}
	return sb.String(), nil
}

func (s *Server) handleUpdatePrompt(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params updatePromptParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}
	if err := params.validate(); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	prompt, err := s.client.UpdatePrompt(ctx, params.PromptID, params.Name, params.Text)
	if err != nil {
		return errorResult("failed to update prompt: %v", err), nil
	}
	return textResult(fmt.Sprintf("Prompt updated successfully!\nID: %s\nName: %s", prompt.PromptID, prompt.Name)), nil
}

func (s *Server) handleCreateTemplate(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params createTemplateParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}
	if err := params.validate(); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	tmpl, err := s.client.CreateTemplate(ctx, params.Name, params.Text, params.OutputType)
	if err != nil {
		return errorResult("failed to create template: %v", err), nil
	}
	return textResult(fmt.Sprintf("Template created successfully!\nID: %s\nName: %s\nOutput Type: %s",
		tmpl.TemplateID, tmpl.Name, tmpl.OutputType)), nil
}

func (s *Server) handleListTemplates(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params listParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	text, err := s.listTemplates(ctx, params)
	if err != nil {
		return errorResult("failed to list templates: %v", err), nil
	}
	return textResult(text), nil
}

func (s *Server) listTemplates(ctx context.Context, params listParams) (string, error) {
	templates, err := s.client.ListTemplates(ctx, params.Limit, params.Offset)
	if err != nil {
		return "", err
	}
	if len(templates) == 0 {
		return "No templates found.", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Templates (showing %d results):\n\n", len(templates))
	for _, t := range templates {
		fmt.Fprintf(&sb, "ID: %s\nName: %s\nOutput Type: %s\nText: %s\nCreated: %s\n\n",
			t.TemplateID, t.Name, t.OutputType, truncate(t.Text, 100), orUnknown(t.CreatedAt))
	}
	return sb.String(), nil
}

func (s *Server) handleUpdateTemplate(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params updateTemplateParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}
	if err := params.validate(); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	tmpl, err := s.client.UpdateTemplate(ctx, params.TemplateID, params.Name, params.Text, params.OutputType)
	if err != nil {
		return errorResult("failed to update template: %v", err), nil
	}
	return textResult(fmt.Sprintf("Template updated successfully!\nID: %s\nName: %s", tmpl.TemplateID, tmpl.Name)), nil
}

func (s *Server) handleGenerateWithPrompt(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params generateWithPromptParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}
	if err := params.validate(); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	text, err := s.generateWithPrompt(ctx, params)
	if err != nil {
		return errorResult("content generation with prompt failed: %v", err), nil
	}
	return textResult(text), nil
}

func (s *Server) generateWithPrompt(ctx context.Context, params generateWithPromptParams) (string, error) {
	resp, err := s.client.GenerateWithPrompt(ctx, senso.GeneratePromptRequest{
		PromptID:    params.PromptID,
		ContentType: params.ContentType,
		TemplateID:  params.TemplateID,
		Save:        params.Save,
		MaxResults:  params.MaxResults,
	})
	if err != nil {
		return "", err
	}

	generated := resp.GeneratedText
	if generated == "" {
		generated = "No content generated."
	}
	promptName := resp.Prompt.Name
	if promptName == "" {
		promptName = "Unknown"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generated content using prompt '%s':\n\n%s\n\n", promptName, generated)
	if resp.Template != nil {
		fmt.Fprintf(&sb, "Formatted with template: %s (%s)\n\n", resp.Template.Name, resp.Template.OutputType)
	}
	if params.Save && resp.ContentID != "" {
		fmt.Fprintf(&sb, "Content was saved with ID: %s\n\n", resp.ContentID)
	}
	if len(resp.Sources) > 0 {
		fmt.Fprintf(&sb, "Sources used (%d total):\n", len(resp.Sources))
		for i, src := range resp.Sources {
			if i >= 5 {
				fmt.Fprintf(&sb, "... and %d more sources\n", len(resp.Sources)-5)
				break
			}
			title := src.Title
			if title == "" {
				title = "No title"
			}
			fmt.Fprintf(&sb, "- %s\n", title)
		}
	}
	return sb.String(), nil
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
