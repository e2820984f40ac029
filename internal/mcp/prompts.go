// ABOUTME: MCP prompts for common knowledge-base workflows.
// ABOUTME: Pre-configured prompts guiding agents through the Senso tools.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "draft-from-knowledge-base",
		Description: "Draft a document on a topic grounded in stored knowledge",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "topic",
				Description: "Topic to draft about",
				Required:    true,
			},
		},
	}, s.getDraftPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "summarize-search-results",
		Description: "Search the knowledge base and summarize what it knows about a query",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "query",
				Description: "Search query",
				Required:    true,
			},
		},
	}, s.getSummarizePrompt)
}

func (s *Server) getDraftPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic, ok := req.Params.Arguments["topic"]
	if !ok || topic == "" {
		return nil, fmt.Errorf("topic argument is required")
	}

	text := fmt.Sprintf(`Draft a document about: %s

1. Use the search_content tool to find what the knowledge base already holds about this topic.
2. Use the generate_content tool with save=true to produce and store a draft grounded in those results.
3. Report the stored content ID and list the sources that informed the draft.`, topic)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}, nil
}

func (s *Server) getSummarizePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	query, ok := req.Params.Arguments["query"]
	if !ok || query == "" {
		return nil, fmt.Errorf("query argument is required")
	}

	text := fmt.Sprintf(`Search the knowledge base for: %s

Use the search_content tool, then summarize the answer and the returned
results in a few sentences, citing result IDs.`, query)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}, nil
}
