// ABOUTME: MCP resources exposing server wiring details.
// ABOUTME: Lets agents confirm the configured endpoint without seeing the key.

package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const configResourceURI = "senso://config"

func (s *Server) registerResources() {
	s.server.AddResource(
		&mcp.Resource{
			URI:         configResourceURI,
			Name:        "Server configuration",
			Description: "The Senso API endpoint this server forwards requests to",
			MIMEType:    "application/json",
		},
		s.handleReadConfigResource,
	)
}

func (s *Server) handleReadConfigResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	// The API key itself is never exposed, only whether one is set.
	info := map[string]any{
		"base_url": s.client.BaseURL(),
		"endpoints": []string{
			"/content/raw",
			"/search",
			"/generate",
			"/generate/prompt",
			"/prompts",
			"/templates",
		},
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
