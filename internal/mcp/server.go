// ABOUTME: MCP server exposing the Senso knowledge base to AI agents.
// ABOUTME: Registers tools, resources, and prompts over stdio transport.

package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/senso-ai/senso-mcp/internal/senso"
)

type Server struct {
	server *mcp.Server
	client *senso.Client
}

func NewServer(client *senso.Client) *Server {
	s := &Server{client: client}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "senso",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect attaches the server to an arbitrary transport. Used by tests with
// the SDK's in-memory transport pair.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}
