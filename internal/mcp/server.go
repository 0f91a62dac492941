// ABOUTME: MCP server setup for the vael store.
// ABOUTME: Binds the feature services over one engine and serves on stdio.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/vael/internal/body"
	"github.com/harperreed/vael/internal/fuel"
	"github.com/harperreed/vael/internal/journal"
	"github.com/harperreed/vael/internal/life"
	"github.com/harperreed/vael/internal/store"
	"github.com/harperreed/vael/internal/training"
)

// Server exposes the vael store over the Model Context Protocol.
type Server struct {
	mcpServer *mcp.Server
	eng       *store.Engine

	training *training.Service
	life     *life.Service
	journal  *journal.Service
	body     *body.Service
	fuel     *fuel.Service
}

// NewServer creates an MCP server over the given engine.
func NewServer(eng *store.Engine) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "vael",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		eng:       eng,
		training:  training.NewService(eng),
		life:      life.NewService(eng),
		journal:   journal.NewService(eng),
		body:      body.NewService(eng),
		fuel:      fuel.NewService(eng),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
