// ABOUTME: MCP server setup for the squad wellness store.
// ABOUTME: Wraps the MCP server with the store and an importer for sheet sources.
package mcp

import (
	"context"

	"github.com/harperreed/wellness/internal/wellness"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer     *mcp.Server
	store         *wellness.Store
	importer      *wellness.Importer
	defaultSource string
}

// NewServer creates a new MCP server over the given store and importer.
func NewServer(store *wellness.Store, importer *wellness.Importer) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "wellness",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		importer:  importer,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// SetDefaultSource sets the sheet used when an import tool gets no source.
func (s *Server) SetDefaultSource(source string) {
	s.defaultSource = source
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
