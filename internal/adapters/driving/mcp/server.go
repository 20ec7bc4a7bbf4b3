package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fleetbook/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for fleetbook.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if ports == nil {
		return nil, fmt.Errorf("validating ports: %w", ErrMissingNetworkService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "fleetbook",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run loads stored data and serves over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) load(ctx context.Context) error {
	if s.ports.Data == nil {
		return nil
	}
	report, err := s.ports.Data.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}
	logger.Info("mcp: loaded %d cities and %d deliveries", report.Cities, report.Deliveries)
	return nil
}

// persist saves both stores after a change.
func (s *Server) persist(ctx context.Context) error {
	if s.ports.Data == nil {
		return nil
	}
	if err := s.ports.Data.Save(ctx); err != nil {
		return fmt.Errorf("saving data: %w", err)
	}
	return nil
}
