package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for fleetbook resources.
	uriScheme = "fleetbook://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cities",
		Name:        "cities",
		Description: "The city registry in display order",
		MIMEType:    "application/json",
	}, s.handleCitiesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "deliveries",
		Name:        "deliveries",
		Description: "Every recorded delivery with its figures",
		MIMEType:    "application/json",
	}, s.handleDeliveriesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "cities/{number}",
		Name:        "city-routes",
		Description: "One city with its distance to every other city",
		MIMEType:    "application/json",
	}, s.handleCityResource)
}

func (s *Server) handleCitiesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	_, out, err := s.handleListCities(ctx, nil, ListCitiesInput{})
	if err != nil {
		return nil, fmt.Errorf("listing cities: %w", err)
	}
	return jsonResource(req.Params.URI, out.Cities)
}

func (s *Server) handleDeliveriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	deliveries, err := s.ports.Delivery.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing deliveries: %w", err)
	}

	infos := make([]QuoteOutput, len(deliveries))
	for i, d := range deliveries {
		info, err := s.quoteOutput(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("listing deliveries: %w", err)
		}
		info.Recorded = true
		infos[i] = info
	}
	return jsonResource(req.Params.URI, infos)
}

// handleCityResource returns one city and its known distances.
func (s *Server) handleCityResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	number := extractCityNumber(req.Params.URI)
	if number < 1 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	dt, err := s.ports.Network.DistanceTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading distances: %w", err)
	}
	if number > len(dt.Cities) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type route struct {
		Number int    `json:"number"`
		Name   string `json:"name"`
		Km     string `json:"km"`
	}
	type cityInfo struct {
		Number int     `json:"number"`
		Name   string  `json:"name"`
		Routes []route `json:"routes"`
	}

	i := number - 1
	info := cityInfo{Number: number, Name: dt.Cities[i], Routes: []route{}}
	for j, km := range dt.Cells[i] {
		if j == i || km == "-" {
			continue
		}
		info.Routes = append(info.Routes, route{Number: j + 1, Name: dt.Cities[j], Km: km})
	}
	return jsonResource(req.Params.URI, info)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCityNumber extracts the number from fleetbook://cities/{number}.
// It returns 0 for anything else.
func extractCityNumber(uri string) int {
	const prefix = uriScheme + "cities/"

	if !strings.HasPrefix(uri, prefix) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || n > domain.MaxCities {
		return 0
	}
	return n
}
