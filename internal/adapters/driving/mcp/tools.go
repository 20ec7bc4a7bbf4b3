package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// ListCitiesInput is the (empty) input schema for the list_cities tool.
type ListCitiesInput struct{}

// CityOutput describes one city.
type CityOutput struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// ListCitiesOutput is the output schema for the list_cities tool.
type ListCitiesOutput struct {
	Cities []CityOutput `json:"cities"`
	Count  int          `json:"count"`
}

// DistanceTableInput is the (empty) input schema for the distance_table tool.
type DistanceTableInput struct{}

// DistanceTableOutput is the output schema for the distance_table tool.
type DistanceTableOutput struct {
	Cities []string   `json:"cities"`
	Rows   [][]string `json:"rows"`
}

// DeliveryInput is the input schema for estimate_delivery and record_delivery.
type DeliveryInput struct {
	From     int     `json:"from" jsonschema:"1-based number of the source city"`
	To       int     `json:"to" jsonschema:"1-based number of the destination city"`
	Vehicle  string  `json:"vehicle" jsonschema:"van, truck or lorry (or 1, 2, 3)"`
	WeightKg float64 `json:"weight_kg" jsonschema:"load weight in kilograms"`
}

// QuoteOutput carries every figure of a priced delivery.
type QuoteOutput struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	Vehicle         string  `json:"vehicle"`
	WeightKg        float64 `json:"weight_kg"`
	DistanceKm      float64 `json:"distance_km"`
	BaseCost        float64 `json:"base_cost"`
	FuelUsed        float64 `json:"fuel_used_l"`
	FuelCost        float64 `json:"fuel_cost"`
	OperationalCost float64 `json:"operational_cost"`
	Profit          float64 `json:"profit"`
	CustomerCharge  float64 `json:"customer_charge"`
	EstimatedHours  float64 `json:"estimated_hours"`
	Recorded        bool    `json:"recorded"`
	LedgerCount     int     `json:"ledger_count,omitempty"`
}

// SummaryInput is the (empty) input schema for the delivery_summary tool.
type SummaryInput struct{}

// SummaryOutput is the output schema for the delivery_summary tool.
type SummaryOutput struct {
	Count            int            `json:"count"`
	TotalDistanceKm  float64        `json:"total_distance_km"`
	TotalRevenue     float64        `json:"total_revenue"`
	TotalProfit      float64        `json:"total_profit"`
	AverageHours     float64        `json:"average_hours"`
	LongestKm        float64        `json:"longest_km"`
	ShortestKm       float64        `json:"shortest_km"`
	DeliveriesByType map[string]int `json:"deliveries_by_vehicle"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_cities",
		Description: "List the cities in the registry with their 1-based numbers",
	}, s.handleListCities)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "distance_table",
		Description: "Show the road distance in km between every pair of cities; \"-\" means not set",
	}, s.handleDistanceTable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "estimate_delivery",
		Description: "Price a delivery between two cities without recording it",
	}, s.handleEstimate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "record_delivery",
		Description: "Price a delivery and record it in the ledger",
	}, s.handleRecord)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delivery_summary",
		Description: "Summarise recorded deliveries: totals, averages and counts by vehicle",
	}, s.handleSummary)
}

func (s *Server) handleListCities(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListCitiesInput,
) (*mcp.CallToolResult, ListCitiesOutput, error) {
	cities, err := s.ports.Network.ListCities(ctx)
	if err != nil {
		return nil, ListCitiesOutput{}, err
	}

	output := ListCitiesOutput{
		Cities: make([]CityOutput, len(cities)),
		Count:  len(cities),
	}
	for i, c := range cities {
		output.Cities[i] = CityOutput{Number: c.DisplayIndex(), Name: c.Name}
	}
	return nil, output, nil
}

func (s *Server) handleDistanceTable(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ DistanceTableInput,
) (*mcp.CallToolResult, DistanceTableOutput, error) {
	dt, err := s.ports.Network.DistanceTable(ctx)
	if err != nil {
		return nil, DistanceTableOutput{}, err
	}
	return nil, DistanceTableOutput{Cities: dt.Cities, Rows: dt.Cells}, nil
}

func (s *Server) handleEstimate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeliveryInput,
) (*mcp.CallToolResult, QuoteOutput, error) {
	req, err := input.request()
	if err != nil {
		return nil, QuoteOutput{}, err
	}
	d, err := s.ports.Delivery.Estimate(ctx, req)
	if err != nil {
		return nil, QuoteOutput{}, err
	}
	output, err := s.quoteOutput(ctx, d)
	return nil, output, err
}

func (s *Server) handleRecord(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeliveryInput,
) (*mcp.CallToolResult, QuoteOutput, error) {
	req, err := input.request()
	if err != nil {
		return nil, QuoteOutput{}, err
	}
	d, err := s.ports.Delivery.QuoteAndRecord(ctx, req)
	if err != nil {
		return nil, QuoteOutput{}, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, QuoteOutput{}, fmt.Errorf("delivery recorded but not saved: %w", err)
	}

	output, err := s.quoteOutput(ctx, d)
	if err != nil {
		return nil, QuoteOutput{}, err
	}
	list, err := s.ports.Delivery.List(ctx)
	if err != nil {
		return nil, QuoteOutput{}, err
	}
	output.Recorded = true
	output.LedgerCount = len(list)
	return nil, output, nil
}

func (s *Server) handleSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ SummaryInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	sum, err := s.ports.Delivery.Summary(ctx)
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	byType := make(map[string]int, len(sum.ByVehicle))
	for _, v := range s.ports.Delivery.Vehicles() {
		byType[v.Name] = sum.ByVehicle[v.Class]
	}
	return nil, SummaryOutput{
		Count:            sum.Count,
		TotalDistanceKm:  sum.TotalDistance,
		TotalRevenue:     sum.TotalRevenue,
		TotalProfit:      sum.TotalProfit,
		AverageHours:     sum.AverageTime,
		LongestKm:        sum.LongestDistance,
		ShortestKm:       sum.ShortestDistance,
		DeliveriesByType: byType,
	}, nil
}

// request converts 1-based city numbers and a vehicle name.
func (in DeliveryInput) request() (domain.DeliveryRequest, error) {
	vehicle, err := domain.ParseVehicleClass(in.Vehicle)
	if err != nil {
		return domain.DeliveryRequest{}, err
	}
	return domain.DeliveryRequest{
		Source:      in.From - 1,
		Destination: in.To - 1,
		Vehicle:     vehicle,
		WeightKg:    in.WeightKg,
	}, nil
}

func (s *Server) quoteOutput(ctx context.Context, d domain.Delivery) (QuoteOutput, error) {
	cities, err := s.ports.Network.ListCities(ctx)
	if err != nil {
		return QuoteOutput{}, err
	}
	name := func(i int) string {
		if i >= 0 && i < len(cities) {
			return cities[i].Name
		}
		return fmt.Sprintf("#%d", i+1)
	}
	return QuoteOutput{
		From:            name(d.Source),
		To:              name(d.Destination),
		Vehicle:         d.Vehicle.String(),
		WeightKg:        d.WeightKg,
		DistanceKm:      d.DistanceKm,
		BaseCost:        d.BaseCost,
		FuelUsed:        d.FuelUsed,
		FuelCost:        d.FuelCost,
		OperationalCost: d.OperationalCost,
		Profit:          d.Profit,
		CustomerCharge:  d.CustomerCharge,
		EstimatedHours:  d.EstimatedTime,
	}, nil
}
