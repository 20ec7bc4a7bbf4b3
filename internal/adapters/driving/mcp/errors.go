// Package mcp provides an MCP (Model Context Protocol) server adapter for fleetbook.
// It lets AI assistants look up cities and distances, price deliveries and
// record them.
package mcp

import "errors"

// ErrMissingNetworkService is returned when the network service is not provided.
var ErrMissingNetworkService = errors.New("mcp: network service is required")

// ErrMissingDeliveryService is returned when the delivery service is not provided.
var ErrMissingDeliveryService = errors.New("mcp: delivery service is required")
