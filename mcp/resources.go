package mcp

// MCP resources: calendar, config, system status

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/travelwing/travelwing/store"
	"github.com/travelwing/travelwing/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// calendarResourceHandler provides all calendar events in JSON format
func calendarResourceHandler(calendar store.CalendarStore) mcpsdk.ResourceHandler {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.ReadResourceParams) (*mcpsdk.ReadResourceResult, error) {
		events, err := calendar.ListEvents(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list calendar events: %w", err)
		}

		responses := make([]types.EventResponse, len(events))
		for i, event := range events {
			responses[i] = eventToResponse(event)
		}

		jsonData, err := json.MarshalIndent(responses, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal events to JSON: %w", err)
		}

		logInfo(fmt.Sprintf("Provided calendar resource with %d events", len(events)))

		return &mcpsdk.ReadResourceResult{
			Contents: []*mcpsdk.ResourceContents{
				{
					URI:      params.URI,
					MIMEType: "application/json",
					Text:     string(jsonData),
				},
			},
		}, nil
	}
}

// configResourceHandler provides the running configuration. Flight API
// credentials are redacted.
func configResourceHandler() mcpsdk.ResourceHandler {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.ReadResourceParams) (*mcpsdk.ReadResourceResult, error) {
		cfg := *currentConfig()
		if cfg.FlightAPI.ClientID != "" {
			cfg.FlightAPI.ClientID = "[redacted]"
		}
		if cfg.FlightAPI.ClientSecret != "" {
			cfg.FlightAPI.ClientSecret = "[redacted]"
		}

		jsonData, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to JSON: %w", err)
		}

		logInfo("Provided config resource")

		return &mcpsdk.ReadResourceResult{
			Contents: []*mcpsdk.ResourceContents{
				{
					URI:      params.URI,
					MIMEType: "application/json",
					Text:     string(jsonData),
				},
			},
		}, nil
	}
}

// systemStatusResourceHandler advertises the server to connecting
// assistants.
func systemStatusResourceHandler(calendar store.CalendarStore) mcpsdk.ResourceHandler {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.ReadResourceParams) (*mcpsdk.ReadResourceResult, error) {
		events, err := calendar.ListEvents(nil)
		if err != nil {
			events = nil
		}

		status := map[string]interface{}{
			"system":  "TravelWing Flight Disruption Assistant",
			"status":  "active",
			"version": currentVersion(),
			"message": "TravelWing MCP server is active. Use its tools for flight status, rebooking, calendar impact, and notification drafting.",
			"instructions": []string{
				"Use check-flight-status first to understand the disruption",
				"Use find-alternative-flights for ranked rebooking options",
				"Use find-meeting-conflicts to assess the calendar impact",
				"Draft notifications with draft-delay-notification and draft-reschedule-request; send-email only after user confirmation",
			},
			"calendar_stats": map[string]interface{}{
				"total_events": len(events),
			},
		}

		jsonData, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal system status: %w", err)
		}

		logInfo("Provided system status resource")

		return &mcpsdk.ReadResourceResult{
			Contents: []*mcpsdk.ResourceContents{
				{
					URI:      params.URI,
					MIMEType: "application/json",
					Text:     string(jsonData),
				},
			},
		}, nil
	}
}

// RegisterMCPResources wires up the MCP resources.
func RegisterMCPResources(server *mcpsdk.Server, calendar store.CalendarStore) error {
	server.AddResource(&mcpsdk.Resource{
		URI:         "travelwing://system-status",
		Name:        "travelwing-system-status",
		Description: "TravelWing availability and recommended tool choreography.",
		MIMEType:    "application/json",
	}, systemStatusResourceHandler(calendar))

	server.AddResource(&mcpsdk.Resource{
		URI:         "travelwing://calendar",
		Name:        "calendar",
		Description: "All calendar events in JSON format",
		MIMEType:    "application/json",
	}, calendarResourceHandler(calendar))

	server.AddResource(&mcpsdk.Resource{
		URI:         "travelwing://config",
		Name:        "config",
		Description: "TravelWing configuration settings (credentials redacted)",
		MIMEType:    "application/json",
	}, configResourceHandler())

	return nil
}
