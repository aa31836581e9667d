package mcp

// MCP prompts: coordinator personas served to connecting assistants

import (
	"context"
	"fmt"
	"strings"

	"github.com/travelwing/travelwing/prompts"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// instructionPromptHandler serves one of the built-in coordinator
// personas, honoring prompt overrides from the configured templates
// directory.
func instructionPromptHandler(key prompts.PromptKey, description string) func(context.Context, *mcpsdk.ServerSession, *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
		text, err := prompts.GetPrompt(key, currentConfig().PromptsDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load prompt %s: %w", key, err)
		}

		logInfo(fmt.Sprintf("Served %s prompt", key))

		return &mcpsdk.GetPromptResult{
			Description: description,
			Messages: []*mcpsdk.PromptMessage{
				{
					Role: "user",
					Content: &mcpsdk.TextContent{
						Text: text,
					},
				},
			},
		}, nil
	}
}

// disruptionTriagePromptHandler serves the end-to-end triage persona,
// optionally pinned to a specific flight.
func disruptionTriagePromptHandler() func(context.Context, *mcpsdk.ServerSession, *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
		text, err := prompts.GetPrompt(prompts.KeyDisruptionTriage, currentConfig().PromptsDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load prompt %s: %w", prompts.KeyDisruptionTriage, err)
		}

		flight := strings.TrimSpace(params.Arguments["flight"])
		date := strings.TrimSpace(params.Arguments["date"])
		if flight != "" {
			text += fmt.Sprintf("\n\nThe traveler's flight is %s", flight)
			if date != "" {
				text += fmt.Sprintf(" on %s", date)
			}
			text += ". Start by calling check-flight-status for it."
		}

		logInfo("Served disruption triage prompt")

		return &mcpsdk.GetPromptResult{
			Description: "Handle a flight disruption end to end",
			Messages: []*mcpsdk.PromptMessage{
				{
					Role: "user",
					Content: &mcpsdk.TextContent{
						Text: text,
					},
				},
			},
		}, nil
	}
}

// RegisterMCPPrompts registers the coordinator prompts exposed over MCP.
func RegisterMCPPrompts(server *mcpsdk.Server) error {
	server.AddPrompt(&mcpsdk.Prompt{
		Name:        "disruption-triage",
		Description: "Triage a flight disruption: status, rebooking, calendar impact, notifications",
		Arguments: []*mcpsdk.PromptArgument{
			{
				Name:        "flight",
				Description: "IATA flight number to triage, e.g. 'LH456'",
				Required:    false,
			},
			{
				Name:        "date",
				Description: "Flight date in YYYY-MM-DD format",
				Required:    false,
			},
		},
	}, disruptionTriagePromptHandler())

	server.AddPrompt(&mcpsdk.Prompt{
		Name:        "flight-ops",
		Description: "Flight operations persona: status monitoring and alternative routing",
	}, instructionPromptHandler(prompts.KeyFlightOps, "Flight operations specialist persona"))

	server.AddPrompt(&mcpsdk.Prompt{
		Name:        "calendar-analysis",
		Description: "Calendar analyst persona: meeting impact assessment",
	}, instructionPromptHandler(prompts.KeyCalendarAnalysis, "Calendar and schedule analyst persona"))

	server.AddPrompt(&mcpsdk.Prompt{
		Name:        "comms-drafting",
		Description: "Communications persona: professional delay and reschedule emails",
	}, instructionPromptHandler(prompts.KeyCommsDrafting, "Communications specialist persona"))

	return nil
}
