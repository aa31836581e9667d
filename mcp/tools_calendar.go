package mcp

// Calendar tools: event lookup and conflict analysis

import (
	"context"
	"fmt"

	"github.com/travelwing/travelwing/internal/conflict"
	"github.com/travelwing/travelwing/store"
	"github.com/travelwing/travelwing/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// getCalendarEventsHandler lists a day's events
func getCalendarEventsHandler(calendar store.CalendarStore) mcpsdk.ToolHandlerFor[types.GetCalendarEventsParams, types.CalendarEventsResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.GetCalendarEventsParams]) (*mcpsdk.CallToolResultFor[types.CalendarEventsResponse], error) {
		args := params.Arguments
		logToolCall("get-calendar-events", args)

		if err := requireField(args.Date, "date"); err != nil {
			return nil, err
		}
		if !validDate(args.Date) {
			return nil, types.NewMCPError("INVALID_DATE", fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", args.Date), map[string]interface{}{
				"value": args.Date,
			})
		}

		events, err := calendar.EventsOn(args.Date)
		if err != nil {
			logError(err)
			return nil, types.NewMCPError("CALENDAR_UNAVAILABLE", fmt.Sprintf("Failed to read calendar: %s", err.Error()), nil)
		}

		responses := make([]types.EventResponse, len(events))
		for i, event := range events {
			responses[i] = eventToResponse(event)
		}

		resp := types.CalendarEventsResponse{
			Date:       args.Date,
			EventCount: len(responses),
			Events:     responses,
		}

		logInfo(fmt.Sprintf("Calendar lookup for %s: %d event(s)", args.Date, len(responses)))

		return &mcpsdk.CallToolResultFor[types.CalendarEventsResponse]{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: fmt.Sprintf("%d event(s) on %s", len(responses), args.Date)},
			},
			StructuredContent: resp,
			IsError:           false,
		}, nil
	}
}

// findMeetingConflictsHandler classifies a day's events against a new
// arrival time
func findMeetingConflictsHandler(calendar store.CalendarStore) mcpsdk.ToolHandlerFor[types.FindMeetingConflictsParams, types.ConflictReportResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.FindMeetingConflictsParams]) (*mcpsdk.CallToolResultFor[types.ConflictReportResponse], error) {
		args := params.Arguments
		logToolCall("find-meeting-conflicts", args)

		if err := requireField(args.ArrivalTime, "arrival_time"); err != nil {
			return nil, err
		}
		if err := requireField(args.Date, "date"); err != nil {
			return nil, err
		}
		if !validDate(args.Date) {
			return nil, types.NewMCPError("INVALID_DATE", fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", args.Date), map[string]interface{}{
				"value": args.Date,
			})
		}

		events, err := calendar.EventsOn(args.Date)
		if err != nil {
			logError(err)
			return nil, types.NewMCPError("CALENDAR_UNAVAILABLE", fmt.Sprintf("Failed to read calendar: %s", err.Error()), nil)
		}

		report, err := conflict.Classify(args.ArrivalTime, events)
		if err != nil {
			logError(err)
			return nil, wrapTimeError(err)
		}

		logInfo(fmt.Sprintf("Conflict analysis for %s arrival %s: %s", args.Date, args.ArrivalTime, report.Summary))

		return &mcpsdk.CallToolResultFor[types.ConflictReportResponse]{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: report.Summary},
			},
			StructuredContent: reportToResponse(report),
			IsError:           false,
		}, nil
	}
}

// RegisterCalendarTools registers the calendar tools.
func RegisterCalendarTools(server *mcpsdk.Server, calendar store.CalendarStore) error {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-calendar-events",
		Description: "Retrieve calendar events for a date to see which meetings a flight change might impact. Args: date [YYYY-MM-DD, required], user_id. Returns date, event_count, events.",
	}, getCalendarEventsHandler(calendar))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "find-meeting-conflicts",
		Description: "Classify a day's meetings against a new arrival time. A 1 hour ground-transfer buffer is added after arrival; comparison is on the hour. Args: arrival_time [HH:MM 24h, required], date [required], user_id.",
	}, findMeetingConflictsHandler(calendar))

	return nil
}
