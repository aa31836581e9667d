package mcp

// Flight tools: status lookup, alternative search, details, airport boards

import (
	"context"
	"fmt"

	"github.com/travelwing/travelwing/internal/flightapi"
	"github.com/travelwing/travelwing/internal/rank"
	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// FlightService is the slice of the flight client the tool handlers
// consume. Tests substitute a stub.
type FlightService interface {
	FlightStatus(ctx context.Context, flightNumber, date string) (models.FlightRecord, error)
	FlightStatusByRoute(ctx context.Context, origin, destination, date string) ([]models.FlightRecord, error)
	Departures(ctx context.Context, airport, fromTime string, limit int) ([]models.FlightRecord, error)
	Arrivals(ctx context.Context, airport, fromTime string, limit int) ([]models.FlightRecord, error)
}

// checkFlightStatusHandler resolves one flight and reports its status
func checkFlightStatusHandler(flights FlightService) mcpsdk.ToolHandlerFor[types.CheckFlightStatusParams, types.FlightStatusResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.CheckFlightStatusParams]) (*mcpsdk.CallToolResultFor[types.FlightStatusResponse], error) {
		args := params.Arguments
		logToolCall("check-flight-status", args)

		flightNumber := flightapi.NormalizeFlightNumber(args.FlightIATA)
		if flightNumber == "" {
			if args.BookingID != "" {
				return nil, types.NewMCPError("BOOKING_LOOKUP_UNSUPPORTED",
					"Booking reference lookup requires partner API access; provide flight_iata instead",
					map[string]interface{}{"booking_id": args.BookingID})
			}
			return nil, types.NewMCPError("MISSING_FLIGHT", "Either flight_iata or booking_id is required", nil)
		}

		date := defaultDate(args.Date)
		if !validDate(date) {
			return nil, types.NewMCPError("INVALID_DATE", fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", args.Date), map[string]interface{}{
				"value": args.Date,
			})
		}

		record, err := flights.FlightStatus(ctx, flightNumber, date)
		if err != nil {
			logError(err)
			return nil, wrapFlightError(err, map[string]interface{}{"flight": flightNumber, "date": date})
		}

		resp := flightToStatusResponse(record)
		text := fmt.Sprintf("%s on %s: %s", record.FlightNumber, date, resp.StatusDescription)
		if record.DelayMinutes > 0 {
			text = fmt.Sprintf("%s (%d min delay, new arrival %s)", text, record.DelayMinutes, record.EffectiveArrival())
		}
		logInfo(fmt.Sprintf("Flight status: %s = %s", record.FlightNumber, record.Status))

		return &mcpsdk.CallToolResultFor[types.FlightStatusResponse]{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: text},
			},
			StructuredContent: resp,
			IsError:           false,
		}, nil
	}
}

// findAlternativeFlightsHandler searches a route and ranks candidates
func findAlternativeFlightsHandler(flights FlightService, ranker rank.Strategy) mcpsdk.ToolHandlerFor[types.FindAlternativeFlightsParams, types.AlternativeFlightsResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.FindAlternativeFlightsParams]) (*mcpsdk.CallToolResultFor[types.AlternativeFlightsResponse], error) {
		args := params.Arguments
		logToolCall("find-alternative-flights", args)

		if err := requireField(args.Origin, "origin"); err != nil {
			return nil, err
		}
		if err := requireField(args.Destination, "destination"); err != nil {
			return nil, err
		}
		origin := flightapi.NormalizeAirport(args.Origin)
		destination := flightapi.NormalizeAirport(args.Destination)
		date := defaultDate(args.Date)
		if !validDate(date) {
			return nil, types.NewMCPError("INVALID_DATE", fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", args.Date), map[string]interface{}{
				"value": args.Date,
			})
		}

		candidates, err := flights.FlightStatusByRoute(ctx, origin, destination, date)
		if err != nil {
			logError(err)
			return nil, wrapFlightError(err, map[string]interface{}{"origin": origin, "destination": destination, "date": date})
		}

		// Keep group carriers only, and non-stops when asked.
		filtered := make([]models.FlightRecord, 0, len(candidates))
		for _, f := range candidates {
			if !flightapi.GroupCarrier(f.FlightNumber) {
				continue
			}
			if args.DirectOnly && !f.Nonstop {
				continue
			}
			filtered = append(filtered, f)
		}

		ranked := ranker.Rank(filtered, args.PreferredClass)

		summaries := make([]types.FlightSummaryResponse, len(ranked))
		for i, f := range ranked {
			summaries[i] = flightToSummary(f)
		}

		recommendation := ""
		for _, f := range ranked {
			if f.Status != models.StatusCancelled {
				recommendation = fmt.Sprintf("%s - departs %s", f.FlightNumber, f.Departure.Scheduled)
				break
			}
		}

		resp := types.AlternativeFlightsResponse{
			Origin:         origin,
			Destination:    destination,
			Date:           date,
			Flights:        summaries,
			Count:          len(summaries),
			Recommendation: recommendation,
			PreferredClass: args.PreferredClass,
		}

		logInfo(fmt.Sprintf("Alternatives %s-%s on %s: %d ranked of %d candidates", origin, destination, date, len(summaries), len(candidates)))

		return &mcpsdk.CallToolResultFor[types.AlternativeFlightsResponse]{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: fmt.Sprintf("Found %d alternative flight(s) from %s to %s on %s", len(summaries), origin, destination, date)},
			},
			StructuredContent: resp,
			IsError:           false,
		}, nil
	}
}

// getFlightDetailsHandler returns the full flight record
func getFlightDetailsHandler(flights FlightService) mcpsdk.ToolHandlerFor[types.GetFlightDetailsParams, types.FlightStatusResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.GetFlightDetailsParams]) (*mcpsdk.CallToolResultFor[types.FlightStatusResponse], error) {
		args := params.Arguments
		logToolCall("get-flight-details", args)

		if err := requireField(args.FlightIATA, "flight_iata"); err != nil {
			return nil, err
		}
		flightNumber := flightapi.NormalizeFlightNumber(args.FlightIATA)
		date := defaultDate(args.Date)

		record, err := flights.FlightStatus(ctx, flightNumber, date)
		if err != nil {
			logError(err)
			return nil, wrapFlightError(err, map[string]interface{}{"flight": flightNumber, "date": date})
		}

		return &mcpsdk.CallToolResultFor[types.FlightStatusResponse]{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: fmt.Sprintf("Details for %s on %s", record.FlightNumber, date)},
			},
			StructuredContent: flightToStatusResponse(record),
			IsError:           false,
		}, nil
	}
}

type boardFetcher func(ctx context.Context, airport, fromTime string, limit int) ([]models.FlightRecord, error)

// airportBoardHandler serves both departure and arrival boards
func airportBoardHandler(name, direction string, fetch boardFetcher) mcpsdk.ToolHandlerFor[types.AirportBoardParams, types.AlternativeFlightsResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.AirportBoardParams]) (*mcpsdk.CallToolResultFor[types.AlternativeFlightsResponse], error) {
		args := params.Arguments
		logToolCall(name, args)

		if err := requireField(args.Airport, "airport"); err != nil {
			return nil, err
		}
		airport := flightapi.NormalizeAirport(args.Airport)
		limit := args.Limit
		if limit <= 0 {
			limit = 10
		}

		records, err := fetch(ctx, airport, args.FromTime, limit)
		if err != nil {
			logError(err)
			return nil, wrapFlightError(err, map[string]interface{}{"airport": airport})
		}

		summaries := make([]types.FlightSummaryResponse, len(records))
		for i, f := range records {
			summaries[i] = flightToSummary(f)
		}

		resp := types.AlternativeFlightsResponse{
			Flights: summaries,
			Count:   len(summaries),
		}
		if direction == "departures" {
			resp.Origin = airport
		} else {
			resp.Destination = airport
		}

		return &mcpsdk.CallToolResultFor[types.AlternativeFlightsResponse]{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: fmt.Sprintf("%d %s at %s", len(summaries), direction, airport)},
			},
			StructuredContent: resp,
			IsError:           false,
		}, nil
	}
}

// RegisterFlightTools registers the flight lookup tools.
func RegisterFlightTools(server *mcpsdk.Server, flights FlightService, ranker rank.Strategy) error {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "check-flight-status",
		Description: "Check real-time status for a flight. Args: flight_iata (e.g. 'LH456'; bare digits get the LH prefix) or booking_id, date [YYYY-MM-DD, default today]. Returns status, delay minutes, and both legs.",
	}, checkFlightStatusHandler(flights))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "find-alternative-flights",
		Description: "Find rebooking options on a route, ranked with at most 3 results. Args: origin, destination (IATA), date [default today], preferred_class [business|economy], direct_only. Group carriers only (LH, LX, OS, SN, EW).",
	}, findAlternativeFlightsHandler(flights, ranker))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-flight-details",
		Description: "Get the full record for one flight: terminals, gates, scheduled and estimated times, aircraft. Args: flight_iata (required), date [default today].",
	}, getFlightDetailsHandler(flights))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-airport-departures",
		Description: "List upcoming departures from an airport. Args: airport (IATA, required), from_time [YYYY-MM-DDTHH:MM, default now], limit [default 10].",
	}, airportBoardHandler("get-airport-departures", "departures", flights.Departures))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-airport-arrivals",
		Description: "List upcoming arrivals at an airport. Args: airport (IATA, required), from_time [YYYY-MM-DDTHH:MM, default now], limit [default 10].",
	}, airportBoardHandler("get-airport-arrivals", "arrivals", flights.Arrivals))

	return nil
}
