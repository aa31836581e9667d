package mcp

import (
	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/types"
)

// statusDescriptions gives each flight status a short human reading for
// tool output.
var statusDescriptions = map[models.FlightStatus]string{
	models.StatusScheduled: "Scheduled / on time",
	models.StatusActive:    "In the air",
	models.StatusLanded:    "Landed",
	models.StatusCancelled: "Cancelled",
	models.StatusDiverted:  "Diverted or rerouted",
	models.StatusDelayed:   "Delayed",
}

func describeStatus(status models.FlightStatus) string {
	if desc, ok := statusDescriptions[status]; ok {
		return desc
	}
	return string(status)
}

func legToResponse(leg models.FlightLeg) types.LegResponse {
	return types.LegResponse{
		Airport:   leg.Airport,
		Terminal:  leg.Terminal,
		Gate:      leg.Gate,
		Scheduled: leg.Scheduled,
		Estimated: leg.Estimated,
	}
}

func flightToStatusResponse(f models.FlightRecord) types.FlightStatusResponse {
	return types.FlightStatusResponse{
		Flight:            f.FlightNumber,
		Airline:           f.Carrier,
		Status:            string(f.Status),
		StatusDescription: describeStatus(f.Status),
		DelayMinutes:      f.DelayMinutes,
		Departure:         legToResponse(f.Departure),
		Arrival:           legToResponse(f.Arrival),
		Aircraft:          f.Aircraft,
	}
}

func flightToSummary(f models.FlightRecord) types.FlightSummaryResponse {
	return types.FlightSummaryResponse{
		Flight:        f.FlightNumber,
		Status:        string(f.Status),
		DepartureTime: f.Departure.Scheduled,
		ArrivalTime:   f.EffectiveArrival(),
		Origin:        f.Departure.Airport,
		Destination:   f.Arrival.Airport,
		Nonstop:       f.Nonstop,
	}
}

func eventToResponse(event models.CalendarEvent) types.EventResponse {
	attendees := make([]types.AttendeeResponse, len(event.Attendees))
	for i, a := range event.Attendees {
		attendees[i] = types.AttendeeResponse{Email: a.Email, Name: a.Name}
	}
	return types.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Start:       event.Start,
		End:         event.End,
		Location:    event.Location,
		Priority:    string(event.Priority),
		Attendees:   attendees,
		Description: event.Description,
	}
}

func classifiedToResponse(event models.ClassifiedEvent) types.ClassifiedEventResponse {
	return types.ClassifiedEventResponse{
		EventResponse:  eventToResponse(event.CalendarEvent),
		ConflictStatus: string(event.ConflictStatus),
		Reason:         event.Reason,
	}
}

func reportToResponse(report models.ConflictReport) types.ConflictReportResponse {
	atRisk := make([]types.ClassifiedEventResponse, len(report.AtRisk))
	for i, e := range report.AtRisk {
		atRisk[i] = classifiedToResponse(e)
	}
	onTrack := make([]types.ClassifiedEventResponse, len(report.OnTrack))
	for i, e := range report.OnTrack {
		onTrack[i] = classifiedToResponse(e)
	}
	return types.ConflictReportResponse{
		ArrivalTime:   report.ArrivalTime,
		AvailableFrom: report.AvailableFrom,
		AtRisk:        atRisk,
		OnTrack:       onTrack,
		Summary:       report.Summary,
	}
}

func draftToResponse(draft models.NotificationDraft) types.NotificationDraftResponse {
	return types.NotificationDraftResponse{
		ID:            draft.ID,
		Type:          draft.Type,
		To:            draft.To,
		Subject:       draft.Subject,
		Body:          draft.Body,
		ProposedTimes: draft.ProposedTimes,
		OriginalTime:  draft.OriginalTime,
		Status:        string(draft.Status),
	}
}
