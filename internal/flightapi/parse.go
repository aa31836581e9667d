package flightapi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/travelwing/travelwing/models"
)

// Raw response shapes for the Lufthansa flight status resource. The API
// returns Flights.Flight as an object for a single match and an array
// for several, so that field is decoded in two passes.

type statusResponse struct {
	FlightStatusResource struct {
		Flights struct {
			Flight json.RawMessage `json:"Flight"`
		} `json:"Flights"`
	} `json:"FlightStatusResource"`
}

type rawFlight struct {
	Departure        rawLeg       `json:"Departure"`
	Arrival          rawLeg       `json:"Arrival"`
	MarketingCarrier rawCarrier   `json:"MarketingCarrier"`
	Equipment        rawEquipment `json:"Equipment"`
	FlightStatus     rawStatus    `json:"FlightStatus"`
}

type rawLeg struct {
	AirportCode        string      `json:"AirportCode"`
	ScheduledTimeLocal rawTime     `json:"ScheduledTimeLocal"`
	EstimatedTimeLocal rawTime     `json:"EstimatedTimeLocal"`
	ActualTimeLocal    rawTime     `json:"ActualTimeLocal"`
	Terminal           rawTerminal `json:"Terminal"`
}

type rawTime struct {
	DateTime string `json:"DateTime"`
}

// flexString decodes JSON fields the API serves inconsistently as either
// a string or a number (terminal names, flight numbers).
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

type rawTerminal struct {
	Name flexString `json:"Name"`
	Gate string     `json:"Gate"`
}

type rawCarrier struct {
	AirlineID    string     `json:"AirlineID"`
	FlightNumber flexString `json:"FlightNumber"`
}

type rawEquipment struct {
	AircraftCode string `json:"AircraftCode"`
}

type rawStatus struct {
	Code       string `json:"Code"`
	Definition string `json:"Definition"`
}

// statusCodes maps Lufthansa two-letter status codes to the domain
// status enum and a human-readable description.
var statusCodes = map[string]struct {
	status      models.FlightStatus
	description string
}{
	"CD": {models.StatusCancelled, "Cancelled"},
	"DP": {models.StatusActive, "Departed"},
	"LD": {models.StatusLanded, "Landed"},
	"RT": {models.StatusDiverted, "Rerouted"},
	"DV": {models.StatusDiverted, "Diverted"},
	"HD": {models.StatusScheduled, "On Hold"},
	"FE": {models.StatusScheduled, "Flight Early"},
	"NI": {models.StatusScheduled, "Next Information"},
	"OT": {models.StatusScheduled, "On Time"},
	"DL": {models.StatusDelayed, "Delayed"},
	"NO": {models.StatusScheduled, "No Status"},
}

// StatusDescription converts a status code to a human-readable string.
func StatusDescription(code string) string {
	if entry, ok := statusCodes[code]; ok {
		return entry.description
	}
	return fmt.Sprintf("Unknown (%s)", code)
}

// statusFor maps a raw code to the domain enum; unknown codes degrade to
// scheduled rather than failing the whole record.
func statusFor(code string) models.FlightStatus {
	if entry, ok := statusCodes[code]; ok {
		return entry.status
	}
	return models.StatusScheduled
}

// parseFlightStatus decodes a flight status payload into flight records.
func parseFlightStatus(body []byte) ([]models.FlightRecord, error) {
	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing flight status response: %w", err)
	}

	raw := resp.FlightStatusResource.Flights.Flight
	if len(raw) == 0 {
		return []models.FlightRecord{}, nil
	}

	var flights []rawFlight
	if err := json.Unmarshal(raw, &flights); err != nil {
		// Single match: the API collapses the array to an object.
		var single rawFlight
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("parsing flight entries: %w", err)
		}
		flights = []rawFlight{single}
	}

	records := make([]models.FlightRecord, 0, len(flights))
	for _, f := range flights {
		records = append(records, toRecord(f))
	}
	return records, nil
}

func toRecord(f rawFlight) models.FlightRecord {
	status := statusFor(f.FlightStatus.Code)

	record := models.FlightRecord{
		FlightNumber: f.MarketingCarrier.AirlineID + string(f.MarketingCarrier.FlightNumber),
		Carrier:      f.MarketingCarrier.AirlineID,
		Status:       status,
		Departure:    toLeg(f.Departure),
		Arrival:      toLeg(f.Arrival),
		Aircraft:     f.Equipment.AircraftCode,
		// Per-flight status records describe one segment.
		Nonstop: true,
	}
	record.DelayMinutes = delayMinutes(record.Arrival.Scheduled, record.Arrival.Estimated)
	return record
}

func toLeg(l rawLeg) models.FlightLeg {
	return models.FlightLeg{
		Airport:   l.AirportCode,
		Terminal:  string(l.Terminal.Name),
		Gate:      l.Terminal.Gate,
		Scheduled: l.ScheduledTimeLocal.DateTime,
		Estimated: l.EstimatedTimeLocal.DateTime,
	}
}

// delayMinutes computes the reported delay from scheduled vs estimated
// local arrival. Missing or unparsable times, and early arrivals, count
// as zero.
func delayMinutes(scheduled, estimated string) int {
	const layout = "2006-01-02T15:04"
	if scheduled == "" || estimated == "" {
		return 0
	}
	s, err := time.Parse(layout, scheduled)
	if err != nil {
		return 0
	}
	e, err := time.Parse(layout, estimated)
	if err != nil {
		return 0
	}
	minutes := int(e.Sub(s).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}
