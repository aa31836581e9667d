package types

// MCP Tool Parameter Types

// CheckFlightStatusParams for checking the status of a single flight
type CheckFlightStatusParams struct {
	FlightIATA string `json:"flight_iata,omitempty" mcp:"IATA flight number, e.g. 'LH456'. Bare digits get the 'LH' prefix."`
	BookingID  string `json:"booking_id,omitempty" mcp:"Booking reference, e.g. 'ABC123'. Lookup by booking requires partner API access."`
	Date       string `json:"date,omitempty" mcp:"Flight date in YYYY-MM-DD format. Defaults to today."`
}

// FindAlternativeFlightsParams for searching replacement flights on a route
type FindAlternativeFlightsParams struct {
	Origin         string `json:"origin" mcp:"Departure airport IATA code, e.g. 'HAM' (required)"`
	Destination    string `json:"destination" mcp:"Arrival airport IATA code, e.g. 'JFK' (required)"`
	Date           string `json:"date,omitempty" mcp:"Travel date in YYYY-MM-DD format. Defaults to today."`
	PreferredClass string `json:"preferred_class,omitempty" mcp:"Cabin class preference: business or economy"`
	DirectOnly     bool   `json:"direct_only,omitempty" mcp:"Only return non-stop flights"`
}

// GetFlightDetailsParams for retrieving a raw flight record
type GetFlightDetailsParams struct {
	FlightIATA string `json:"flight_iata" mcp:"IATA flight number, e.g. 'LH456' (required)"`
	Date       string `json:"date,omitempty" mcp:"Flight date in YYYY-MM-DD format. Defaults to today."`
}

// AirportBoardParams for airport departure/arrival boards
type AirportBoardParams struct {
	Airport  string `json:"airport" mcp:"Airport IATA code, e.g. 'FRA' (required)"`
	FromTime string `json:"from_time,omitempty" mcp:"Start time in YYYY-MM-DDTHH:MM format. Defaults to now."`
	Limit    int    `json:"limit,omitempty" mcp:"Maximum flights to return (default 10)"`
}

// GetCalendarEventsParams for listing calendar events on a date
type GetCalendarEventsParams struct {
	Date   string `json:"date" mcp:"Date in YYYY-MM-DD format (required)"`
	UserID string `json:"user_id,omitempty" mcp:"User identifier for multi-user setups"`
}

// FindMeetingConflictsParams for classifying events against a new arrival
type FindMeetingConflictsParams struct {
	ArrivalTime string `json:"arrival_time" mcp:"New arrival time in HH:MM 24-hour format (required)"`
	Date        string `json:"date" mcp:"Date in YYYY-MM-DD format (required)"`
	UserID      string `json:"user_id,omitempty" mcp:"User identifier for multi-user setups"`
}

// DraftDelayNotificationParams for drafting a delay notice email
type DraftDelayNotificationParams struct {
	RecipientEmail string `json:"recipient_email" mcp:"Email address of the recipient (required)"`
	RecipientName  string `json:"recipient_name" mcp:"Name of the recipient for the greeting (required)"`
	DelayInfo      string `json:"delay_info" mcp:"Description of the delay, e.g. '90 minute delay due to weather' (required)"`
	NewArrival     string `json:"new_arrival" mcp:"New expected arrival time, e.g. '18:00 EST' (required)"`
	MeetingImpact  string `json:"meeting_impact,omitempty" mcp:"Optional description of meeting impact"`
	SenderName     string `json:"sender_name,omitempty" mcp:"Name of the sender. Defaults to the configured sender."`
}

// DraftRescheduleRequestParams for drafting a reschedule request email
type DraftRescheduleRequestParams struct {
	RecipientEmail string   `json:"recipient_email" mcp:"Email address of the recipient (required)"`
	RecipientName  string   `json:"recipient_name" mcp:"Name of the recipient (required)"`
	OriginalTime   string   `json:"original_time" mcp:"Original meeting time, e.g. '16:00 EST' (required)"`
	ProposedTimes  []string `json:"proposed_times" mcp:"Proposed alternative times; must contain at least one entry (required)"`
	Reason         string   `json:"reason" mcp:"Brief reason for the reschedule, e.g. 'flight delay from Frankfurt' (required)"`
	MeetingTitle   string   `json:"meeting_title,omitempty" mcp:"Optional title of the meeting"`
	SenderName     string   `json:"sender_name,omitempty" mcp:"Name of the sender. Defaults to the configured sender."`
}

// SendEmailParams for simulated email delivery
type SendEmailParams struct {
	ToEmail string `json:"to_email" mcp:"Recipient email address (required)"`
	Subject string `json:"subject" mcp:"Email subject line (required)"`
	Body    string `json:"body" mcp:"Email body content (required)"`
}

// MCP Tool Response Types

// LegResponse describes one side of a flight (departure or arrival)
type LegResponse struct {
	Airport   string `json:"airport"`
	Terminal  string `json:"terminal,omitempty"`
	Gate      string `json:"gate,omitempty"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated,omitempty"`
}

// FlightStatusResponse is the structured result of a flight lookup
type FlightStatusResponse struct {
	Flight            string      `json:"flight"`
	Airline           string      `json:"airline"`
	Status            string      `json:"status"`
	StatusDescription string      `json:"status_description"`
	DelayMinutes      int         `json:"delay_minutes"`
	Departure         LegResponse `json:"departure"`
	Arrival           LegResponse `json:"arrival"`
	Aircraft          string      `json:"aircraft,omitempty"`
}

// FlightSummaryResponse is a compact flight entry for alternative listings
type FlightSummaryResponse struct {
	Flight        string `json:"flight"`
	Status        string `json:"status"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Nonstop       bool   `json:"nonstop"`
}

// AlternativeFlightsResponse lists ranked rebooking candidates
type AlternativeFlightsResponse struct {
	Origin         string                  `json:"origin"`
	Destination    string                  `json:"destination"`
	Date           string                  `json:"date"`
	Flights        []FlightSummaryResponse `json:"flights"`
	Count          int                     `json:"count"`
	Recommendation string                  `json:"recommendation,omitempty"`
	PreferredClass string                  `json:"preferred_class,omitempty"`
}

// AttendeeResponse is a calendar event participant
type AttendeeResponse struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// EventResponse mirrors a calendar event for tool output
type EventResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Start       string             `json:"start"`
	End         string             `json:"end"`
	Location    string             `json:"location,omitempty"`
	Priority    string             `json:"priority"`
	Attendees   []AttendeeResponse `json:"attendees,omitempty"`
	Description string             `json:"description,omitempty"`
}

// CalendarEventsResponse is the result of a calendar lookup
type CalendarEventsResponse struct {
	Date       string          `json:"date"`
	EventCount int             `json:"event_count"`
	Events     []EventResponse `json:"events"`
}

// ClassifiedEventResponse is an event with its conflict classification
type ClassifiedEventResponse struct {
	EventResponse
	ConflictStatus string `json:"conflict_status"`
	Reason         string `json:"reason,omitempty"`
}

// ConflictReportResponse is the result of conflict analysis
type ConflictReportResponse struct {
	ArrivalTime   string                    `json:"arrival_time"`
	AvailableFrom string                    `json:"available_from"`
	AtRisk        []ClassifiedEventResponse `json:"conflicts"`
	OnTrack       []ClassifiedEventResponse `json:"safe"`
	Summary       string                    `json:"summary"`
}

// NotificationDraftResponse is a drafted email ready for review
type NotificationDraftResponse struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	To            string   `json:"to"`
	Subject       string   `json:"subject"`
	Body          string   `json:"body"`
	ProposedTimes []string `json:"proposed_times,omitempty"`
	OriginalTime  string   `json:"original_time,omitempty"`
	Status        string   `json:"status"`
}

// SendEmailResponse confirms a (simulated) email delivery
type SendEmailResponse struct {
	Status  string `json:"status"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
