package models

// EventPriority classifies how movable a calendar event is.
type EventPriority string

const (
	PriorityCritical  EventPriority = "critical"
	PriorityImportant EventPriority = "important"
	PriorityFlexible  EventPriority = "flexible"
)

// Attendee is a calendar event participant.
type Attendee struct {
	Email string `json:"email" yaml:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
}

// CalendarEvent is a single same-day appointment. The conflict analyzer
// treats events as read-only input; stores own the source of truth.
type CalendarEvent struct {
	ID          string        `json:"id" yaml:"id" validate:"required"`
	Date        string        `json:"date" yaml:"date" validate:"required"`
	Title       string        `json:"title" yaml:"title" validate:"required,min=1,max=255"`
	Start       string        `json:"start" yaml:"start" validate:"required"`
	End         string        `json:"end" yaml:"end" validate:"required"`
	Timezone    string        `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Location    string        `json:"location,omitempty" yaml:"location,omitempty"`
	Priority    EventPriority `json:"priority" yaml:"priority" validate:"required,oneof=critical important flexible"`
	Attendees   []Attendee    `json:"attendees,omitempty" yaml:"attendees,omitempty" validate:"dive"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
}
