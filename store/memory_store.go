package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/travelwing/travelwing/models"
)

const seedKey = "seed"

// MemoryCalendarStore keeps events in memory. Initialize seeds it with
// a fixed demo calendar unless config["seed"] is "false", so the tool
// surface works out of the box without any external calendar account.
type MemoryCalendarStore struct {
	mu     sync.RWMutex
	events []models.CalendarEvent
}

// NewMemoryCalendarStore creates a new instance of MemoryCalendarStore.
// It does not initialize the store; Initialize must be called separately.
func NewMemoryCalendarStore() *MemoryCalendarStore {
	return &MemoryCalendarStore{}
}

// seedCalendar returns the demo event table.
func seedCalendar() []models.CalendarEvent {
	return []models.CalendarEvent{
		{
			ID:       "evt_001",
			Date:     "2026-02-28",
			Title:    "Board Meeting with CEO",
			Start:    "16:00",
			End:      "18:00",
			Timezone: "America/New_York",
			Location: "NYC Office - Boardroom",
			Priority: models.PriorityCritical,
			Attendees: []models.Attendee{
				{Email: "ceo@company.com", Name: "Jane Smith"},
				{Email: "cfo@company.com", Name: "John Doe"},
			},
			Description: "Q1 Strategy Review - Presentation Required",
		},
		{
			ID:       "evt_002",
			Date:     "2026-02-28",
			Title:    "Client Dinner - Acme Corp",
			Start:    "19:00",
			End:      "21:00",
			Timezone: "America/New_York",
			Location: "The Capital Grille, NYC",
			Priority: models.PriorityImportant,
			Attendees: []models.Attendee{
				{Email: "john@acmecorp.com", Name: "John Client"},
			},
			Description: "Contract renewal discussion",
		},
		{
			ID:       "evt_003",
			Date:     "2026-02-28",
			Title:    "Team Sync Call",
			Start:    "10:00",
			End:      "10:30",
			Timezone: "America/New_York",
			Location: "Virtual - Zoom",
			Priority: models.PriorityFlexible,
			Attendees: []models.Attendee{
				{Email: "team@company.com", Name: "Dev Team"},
			},
			Description: "Weekly standup",
		},
		{
			ID:       "evt_004",
			Date:     "2026-03-01",
			Title:    "Client Workshop",
			Start:    "09:00",
			End:      "12:00",
			Timezone: "America/New_York",
			Location: "Client HQ",
			Priority: models.PriorityCritical,
			Attendees: []models.Attendee{
				{Email: "client@bigcorp.com", Name: "Big Corp Team"},
			},
			Description: "Product demo and training",
		},
	}
}

// Initialize seeds the store. Passing config["seed"] = "false" starts
// the store empty instead.
func (s *MemoryCalendarStore) Initialize(config map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if config[seedKey] == "false" {
		s.events = []models.CalendarEvent{}
		return nil
	}
	s.events = seedCalendar()
	return nil
}

// EventsOn returns the events on the given date in stored order.
func (s *MemoryCalendarStore) EventsOn(date string) ([]models.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.CalendarEvent{}
	for _, event := range s.events {
		if event.Date == date {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

// ListEvents returns all events, optionally filtered.
func (s *MemoryCalendarStore) ListEvents(filterFn func(models.CalendarEvent) bool) ([]models.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.CalendarEvent{}
	for _, event := range s.events {
		if filterFn == nil || filterFn(event) {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

// AddEvent validates and appends an event, generating an ID if missing.
func (s *MemoryCalendarStore) AddEvent(event models.CalendarEvent) (models.CalendarEvent, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := models.ValidateStruct(event); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.events {
		if existing.ID == event.ID {
			return models.CalendarEvent{}, fmt.Errorf("event with ID %s already exists", event.ID)
		}
	}
	s.events = append(s.events, event)
	return event, nil
}

// DeleteEvent removes an event by ID.
func (s *MemoryCalendarStore) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, event := range s.events {
		if event.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}

// Close is a no-op for the in-memory store.
func (s *MemoryCalendarStore) Close() error {
	return nil
}
