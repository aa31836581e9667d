package store

import (
	"errors"
	"fmt"

	"github.com/travelwing/travelwing/models"
)

// ErrEventNotFound is returned when an event ID does not exist in the store.
var ErrEventNotFound = errors.New("event not found")

// Backend names accepted by New and the calendar.backend config key.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// CalendarStore defines the interface for calendar event persistence.
// The conflict analyzer and the tool handlers only depend on this
// contract, so a real calendar backend can be swapped in without
// touching either.
type CalendarStore interface {
	// Initialize configures the store with backend-specific settings,
	// such as a file path or database location. It must be called
	// before any other store operation.
	Initialize(config map[string]string) error

	// EventsOn retrieves the events scheduled on the given date
	// (YYYY-MM-DD). A date with no events returns an empty slice,
	// not an error.
	EventsOn(date string) ([]models.CalendarEvent, error)

	// ListEvents retrieves events across all dates, optionally
	// filtered. If filterFn is nil, all events are returned.
	ListEvents(filterFn func(models.CalendarEvent) bool) ([]models.CalendarEvent, error)

	// AddEvent adds a new event to the store. An empty ID is filled
	// with a generated one. It returns the stored event.
	AddEvent(event models.CalendarEvent) (models.CalendarEvent, error)

	// DeleteEvent removes an event by its ID. It returns
	// ErrEventNotFound if no such event exists.
	DeleteEvent(id string) error

	// Close releases any resources held by the store, such as file
	// locks or database connections.
	Close() error
}

// New returns an uninitialized store for the named backend. An empty
// name selects the in-memory demo store.
func New(backend string) (CalendarStore, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemoryCalendarStore(), nil
	case BackendFile:
		return NewFileCalendarStore(), nil
	case BackendSQLite:
		return NewSQLiteCalendarStore(), nil
	default:
		return nil, fmt.Errorf("unsupported calendar backend: %s (supported: memory, file, sqlite)", backend)
	}
}
