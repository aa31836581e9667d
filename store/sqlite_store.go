package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/travelwing/travelwing/models"
	_ "modernc.org/sqlite"
)

const dbPathKey = "dbPath"

// SQLiteCalendarStore implements CalendarStore using SQLite for
// persistence. Attendees are stored as a JSON column; everything else
// maps to plain columns.
type SQLiteCalendarStore struct {
	db *sql.DB
}

// NewSQLiteCalendarStore creates a new instance of SQLiteCalendarStore.
// It does not open the database; Initialize must be called separately.
func NewSQLiteCalendarStore() *SQLiteCalendarStore {
	return &SQLiteCalendarStore{}
}

// Initialize opens the database and creates the schema. It expects a
// 'dbPath' key in the config map; ":memory:" opens an in-memory
// database, and a missing key defaults to 'calendar.db'.
func (s *SQLiteCalendarStore) Initialize(config map[string]string) error {
	dbPath := config[dbPathKey]
	if dbPath == "" {
		dbPath = "calendar.db"
	}
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return fmt.Errorf("enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		title TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		timezone TEXT,
		location TEXT,
		priority TEXT NOT NULL,
		attendees TEXT,
		description TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("init schema: %w", err)
	}

	s.db = db
	return nil
}

// EventsOn returns the events on the given date ordered by start time.
func (s *SQLiteCalendarStore) EventsOn(date string) ([]models.CalendarEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, date, title, start_time, end_time, timezone, location, priority, attendees, description
		FROM events WHERE date = ? ORDER BY start_time, id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("query events for %s: %w", date, err)
	}
	defer func() { _ = rows.Close() }()
	return scanEvents(rows)
}

// ListEvents returns all events ordered by date and start time,
// optionally filtered.
func (s *SQLiteCalendarStore) ListEvents(filterFn func(models.CalendarEvent) bool) ([]models.CalendarEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, date, title, start_time, end_time, timezone, location, priority, attendees, description
		FROM events ORDER BY date, start_time, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	if filterFn == nil {
		return events, nil
	}
	matched := []models.CalendarEvent{}
	for _, event := range events {
		if filterFn(event) {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

func scanEvents(rows *sql.Rows) ([]models.CalendarEvent, error) {
	events := []models.CalendarEvent{}
	for rows.Next() {
		var event models.CalendarEvent
		var timezone, location, attendeesJSON, description sql.NullString
		if err := rows.Scan(&event.ID, &event.Date, &event.Title, &event.Start, &event.End,
			&timezone, &location, &event.Priority, &attendeesJSON, &description); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.Timezone = timezone.String
		event.Location = location.String
		event.Description = description.String
		if attendeesJSON.Valid && attendeesJSON.String != "" {
			if err := json.Unmarshal([]byte(attendeesJSON.String), &event.Attendees); err != nil {
				return nil, fmt.Errorf("unmarshal attendees for %s: %w", event.ID, err)
			}
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// AddEvent validates and inserts a new event, generating an ID if
// missing.
func (s *SQLiteCalendarStore) AddEvent(event models.CalendarEvent) (models.CalendarEvent, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := models.ValidateStruct(event); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event validation failed: %w", err)
	}

	attendeesJSON, err := json.Marshal(event.Attendees)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("marshal attendees: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO events (id, date, title, start_time, end_time, timezone, location, priority, attendees, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, event.ID, event.Date, event.Title, event.Start, event.End,
		event.Timezone, event.Location, string(event.Priority), string(attendeesJSON), event.Description)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("insert event %s: %w", event.ID, err)
	}
	return event, nil
}

// DeleteEvent removes an event by ID.
func (s *SQLiteCalendarStore) DeleteEvent(id string) error {
	result, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteCalendarStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
