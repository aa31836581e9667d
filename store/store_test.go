package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/travelwing/travelwing/models"
)

func newTestEvent(id, date, start string) models.CalendarEvent {
	return models.CalendarEvent{
		ID:       id,
		Date:     date,
		Title:    "Planning Session",
		Start:    start,
		End:      "17:00",
		Priority: models.PriorityImportant,
		Attendees: []models.Attendee{
			{Email: "pm@company.com", Name: "PM"},
		},
	}
}

// storeFactories builds one fresh initialized, unseeded store per backend.
func storeFactories(t *testing.T) map[string]CalendarStore {
	t.Helper()

	mem := NewMemoryCalendarStore()
	if err := mem.Initialize(map[string]string{"seed": "false"}); err != nil {
		t.Fatalf("memory Initialize failed: %v", err)
	}

	file := NewFileCalendarStore()
	if err := file.Initialize(map[string]string{
		dataFileKey: filepath.Join(t.TempDir(), "calendar.json"),
	}); err != nil {
		t.Fatalf("file Initialize failed: %v", err)
	}

	sqlite := NewSQLiteCalendarStore()
	if err := sqlite.Initialize(map[string]string{dbPathKey: ":memory:"}); err != nil {
		t.Fatalf("sqlite Initialize failed: %v", err)
	}

	stores := map[string]CalendarStore{
		"memory": mem,
		"file":   file,
		"sqlite": sqlite,
	}
	for _, s := range stores {
		s := s
		t.Cleanup(func() { _ = s.Close() })
	}
	return stores
}

func TestAddAndQueryEvents(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.AddEvent(newTestEvent("evt_a", "2026-04-01", "14:00")); err != nil {
				t.Fatalf("AddEvent failed: %v", err)
			}
			if _, err := s.AddEvent(newTestEvent("evt_b", "2026-04-01", "09:00")); err != nil {
				t.Fatalf("AddEvent failed: %v", err)
			}
			if _, err := s.AddEvent(newTestEvent("evt_c", "2026-04-02", "11:00")); err != nil {
				t.Fatalf("AddEvent failed: %v", err)
			}

			events, err := s.EventsOn("2026-04-01")
			if err != nil {
				t.Fatalf("EventsOn failed: %v", err)
			}
			if len(events) != 2 {
				t.Fatalf("EventsOn returned %d events, want 2", len(events))
			}
			for _, event := range events {
				if event.Date != "2026-04-01" {
					t.Errorf("event %s has date %s", event.ID, event.Date)
				}
			}

			all, err := s.ListEvents(nil)
			if err != nil {
				t.Fatalf("ListEvents failed: %v", err)
			}
			if len(all) != 3 {
				t.Errorf("ListEvents returned %d events, want 3", len(all))
			}
		})
	}
}

func TestEventsOnEmptyDate(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			events, err := s.EventsOn("1999-01-01")
			if err != nil {
				t.Fatalf("EventsOn failed: %v", err)
			}
			if events == nil {
				t.Error("EventsOn returned nil, want empty slice")
			}
			if len(events) != 0 {
				t.Errorf("EventsOn returned %d events, want 0", len(events))
			}
		})
	}
}

func TestAddEventGeneratesID(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			event := newTestEvent("", "2026-04-01", "14:00")
			stored, err := s.AddEvent(event)
			if err != nil {
				t.Fatalf("AddEvent failed: %v", err)
			}
			if stored.ID == "" {
				t.Error("AddEvent did not generate an ID")
			}
		})
	}
}

func TestAddEventRejectsInvalid(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			event := newTestEvent("evt_bad", "2026-04-01", "14:00")
			event.Priority = "urgent" // not a known priority
			if _, err := s.AddEvent(event); err == nil {
				t.Error("AddEvent accepted an invalid priority")
			}
		})
	}
}

func TestAddEventDuplicateID(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.AddEvent(newTestEvent("evt_dup", "2026-04-01", "14:00")); err != nil {
				t.Fatalf("AddEvent failed: %v", err)
			}
			if _, err := s.AddEvent(newTestEvent("evt_dup", "2026-04-02", "15:00")); err == nil {
				t.Error("AddEvent accepted a duplicate ID")
			}
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	for name, s := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.AddEvent(newTestEvent("evt_del", "2026-04-01", "14:00")); err != nil {
				t.Fatalf("AddEvent failed: %v", err)
			}
			if err := s.DeleteEvent("evt_del"); err != nil {
				t.Fatalf("DeleteEvent failed: %v", err)
			}
			if err := s.DeleteEvent("evt_del"); !errors.Is(err, ErrEventNotFound) {
				t.Errorf("second delete error = %v, want ErrEventNotFound", err)
			}
		})
	}
}

func TestMemorySeedCalendar(t *testing.T) {
	s := NewMemoryCalendarStore()
	if err := s.Initialize(nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	events, err := s.EventsOn("2026-02-28")
	if err != nil {
		t.Fatalf("EventsOn failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("seeded 2026-02-28 has %d events, want 3", len(events))
	}
	if events[0].ID != "evt_001" || events[0].Title != "Board Meeting with CEO" || events[0].Start != "16:00" {
		t.Errorf("first seeded event = %+v", events[0])
	}
	if events[0].Priority != models.PriorityCritical {
		t.Errorf("board meeting priority = %q", events[0].Priority)
	}

	workshop, err := s.EventsOn("2026-03-01")
	if err != nil {
		t.Fatalf("EventsOn failed: %v", err)
	}
	if len(workshop) != 1 || workshop[0].ID != "evt_004" {
		t.Errorf("seeded 2026-03-01 = %+v", workshop)
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.yaml")
	cfg := map[string]string{dataFileKey: path, dataFileFormatKey: "yaml"}

	s := NewFileCalendarStore()
	if err := s.Initialize(cfg); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if _, err := s.AddEvent(newTestEvent("evt_keep", "2026-04-01", "14:00")); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewFileCalendarStore()
	if err := reopened.Initialize(cfg); err != nil {
		t.Fatalf("reopen Initialize failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	events, err := reopened.EventsOn("2026-04-01")
	if err != nil {
		t.Fatalf("EventsOn failed: %v", err)
	}
	if len(events) != 1 || events[0].ID != "evt_keep" {
		t.Errorf("reopened events = %+v", events)
	}
	if len(events) == 1 && len(events[0].Attendees) != 1 {
		t.Errorf("attendees did not survive the round trip: %+v", events[0].Attendees)
	}
}

func TestFileStoreDetectsCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	cfg := map[string]string{dataFileKey: path}

	s := NewFileCalendarStore()
	if err := s.Initialize(cfg); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if _, err := s.AddEvent(newTestEvent("evt_x", "2026-04-01", "14:00")); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Tamper with the data file without updating its checksum.
	if err := os.WriteFile(path, []byte(`{"events":[],"totalCount":0}`), 0o644); err != nil {
		t.Fatalf("tamper write failed: %v", err)
	}

	tampered := NewFileCalendarStore()
	if err := tampered.Initialize(cfg); err == nil {
		_ = tampered.Close()
		t.Fatal("Initialize accepted a tampered data file")
	}
}

func TestSQLiteStoreAttendeesRoundTrip(t *testing.T) {
	s := NewSQLiteCalendarStore()
	if err := s.Initialize(map[string]string{dbPathKey: filepath.Join(t.TempDir(), "calendar.db")}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	event := newTestEvent("evt_sql", "2026-04-01", "14:00")
	event.Attendees = []models.Attendee{
		{Email: "a@company.com", Name: "A"},
		{Email: "b@company.com", Name: "B"},
	}
	if _, err := s.AddEvent(event); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}

	events, err := s.EventsOn("2026-04-01")
	if err != nil {
		t.Fatalf("EventsOn failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("EventsOn returned %d events, want 1", len(events))
	}
	if len(events[0].Attendees) != 2 || events[0].Attendees[1].Email != "b@company.com" {
		t.Errorf("attendees = %+v", events[0].Attendees)
	}
}

func TestSQLiteOrdersByStartTime(t *testing.T) {
	s := NewSQLiteCalendarStore()
	if err := s.Initialize(map[string]string{dbPathKey: ":memory:"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	for _, e := range []struct{ id, start string }{
		{"evt_late", "19:00"}, {"evt_early", "08:00"}, {"evt_mid", "12:30"},
	} {
		if _, err := s.AddEvent(newTestEvent(e.id, "2026-04-01", e.start)); err != nil {
			t.Fatalf("AddEvent failed: %v", err)
		}
	}

	events, err := s.EventsOn("2026-04-01")
	if err != nil {
		t.Fatalf("EventsOn failed: %v", err)
	}
	var got []string
	for _, e := range events {
		got = append(got, e.ID)
	}
	want := []string{"evt_early", "evt_mid", "evt_late"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestNewBackendSelection(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{"", false},
		{"memory", false},
		{"file", false},
		{"sqlite", false},
		{"postgres", true},
	}
	for _, tt := range tests {
		s, err := New(tt.backend)
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q) accepted an unsupported backend", tt.backend)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%q) failed: %v", tt.backend, err)
		}
		if s == nil {
			t.Errorf("New(%q) returned nil store", tt.backend)
		}
	}
}
