package conflict

import (
	"errors"
	"reflect"
	"testing"

	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/types"
)

func event(id, title, start string) models.CalendarEvent {
	return models.CalendarEvent{
		ID:       id,
		Title:    title,
		Start:    start,
		End:      "23:00",
		Priority: models.PriorityImportant,
	}
}

func TestClassify_BufferRule(t *testing.T) {
	tests := []struct {
		name       string
		arrival    string
		eventStart string
		wantAtRisk bool
	}{
		{
			name:       "meeting one hour after arrival is on track",
			arrival:    "15:00",
			eventStart: "16:00",
			wantAtRisk: false, // 15+1 = 16, not > 16
		},
		{
			name:       "meeting in the arrival hour is at risk",
			arrival:    "15:00",
			eventStart: "15:30", // hour 15; 15+1 > 15
			wantAtRisk: true,
		},
		{
			name:       "minutes are ignored by the hour rule",
			arrival:    "15:55",
			eventStart: "16:00",
			wantAtRisk: false,
		},
		{
			name:       "meeting before arrival is at risk",
			arrival:    "18:00",
			eventStart: "16:00",
			wantAtRisk: true,
		},
		{
			name:       "late evening boundary",
			arrival:    "20:00",
			eventStart: "21:00",
			wantAtRisk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Classify(tt.arrival, []models.CalendarEvent{event("evt_1", "Meeting", tt.eventStart)})
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}

			if tt.wantAtRisk {
				if len(report.AtRisk) != 1 || len(report.OnTrack) != 0 {
					t.Fatalf("expected at risk, got %d at risk / %d on track", len(report.AtRisk), len(report.OnTrack))
				}
				got := report.AtRisk[0]
				if got.ConflictStatus != models.ConflictAtRisk {
					t.Errorf("status = %q, want %q", got.ConflictStatus, models.ConflictAtRisk)
				}
				wantReason := "Arrives at " + tt.arrival + ", meeting at " + tt.eventStart
				if got.Reason != wantReason {
					t.Errorf("reason = %q, want %q", got.Reason, wantReason)
				}
			} else {
				if len(report.OnTrack) != 1 || len(report.AtRisk) != 0 {
					t.Fatalf("expected on track, got %d at risk / %d on track", len(report.AtRisk), len(report.OnTrack))
				}
				if report.OnTrack[0].Reason != "" {
					t.Errorf("on-track events should carry no reason, got %q", report.OnTrack[0].Reason)
				}
			}
		})
	}
}

func TestClassify_EmptyDay(t *testing.T) {
	report, err := Classify("15:00", nil)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(report.AtRisk) != 0 || len(report.OnTrack) != 0 {
		t.Errorf("expected empty partitions, got %d / %d", len(report.AtRisk), len(report.OnTrack))
	}
	if report.Summary != "0 meeting(s) at risk, 0 on track" {
		t.Errorf("summary = %q", report.Summary)
	}
	if report.AtRisk == nil || report.OnTrack == nil {
		t.Error("partitions must be empty slices, not nil, so they serialize as []")
	}
}

func TestClassify_PreservesInputOrder(t *testing.T) {
	events := []models.CalendarEvent{
		event("evt_1", "Standup", "09:00"),
		event("evt_2", "Board Meeting", "16:00"),
		event("evt_3", "Review", "10:00"),
		event("evt_4", "Dinner", "19:00"),
	}

	report, err := Classify("15:00", events)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	// 09:00 and 10:00 are in the past relative to arrival; 16:00 and 19:00 clear the buffer.
	wantAtRisk := []string{"evt_1", "evt_3"}
	wantOnTrack := []string{"evt_2", "evt_4"}

	if len(report.AtRisk) != len(wantAtRisk) {
		t.Fatalf("at risk count = %d, want %d", len(report.AtRisk), len(wantAtRisk))
	}
	for i, id := range wantAtRisk {
		if report.AtRisk[i].ID != id {
			t.Errorf("atRisk[%d] = %s, want %s", i, report.AtRisk[i].ID, id)
		}
	}
	for i, id := range wantOnTrack {
		if report.OnTrack[i].ID != id {
			t.Errorf("onTrack[%d] = %s, want %s", i, report.OnTrack[i].ID, id)
		}
	}

	if report.Summary != "2 meeting(s) at risk, 2 on track" {
		t.Errorf("summary = %q", report.Summary)
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	evt := event("evt_1", "Meeting", "10:00")
	evt.Attendees = []models.Attendee{{Email: "ceo@company.com", Name: "Jane Smith"}}
	events := []models.CalendarEvent{evt}
	original := evt
	original.Attendees = append([]models.Attendee(nil), evt.Attendees...)

	if _, err := Classify("15:00", events); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if !reflect.DeepEqual(events[0], original) {
		t.Error("Classify mutated its input event")
	}
}

func TestClassify_Deterministic(t *testing.T) {
	events := []models.CalendarEvent{
		event("evt_1", "Board Meeting", "16:00"),
		event("evt_2", "Dinner", "19:00"),
	}

	first, err := Classify("18:00", events)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Classify("18:00", events)
		if err != nil {
			t.Fatalf("Classify failed on repeat: %v", err)
		}
		if again.Summary != first.Summary || len(again.AtRisk) != len(first.AtRisk) {
			t.Fatal("repeated classification diverged")
		}
	}
}

func TestParseClock_Malformed(t *testing.T) {
	bad := []string{"", "15", "25:00", "15:60", "3pm", "15:0x", "-1:30", "15:00:00"}
	for _, value := range bad {
		if _, _, err := ParseClock(value); err == nil {
			t.Errorf("ParseClock(%q) should fail", value)
		} else {
			var mt *types.MalformedTimeError
			if !errors.As(err, &mt) {
				t.Errorf("ParseClock(%q) error type = %T, want *types.MalformedTimeError", value, err)
			}
		}
	}

	hour, minute, err := ParseClock("07:05")
	if err != nil {
		t.Fatalf("ParseClock(07:05) failed: %v", err)
	}
	if hour != 7 || minute != 5 {
		t.Errorf("ParseClock(07:05) = %d:%d", hour, minute)
	}
}

func TestClassify_MalformedEventStart(t *testing.T) {
	_, err := Classify("15:00", []models.CalendarEvent{event("evt_1", "Broken", "4pm")})
	var mt *types.MalformedTimeError
	if !errors.As(err, &mt) {
		t.Fatalf("error = %v, want *types.MalformedTimeError", err)
	}
	if mt.Value != "4pm" {
		t.Errorf("offending value = %q, want %q", mt.Value, "4pm")
	}
}
