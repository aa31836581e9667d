package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/types"
)

func TestDraftDelay_BodyCarriesInputsVerbatim(t *testing.T) {
	drafter := NewDrafter("Alex Weber")

	draft, err := drafter.DraftDelay(DelayInput{
		RecipientEmail: "ceo@company.com",
		RecipientName:  "Jane",
		DelayInfo:      "90 minute delay due to weather in Frankfurt",
		NewArrival:     "18:00 EST",
	})
	if err != nil {
		t.Fatalf("DraftDelay failed: %v", err)
	}

	if draft.To != "ceo@company.com" {
		t.Errorf("to = %q", draft.To)
	}
	if draft.Subject != "Travel Update: Flight Delay - New Arrival 18:00 EST" {
		t.Errorf("subject = %q", draft.Subject)
	}
	if draft.Status != models.DraftPending {
		t.Errorf("status = %q, want draft", draft.Status)
	}
	if draft.ID == "" {
		t.Error("draft should have an ID")
	}

	for _, want := range []string{
		"Dear Jane,",
		"90 minute delay due to weather in Frankfurt",
		"18:00 EST",
		"Best regards,\nAlex Weber",
	} {
		if !strings.Contains(draft.Body, want) {
			t.Errorf("body missing %q:\n%s", want, draft.Body)
		}
	}
}

func TestDraftDelay_MeetingImpactSection(t *testing.T) {
	drafter := NewDrafter("")

	with, err := drafter.DraftDelay(DelayInput{
		RecipientEmail: "ceo@company.com",
		RecipientName:  "Jane",
		DelayInfo:      "delay",
		NewArrival:     "18:00",
		MeetingImpact:  "I will arrive 30 minutes before our board meeting",
	})
	if err != nil {
		t.Fatalf("DraftDelay failed: %v", err)
	}
	if !strings.Contains(with.Body, "**Impact on Our Meeting:** I will arrive 30 minutes before our board meeting") {
		t.Errorf("impact section missing:\n%s", with.Body)
	}

	without, err := drafter.DraftDelay(DelayInput{
		RecipientEmail: "ceo@company.com",
		RecipientName:  "Jane",
		DelayInfo:      "delay",
		NewArrival:     "18:00",
	})
	if err != nil {
		t.Fatalf("DraftDelay failed: %v", err)
	}
	if strings.Contains(without.Body, "Impact on Our Meeting") {
		t.Errorf("impact section should be absent:\n%s", without.Body)
	}
}

func TestDraftDelay_DefaultSender(t *testing.T) {
	drafter := NewDrafter("")
	draft, err := drafter.DraftDelay(DelayInput{
		RecipientEmail: "a@b.com",
		RecipientName:  "A",
		DelayInfo:      "delay",
		NewArrival:     "18:00",
	})
	if err != nil {
		t.Fatalf("DraftDelay failed: %v", err)
	}
	if !strings.Contains(draft.Body, DefaultSenderName) {
		t.Errorf("default sender missing:\n%s", draft.Body)
	}
}

func TestDraftReschedule_ProposedTimesRendered(t *testing.T) {
	drafter := NewDrafter("Alex")

	draft, err := drafter.DraftReschedule(RescheduleInput{
		RecipientEmail: "client@acme.com",
		RecipientName:  "John",
		OriginalTime:   "16:00 EST",
		ProposedTimes:  []string{"17:00 EST", "18:00 EST", "Tomorrow 09:00 EST"},
		Reason:         "flight delay from Frankfurt",
		MeetingTitle:   "Contract Review",
	})
	if err != nil {
		t.Fatalf("DraftReschedule failed: %v", err)
	}

	if draft.Subject != "Meeting Reschedule Request: 16:00 EST (Contract Review)" {
		t.Errorf("subject = %q", draft.Subject)
	}
	if !strings.Contains(draft.Body, "Due to flight delay from Frankfurt") {
		t.Errorf("reason missing:\n%s", draft.Body)
	}
	for _, when := range []string{"  • 17:00 EST", "  • 18:00 EST", "  • Tomorrow 09:00 EST"} {
		if !strings.Contains(draft.Body, when) {
			t.Errorf("body missing bullet %q:\n%s", when, draft.Body)
		}
	}
	if len(draft.ProposedTimes) != 3 {
		t.Errorf("proposed times = %v", draft.ProposedTimes)
	}
	if draft.OriginalTime != "16:00 EST" {
		t.Errorf("original time = %q", draft.OriginalTime)
	}
}

func TestDraftReschedule_EmptyProposedTimesFails(t *testing.T) {
	drafter := NewDrafter("Alex")

	_, err := drafter.DraftReschedule(RescheduleInput{
		RecipientEmail: "client@acme.com",
		RecipientName:  "John",
		OriginalTime:   "16:00 EST",
		ProposedTimes:  []string{},
		Reason:         "flight delay",
	})

	var invalid *types.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *types.InvalidInputError", err)
	}
	if invalid.Field != "proposed_times" {
		t.Errorf("field = %q", invalid.Field)
	}
}

func TestDraftReschedule_NoMeetingTitle(t *testing.T) {
	drafter := NewDrafter("Alex")

	draft, err := drafter.DraftReschedule(RescheduleInput{
		RecipientEmail: "client@acme.com",
		RecipientName:  "John",
		OriginalTime:   "16:00 EST",
		ProposedTimes:  []string{"17:00 EST"},
		Reason:         "flight delay",
	})
	if err != nil {
		t.Fatalf("DraftReschedule failed: %v", err)
	}
	if draft.Subject != "Meeting Reschedule Request: 16:00 EST" {
		t.Errorf("subject = %q", draft.Subject)
	}
}
