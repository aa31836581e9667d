package rank

import (
	"testing"

	"github.com/travelwing/travelwing/models"
)

func candidate(number, arrival string, nonstop bool, cabins ...string) models.FlightRecord {
	return models.FlightRecord{
		FlightNumber: number,
		Carrier:      "LH",
		Status:       models.StatusScheduled,
		Departure:    models.FlightLeg{Airport: "HAM", Scheduled: "10:00"},
		Arrival:      models.FlightLeg{Airport: "JFK", Scheduled: arrival},
		Nonstop:      nonstop,
		Cabins:       cabins,
	}
}

func TestPositionalTruncation_CapsAtThree(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"no candidates", 0, 0},
		{"fewer than cap", 2, 2},
		{"exactly cap", 3, 3},
		{"more than cap", 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := make([]models.FlightRecord, tt.in)
			for i := range candidates {
				candidates[i] = candidate("LH100", "15:00", true)
			}

			got := PositionalTruncation{}.Rank(candidates, "business")
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestPositionalTruncation_PreservesUpstreamOrder(t *testing.T) {
	candidates := []models.FlightRecord{
		candidate("LH400", "18:00", false),
		candidate("LH402", "14:00", true),
		candidate("LH404", "16:00", true),
		candidate("LH406", "12:00", true),
	}

	got := PositionalTruncation{}.Rank(candidates, "")
	want := []string{"LH400", "LH402", "LH404"}
	for i, number := range want {
		if got[i].FlightNumber != number {
			t.Errorf("rank[%d] = %s, want %s", i, got[i].FlightNumber, number)
		}
	}
}

func TestPositionalTruncation_DoesNotAliasInput(t *testing.T) {
	candidates := []models.FlightRecord{candidate("LH400", "18:00", false)}
	got := PositionalTruncation{}.Rank(candidates, "")

	got[0].FlightNumber = "XX999"
	if candidates[0].FlightNumber != "LH400" {
		t.Error("Rank returned a slice aliasing the input")
	}
}

func TestScheduleAware_ArrivalAscending(t *testing.T) {
	candidates := []models.FlightRecord{
		candidate("LH400", "18:00", true),
		candidate("LH402", "14:00", true),
		candidate("LH404", "16:00", true),
	}

	got := ScheduleAware{}.Rank(candidates, "")
	want := []string{"LH402", "LH404", "LH400"}
	for i, number := range want {
		if got[i].FlightNumber != number {
			t.Errorf("rank[%d] = %s, want %s", i, got[i].FlightNumber, number)
		}
	}
}

func TestScheduleAware_EstimatedArrivalWins(t *testing.T) {
	late := candidate("LH400", "14:00", true)
	late.Arrival.Estimated = "19:00" // delayed past the 15:00 flight

	got := ScheduleAware{}.Rank([]models.FlightRecord{late, candidate("LH402", "15:00", true)}, "")
	if got[0].FlightNumber != "LH402" {
		t.Errorf("rank[0] = %s, want LH402", got[0].FlightNumber)
	}
}

func TestScheduleAware_NonstopBreaksTies(t *testing.T) {
	candidates := []models.FlightRecord{
		candidate("LH400", "16:00", false),
		candidate("LH402", "16:00", true),
	}

	got := ScheduleAware{}.Rank(candidates, "")
	if got[0].FlightNumber != "LH402" {
		t.Errorf("rank[0] = %s, want nonstop LH402", got[0].FlightNumber)
	}
}

func TestScheduleAware_CabinBreaksRemainingTies(t *testing.T) {
	candidates := []models.FlightRecord{
		candidate("LH400", "16:00", true, "economy"),
		candidate("LH402", "16:00", true, "business", "economy"),
	}

	got := ScheduleAware{}.Rank(candidates, "business")
	if got[0].FlightNumber != "LH402" {
		t.Errorf("rank[0] = %s, want LH402 with business cabin", got[0].FlightNumber)
	}

	// Without a preference the order stays stable.
	got = ScheduleAware{}.Rank(candidates, "")
	if got[0].FlightNumber != "LH400" {
		t.Errorf("rank[0] = %s, want stable LH400", got[0].FlightNumber)
	}
}

func TestScheduleAware_CapsAtThree(t *testing.T) {
	var candidates []models.FlightRecord
	for i := 0; i < 6; i++ {
		candidates = append(candidates, candidate("LH400", "16:00", true))
	}
	got := ScheduleAware{}.Rank(candidates, "")
	if len(got) != MaxAlternatives {
		t.Errorf("len = %d, want %d", len(got), MaxAlternatives)
	}
}

func TestForName(t *testing.T) {
	if ForName("schedule-aware").Name() != "schedule-aware" {
		t.Error("schedule-aware not selected")
	}
	if ForName("positional").Name() != "positional" {
		t.Error("positional not selected")
	}
	if ForName("").Name() != "positional" {
		t.Error("default should be positional")
	}
}
