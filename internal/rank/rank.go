// Package rank orders alternative-flight candidates for rebooking.
//
// The prototype this replaces documented a multi-factor ranking but
// actually returned the first three candidates in upstream order. Both
// behaviors are kept behind a Strategy so callers (and tests) can pin
// down which one they get.
package rank

import (
	"sort"
	"strings"

	"github.com/travelwing/travelwing/models"
)

// MaxAlternatives caps how many rebooking candidates any strategy returns.
const MaxAlternatives = 3

// Strategy orders rebooking candidates. Implementations must not mutate
// the input slice and never return more than MaxAlternatives records.
type Strategy interface {
	// Rank returns up to MaxAlternatives candidates in preference order.
	Rank(candidates []models.FlightRecord, preferredClass string) []models.FlightRecord
	// Name identifies the strategy in config and logs.
	Name() string
}

// PositionalTruncation returns the first MaxAlternatives candidates in
// whatever order the upstream lookup produced them. This reproduces the
// prototype's observed behavior and is the default.
type PositionalTruncation struct{}

func (PositionalTruncation) Name() string { return "positional" }

func (PositionalTruncation) Rank(candidates []models.FlightRecord, _ string) []models.FlightRecord {
	n := len(candidates)
	if n > MaxAlternatives {
		n = MaxAlternatives
	}
	out := make([]models.FlightRecord, n)
	copy(out, candidates[:n])
	return out
}

// ScheduleAware implements the documented policy the prototype never
// shipped: arrival time ascending, nonstop over connecting on ties, then
// cabin availability for the preferred class.
type ScheduleAware struct{}

func (ScheduleAware) Name() string { return "schedule-aware" }

func (ScheduleAware) Rank(candidates []models.FlightRecord, preferredClass string) []models.FlightRecord {
	ranked := make([]models.FlightRecord, len(candidates))
	copy(ranked, candidates)

	preferred := strings.ToLower(strings.TrimSpace(preferredClass))

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.EffectiveArrival() != b.EffectiveArrival() {
			return a.EffectiveArrival() < b.EffectiveArrival()
		}
		if a.Nonstop != b.Nonstop {
			return a.Nonstop
		}
		return cabinMatch(a, preferred) && !cabinMatch(b, preferred)
	})

	if len(ranked) > MaxAlternatives {
		ranked = ranked[:MaxAlternatives]
	}
	return ranked
}

// cabinMatch reports whether a candidate advertises the preferred cabin.
// Feeds without cabin data count as a match so they are not penalized.
func cabinMatch(f models.FlightRecord, preferred string) bool {
	if preferred == "" || len(f.Cabins) == 0 {
		return true
	}
	for _, cabin := range f.Cabins {
		if strings.EqualFold(cabin, preferred) {
			return true
		}
	}
	return false
}

// ForName maps a config value to a strategy, defaulting to positional
// truncation for unknown names.
func ForName(name string) Strategy {
	if strings.EqualFold(strings.TrimSpace(name), "schedule-aware") {
		return ScheduleAware{}
	}
	return PositionalTruncation{}
}
