// Package conflict classifies calendar events against a new flight
// arrival time. Classification is a pure function of its inputs: the
// same (arrival time, date, event set) triple always produces the same
// report, and input events are never mutated.
package conflict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/types"
)

// GroundTransferBufferHours is the fixed time assumed needed to get from
// the arrival gate to a meeting location.
const GroundTransferBufferHours = 1

// atRisk applies the published classification rule. The rule compares
// hour components only; arrivals at 15:05 and 15:55 classify identically.
// Switching to minute granularity later means changing this predicate
// and nothing else.
func atRisk(arrivalHour, startHour int) bool {
	return arrivalHour+GroundTransferBufferHours > startHour
}

// ParseClock parses an HH:MM 24-hour wall-clock string. Malformed input
// fails with *types.MalformedTimeError; it is never truncated.
func ParseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, &types.MalformedTimeError{Value: value}
	}
	hour, herr := strconv.Atoi(parts[0])
	minute, merr := strconv.Atoi(parts[1])
	if herr != nil || merr != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, &types.MalformedTimeError{Value: value}
	}
	return hour, minute, nil
}

// Classify partitions events into at-risk and on-track relative to the
// given arrival time. Partitions preserve the relative order of the
// input events.
func Classify(arrivalTime string, events []models.CalendarEvent) (models.ConflictReport, error) {
	arrivalHour, arrivalMin, err := ParseClock(arrivalTime)
	if err != nil {
		return models.ConflictReport{}, err
	}

	report := models.ConflictReport{
		ArrivalTime:   arrivalTime,
		AvailableFrom: fmt.Sprintf("%02d:%02d", arrivalHour+GroundTransferBufferHours, arrivalMin),
		AtRisk:        []models.ClassifiedEvent{},
		OnTrack:       []models.ClassifiedEvent{},
	}

	for _, event := range events {
		startHour, _, err := ParseClock(event.Start)
		if err != nil {
			return models.ConflictReport{}, err
		}

		if atRisk(arrivalHour, startHour) {
			report.AtRisk = append(report.AtRisk, models.ClassifiedEvent{
				CalendarEvent:  event,
				ConflictStatus: models.ConflictAtRisk,
				Reason:         fmt.Sprintf("Arrives at %s, meeting at %s", arrivalTime, event.Start),
			})
		} else {
			report.OnTrack = append(report.OnTrack, models.ClassifiedEvent{
				CalendarEvent:  event,
				ConflictStatus: models.ConflictOnTrack,
			})
		}
	}

	report.Summary = fmt.Sprintf("%d meeting(s) at risk, %d on track", len(report.AtRisk), len(report.OnTrack))
	return report, nil
}
