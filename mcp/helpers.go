package mcp

// Shared helpers for MCP tools (input validation, upstream error mapping)

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/travelwing/travelwing/types"
)

// defaultDate fills a missing date argument with today (UTC).
func defaultDate(date string) string {
	if strings.TrimSpace(date) != "" {
		return strings.TrimSpace(date)
	}
	return time.Now().UTC().Format("2006-01-02")
}

// validDate checks YYYY-MM-DD format.
func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// requireField returns a structured error for a missing required field.
func requireField(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return types.NewMCPError("MISSING_"+strings.ToUpper(field), fmt.Sprintf("%s is required", field), map[string]interface{}{
			"field": field,
		})
	}
	return nil
}

// requiredField pairs a wire field name with its value for ordered
// validation.
type requiredField struct {
	name  string
	value string
}

// requireAll checks fields in declaration order, so with several
// fields missing the reported MISSING_* code is always the first one.
func requireAll(fields []requiredField) error {
	for _, f := range fields {
		if err := requireField(f.value, f.name); err != nil {
			return err
		}
	}
	return nil
}

// wrapFlightError maps flight client failures to structured tool errors
// so the caller sees a stable code instead of transport noise.
func wrapFlightError(err error, details map[string]interface{}) error {
	if errors.Is(err, types.ErrNoFlightData) {
		return types.NewMCPError("NO_FLIGHT_DATA", "No flight data found for the given query", details)
	}
	var unavailable *types.UpstreamUnavailableError
	if errors.As(err, &unavailable) {
		d := map[string]interface{}{"endpoint": unavailable.Endpoint}
		for k, v := range details {
			d[k] = v
		}
		return types.NewMCPError("UPSTREAM_UNAVAILABLE", "Flight data provider is unavailable", d)
	}
	return types.NewMCPError("FLIGHT_LOOKUP_FAILED", err.Error(), details)
}

// wrapDraftError maps drafter failures to structured tool errors.
func wrapDraftError(err error) error {
	var invalid *types.InvalidInputError
	if errors.As(err, &invalid) {
		return types.NewMCPError("INVALID_INPUT", invalid.Error(), map[string]interface{}{
			"field": invalid.Field,
		})
	}
	return types.NewMCPError("DRAFT_FAILED", err.Error(), nil)
}

// wrapTimeError maps clock parse failures to structured tool errors.
func wrapTimeError(err error) error {
	var malformed *types.MalformedTimeError
	if errors.As(err, &malformed) {
		return types.NewMCPError("MALFORMED_TIME", malformed.Error(), map[string]interface{}{
			"value": malformed.Value,
		})
	}
	return types.NewMCPError("CONFLICT_ANALYSIS_FAILED", err.Error(), nil)
}
