package types

import (
	"errors"
	"fmt"
)

// MCPError provides structured error information for MCP responses
type MCPError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewMCPError creates a new structured MCP error
func NewMCPError(code string, message string, details map[string]interface{}) *MCPError {
	return &MCPError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// MalformedTimeError reports a time string that does not parse as HH:MM.
// The conflict analyzer fails loudly on these instead of truncating.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: expected HH:MM (24-hour)", e.Value)
}

// InvalidInputError reports a tool input that fails a precondition not
// expressible as a missing-field check (e.g. an empty list where at
// least one element is required).
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// UpstreamUnavailableError wraps a transport-level failure against the
// flight-data API after retries are exhausted. Callers decide whether to
// retry the whole tool call.
type UpstreamUnavailableError struct {
	Endpoint string
	Err      error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("flight API unavailable (%s): %v", e.Endpoint, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// ErrNoFlightData signals that the upstream answered but carried no data
// for the requested flight or route. Tool handlers translate this into an
// explicit error payload rather than a protocol failure.
var ErrNoFlightData = errors.New("no flight data found")
