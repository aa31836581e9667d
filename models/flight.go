package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FlightStatus represents the operational status of a flight.
type FlightStatus string

const (
	StatusScheduled FlightStatus = "scheduled"
	StatusActive    FlightStatus = "active"
	StatusLanded    FlightStatus = "landed"
	StatusCancelled FlightStatus = "cancelled"
	StatusDiverted  FlightStatus = "diverted"
	StatusDelayed   FlightStatus = "delayed"
)

// FlightLeg describes one endpoint of a flight (departure or arrival).
type FlightLeg struct {
	Airport   string `json:"airport" validate:"required,len=3,uppercase"`
	Terminal  string `json:"terminal,omitempty"`
	Gate      string `json:"gate,omitempty"`
	Scheduled string `json:"scheduled" validate:"required"`
	Estimated string `json:"estimated,omitempty"`
}

// FlightRecord is an immutable snapshot of a flight as reported by the
// upstream API. It is fetched per query and never persisted.
type FlightRecord struct {
	FlightNumber string       `json:"flightNumber" validate:"required,min=3,max=7"`
	Carrier      string       `json:"carrier" validate:"required,len=2"`
	Status       FlightStatus `json:"status" validate:"required,oneof=scheduled active landed cancelled diverted delayed"`
	Departure    FlightLeg    `json:"departure" validate:"required"`
	Arrival      FlightLeg    `json:"arrival" validate:"required"`
	DelayMinutes int          `json:"delayMinutes" validate:"min=0"`
	Aircraft     string       `json:"aircraft,omitempty"`
	Nonstop      bool         `json:"nonstop"`
	// Cabins lists cabin classes with reported availability, lowercase
	// (e.g. "business", "economy"). Empty means the feed had no cabin data.
	Cabins []string `json:"cabins,omitempty"`
}

// EffectiveArrival returns the estimated arrival time when the upstream
// reported one, otherwise the scheduled time.
func (f FlightRecord) EffectiveArrival() string {
	if f.Arrival.Estimated != "" {
		return f.Arrival.Estimated
	}
	return f.Arrival.Scheduled
}

// Disrupted reports whether the flight needs any traveler action.
func (f FlightRecord) Disrupted() bool {
	switch f.Status {
	case StatusCancelled, StatusDiverted, StatusDelayed:
		return true
	}
	return f.DelayMinutes > 0
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
