package domain

import (
	"time"

	"github.com/google/uuid"
)

// Endpoint is one side of a route: where and when.
type Endpoint struct {
	Time    time.Time
	Airport string
	City    string
}

type Flight struct {
	ID           uuid.UUID
	Airline      string
	FlightNumber string
	Departure    Endpoint
	Arrival      Endpoint
	Duration     string
	PriceCents   int64
	Aircraft     string
	BookedSeats  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FlightFilter narrows a catalog listing by departure and/or arrival city.
// Empty fields match everything. Matching is case-insensitive.
type FlightFilter struct {
	From string
	To   string
}

func (f FlightFilter) IsEmpty() bool {
	return f.From == "" && f.To == ""
}
