package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking links one user, one flight and the seats reserved in a single
// transaction. Seats are immutable after creation; only Paid may change,
// and that belongs to the payment collaborator, not this service.
type Booking struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FlightID  uuid.UUID
	Seats     []string
	Paid      bool
	CreatedAt time.Time

	// Flight is set on reads that resolve the referenced flight.
	Flight *Flight
}

// Passengers is the number of travellers on the booking, one per seat.
func (b Booking) Passengers() int {
	return len(b.Seats)
}
