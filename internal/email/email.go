package email

import (
	"context"
	"log"
	"strings"

	"github.com/Domenick1991/skybooking/internal/kafka"
)

// Sender is a stand-in for a real mail integration; it only logs what would
// be sent.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("notify user %s: booking %s on flight %s (%s), seats %s",
		event.UserID, event.BookingID, event.FlightID, event.Airline, strings.Join(event.Seats, ", "))
	return nil
}
