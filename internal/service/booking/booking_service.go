package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
}

type Cache interface {
	AcquireSeatHolds(ctx context.Context, flightID uuid.UUID, seats []string, ttl time.Duration) (bool, error)
	ReleaseSeatHolds(ctx context.Context, flightID uuid.UUID, seats []string) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	holdTTL            time.Duration
}

type BookingServiceOption func(*BookingService)

// WithNotificationsTopic mirrors every booking event onto a second topic
// consumed by the notifications worker.
func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

type ReserveInput struct {
	UserID   uuid.UUID
	FlightID uuid.UUID
	Seats    []string
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	holdTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		holdTTL:      holdTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Reserve books the requested seats on a flight and creates the booking
// record in the same transaction. The whole request is rejected when any
// seat is already taken; there is no partial reservation, and replaying a
// committed request conflicts on its own seats.
func (s *BookingService) Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error) {
	if len(input.Seats) == 0 {
		return nil, fmt.Errorf("%w: at least one seat is required", domain.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(input.Seats))
	for _, seat := range input.Seats {
		if seat == "" {
			return nil, fmt.Errorf("%w: empty seat identifier", domain.ErrInvalidInput)
		}
		if seen[seat] {
			return nil, fmt.Errorf("%w: seat %s requested twice", domain.ErrInvalidInput, seat)
		}
		seen[seat] = true
	}

	// Best-effort hold while the transaction runs. The row-locked
	// transaction below is what actually guarantees exclusivity.
	held := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSeatHolds(ctx, input.FlightID, input.Seats, s.holdTTL)
		if err != nil {
			log.Printf("seat hold unavailable, falling back to database check: %v", err)
		} else if !ok {
			return nil, fmt.Errorf("%w: held by another reservation", domain.ErrSeatConflict)
		} else {
			held = true
		}
	}

	booking := &domain.Booking{
		ID:       uuid.New(),
		UserID:   input.UserID,
		FlightID: input.FlightID,
		Seats:    input.Seats,
	}

	if err := s.bookings.ReserveSeats(ctx, booking); err != nil {
		if held {
			_ = s.cache.ReleaseSeatHolds(ctx, input.FlightID, input.Seats)
		}
		return nil, err
	}

	if held {
		_ = s.cache.ReleaseSeatHolds(ctx, input.FlightID, input.Seats)
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created for booking %s: %v", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID.String(),
		UserID:    booking.UserID.String(),
		FlightID:  booking.FlightID.String(),
		Seats:     booking.Seats,
		CreatedAt: booking.CreatedAt,
	}
	if booking.Flight != nil {
		event.Airline = booking.Flight.Airline
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID.String(), event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID.String(), event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
