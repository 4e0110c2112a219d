package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// ReserveSeats appends booking.Seats to the flight's committed seat set
	// and inserts the booking record as a single transaction. It fails with
	// domain.ErrNotFound when the flight does not exist and with
	// domain.ErrSeatConflict when any requested seat is already taken; in
	// both cases nothing is committed.
	ReserveSeats(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) ReserveSeats(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// The row lock serializes the read-check-write per flight. Reservations
	// on different flights do not contend.
	var booked []string
	err = tx.QueryRow(ctx, `SELECT booked_seats FROM flights WHERE id=$1 FOR UPDATE`, booking.FlightID).Scan(&booked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("flight %s: %w", booking.FlightID, domain.ErrNotFound)
		}
		return err
	}

	taken := make(map[string]bool, len(booked))
	for _, seat := range booked {
		taken[seat] = true
	}
	var conflicts []string
	for _, seat := range booking.Seats {
		if taken[seat] {
			conflicts = append(conflicts, seat)
		}
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrSeatConflict, strings.Join(conflicts, ", "))
	}

	if _, err := tx.Exec(ctx, `UPDATE flights SET booked_seats = booked_seats || $2, updated_at = now() WHERE id=$1`, booking.FlightID, booking.Seats); err != nil {
		return err
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (id, user_id, flight_id, seats, paid)
		VALUES ($1, $2, $3, $4, false)
		RETURNING created_at`, booking.ID, booking.UserID, booking.FlightID, booking.Seats).
		Scan(&booking.CreatedAt); err != nil {
		return err
	}
	booking.Paid = false

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.user_id, b.flight_id, b.seats, b.paid, b.created_at,
			f.id, f.airline, f.flight_number, f.departure_time, f.departure_airport, f.departure_city,
			f.arrival_time, f.arrival_airport, f.arrival_city, f.duration, f.price_cents, f.aircraft,
			f.booked_seats, f.created_at, f.updated_at
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE b.user_id=$1
		ORDER BY b.created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		var f domain.Flight
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.Seats, &b.Paid, &b.CreatedAt,
			&f.ID, &f.Airline, &f.FlightNumber, &f.Departure.Time, &f.Departure.Airport, &f.Departure.City,
			&f.Arrival.Time, &f.Arrival.Airport, &f.Arrival.City, &f.Duration, &f.PriceCents, &f.Aircraft,
			&f.BookedSeats, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		b.Flight = &f
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
