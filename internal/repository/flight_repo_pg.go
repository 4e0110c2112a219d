package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, airline, flight_number, departure_time, departure_airport, departure_city, arrival_time, arrival_airport, arrival_city, duration, price_cents, aircraft, booked_seats, created_at, updated_at`

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	err := r.db.QueryRow(ctx, `INSERT INTO flights (id, airline, flight_number, departure_time, departure_airport, departure_city, arrival_time, arrival_airport, arrival_city, duration, price_cents, aircraft, booked_seats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, '{}')
		RETURNING booked_seats, created_at, updated_at`,
		flight.ID, flight.Airline, flight.FlightNumber,
		flight.Departure.Time, flight.Departure.Airport, flight.Departure.City,
		flight.Arrival.Time, flight.Arrival.Airport, flight.Arrival.City,
		flight.Duration, flight.PriceCents, flight.Aircraft).
		Scan(&flight.BookedSeats, &flight.CreatedAt, &flight.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}
	return nil
}

func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights
		WHERE ($1 = '' OR lower(departure_city) = lower($1))
		  AND ($2 = '' OR lower(arrival_city) = lower($2))
		ORDER BY departure_time`, filter.From, filter.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("flight %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &f, nil
}

func scanFlight(row pgx.Row) (domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.Airline, &f.FlightNumber,
		&f.Departure.Time, &f.Departure.Airport, &f.Departure.City,
		&f.Arrival.Time, &f.Arrival.Airport, &f.Arrival.City,
		&f.Duration, &f.PriceCents, &f.Aircraft, &f.BookedSeats,
		&f.CreatedAt, &f.UpdatedAt)
	return f, err
}

var _ FlightRepository = (*PGFlightRepository)(nil)
