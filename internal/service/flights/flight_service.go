package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/google/uuid"
)

type FlightUseCase interface {
	Create(ctx context.Context, flight *domain.Flight, requesterIsAdmin bool) error
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Create(ctx context.Context, flight *domain.Flight, requesterIsAdmin bool) error {
	if !requesterIsAdmin {
		return fmt.Errorf("%w: only admins can create flights", domain.ErrForbidden)
	}
	if flight.Airline == "" || flight.FlightNumber == "" {
		return fmt.Errorf("%w: airline and flight number are required", domain.ErrInvalidInput)
	}
	if flight.PriceCents <= 0 {
		return fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}

	flight.ID = uuid.New()
	flight.BookedSeats = []string{}
	if err := s.repo.Create(ctx, flight); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return nil
}

// List serves the unfiltered catalog from cache when warm. Filtered
// listings always hit the database.
func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	if filter.IsEmpty() && s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter.IsEmpty() && s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
