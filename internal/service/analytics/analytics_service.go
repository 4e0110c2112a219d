package analytics

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/google/uuid"
)

type TravelReport struct {
	Analytics       domain.TravelAnalytics
	Recommendations []domain.Recommendation
}

type AnalyticsUseCase interface {
	Report(ctx context.Context, userID uuid.UUID) (*TravelReport, error)
}

type AnalyticsService struct {
	bookings booking.BookingUseCase
	flights  flights.FlightUseCase
}

func NewAnalyticsService(bookings booking.BookingUseCase, flights flights.FlightUseCase) *AnalyticsService {
	return &AnalyticsService{bookings: bookings, flights: flights}
}

// Report computes analytics over the user's booking history. The history is
// read without locking; a slightly stale snapshot is acceptable here.
func (s *AnalyticsService) Report(ctx context.Context, userID uuid.UUID) (*TravelReport, error) {
	history, err := s.bookings.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := Compute(history)

	catalog, err := s.flights.List(ctx, domain.FlightFilter{})
	if err != nil {
		return nil, err
	}

	return &TravelReport{
		Analytics:       report,
		Recommendations: Recommend(report, catalog),
	}, nil
}

var _ AnalyticsUseCase = (*AnalyticsService)(nil)
