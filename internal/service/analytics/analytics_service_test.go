package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Reserve(ctx context.Context, input booking.ReserveInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Create(ctx context.Context, flight *domain.Flight, requesterIsAdmin bool) error {
	args := m.Called(ctx, flight, requesterIsAdmin)
	return args.Error(0)
}

func (m *MockFlightUseCase) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestAnalyticsService_Report(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	mockFlights := &MockFlightUseCase{}
	service := NewAnalyticsService(mockBookings, mockFlights)

	ctx := context.Background()
	userID := uuid.New()
	history := []domain.Booking{
		testBooking("Aurora Air", "Moscow", "Sochi", "AER", 30000, 1, date(2024, time.July, 1), "2h"),
	}
	catalog := []domain.Flight{
		catalogFlight("Aurora Air", "Moscow", "Kazan", 15000, date(2024, time.September, 1)),
	}

	mockBookings.On("ListForUser", ctx, userID).Return(history, nil).Once()
	mockFlights.On("List", ctx, domain.FlightFilter{}).Return(catalog, nil).Once()

	report, err := service.Report(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Analytics.TotalFlights)
	assert.Equal(t, int64(30000), report.Analytics.TotalSpentCents)
	assert.NotEmpty(t, report.Recommendations)
	mockBookings.AssertExpectations(t)
	mockFlights.AssertExpectations(t)
}

func TestAnalyticsService_Report_EmptyHistory(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	mockFlights := &MockFlightUseCase{}
	service := NewAnalyticsService(mockBookings, mockFlights)

	ctx := context.Background()
	userID := uuid.New()

	mockBookings.On("ListForUser", ctx, userID).Return([]domain.Booking{}, nil).Once()
	mockFlights.On("List", ctx, domain.FlightFilter{}).Return([]domain.Flight{}, nil).Once()

	report, err := service.Report(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, 0, report.Analytics.TotalFlights)
	assert.Empty(t, report.Recommendations)
}

func TestAnalyticsService_Report_HistoryError(t *testing.T) {
	mockBookings := &MockBookingUseCase{}
	mockFlights := &MockFlightUseCase{}
	service := NewAnalyticsService(mockBookings, mockFlights)

	ctx := context.Background()
	userID := uuid.New()

	mockBookings.On("ListForUser", ctx, userID).Return(nil, errors.New("db down")).Once()

	report, err := service.Report(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, report)
	mockFlights.AssertNotCalled(t, "List")
}
