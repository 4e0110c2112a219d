package analytics

import (
	"testing"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testBooking(airline, fromCity, toCity, toAirport string, priceCents int64, passengers int, departure time.Time, duration string) domain.Booking {
	seats := make([]string, passengers)
	for i := range seats {
		seats[i] = string(rune('A' + i))
	}
	return domain.Booking{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Seats:  seats,
		Flight: &domain.Flight{
			ID:           uuid.New(),
			Airline:      airline,
			FlightNumber: "XX 100",
			Departure:    domain.Endpoint{Time: departure, Airport: "AAA", City: fromCity},
			Arrival:      domain.Endpoint{Time: departure.Add(3 * time.Hour), Airport: toAirport, City: toCity},
			Duration:     duration,
			PriceCents:   priceCents,
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestCompute_TotalSpentIsDeterministic(t *testing.T) {
	bookings := []domain.Booking{
		testBooking("American Airlines", "New York", "Los Angeles", "LAX", 29900, 1, date(2024, time.January, 15), "5h 30m"),
		testBooking("Delta Airlines", "Los Angeles", "Chicago", "ORD", 25900, 2, date(2024, time.January, 22), "4h 15m"),
		testBooking("United Airlines", "Chicago", "Miami", "MIA", 18900, 1, date(2024, time.February, 10), "3h 45m"),
	}

	report := Compute(bookings)

	// 299 + 259*2 + 189 = 1006 dollars.
	assert.Equal(t, int64(100600), report.TotalSpentCents)
	assert.Equal(t, 3, report.TotalFlights)
	assert.Equal(t, int64(100600/3), report.AverageCostCents)

	again := Compute(bookings)
	assert.Equal(t, report, again)
}

func TestCompute_EmptyHistory(t *testing.T) {
	assert.NotPanics(t, func() {
		report := Compute(nil)
		assert.Equal(t, int64(0), report.TotalSpentCents)
		assert.Equal(t, 0, report.TotalFlights)
		assert.Equal(t, int64(0), report.AverageCostCents)
		assert.Empty(t, report.FavoriteDestinations)
		assert.Empty(t, report.PreferredAirlines)
		assert.Empty(t, report.MonthlySpending)
	})

	assert.NotPanics(t, func() {
		Compute([]domain.Booking{})
	})
}

func TestCompute_SkipsUnresolvedFlights(t *testing.T) {
	bookings := []domain.Booking{
		{ID: uuid.New(), Seats: []string{"1A"}},
		testBooking("Aurora Air", "Moscow", "Sochi", "AER", 10000, 1, date(2024, time.July, 1), "2h"),
	}

	report := Compute(bookings)

	assert.Equal(t, 1, report.TotalFlights)
	assert.Equal(t, int64(10000), report.TotalSpentCents)
}

func TestCompute_DestinationRanking(t *testing.T) {
	bookings := []domain.Booking{
		testBooking("A", "X", "Los Angeles", "LAX", 29900, 1, date(2024, time.January, 15), "5h"),
		testBooking("A", "X", "Los Angeles", "LAX", 25900, 1, date(2024, time.March, 2), "5h"),
		// Same visit count as Miami but higher spend: Chicago ranks above.
		testBooking("A", "X", "Chicago", "ORD", 40000, 1, date(2024, time.February, 10), "4h"),
		testBooking("A", "X", "Miami", "MIA", 18900, 1, date(2024, time.February, 20), "3h"),
	}

	report := Compute(bookings)

	assert.Len(t, report.FavoriteDestinations, 3)
	assert.Equal(t, "Los Angeles", report.FavoriteDestinations[0].City)
	assert.Equal(t, 2, report.FavoriteDestinations[0].Visits)
	assert.Equal(t, int64(55800), report.FavoriteDestinations[0].TotalSpentCents)
	assert.Equal(t, int64(27900), report.FavoriteDestinations[0].AverageCostCents)
	assert.Equal(t, date(2024, time.March, 2), report.FavoriteDestinations[0].LastVisit)

	assert.Equal(t, "Chicago", report.FavoriteDestinations[1].City)
	assert.Equal(t, "Miami", report.FavoriteDestinations[2].City)
}

func TestCompute_PreferredAirlines(t *testing.T) {
	bookings := []domain.Booking{
		testBooking("American Airlines", "X", "Y", "YYY", 29900, 1, date(2024, time.January, 15), "5h"),
		testBooking("American Airlines", "X", "Y", "YYY", 17900, 2, date(2024, time.May, 20), "2h 30m"),
		testBooking("Delta Airlines", "X", "Y", "YYY", 25900, 1, date(2024, time.January, 22), "4h"),
	}

	report := Compute(bookings)

	assert.Len(t, report.PreferredAirlines, 2)
	top := report.PreferredAirlines[0]
	assert.Equal(t, "American Airlines", top.Name)
	assert.Equal(t, 2, top.Flights)
	assert.Equal(t, int64(29900+2*17900), top.TotalSpentCents)
	assert.GreaterOrEqual(t, top.OnTimePerformance, 75)
	assert.LessOrEqual(t, top.OnTimePerformance, 95)
}

func TestOnTimePerformance_StableAndBounded(t *testing.T) {
	for _, name := range []string{"American Airlines", "Delta Airlines", "Aurora Air", ""} {
		got := OnTimePerformance(name)
		assert.Equal(t, got, OnTimePerformance(name))
		assert.GreaterOrEqual(t, got, 75)
		assert.LessOrEqual(t, got, 95)
	}
}

func TestCompute_MonthlySpending(t *testing.T) {
	bookings := []domain.Booking{
		testBooking("A", "X", "Y", "YYY", 29900, 1, date(2024, time.January, 15), "5h"),
		testBooking("A", "X", "Y", "YYY", 25900, 1, date(2024, time.January, 22), "4h"),
		testBooking("A", "X", "Y", "YYY", 18900, 1, date(2024, time.February, 10), "3h"),
		testBooking("A", "X", "Y", "YYY", 10000, 1, date(2023, time.December, 30), "1h"),
	}

	report := Compute(bookings)

	assert.Equal(t, []domain.MonthlySpending{
		{Month: time.December, Year: 2023, AmountCents: 10000, Flights: 1},
		{Month: time.January, Year: 2024, AmountCents: 55800, Flights: 2},
		{Month: time.February, Year: 2024, AmountCents: 18900, Flights: 1},
	}, report.MonthlySpending)
}

func TestCompute_TravelFrequency(t *testing.T) {
	bookings := []domain.Booking{
		testBooking("A", "X", "Y", "YYY", 10000, 1, date(2024, time.January, 1), "2h"),
		testBooking("A", "X", "Y", "YYY", 10000, 1, date(2024, time.January, 20), "4h"),
		testBooking("A", "X", "Y", "YYY", 10000, 1, date(2024, time.July, 1), "6h"),
	}

	report := Compute(bookings)

	freq := report.TravelFrequency
	assert.InDelta(t, 4.0, freq.AverageTripHours, 0.01)
	assert.Greater(t, freq.FlightsPerYear, 0.0)
	assert.NotEmpty(t, freq.BusyMonths)
	assert.Equal(t, time.January, freq.BusyMonths[0])
}

func TestCompute_TravelFrequency_SingleDay(t *testing.T) {
	bookings := []domain.Booking{
		testBooking("A", "X", "Y", "YYY", 10000, 1, date(2024, time.June, 1), "2h"),
	}

	report := Compute(bookings)

	assert.Equal(t, 1.0, report.TravelFrequency.FlightsPerYear)
}

func TestCompute_SeasonalPatterns(t *testing.T) {
	bookings := []domain.Booking{
		testBooking("A", "X", "Los Angeles", "LAX", 20000, 1, date(2024, time.January, 15), "5h"),
		testBooking("A", "X", "Miami", "MIA", 30000, 1, date(2024, time.December, 20), "3h"),
		testBooking("A", "X", "Boston", "BOS", 25000, 1, date(2024, time.April, 2), "2h"),
	}

	report := Compute(bookings)

	assert.Len(t, report.SeasonalPatterns, 2)
	winter := report.SeasonalPatterns[0]
	assert.Equal(t, "Winter", winter.Season)
	assert.Equal(t, 2, winter.Flights)
	assert.Equal(t, int64(25000), winter.AverageCostCents)

	spring := report.SeasonalPatterns[1]
	assert.Equal(t, "Spring", spring.Season)
	assert.Equal(t, []string{"Boston"}, spring.PopularDestinations)
}

func TestCompute_CostSavings(t *testing.T) {
	bookings := []domain.Booking{
		// Same route, different prices: the cheaper one "saved" against the
		// dearer reference.
		testBooking("A", "Boston", "San Francisco", "SFO", 40000, 1, date(2024, time.March, 1), "6h"),
		testBooking("A", "Boston", "San Francisco", "SFO", 28000, 1, date(2024, time.April, 12), "6h"),
		testBooking("A", "Miami", "Boston", "BOS", 22900, 1, date(2024, time.March, 5), "3h"),
	}

	report := Compute(bookings)

	savings := report.CostSavings
	assert.Equal(t, int64(12000), savings.TotalSavedCents)
	assert.Equal(t, int64(4000), savings.AveragePerBooking)
	if assert.NotNil(t, savings.BestDeal) {
		assert.Equal(t, "Boston → San Francisco", savings.BestDeal.Route)
		assert.Equal(t, int64(12000), savings.BestDeal.SavedCents)
		assert.Equal(t, date(2024, time.April, 12), savings.BestDeal.Date)
	}
}

func TestCompute_CostSavings_NoVariedPrices(t *testing.T) {
	bookings := []domain.Booking{
		testBooking("A", "X", "Y", "YYY", 10000, 1, date(2024, time.March, 1), "2h"),
	}

	report := Compute(bookings)

	assert.Equal(t, int64(0), report.CostSavings.TotalSavedCents)
	assert.Nil(t, report.CostSavings.BestDeal)
}
