package domain

import "time"

// TravelAnalytics is derived on demand from a user's booking history and
// never stored. All monetary figures are cents, matching Flight.PriceCents.
type TravelAnalytics struct {
	TotalSpentCents  int64
	TotalFlights     int
	AverageCostCents int64

	FavoriteDestinations []DestinationStats
	PreferredAirlines    []AirlineStats
	MonthlySpending      []MonthlySpending
	TravelFrequency      TravelFrequency
	SeasonalPatterns     []SeasonalPattern
	CostSavings          CostSavings
}

type DestinationStats struct {
	City             string
	Airport          string
	Visits           int
	TotalSpentCents  int64
	AverageCostCents int64
	LastVisit        time.Time
}

type AirlineStats struct {
	Name             string
	Flights          int
	TotalSpentCents  int64
	AverageCostCents int64
	// OnTimePerformance is a simulated external signal, stable per airline.
	OnTimePerformance int
}

type MonthlySpending struct {
	Month       time.Month
	Year        int
	AmountCents int64
	Flights     int
}

type TravelFrequency struct {
	FlightsPerYear   float64
	AverageTripHours float64
	BusyMonths       []time.Month
	QuietMonths      []time.Month
}

type SeasonalPattern struct {
	Season              string
	Flights             int
	AverageCostCents    int64
	PopularDestinations []string
}

// CostSavings is an estimate: the reference price per route is the highest
// price the user has paid on that route, for lack of a pricing-history feed.
type CostSavings struct {
	TotalSavedCents   int64
	AveragePerBooking int64
	BestDeal          *Deal
}

type Deal struct {
	Route      string
	SavedCents int64
	Date       time.Time
}

type RecommendationKind string

const (
	RecommendationDestination RecommendationKind = "destination"
	RecommendationDeal        RecommendationKind = "deal"
	RecommendationTiming      RecommendationKind = "timing"
	RecommendationAirline     RecommendationKind = "airline"
)

type Recommendation struct {
	ID          string
	Kind        RecommendationKind
	Title       string
	Description string
	Route        *Route
	PriceCents   int64
	SavingsCents int64
	// Confidence is 0-100.
	Confidence int
	ValidUntil *time.Time
}

type Route struct {
	Origin      string
	Destination string
}
