package analytics

import (
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// Compute derives travel statistics from a booking history. It is a pure
// function: the same bookings always yield the same report, and an empty
// history yields a zero-value report rather than an error. Bookings without
// a resolved flight are skipped since they cannot be priced or routed.
func Compute(bookings []domain.Booking) domain.TravelAnalytics {
	var report domain.TravelAnalytics

	resolved := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Flight != nil {
			resolved = append(resolved, b)
		}
	}
	if len(resolved) == 0 {
		return report
	}

	report.TotalFlights = len(resolved)
	for _, b := range resolved {
		report.TotalSpentCents += b.Flight.PriceCents * int64(b.Passengers())
	}
	report.AverageCostCents = report.TotalSpentCents / int64(report.TotalFlights)

	report.FavoriteDestinations = destinationStats(resolved)
	report.PreferredAirlines = airlineStats(resolved)
	report.MonthlySpending = monthlySpending(resolved)
	report.TravelFrequency = travelFrequency(resolved)
	report.SeasonalPatterns = seasonalPatterns(resolved)
	report.CostSavings = costSavings(resolved)

	return report
}

func destinationStats(bookings []domain.Booking) []domain.DestinationStats {
	byCity := make(map[string]*domain.DestinationStats)
	for _, b := range bookings {
		city := b.Flight.Arrival.City
		stats, ok := byCity[city]
		if !ok {
			stats = &domain.DestinationStats{City: city, Airport: b.Flight.Arrival.Airport}
			byCity[city] = stats
		}
		stats.Visits++
		stats.TotalSpentCents += b.Flight.PriceCents * int64(b.Passengers())
		if b.Flight.Departure.Time.After(stats.LastVisit) {
			stats.LastVisit = b.Flight.Departure.Time
		}
	}

	out := make([]domain.DestinationStats, 0, len(byCity))
	for _, stats := range byCity {
		stats.AverageCostCents = stats.TotalSpentCents / int64(stats.Visits)
		out = append(out, *stats)
	}
	// Most visited first, ties broken by higher total spend.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Visits != out[j].Visits {
			return out[i].Visits > out[j].Visits
		}
		if out[i].TotalSpentCents != out[j].TotalSpentCents {
			return out[i].TotalSpentCents > out[j].TotalSpentCents
		}
		return out[i].City < out[j].City
	})
	return out
}

func airlineStats(bookings []domain.Booking) []domain.AirlineStats {
	byName := make(map[string]*domain.AirlineStats)
	for _, b := range bookings {
		name := b.Flight.Airline
		stats, ok := byName[name]
		if !ok {
			stats = &domain.AirlineStats{Name: name, OnTimePerformance: OnTimePerformance(name)}
			byName[name] = stats
		}
		stats.Flights++
		stats.TotalSpentCents += b.Flight.PriceCents * int64(b.Passengers())
	}

	out := make([]domain.AirlineStats, 0, len(byName))
	for _, stats := range byName {
		stats.AverageCostCents = stats.TotalSpentCents / int64(stats.Flights)
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Flights != out[j].Flights {
			return out[i].Flights > out[j].Flights
		}
		if out[i].TotalSpentCents != out[j].TotalSpentCents {
			return out[i].TotalSpentCents > out[j].TotalSpentCents
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// OnTimePerformance simulates an external punctuality feed. The figure is a
// stable 75-95 derived from the airline name.
func OnTimePerformance(airline string) int {
	h := fnv.New32a()
	h.Write([]byte(airline))
	return 75 + int(h.Sum32()%21)
}

type yearMonth struct {
	year  int
	month time.Month
}

func monthlySpending(bookings []domain.Booking) []domain.MonthlySpending {
	buckets := make(map[yearMonth]*domain.MonthlySpending)
	for _, b := range bookings {
		t := b.Flight.Departure.Time
		key := yearMonth{t.Year(), t.Month()}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MonthlySpending{Month: key.month, Year: key.year}
			buckets[key] = bucket
		}
		bucket.Flights++
		bucket.AmountCents += b.Flight.PriceCents * int64(b.Passengers())
	}

	out := make([]domain.MonthlySpending, 0, len(buckets))
	for _, bucket := range buckets {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

func travelFrequency(bookings []domain.Booking) domain.TravelFrequency {
	freq := domain.TravelFrequency{}

	first := bookings[0].Flight.Departure.Time
	last := first
	counts := make(map[time.Month]int)
	var tripHours float64
	var parsed int
	for _, b := range bookings {
		t := b.Flight.Departure.Time
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
		counts[t.Month()]++

		if d, err := time.ParseDuration(strings.ReplaceAll(b.Flight.Duration, " ", "")); err == nil {
			tripHours += d.Hours()
			parsed++
		}
	}

	span := last.Sub(first)
	if span < 24*time.Hour {
		freq.FlightsPerYear = float64(len(bookings))
	} else {
		freq.FlightsPerYear = float64(len(bookings)) / (span.Hours() / (24 * 365.25))
	}
	if parsed > 0 {
		freq.AverageTripHours = tripHours / float64(parsed)
	}

	months := make([]time.Month, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		if counts[months[i]] != counts[months[j]] {
			return counts[months[i]] > counts[months[j]]
		}
		return months[i] < months[j]
	})

	n := len(months)
	busy := n
	if busy > 3 {
		busy = 3
	}
	freq.BusyMonths = months[:busy]
	if n > busy {
		quiet := make([]time.Month, 0, 3)
		for i := n - 1; i >= busy && len(quiet) < 3; i-- {
			quiet = append(quiet, months[i])
		}
		freq.QuietMonths = quiet
	}
	return freq
}

func seasonName(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	default:
		return "Autumn"
	}
}

func seasonalPatterns(bookings []domain.Booking) []domain.SeasonalPattern {
	type seasonAgg struct {
		flights int
		spent   int64
		cities  map[string]int
	}
	bySeason := make(map[string]*seasonAgg)
	for _, b := range bookings {
		season := seasonName(b.Flight.Departure.Time.Month())
		agg, ok := bySeason[season]
		if !ok {
			agg = &seasonAgg{cities: make(map[string]int)}
			bySeason[season] = agg
		}
		agg.flights++
		agg.spent += b.Flight.PriceCents * int64(b.Passengers())
		agg.cities[b.Flight.Arrival.City]++
	}

	out := make([]domain.SeasonalPattern, 0, len(bySeason))
	for _, season := range []string{"Winter", "Spring", "Summer", "Autumn"} {
		agg, ok := bySeason[season]
		if !ok {
			continue
		}
		cities := make([]string, 0, len(agg.cities))
		for city := range agg.cities {
			cities = append(cities, city)
		}
		sort.Slice(cities, func(i, j int) bool {
			if agg.cities[cities[i]] != agg.cities[cities[j]] {
				return agg.cities[cities[i]] > agg.cities[cities[j]]
			}
			return cities[i] < cities[j]
		})
		if len(cities) > 3 {
			cities = cities[:3]
		}
		out = append(out, domain.SeasonalPattern{
			Season:              season,
			Flights:             agg.flights,
			AverageCostCents:    agg.spent / int64(agg.flights),
			PopularDestinations: cities,
		})
	}
	return out
}

// costSavings estimates what the user saved against a reference price per
// route. Absent a pricing-history feed, the reference is the highest price
// the user has paid on that route.
func costSavings(bookings []domain.Booking) domain.CostSavings {
	route := func(f *domain.Flight) string {
		return f.Departure.City + " → " + f.Arrival.City
	}

	reference := make(map[string]int64)
	for _, b := range bookings {
		r := route(b.Flight)
		if b.Flight.PriceCents > reference[r] {
			reference[r] = b.Flight.PriceCents
		}
	}

	savings := domain.CostSavings{}
	for _, b := range bookings {
		r := route(b.Flight)
		saved := (reference[r] - b.Flight.PriceCents) * int64(b.Passengers())
		if saved <= 0 {
			continue
		}
		savings.TotalSavedCents += saved
		if savings.BestDeal == nil || saved > savings.BestDeal.SavedCents {
			savings.BestDeal = &domain.Deal{
				Route:      r,
				SavedCents: saved,
				Date:       b.Flight.Departure.Time,
			}
		}
	}
	savings.AveragePerBooking = savings.TotalSavedCents / int64(len(bookings))
	return savings
}
