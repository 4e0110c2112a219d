package analytics

import (
	"fmt"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// Recommend produces a finite, ranked list of suggestions from a computed
// report and the current catalog. Every item carries a kind and a 0-100
// confidence; the heuristics themselves are presentation-level and make no
// correctness promises.
func Recommend(report domain.TravelAnalytics, catalog []domain.Flight) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, 4)
	add := func(r domain.Recommendation) {
		r.ID = fmt.Sprintf("rec-%d", len(recs)+1)
		recs = append(recs, r)
	}

	visited := make(map[string]*domain.DestinationStats, len(report.FavoriteDestinations))
	for i := range report.FavoriteDestinations {
		d := &report.FavoriteDestinations[i]
		visited[d.City] = d
	}

	// Somewhere new, reachable through the current catalog.
	for _, f := range catalog {
		if _, ok := visited[f.Arrival.City]; ok {
			continue
		}
		add(domain.Recommendation{
			Kind:        domain.RecommendationDestination,
			Title:       fmt.Sprintf("Explore %s", f.Arrival.City),
			Description: fmt.Sprintf("%s flies %s to %s; you haven't been yet.", f.Airline, f.Departure.City, f.Arrival.City),
			Route:       &domain.Route{Origin: f.Departure.City, Destination: f.Arrival.City},
			PriceCents:  f.PriceCents,
			Confidence:  90,
		})
		break
	}

	// A catalog flight to a place the user already likes, cheaper than
	// what they usually pay for it.
	var deal *domain.Flight
	var dealSavings int64
	for i := range catalog {
		f := &catalog[i]
		stats, ok := visited[f.Arrival.City]
		if !ok {
			continue
		}
		saved := stats.AverageCostCents - f.PriceCents
		if saved > dealSavings {
			deal = f
			dealSavings = saved
		}
	}
	if deal != nil {
		validUntil := deal.Departure.Time
		add(domain.Recommendation{
			Kind:         domain.RecommendationDeal,
			Title:        fmt.Sprintf("Deal: %s to %s", deal.Departure.City, deal.Arrival.City),
			Description:  fmt.Sprintf("Below your usual spend on this destination with %s.", deal.Airline),
			Route:        &domain.Route{Origin: deal.Departure.City, Destination: deal.Arrival.City},
			PriceCents:   deal.PriceCents,
			SavingsCents: dealSavings,
			Confidence:   85,
			ValidUntil:   &validUntil,
		})
	}

	if len(report.TravelFrequency.BusyMonths) > 0 {
		month := report.TravelFrequency.BusyMonths[0]
		add(domain.Recommendation{
			Kind:        domain.RecommendationTiming,
			Title:       fmt.Sprintf("Book %s travel early", month),
			Description: fmt.Sprintf("%s is your busiest travel month; fares on your routes rise closer to departure.", month),
			Confidence:  80,
		})
	}

	if len(report.PreferredAirlines) > 0 {
		top := report.PreferredAirlines[0]
		for _, f := range catalog {
			if f.Airline == top.Name {
				continue
			}
			if OnTimePerformance(f.Airline) > top.OnTimePerformance {
				add(domain.Recommendation{
					Kind:        domain.RecommendationAirline,
					Title:       fmt.Sprintf("Try %s", f.Airline),
					Description: fmt.Sprintf("Flies routes like yours with better on-time performance than %s.", top.Name),
					Confidence:  75,
				})
				break
			}
		}
	}

	return recs
}
