package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/skybooking/internal/service/analytics"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service analytics.AnalyticsUseCase
}

func NewAnalyticsHandler(service analytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.report)
}

type analyticsResponse struct {
	Analytics       travelAnalyticsPayload  `json:"analytics"`
	Recommendations []recommendationPayload `json:"recommendations"`
}

type travelAnalyticsPayload struct {
	TotalSpentCents      int64                    `json:"totalSpentCents"`
	TotalFlights         int                      `json:"totalFlights"`
	AverageCostCents     int64                    `json:"averageCostCents"`
	FavoriteDestinations []destinationPayload     `json:"favoriteDestinations"`
	PreferredAirlines    []airlinePayload         `json:"preferredAirlines"`
	MonthlySpending      []monthlySpendingPayload `json:"monthlySpending"`
	TravelFrequency      travelFrequencyPayload   `json:"travelFrequency"`
	SeasonalPatterns     []seasonalPatternPayload `json:"seasonalPatterns"`
	CostSavings          costSavingsPayload       `json:"costSavings"`
}

type destinationPayload struct {
	City             string    `json:"city"`
	Airport          string    `json:"airport"`
	Visits           int       `json:"visits"`
	TotalSpentCents  int64     `json:"totalSpentCents"`
	AverageCostCents int64     `json:"averageCostCents"`
	LastVisit        time.Time `json:"lastVisit"`
}

type airlinePayload struct {
	Name              string `json:"name"`
	Flights           int    `json:"flights"`
	TotalSpentCents   int64  `json:"totalSpentCents"`
	AverageCostCents  int64  `json:"averageCostCents"`
	OnTimePerformance int    `json:"onTimePerformance"`
}

type monthlySpendingPayload struct {
	Month       string `json:"month"`
	Year        int    `json:"year"`
	AmountCents int64  `json:"amountCents"`
	Flights     int    `json:"flights"`
}

type travelFrequencyPayload struct {
	FlightsPerYear   float64  `json:"flightsPerYear"`
	AverageTripHours float64  `json:"averageTripHours"`
	BusyMonths       []string `json:"busyMonths"`
	QuietMonths      []string `json:"quietMonths"`
}

type seasonalPatternPayload struct {
	Season              string   `json:"season"`
	Flights             int      `json:"flights"`
	AverageCostCents    int64    `json:"averageCostCents"`
	PopularDestinations []string `json:"popularDestinations"`
}

type costSavingsPayload struct {
	TotalSavedCents   int64        `json:"totalSavedCents"`
	AveragePerBooking int64        `json:"averagePerBookingCents"`
	BestDeal          *dealPayload `json:"bestDeal,omitempty"`
}

type dealPayload struct {
	Route      string    `json:"route"`
	SavedCents int64     `json:"savedCents"`
	Date       time.Time `json:"date"`
}

type recommendationPayload struct {
	ID           string     `json:"id"`
	Kind         string     `json:"kind"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Route        *routeRef  `json:"route,omitempty"`
	PriceCents   int64      `json:"priceCents,omitempty"`
	SavingsCents int64      `json:"savingsCents,omitempty"`
	Confidence   int        `json:"confidence"`
	ValidUntil   *time.Time `json:"validUntil,omitempty"`
}

type routeRef struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func (h *AnalyticsHandler) report(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	report, err := h.service.Report(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAnalyticsResponse(report))
}

func toAnalyticsResponse(report *analytics.TravelReport) analyticsResponse {
	a := report.Analytics

	out := analyticsResponse{
		Analytics: travelAnalyticsPayload{
			TotalSpentCents:  a.TotalSpentCents,
			TotalFlights:     a.TotalFlights,
			AverageCostCents: a.AverageCostCents,
			TravelFrequency: travelFrequencyPayload{
				FlightsPerYear:   a.TravelFrequency.FlightsPerYear,
				AverageTripHours: a.TravelFrequency.AverageTripHours,
				BusyMonths:       monthNames(a.TravelFrequency.BusyMonths),
				QuietMonths:      monthNames(a.TravelFrequency.QuietMonths),
			},
			CostSavings: costSavingsPayload{
				TotalSavedCents:   a.CostSavings.TotalSavedCents,
				AveragePerBooking: a.CostSavings.AveragePerBooking,
			},
		},
		Recommendations: make([]recommendationPayload, 0, len(report.Recommendations)),
	}
	if a.CostSavings.BestDeal != nil {
		out.Analytics.CostSavings.BestDeal = &dealPayload{
			Route:      a.CostSavings.BestDeal.Route,
			SavedCents: a.CostSavings.BestDeal.SavedCents,
			Date:       a.CostSavings.BestDeal.Date,
		}
	}

	for _, d := range a.FavoriteDestinations {
		out.Analytics.FavoriteDestinations = append(out.Analytics.FavoriteDestinations, destinationPayload{
			City:             d.City,
			Airport:          d.Airport,
			Visits:           d.Visits,
			TotalSpentCents:  d.TotalSpentCents,
			AverageCostCents: d.AverageCostCents,
			LastVisit:        d.LastVisit,
		})
	}
	for _, al := range a.PreferredAirlines {
		out.Analytics.PreferredAirlines = append(out.Analytics.PreferredAirlines, airlinePayload{
			Name:              al.Name,
			Flights:           al.Flights,
			TotalSpentCents:   al.TotalSpentCents,
			AverageCostCents:  al.AverageCostCents,
			OnTimePerformance: al.OnTimePerformance,
		})
	}
	for _, m := range a.MonthlySpending {
		out.Analytics.MonthlySpending = append(out.Analytics.MonthlySpending, monthlySpendingPayload{
			Month:       m.Month.String(),
			Year:        m.Year,
			AmountCents: m.AmountCents,
			Flights:     m.Flights,
		})
	}
	for _, s := range a.SeasonalPatterns {
		out.Analytics.SeasonalPatterns = append(out.Analytics.SeasonalPatterns, seasonalPatternPayload{
			Season:              s.Season,
			Flights:             s.Flights,
			AverageCostCents:    s.AverageCostCents,
			PopularDestinations: s.PopularDestinations,
		})
	}
	for _, r := range report.Recommendations {
		item := recommendationPayload{
			ID:           r.ID,
			Kind:         string(r.Kind),
			Title:        r.Title,
			Description:  r.Description,
			PriceCents:   r.PriceCents,
			SavingsCents: r.SavingsCents,
			Confidence:   r.Confidence,
			ValidUntil:   r.ValidUntil,
		}
		if r.Route != nil {
			item.Route = &routeRef{Origin: r.Route.Origin, Destination: r.Route.Destination}
		}
		out.Recommendations = append(out.Recommendations, item)
	}
	return out
}

func monthNames(months []time.Month) []string {
	names := make([]string, 0, len(months))
	for _, m := range months {
		names = append(names, m.String())
	}
	return names
}
