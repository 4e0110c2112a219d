package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", requireAuth, h.create)
}

type endpointPayload struct {
	Time    time.Time `json:"time"`
	Airport string    `json:"airport"`
	City    string    `json:"city"`
}

type createFlightRequest struct {
	Airline      string          `json:"airline"`
	FlightNumber string          `json:"flightNumber"`
	Departure    endpointPayload `json:"departure"`
	Arrival      endpointPayload `json:"arrival"`
	Duration     string          `json:"duration"`
	PriceCents   int64           `json:"priceCents"`
	Aircraft     string          `json:"aircraft"`
}

type flightResponse struct {
	// NativeID and ID carry the same value; the separate "id" field is a
	// client convenience kept from the previous API.
	NativeID     string          `json:"_id"`
	ID           string          `json:"id"`
	Airline      string          `json:"airline"`
	FlightNumber string          `json:"flightNumber"`
	Departure    endpointPayload `json:"departure"`
	Arrival      endpointPayload `json:"arrival"`
	Duration     string          `json:"duration"`
	PriceCents   int64           `json:"priceCents"`
	Aircraft     string          `json:"aircraft"`
	BookedSeats  []string        `json:"bookedSeats"`
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		NativeID:     f.ID.String(),
		ID:           f.ID.String(),
		Airline:      f.Airline,
		FlightNumber: f.FlightNumber,
		Departure:    endpointPayload{Time: f.Departure.Time, Airport: f.Departure.Airport, City: f.Departure.City},
		Arrival:      endpointPayload{Time: f.Arrival.Time, Airport: f.Arrival.Airport, City: f.Arrival.City},
		Duration:     f.Duration,
		PriceCents:   f.PriceCents,
		Aircraft:     f.Aircraft,
		BookedSeats:  f.BookedSeats,
	}
}

func (h *FlightHandler) create(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight := &domain.Flight{
		Airline:      req.Airline,
		FlightNumber: req.FlightNumber,
		Departure:    domain.Endpoint{Time: req.Departure.Time, Airport: req.Departure.Airport, City: req.Departure.City},
		Arrival:      domain.Endpoint{Time: req.Arrival.Time, Airport: req.Arrival.Airport, City: req.Arrival.City},
		Duration:     req.Duration,
		PriceCents:   req.PriceCents,
		Aircraft:     req.Aircraft,
	}

	if err := h.service.Create(c.Request.Context(), flight, identity.IsAdmin); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *FlightHandler) list(c *gin.Context) {
	filter := domain.FlightFilter{
		From: c.Query("from"),
		To:   c.Query("to"),
	}

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]flightResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toFlightResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}
