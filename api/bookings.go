package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID    string   `json:"flightId"`
	SeatNumbers []string `json:"seatNumbers"`
}

type bookingResponse struct {
	ID        string          `json:"id"`
	FlightID  string          `json:"flightId"`
	Seats     []string        `json:"seats"`
	Paid      bool            `json:"paid"`
	CreatedAt time.Time       `json:"createdAt"`
	Flight    *flightResponse `json:"flight,omitempty"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:        b.ID.String(),
		FlightID:  b.FlightID.String(),
		Seats:     b.Seats,
		Paid:      b.Paid,
		CreatedAt: b.CreatedAt,
	}
	if b.Flight != nil {
		f := toFlightResponse(b.Flight)
		resp.Flight = &f
	}
	return resp
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
}

func (h *BookingHandler) create(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.SeatNumbers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "flight id and at least one seat number are required"})
		return
	}
	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	created, err := h.service.Reserve(c.Request.Context(), booking.ReserveInput{
		UserID:   identity.UserID,
		FlightID: flightID,
		Seats:    req.SeatNumbers,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) list(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, resp)
}
