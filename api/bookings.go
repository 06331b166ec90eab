package api

import (
	"net/http"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/add-passenger", h.addPassenger)
	router.POST("/book-a-ticket", h.book)
	router.PUT("/cancel-a-ticket", h.cancel)
	router.GET("/get-count-of-bookings-done-by-a-passenger/:passengerId", h.countForPassenger)
}

func (h *BookingHandler) addPassenger(c *gin.Context) {
	var passenger domain.Passenger
	if err := c.ShouldBindJSON(&passenger); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.service.AddPassenger(c.Request.Context(), passenger); err != nil {
		internalError(c, err)
		return
	}
	c.String(http.StatusOK, responseSuccess)
}

func (h *BookingHandler) book(c *gin.Context) {
	flightID, passengerID, ok := ticketParams(c)
	if !ok {
		return
	}
	booked, err := h.service.BookTicket(c.Request.Context(), flightID, passengerID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.String(http.StatusOK, outcome(booked))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	flightID, passengerID, ok := ticketParams(c)
	if !ok {
		return
	}
	cancelled, err := h.service.CancelTicket(c.Request.Context(), flightID, passengerID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.String(http.StatusOK, outcome(cancelled))
}

func (h *BookingHandler) countForPassenger(c *gin.Context) {
	passengerID, err := pathID(c, "passengerId")
	if err != nil {
		badRequest(c, err)
		return
	}
	count, err := h.service.CountBookingsForPassenger(c.Request.Context(), passengerID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func ticketParams(c *gin.Context) (flightID, passengerID int, ok bool) {
	flightID, err := queryID(c, "flightId")
	if err != nil {
		badRequest(c, err)
		return 0, 0, false
	}
	passengerID, err = queryID(c, "passengerId")
	if err != nil {
		badRequest(c, err)
		return 0, 0, false
	}
	return flightID, passengerID, true
}
