package api

import (
	"net/http"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/add-flight", h.add)
	router.GET("/flights", h.list)
	router.GET("/get-shortest-time-travel-between-cities", h.shortest)
	router.GET("/calculate-fare", h.fare)
	router.GET("/calculate-revenue-collected/:flightId", h.revenue)
}

func (h *FlightHandler) add(c *gin.Context) {
	var flight domain.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.service.AddFlight(c.Request.Context(), flight); err != nil {
		internalError(c, err)
		return
	}
	c.String(http.StatusOK, responseSuccess)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	if list == nil {
		list = []domain.Flight{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) shortest(c *gin.Context) {
	from, err := queryCity(c, "fromCity")
	if err != nil {
		badRequest(c, err)
		return
	}
	to, err := queryCity(c, "toCity")
	if err != nil {
		badRequest(c, err)
		return
	}
	duration, err := h.service.ShortestDuration(c.Request.Context(), from, to)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, duration)
}

func (h *FlightHandler) fare(c *gin.Context) {
	flightID, err := queryID(c, "flightId")
	if err != nil {
		badRequest(c, err)
		return
	}
	fare, err := h.service.CalculateFare(c.Request.Context(), flightID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, fare)
}

func (h *FlightHandler) revenue(c *gin.Context) {
	flightID, err := pathID(c, "flightId")
	if err != nil {
		badRequest(c, err)
		return
	}
	revenue, err := h.service.CalculateRevenue(c.Request.Context(), flightID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}
