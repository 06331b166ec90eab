package api

import (
	"net/http"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/service/airports"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service airports.AirportUseCase
}

func NewAirportHandler(service airports.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.POST("/add_airport", h.add)
	router.GET("/get-largest-aiport", h.largest)
	router.GET("/get-number-of-people-on-airport-on/:date", h.peopleOn)
	router.GET("/get-aiportName-from-flight-takeoff/:flightId", h.originName)
}

func (h *AirportHandler) add(c *gin.Context) {
	var airport domain.Airport
	if err := c.ShouldBindJSON(&airport); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.service.AddAirport(c.Request.Context(), airport); err != nil {
		internalError(c, err)
		return
	}
	c.String(http.StatusOK, responseSuccess)
}

func (h *AirportHandler) largest(c *gin.Context) {
	name, err := h.service.LargestAirport(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.String(http.StatusOK, name)
}

func (h *AirportHandler) peopleOn(c *gin.Context) {
	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		badRequest(c, err)
		return
	}
	count, err := h.service.PeopleOnDate(c.Request.Context(), date, c.Query("airportName"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *AirportHandler) originName(c *gin.Context) {
	flightID, err := pathID(c, "flightId")
	if err != nil {
		badRequest(c, err)
		return
	}
	name, err := h.service.OriginAirportName(c.Request.Context(), flightID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.String(http.StatusOK, name)
}
