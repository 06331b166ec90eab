package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	responseSuccess = "SUCCESS"
	responseFailure = "FAILURE"
)

func parseID(name, raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func queryID(c *gin.Context, name string) (int, error) {
	return parseID(name, c.Query(name))
}

func pathID(c *gin.Context, name string) (int, error) {
	return parseID(name, c.Param(name))
}

func queryCity(c *gin.Context, name string) (domain.City, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return domain.ParseCity(raw)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func outcome(ok bool) string {
	if ok {
		return responseSuccess
	}
	return responseFailure
}
