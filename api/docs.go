package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openAPIDocument []byte

// DocsHandler serves the OpenAPI document and a swagger UI over it.
type DocsHandler struct{}

func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

func (h *DocsHandler) Register(router *gin.RouterGroup) {
	router.GET("/openapi.json", h.document)
	router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/openapi.json"))))
}

func (h *DocsHandler) document(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPIDocument)
}
