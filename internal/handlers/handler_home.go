package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// homeHandler serves the root and health endpoints.
type homeHandler struct{}

func registerHomeRoutes(r *gin.Engine) {
	h := &homeHandler{}
	r.GET("/", h.getHome)
	r.GET("/health", h.getHealth)
}

func (h *homeHandler) getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "bizbooks reporting engine"})
}

func (h *homeHandler) getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
