// internal/handlers/health.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-admin/internal/services"
)

const Version = "1.0.0"

type HealthHandler struct {
	sessions *services.SessionStore
}

func NewHealthHandler(sessions *services.SessionStore) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  Version,
		"sessions": h.sessions.Len(),
	})
}
