package handlers

import (
	response "erdbeergourmet/internal/adapter/http/dto/response"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	environment string
	version     string
	now         func() time.Time
}

func NewHealthHandler(environment, version string) *HealthHandler {
	return &HealthHandler{environment: environment, version: version, now: time.Now}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:      "ok",
		Timestamp:   h.now().UTC(),
		Environment: h.environment,
		Version:     h.version,
	})
}
