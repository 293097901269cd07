package routes

import (
	"erdbeergourmet/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathHealth = "/health"

func addPingRoutes(rg *gin.RouterGroup, healthHandler *handlers.HealthHandler) {
	rg.GET(PathHealth, healthHandler.Health)
}
