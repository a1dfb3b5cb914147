package routes

import (
	"backtestcontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupUnifiedStrategyRoutes sets up the merged strategy listing
func SetupUnifiedStrategyRoutes(r *gin.Engine) {
	r.GET("/unified-strategies", handlers.ListUnifiedStrategies)
}
