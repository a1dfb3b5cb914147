package routes

import (
	"backtestcontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupStrategyCatalogRoutes sets up routes for the built-in strategy catalog
func SetupStrategyCatalogRoutes(r *gin.Engine) {
	catalog := r.Group("/strategies")
	{
		catalog.GET("", handlers.ListStrategies)
		catalog.GET("/:name", handlers.GetStrategy)
		catalog.GET("/:name/defaults", handlers.GetStrategyDefaults)
	}
}
