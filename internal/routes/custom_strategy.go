package routes

import (
	"backtestcontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCustomStrategyRoutes sets up all routes related to custom condition-based strategies
func SetupCustomStrategyRoutes(r *gin.Engine) {
	custom := r.Group("/custom-strategies")
	{
		custom.GET("", handlers.ListCustomStrategies)
		custom.GET("/:id", handlers.GetCustomStrategy)
		custom.POST("", handlers.CreateCustomStrategy)
		custom.PUT("/:id", handlers.UpdateCustomStrategy)
		custom.DELETE("/:id", handlers.DeleteCustomStrategy)

		custom.POST("/toggle/:id", handlers.ToggleCustomStrategy)
	}
}
