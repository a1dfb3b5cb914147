package routes

import (
	"backtestcontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupUserStrategyRoutes sets up all routes related to user-saved strategies
func SetupUserStrategyRoutes(r *gin.Engine) {
	user := r.Group("/user-strategies")
	{
		// Standard CRUD operations
		user.GET("", handlers.ListUserStrategies)
		user.GET("/:id", handlers.GetUserStrategy)
		user.POST("", handlers.CreateUserStrategy)
		user.PUT("/:id", handlers.UpdateUserStrategy)
		user.DELETE("/:id", handlers.DeleteUserStrategy)

		// Special operations
		user.POST("/toggle/:id", handlers.ToggleUserStrategy)
		user.POST("/save-from-backtest", handlers.SaveStrategyFromBacktest)
	}
}
