package routes

import (
	"backtestcontrol/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupSessionRoutes sets up the backtest wizard session routes
func SetupSessionRoutes(r *gin.Engine) {
	sess := r.Group("/session")
	{
		sess.GET("", handlers.GetSession)
		sess.PUT("/symbols", handlers.UpdateSessionSymbols)
		sess.PUT("/strategy", handlers.SelectSessionStrategy)
		sess.PATCH("/parameters", handlers.UpdateSessionParameters)
		sess.POST("/submit", handlers.SubmitBacktest)
		sess.GET("/status/ws", handlers.StreamSessionStatus)
	}
}
