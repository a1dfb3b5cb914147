package handlers

import (
	"net/http"

	"backtestcontrol/internal/strategy"

	"github.com/gin-gonic/gin"
)

// ListStrategies returns all built-in parametric strategies with their
// parameter schemas.
func ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, strategy.Descriptors())
}

// GetStrategy returns one built-in strategy by name; any known alias works.
func GetStrategy(c *gin.Context) {
	descriptor, ok := strategy.Describe(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Strategy not found"})
		return
	}
	c.JSON(http.StatusOK, descriptor)
}

// GetStrategyDefaults returns the resolved default parameter values for a
// strategy. Unknown strategies yield an empty object rather than an error.
func GetStrategyDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, strategy.ResolveDefaults(c.Param("name")))
}
