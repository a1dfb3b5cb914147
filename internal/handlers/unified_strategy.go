package handlers

import (
	"net/http"

	"backtestcontrol/internal/models"
	"backtestcontrol/internal/strategy"
	dbconfig "backtestcontrol/pkg/config"

	"github.com/gin-gonic/gin"
)

// ListUnifiedStrategies returns user-saved and custom strategies merged
// into the unified model, user records first, in store order.
func ListUnifiedStrategies(c *gin.Context) {
	query := dbconfig.DB
	if c.Query("active") == "true" {
		query = query.Where("is_active = true")
	}

	var users []models.UserStrategy
	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	customQuery := dbconfig.DB
	if c.Query("active") == "true" {
		customQuery = customQuery.Where("is_active = true")
	}
	var customs []models.CustomStrategy
	if err := customQuery.Find(&customs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, strategy.Unify(users, customs))
}
