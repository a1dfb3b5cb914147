package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"backtestcontrol/internal/models"
	"backtestcontrol/internal/strategy"
	dbconfig "backtestcontrol/pkg/config"

	"github.com/gin-gonic/gin"
)

// UserStrategyRequest represents the request body for creating/updating a user strategy
type UserStrategyRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	StrategyType string          `json:"strategy_type" binding:"required"`
	Config       json.RawMessage `json:"config"`
	IsActive     *bool           `json:"is_active"`
	IsPublic     *bool           `json:"is_public"`
}

// SaveFromBacktestRequest represents the request body for saving a strategy
// together with the backtest results that motivated saving it
type SaveFromBacktestRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	StrategyType    string          `json:"strategy_type" binding:"required"`
	Config          json.RawMessage `json:"config" binding:"required"`
	BacktestResults json.RawMessage `json:"backtest_results" binding:"required"`
}

// ListUserStrategies returns all user strategies, optionally only public ones
func ListUserStrategies(c *gin.Context) {
	query := dbconfig.DB
	if c.Query("public") == "true" {
		query = query.Where("is_public = true")
	}

	var strategies []models.UserStrategy
	if err := query.Find(&strategies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, strategies)
}

// GetUserStrategy returns a specific user strategy by ID
func GetUserStrategy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var record models.UserStrategy
	if err := dbconfig.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateUserStrategy creates a new user strategy. The strategy type is
// stored canonically so legacy spellings from older clients converge.
func CreateUserStrategy(c *gin.Context) {
	var request UserStrategyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := models.UserStrategy{
		Name:         request.Name,
		Description:  request.Description,
		StrategyType: strategy.Normalize(request.StrategyType),
		Config:       request.Config,
		IsActive:     true,
	}
	if request.IsActive != nil {
		record.IsActive = *request.IsActive
	}
	if request.IsPublic != nil {
		record.IsPublic = *request.IsPublic
	}

	if err := dbconfig.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateUserStrategy updates an existing user strategy
func UpdateUserStrategy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request UserStrategyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var record models.UserStrategy
	if err := dbconfig.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	record.Name = request.Name
	record.Description = request.Description
	record.StrategyType = strategy.Normalize(request.StrategyType)
	record.Config = request.Config
	if request.IsActive != nil {
		record.IsActive = *request.IsActive
	}
	if request.IsPublic != nil {
		record.IsPublic = *request.IsPublic
	}

	if err := dbconfig.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteUserStrategy deletes a user strategy
func DeleteUserStrategy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := dbconfig.DB.Delete(&models.UserStrategy{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// ToggleUserStrategy flips the active flag of a user strategy
func ToggleUserStrategy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var record models.UserStrategy
	if err := dbconfig.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Strategy not found"})
		return
	}

	record.IsActive = !record.IsActive
	if err := dbconfig.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update strategy"})
		return
	}

	message := "Strategy deactivated successfully"
	if record.IsActive {
		message = "Strategy activated successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        record.ID,
		"is_active": record.IsActive,
		"message":   message,
	})
}

// SaveStrategyFromBacktest saves a tuned strategy together with the
// backtest results it was validated against
func SaveStrategyFromBacktest(c *gin.Context) {
	var request SaveFromBacktestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := models.UserStrategy{
		Name:            request.Name,
		Description:     request.Description,
		StrategyType:    strategy.Normalize(request.StrategyType),
		Config:          request.Config,
		BacktestResults: request.BacktestResults,
		IsActive:        true,
	}

	if err := dbconfig.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, record)
}
