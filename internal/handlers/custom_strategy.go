package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"backtestcontrol/internal/models"
	dbconfig "backtestcontrol/pkg/config"

	"github.com/gin-gonic/gin"
)

// CustomStrategyRequest represents the request body for creating/updating a
// custom condition-based strategy. The condition trees are stored opaquely.
type CustomStrategyRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	BuyConditions  json.RawMessage `json:"buy_conditions" binding:"required"`
	SellConditions json.RawMessage `json:"sell_conditions" binding:"required"`
	IsActive       *bool           `json:"is_active"`
	IsPublic       *bool           `json:"is_public"`
}

// ListCustomStrategies returns all custom strategies, optionally only public ones
func ListCustomStrategies(c *gin.Context) {
	query := dbconfig.DB
	if c.Query("public") == "true" {
		query = query.Where("is_public = true")
	}

	var strategies []models.CustomStrategy
	if err := query.Find(&strategies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, strategies)
}

// GetCustomStrategy returns a specific custom strategy by ID
func GetCustomStrategy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var record models.CustomStrategy
	if err := dbconfig.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateCustomStrategy creates a new custom strategy
func CreateCustomStrategy(c *gin.Context) {
	var request CustomStrategyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := models.CustomStrategy{
		Name:           request.Name,
		Description:    request.Description,
		BuyConditions:  request.BuyConditions,
		SellConditions: request.SellConditions,
		IsActive:       true,
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

// UpdateCustomStrategy updates an existing custom strategy
func UpdateCustomStrategy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request CustomStrategyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var record models.CustomStrategy
	if err := dbconfig.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	record.Name = request.Name
	record.Description = request.Description
	record.BuyConditions = request.BuyConditions
	record.SellConditions = request.SellConditions
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

// DeleteCustomStrategy deletes a custom strategy
func DeleteCustomStrategy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := dbconfig.DB.Delete(&models.CustomStrategy{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// ToggleCustomStrategy flips the active flag of a custom strategy
func ToggleCustomStrategy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var record models.CustomStrategy
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
