package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"quest_logistics/internal/config"
	"quest_logistics/internal/models"
)

// CreateMission adds a mission to an event.
func CreateMission(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var input models.Mission
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.EventID = event.ID

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create mission: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mission": input})
}

// ListMissions returns an event's missions, optionally only the enabled ones.
func ListMissions(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	query := config.DB.Where("event_id = ?", event.ID)
	if c.Query("enabled") == "true" {
		query = query.Where("enabled = ?", true)
	}

	var missions []models.Mission
	if err := query.Order("id").Find(&missions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch missions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"missions": missions})
}

// UpdateMission modifies mission metadata and requirement flags.
func UpdateMission(c *gin.Context) {
	var mission models.Mission
	if err := config.DB.First(&mission, c.Param("mission_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found"})
		return
	}

	var input struct {
		Title            *string   `json:"title"`
		StationID        *uint     `json:"station_id"`
		Enabled          *bool     `json:"enabled"`
		RequiresVideo    *bool     `json:"requires_video"`
		RequiresPhoto    *bool     `json:"requires_photo"`
		RequiresActor    *bool     `json:"requires_actor"`
		PropRequirements *[]string `json:"prop_requirements"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		mission.Title = *input.Title
	}
	if input.StationID != nil {
		mission.StationID = input.StationID
	}
	if input.Enabled != nil {
		mission.Enabled = *input.Enabled
	}
	if input.RequiresVideo != nil {
		mission.RequiresVideo = *input.RequiresVideo
	}
	if input.RequiresPhoto != nil {
		mission.RequiresPhoto = *input.RequiresPhoto
	}
	if input.RequiresActor != nil {
		mission.RequiresActor = *input.RequiresActor
	}
	if input.PropRequirements != nil {
		mission.PropRequirements = pq.StringArray(*input.PropRequirements)
	}

	if err := config.DB.Save(&mission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission": mission})
}

// DeleteMission removes a mission and its assignments.
func DeleteMission(c *gin.Context) {
	var mission models.Mission
	if err := config.DB.First(&mission, c.Param("mission_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	if err := tx.Where("mission_id = ?", mission.ID).Delete(&models.TeamAssignment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete assignments: " + err.Error()})
		return
	}
	if err := tx.Delete(&mission).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed: " + err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mission deleted successfully"})
}
