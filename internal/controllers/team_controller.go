package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"quest_logistics/internal/config"
	"quest_logistics/internal/models"
)

// CreateTeam registers a team for an event.
func CreateTeam(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var input models.Team
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.EventID = event.ID

	if err := config.DB.Create(&input).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "Team already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create team: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"team": input})
}

// ListTeams returns all teams of an event with their assignments.
func ListTeams(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var teams []models.Team
	if err := config.DB.Preload("Assignments").
		Where("event_id = ?", event.ID).Order("id").Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch teams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// AssignMissions replaces a team's mission assignments.
func AssignMissions(c *gin.Context) {
	var team models.Team
	if err := config.DB.First(&team, c.Param("team_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var input struct {
		Assignments []struct {
			MissionID uint `json:"mission_id" binding:"required"`
			StationID uint `json:"station_id" binding:"required"`
		} `json:"assignments" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamAssignment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear assignments: " + err.Error()})
		return
	}
	for _, a := range input.Assignments {
		row := models.TeamAssignment{TeamID: team.ID, MissionID: a.MissionID, StationID: a.StationID}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment: " + err.Error()})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	config.DB.Preload("Assignments").First(&team, team.ID)
	c.JSON(http.StatusOK, gin.H{"team": team})
}

// DeleteTeam removes a team and its assignments.
func DeleteTeam(c *gin.Context) {
	var team models.Team
	if err := config.DB.First(&team, c.Param("team_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamAssignment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete assignments: " + err.Error()})
		return
	}
	if err := tx.Delete(&team).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed: " + err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}
