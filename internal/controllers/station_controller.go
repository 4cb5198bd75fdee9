package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quest_logistics/internal/config"
	"quest_logistics/internal/models"
)

// CreateStation adds a station to an event.
func CreateStation(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var input models.Station
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.EventID = event.ID

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create station: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"station": input})
}

// ListStations returns all stations of an event.
func ListStations(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var stations []models.Station
	if err := config.DB.Where("event_id = ?", event.ID).Order("id").Find(&stations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch stations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stations": stations})
}

// UpdateStation modifies a station's name, note or coordinates.
func UpdateStation(c *gin.Context) {
	var station models.Station
	if err := config.DB.First(&station, c.Param("station_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	var input struct {
		DisplayName    *string  `json:"display_name"`
		Lat            *float64 `json:"lat"`
		Lng            *float64 `json:"lng"`
		HidingSpotNote *string  `json:"hiding_spot_note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.DisplayName != nil {
		station.DisplayName = *input.DisplayName
	}
	if input.Lat != nil {
		station.Lat = input.Lat
	}
	if input.Lng != nil {
		station.Lng = input.Lng
	}
	if input.HidingSpotNote != nil {
		station.HidingSpotNote = *input.HidingSpotNote
	}

	if err := config.DB.Save(&station).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"station": station})
}

// DeleteStation removes a station.
func DeleteStation(c *gin.Context) {
	var station models.Station
	if err := config.DB.First(&station, c.Param("station_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	if err := config.DB.Delete(&station).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Station deleted successfully"})
}
