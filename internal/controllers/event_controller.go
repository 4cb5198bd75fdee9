package controllers

import (
	"encoding/binary"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"quest_logistics/internal/config"
	"quest_logistics/internal/models"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// EventResponse mirrors models.Event with the play area as a GeoJSON string.
type EventResponse struct {
	ID          uint               `json:"ID"`
	CreatedAt   time.Time          `json:"CreatedAt"`
	UpdatedAt   time.Time          `json:"UpdatedAt"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ScheduledAt *time.Time         `json:"scheduled_at"`
	Area        string             `json:"area"`
	Stations    []models.Station   `json:"stations,omitempty"`
	Teams       []models.Team      `json:"teams,omitempty"`
	Checklists  []models.Checklist `json:"checklists,omitempty"`
}

func toEventResponse(event models.Event) EventResponse {
	jsonArea, _ := convertWKBToGeoJSON(event.Area)
	return EventResponse{
		ID:          event.ID,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
		Name:        event.Name,
		Description: event.Description,
		ScheduledAt: event.ScheduledAt,
		Area:        jsonArea,
		Stations:    event.Stations,
		Teams:       event.Teams,
		Checklists:  event.Checklists,
	}
}

// parseAndConvertGeometry parses a GeoJSON string into a geom.T and returns WKB bytes
func parseAndConvertGeometry(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	var g geom.T
	err := gjson.Unmarshal([]byte(raw), &g)
	if err != nil {
		return nil, err
	}
	return wkb.Marshal(g, binary.LittleEndian)
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateEvent registers a new event, optionally with a GeoJSON play area.
func CreateEvent(c *gin.Context) {
	var input struct {
		Name        string     `json:"name" binding:"required"`
		Description string     `json:"description"`
		ScheduledAt *time.Time `json:"scheduled_at"`
		Area        string     `json:"area"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateEvent: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	wkbArea, err := parseAndConvertGeometry(input.Area)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid area geometry: " + err.Error()})
		return
	}

	event := models.Event{
		Name:        input.Name,
		Description: input.Description,
		ScheduledAt: input.ScheduledAt,
		Area:        wkbArea,
	}
	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Create event failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": toEventResponse(event)})
}

// ListEvents returns all events with their stations and teams.
func ListEvents(c *gin.Context) {
	var events []models.Event
	if err := config.DB.Preload("Stations").Preload("Teams").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch events"})
		return
	}

	var responses []EventResponse
	for _, e := range events {
		responses = append(responses, toEventResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{"events": responses})
}

// GetEvent returns one event with stations, teams and checklists.
func GetEvent(c *gin.Context) {
	var event models.Event
	if err := config.DB.
		Preload("Stations").Preload("Teams").Preload("Checklists").
		First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": toEventResponse(event)})
}

// UpdateEvent modifies event metadata and/or its play area.
func UpdateEvent(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var input struct {
		Name        *string    `json:"name"`
		Description *string    `json:"description"`
		ScheduledAt *time.Time `json:"scheduled_at"`
		Area        *string    `json:"area"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.ScheduledAt != nil {
		event.ScheduledAt = input.ScheduledAt
	}
	if input.Area != nil {
		if *input.Area == "" {
			event.Area = nil
		} else {
			wkbArea, err := parseAndConvertGeometry(*input.Area)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid area geometry: " + err.Error()})
				return
			}
			event.Area = wkbArea
		}
	}

	if err := config.DB.Save(event).Error; err != nil {
		logrus.WithError(err).Error("UpdateEvent: failed to save")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": toEventResponse(*event)})
}

// DeleteEvent removes an event and everything that hangs off it.
func DeleteEvent(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	checklistIDs := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.Checklist{}).Select("id").Where("event_id = ?", event.ID)
	teamIDs := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.Team{}).Select("id").Where("event_id = ?", event.ID)

	steps := []func() error{
		func() error {
			return tx.Where("event_id = ?", event.ID).Delete(&models.TravelEdge{}).Error
		},
		func() error {
			return tx.Where("checklist_id IN (?)", checklistIDs).Delete(&models.ChecklistTask{}).Error
		},
		func() error { return tx.Where("event_id = ?", event.ID).Delete(&models.Checklist{}).Error },
		func() error {
			return tx.Where("team_id IN (?)", teamIDs).Delete(&models.TeamAssignment{}).Error
		},
		func() error { return tx.Where("event_id = ?", event.ID).Delete(&models.Team{}).Error },
		func() error { return tx.Where("event_id = ?", event.ID).Delete(&models.Mission{}).Error },
		func() error { return tx.Where("event_id = ?", event.ID).Delete(&models.Station{}).Error },
		func() error { return tx.Delete(event).Error },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed: " + err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
