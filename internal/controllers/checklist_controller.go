package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quest_logistics/internal/config"
	"quest_logistics/internal/models"
)

// ListChecklists returns both phase checklists of an event with their tasks.
func ListChecklists(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var checklists []models.Checklist
	if err := config.DB.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Where("event_id = ?", event.ID).Find(&checklists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch checklists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checklists": checklists})
}

// UpdateTaskStatus lets an operator mark a task open or done.
func UpdateTaskStatus(c *gin.Context) {
	var task models.ChecklistTask
	if err := config.DB.First(&task, c.Param("task_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != models.TaskOpen && input.Status != models.TaskDone {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be open or done"})
		return
	}

	task.Status = input.Status
	if err := config.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}
