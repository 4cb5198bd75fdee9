package routes

import (
	"quest_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

// LogisticsRoutes exposes the event logistics operations: travel matrix,
// setup route, schedule simulation and checklist generation.
func LogisticsRoutes(r *gin.Engine) {
	r.POST("/events/:id/travel-matrix", controllers.BuildTravelMatrix)
	r.POST("/events/:id/setup-route", controllers.BuildSetupRoute)
	r.POST("/events/:id/schedule-simulation", controllers.SimulateEventSchedule)
	r.POST("/events/:id/checklists/generate", controllers.GenerateChecklists)

	r.GET("/events/:id/checklists", controllers.ListChecklists)
	r.PATCH("/tasks/:task_id/status", controllers.UpdateTaskStatus)
}
