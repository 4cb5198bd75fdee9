package routes

import (
	"quest_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func MissionRoutes(r *gin.Engine) {
	r.POST("/events/:id/missions", controllers.CreateMission)
	r.GET("/events/:id/missions", controllers.ListMissions)
	r.PUT("/missions/:mission_id", controllers.UpdateMission)
	r.DELETE("/missions/:mission_id", controllers.DeleteMission)
}
