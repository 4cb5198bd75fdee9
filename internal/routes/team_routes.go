package routes

import (
	"quest_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func TeamRoutes(r *gin.Engine) {
	r.POST("/events/:id/teams", controllers.CreateTeam)
	r.GET("/events/:id/teams", controllers.ListTeams)
	r.PUT("/teams/:team_id/assignments", controllers.AssignMissions)
	r.DELETE("/teams/:team_id", controllers.DeleteTeam)
}
