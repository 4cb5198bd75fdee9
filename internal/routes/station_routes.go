package routes

import (
	"quest_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func StationRoutes(r *gin.Engine) {
	r.POST("/events/:id/stations", controllers.CreateStation)
	r.GET("/events/:id/stations", controllers.ListStations)
	r.PUT("/stations/:station_id", controllers.UpdateStation)
	r.DELETE("/stations/:station_id", controllers.DeleteStation)
}
