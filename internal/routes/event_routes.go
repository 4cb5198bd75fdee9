package routes

import (
	"quest_logistics/internal/controllers"

	"github.com/gin-gonic/gin"
)

func EventRoutes(r *gin.Engine) {
	events := r.Group("/events")
	{
		events.POST("", controllers.CreateEvent)
		events.GET("", controllers.ListEvents)
		events.GET("/:id", controllers.GetEvent)
		events.PUT("/:id", controllers.UpdateEvent)
		events.DELETE("/:id", controllers.DeleteEvent)
	}
}
