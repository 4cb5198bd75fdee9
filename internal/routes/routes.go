package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery plus structured request logging
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	EventRoutes(r)
	StationRoutes(r)
	MissionRoutes(r)
	TeamRoutes(r)
	LogisticsRoutes(r)

	return r
}
