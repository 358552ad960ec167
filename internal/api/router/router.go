package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/gamenightlabs/notifier/internal/api/handlers/game"
	"github.com/gamenightlabs/notifier/internal/api/handlers/schedule"
	"github.com/gamenightlabs/notifier/internal/middlewares"
)

func New(gameHandler *game.Handler, scheduleHandler *schedule.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.POST("/games", gameHandler.Create)
		api.POST("/games/:id/join", gameHandler.Join)
		api.DELETE("/games/:id/participants/:participantID", gameHandler.Leave)
		api.GET("/schedules/:id", scheduleHandler.GetStatus)
	}

	return e
}
