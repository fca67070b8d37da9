package router

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/mahbubulalom/voice-reminder/internal/api/handlers/reminder"
	"github.com/mahbubulalom/voice-reminder/internal/api/handlers/voice"
	"github.com/mahbubulalom/voice-reminder/internal/api/respond"
	"github.com/mahbubulalom/voice-reminder/internal/middlewares"
)

func New(reminderHandler *reminder.Handler, voiceHandler *voice.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/reminders")
	{
		api.POST("/", reminderHandler.Create)
		api.GET("/", reminderHandler.GetUpcoming)
		api.GET("/:id", reminderHandler.Get)
		api.GET("/:id/status", reminderHandler.GetStatus)
		api.POST("/:id/call", reminderHandler.TriggerCall)
	}

	webhooks := e.Group("/webhooks/voice")
	{
		webhooks.POST("/answer", voiceHandler.Answer)
		webhooks.POST("/status", voiceHandler.Status)
		webhooks.POST("/inbound", voiceHandler.Inbound)
	}

	e.GET("/health", func(c *ginext.Context) {
		respond.OK(c.Writer, "ok")
	})

	metricsHandler := promhttp.Handler()
	e.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return e
}
