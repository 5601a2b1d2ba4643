package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/sensor"
	"github.com/jmoren/wellspring/internal/service"
)

// NewRouter builds the gin engine with all routes registered. The
// simulator may be nil when the sensor feed is disabled.
func NewRouter(svc *service.WellnessService, sim *sensor.Simulator, corsOrigins []string, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(log), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsConfig.AllowOrigins = corsOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"}
	engine.Use(cors.New(corsConfig))

	h := &handlers{svc: svc, sim: sim}

	engine.GET("/healthz", h.healthz)
	engine.GET("/readyz", h.readyz)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api/v1")
	{
		users := api.Group("/users/:id")
		users.PUT("/profile", h.upsertProfile)
		users.GET("/profile", h.getProfile)
		users.POST("/assess", h.assess)
		users.GET("/tasks", h.listTasks)
		users.POST("/tasks/:taskID/complete", h.completeTask)
		users.POST("/chat", h.chat)
		users.DELETE("/chat", h.resetChat)
		users.POST("/advice", h.advice)
		users.POST("/support", h.support)
		users.POST("/tips", h.tips)
		users.GET("/rewards", h.rewardSummary)
		users.GET("/progress", h.progress)
		users.GET("/history", h.history)

		api.GET("/sensor/latest", h.sensorLatest)
	}

	return engine
}
