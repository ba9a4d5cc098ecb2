package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/recordvault-backend/internal/http/handlers"
	"github.com/yungbote/recordvault-backend/internal/http/middleware"
	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log           *logger.Logger
	ServiceName   string
	HealthHandler *handlers.HealthHandler
	RecordHandler *handlers.RecordHandler
	LookupHandler *handlers.LookupHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.CORS())
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.Check)

	// Records
	router.GET("/records", cfg.RecordHandler.List)
	router.POST("/records", cfg.RecordHandler.Create)
	router.DELETE("/records", cfg.RecordHandler.DeleteAll)
	router.GET("/records/:id", cfg.RecordHandler.Get)
	router.PUT("/records/:id", cfg.RecordHandler.Replace)
	router.DELETE("/records/:id", cfg.RecordHandler.Delete)

	// Remote lookup
	router.GET("/remote/:search/:term", cfg.LookupHandler.Find)

	return router
}
