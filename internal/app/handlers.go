package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordvault-backend/internal/http"
	httpH "github.com/yungbote/recordvault-backend/internal/http/handlers"
	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Record *httpH.RecordHandler
	Lookup *httpH.LookupHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(),
		Record: httpH.NewRecordHandler(log, serviceset.Record),
		Lookup: httpH.NewLookupHandler(log, serviceset.Record),
	}
}

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:           log,
		ServiceName:   serviceName,
		HealthHandler: handlerset.Health,
		RecordHandler: handlerset.Record,
		LookupHandler: handlerset.Lookup,
	})
}
