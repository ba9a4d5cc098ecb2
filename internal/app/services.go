package app

import (
	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/services"
)

type Services struct {
	Record services.RecordService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Record: services.NewRecordService(log, reposet.Record, clients.Lookup, cfg.LookupBaseURL),
	}
}
