package app

import (
	"github.com/yungbote/recordvault-backend/internal/clients/lookup"
	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
)

type Clients struct {
	Lookup lookup.Client
}

func wireClients(log *logger.Logger) Clients {
	log.Info("Wiring clients...")
	return Clients{
		Lookup: lookup.NewClient(log),
	}
}
