package app

import (
	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/repos"
	"github.com/yungbote/recordvault-backend/internal/utils"
)

const serviceName = "recordvault"

type Config struct {
	Port          string
	Environment   string
	StoreBackend  string
	StorePolicy   repos.StorePolicy
	LookupBaseURL string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:         utils.GetEnv("PORT", "8080", log),
		Environment:  utils.GetEnv("APP_ENV", "development", log),
		StoreBackend: utils.GetEnv("STORE_BACKEND", "memory", log),
		StorePolicy: repos.StorePolicy{
			UpsertOnReplace:  utils.GetEnvAsBool("RECORD_REPLACE_UPSERT", false, log),
			IdempotentDelete: utils.GetEnvAsBool("RECORD_DELETE_IDEMPOTENT", false, log),
		},
		LookupBaseURL: utils.GetEnv("LOOKUP_BASE_URL", "https://www.googleapis.com/books/v1/volumes", log),
	}
}
