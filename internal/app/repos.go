package app

import (
	"fmt"
	"strings"

	"github.com/yungbote/recordvault-backend/internal/db"
	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/repos"
)

type Repos struct {
	Record repos.RecordRepo
}

func wireRepos(log *logger.Logger, cfg Config) (Repos, error) {
	log.Info("Wiring repos...", "store_backend", cfg.StoreBackend)

	switch strings.ToLower(strings.TrimSpace(cfg.StoreBackend)) {
	case "postgres":
		pg, err := db.NewPostgresService(log)
		if err != nil {
			return Repos{}, fmt.Errorf("init postgres: %w", err)
		}
		if err := pg.AutoMigrateAll(); err != nil {
			return Repos{}, fmt.Errorf("postgres automigrate: %w", err)
		}
		return Repos{Record: repos.NewRecordRepo(pg.DB(), log, cfg.StorePolicy)}, nil
	case "redis":
		repo, err := repos.NewRedisRecordRepo(log, cfg.StorePolicy)
		if err != nil {
			return Repos{}, fmt.Errorf("init redis record repo: %w", err)
		}
		return Repos{Record: repo}, nil
	case "memory", "":
		return Repos{Record: repos.NewMemoryRecordRepo(cfg.StorePolicy)}, nil
	}
	return Repos{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
}
