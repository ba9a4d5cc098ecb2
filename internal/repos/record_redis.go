package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/platform/apierr"
	"github.com/yungbote/recordvault-backend/internal/types"
	"github.com/yungbote/recordvault-backend/internal/utils"
)

// redisRecordRepo stores one JSON document per record key. Atomicity of
// create/replace/delete is delegated to single-key redis commands:
// SETNX detects duplicate creates, SETXX enforces strict replace, and
// the DEL reply count decides delete existence.
type redisRecordRepo struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	policy StorePolicy
}

func NewRedisRecordRepo(log *logger.Logger, policy StorePolicy) (RecordRepo, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := utils.GetEnv("REDIS_KEY_PREFIX", "record:", log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisRecordRepo{
		log:    log.With("repo", "RedisRecordRepo"),
		rdb:    rdb,
		prefix: prefix,
		policy: policy,
	}, nil
}

func (rr *redisRecordRepo) key(id string) string {
	return rr.prefix + id
}

func (rr *redisRecordRepo) List(ctx context.Context) ([]types.Record, error) {
	keys, err := rr.scanKeys(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]types.Record, 0, len(keys))
	if len(keys) == 0 {
		return results, nil
	}

	vals, err := rr.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	for _, val := range vals {
		raw, ok := val.(string)
		if !ok {
			// Key expired or was deleted between SCAN and MGET.
			continue
		}
		var rec types.Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			rr.log.Warn("Skipping undecodable record document", "error", err)
			continue
		}
		results = append(results, rec)
	}
	return results, nil
}

func (rr *redisRecordRepo) Create(ctx context.Context, rec types.Record) (*types.Record, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record %q: %w", rec.ID, err)
	}
	stored, err := rr.rdb.SetNX(ctx, rr.key(rec.ID), payload, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("create record %q: %w", rec.ID, err)
	}
	if !stored {
		return nil, apierr.Conflict(fmt.Errorf("record %q already exists", rec.ID))
	}
	return &rec, nil
}

func (rr *redisRecordRepo) GetByID(ctx context.Context, id string) (*types.Record, error) {
	raw, err := rr.rdb.Get(ctx, rr.key(id)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, apierr.NotFound(fmt.Errorf("record %q does not exist", id))
		}
		return nil, fmt.Errorf("get record %q: %w", id, err)
	}
	var rec types.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode record %q: %w", id, err)
	}
	return &rec, nil
}

func (rr *redisRecordRepo) Replace(ctx context.Context, id string, rec types.Record) (*types.Record, error) {
	rec.ID = id
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record %q: %w", id, err)
	}

	if rr.policy.UpsertOnReplace {
		if err := rr.rdb.Set(ctx, rr.key(id), payload, 0).Err(); err != nil {
			return nil, fmt.Errorf("upsert record %q: %w", id, err)
		}
		return &rec, nil
	}

	replaced, err := rr.rdb.SetXX(ctx, rr.key(id), payload, 0).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("replace record %q: %w", id, err)
	}
	if !replaced {
		return nil, apierr.NotFound(fmt.Errorf("record %q does not exist", id))
	}
	return &rec, nil
}

func (rr *redisRecordRepo) Delete(ctx context.Context, id string) error {
	removed, err := rr.rdb.Del(ctx, rr.key(id)).Result()
	if err != nil {
		return fmt.Errorf("delete record %q: %w", id, err)
	}
	if removed == 0 && !rr.policy.IdempotentDelete {
		return apierr.NotFound(fmt.Errorf("record %q does not exist", id))
	}
	return nil
}

func (rr *redisRecordRepo) DeleteAll(ctx context.Context) error {
	keys, err := rr.scanKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := rr.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete all records: %w", err)
	}
	return nil
}

func (rr *redisRecordRepo) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := rr.rdb.Scan(ctx, 0, rr.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan record keys: %w", err)
	}
	return keys, nil
}
