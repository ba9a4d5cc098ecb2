package repos

import (
	"context"
	"fmt"
	"sync"

	"github.com/yungbote/recordvault-backend/internal/platform/apierr"
	"github.com/yungbote/recordvault-backend/internal/types"
)

// memoryRecordRepo keeps the collection in a mutex-guarded map. It is
// the default local-dev backend and the double injected by tests; it
// honors the same policy flags as the persistent backends.
type memoryRecordRepo struct {
	mu      sync.RWMutex
	records map[string]types.Record
	policy  StorePolicy
}

func NewMemoryRecordRepo(policy StorePolicy) RecordRepo {
	return &memoryRecordRepo{
		records: make(map[string]types.Record),
		policy:  policy,
	}
}

func (mr *memoryRecordRepo) List(ctx context.Context) ([]types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	results := make([]types.Record, 0, len(mr.records))
	for _, rec := range mr.records {
		results = append(results, rec)
	}
	return results, nil
}

func (mr *memoryRecordRepo) Create(ctx context.Context, rec types.Record) (*types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, exists := mr.records[rec.ID]; exists {
		return nil, apierr.Conflict(fmt.Errorf("record %q already exists", rec.ID))
	}
	mr.records[rec.ID] = rec
	return &rec, nil
}

func (mr *memoryRecordRepo) GetByID(ctx context.Context, id string) (*types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	rec, exists := mr.records[id]
	if !exists {
		return nil, apierr.NotFound(fmt.Errorf("record %q does not exist", id))
	}
	return &rec, nil
}

func (mr *memoryRecordRepo) Replace(ctx context.Context, id string, rec types.Record) (*types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()

	rec.ID = id
	if _, exists := mr.records[id]; !exists && !mr.policy.UpsertOnReplace {
		return nil, apierr.NotFound(fmt.Errorf("record %q does not exist", id))
	}
	mr.records[id] = rec
	return &rec, nil
}

func (mr *memoryRecordRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, exists := mr.records[id]; !exists {
		if mr.policy.IdempotentDelete {
			return nil
		}
		return apierr.NotFound(fmt.Errorf("record %q does not exist", id))
	}
	delete(mr.records, id)
	return nil
}

func (mr *memoryRecordRepo) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()

	mr.records = make(map[string]types.Record)
	return nil
}
