package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/platform/apierr"
	"github.com/yungbote/recordvault-backend/internal/types"
)

// StorePolicy fixes the two behaviors the store leaves open per
// deployment: whether Replace creates a missing record and whether
// Delete of a missing record is a success.
type StorePolicy struct {
	UpsertOnReplace  bool
	IdempotentDelete bool
}

// RecordRepo owns the record collection. Exactly one record exists per
// id; Replace is full replacement, never a field merge. Failures come
// back classified (apierr) at the point of detection.
type RecordRepo interface {
	List(ctx context.Context) ([]types.Record, error)
	Create(ctx context.Context, rec types.Record) (*types.Record, error)
	GetByID(ctx context.Context, id string) (*types.Record, error)
	Replace(ctx context.Context, id string, rec types.Record) (*types.Record, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type recordRepo struct {
	db     *gorm.DB
	log    *logger.Logger
	policy StorePolicy
}

func NewRecordRepo(db *gorm.DB, baseLog *logger.Logger, policy StorePolicy) RecordRepo {
	repoLog := baseLog.With("repo", "RecordRepo")
	return &recordRepo{db: db, log: repoLog, policy: policy}
}

func (rr *recordRepo) List(ctx context.Context) ([]types.Record, error) {
	var results []types.Record
	if err := rr.db.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if results == nil {
		results = []types.Record{}
	}
	return results, nil
}

func (rr *recordRepo) Create(ctx context.Context, rec types.Record) (*types.Record, error) {
	if err := rr.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierr.Conflict(fmt.Errorf("record %q already exists", rec.ID))
		}
		return nil, fmt.Errorf("create record %q: %w", rec.ID, err)
	}
	return &rec, nil
}

func (rr *recordRepo) GetByID(ctx context.Context, id string) (*types.Record, error) {
	var rec types.Record
	if err := rr.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Errorf("record %q does not exist", id))
		}
		return nil, fmt.Errorf("get record %q: %w", id, err)
	}
	return &rec, nil
}

func (rr *recordRepo) Replace(ctx context.Context, id string, rec types.Record) (*types.Record, error) {
	rec.ID = id

	if rr.policy.UpsertOnReplace {
		if err := rr.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(&rec).Error; err != nil {
			return nil, fmt.Errorf("upsert record %q: %w", id, err)
		}
		return &rec, nil
	}

	res := rr.db.WithContext(ctx).
		Model(&types.Record{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        rec.Name,
			"description": rec.Description,
			"page_count":  rec.PageCount,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("replace record %q: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apierr.NotFound(fmt.Errorf("record %q does not exist", id))
	}
	return &rec, nil
}

func (rr *recordRepo) Delete(ctx context.Context, id string) error {
	res := rr.db.WithContext(ctx).Where("id = ?", id).Delete(&types.Record{})
	if res.Error != nil {
		return fmt.Errorf("delete record %q: %w", id, res.Error)
	}
	if res.RowsAffected == 0 && !rr.policy.IdempotentDelete {
		return apierr.NotFound(fmt.Errorf("record %q does not exist", id))
	}
	return nil
}

func (rr *recordRepo) DeleteAll(ctx context.Context) error {
	if err := rr.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&types.Record{}).Error; err != nil {
		return fmt.Errorf("delete all records: %w", err)
	}
	return nil
}
