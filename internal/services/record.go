package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/yungbote/recordvault-backend/internal/clients/lookup"
	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/repos"
	"github.com/yungbote/recordvault-backend/internal/types"
)

// RecordService is the business-facing API over the record store and
// the remote catalog. It holds no state of its own; every call is
// independent and safe to invoke concurrently.
type RecordService interface {
	List(ctx context.Context) ([]types.Record, error)
	Create(ctx context.Context, rec types.Record) (*types.Record, error)
	Get(ctx context.Context, id string) (*types.Record, error)
	Replace(ctx context.Context, id string, rec types.Record) (*types.Record, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Lookup(ctx context.Context, urlOverride, search, term string) (*types.Record, error)
}

type recordService struct {
	log           *logger.Logger
	recordRepo    repos.RecordRepo
	lookupClient  lookup.Client
	lookupBaseURL string
}

func NewRecordService(log *logger.Logger, recordRepo repos.RecordRepo, lookupClient lookup.Client, lookupBaseURL string) RecordService {
	serviceLog := log.With("service", "RecordService")
	return &recordService{
		log:           serviceLog,
		recordRepo:    recordRepo,
		lookupClient:  lookupClient,
		lookupBaseURL: lookupBaseURL,
	}
}

func (rs *recordService) List(ctx context.Context) ([]types.Record, error) {
	return rs.recordRepo.List(ctx)
}

func (rs *recordService) Create(ctx context.Context, rec types.Record) (*types.Record, error) {
	created, err := rs.recordRepo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	rs.log.Info("Record created", "record_id", created.ID)
	return created, nil
}

func (rs *recordService) Get(ctx context.Context, id string) (*types.Record, error) {
	return rs.recordRepo.GetByID(ctx, id)
}

func (rs *recordService) Replace(ctx context.Context, id string, rec types.Record) (*types.Record, error) {
	replaced, err := rs.recordRepo.Replace(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	rs.log.Info("Record replaced", "record_id", id)
	return replaced, nil
}

func (rs *recordService) Delete(ctx context.Context, id string) error {
	if err := rs.recordRepo.Delete(ctx, id); err != nil {
		return err
	}
	rs.log.Info("Record deleted", "record_id", id)
	return nil
}

func (rs *recordService) Clear(ctx context.Context) error {
	if err := rs.recordRepo.DeleteAll(ctx); err != nil {
		return err
	}
	rs.log.Info("Record collection cleared")
	return nil
}

// Lookup builds the catalog query URL unless the caller supplied one,
// then delegates to the lookup client. Client failures pass through
// unchanged so the handler sees the original classification.
func (rs *recordService) Lookup(ctx context.Context, urlOverride, search, term string) (*types.Record, error) {
	target := urlOverride
	if target == "" {
		target = fmt.Sprintf("%s?q=%s:%s", rs.lookupBaseURL, url.QueryEscape(search), url.QueryEscape(term))
	}
	return rs.lookupClient.FindRecord(ctx, target)
}
