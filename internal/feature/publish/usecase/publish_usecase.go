// Package usecase runs a dataset pipeline and writes its snapshot to the publication sink.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"market_relay/internal/feature/publish/domain/entity"
	"market_relay/internal/platform/contentstore"
	"market_relay/internal/shared/apperr"
)

// ErrSinkUnavailable is returned when no publication sink is configured.
var ErrSinkUnavailable = errors.New("publication sink not configured")

// Producer runs one dataset pipeline with its default parameters and returns
// the response payload with its record count.
type Producer func(ctx context.Context) (payload any, count int, err error)

// Sink stores documents and can undo a write.
type Sink interface {
	Path(name string) string
	Put(ctx context.Context, path string, payload any, message string) (contentstore.Revision, error)
	Restore(ctx context.Context, rev contentstore.Revision, message string) error
}

// PublishUsecase publishes dataset snapshots.
type PublishUsecase struct {
	sink      Sink
	producers map[entity.Dataset]Producer
	now       func() time.Time
}

// NewPublishUsecase creates a PublishUsecase. sink may be nil when publishing is disabled.
func NewPublishUsecase(sink Sink, producers map[entity.Dataset]Producer) *PublishUsecase {
	return &PublishUsecase{sink: sink, producers: producers, now: time.Now}
}

// Publish writes <dataset>.json and then <dataset>.meta.json.
// When the meta write fails the data file is restored before the error is returned.
func (u *PublishUsecase) Publish(ctx context.Context, dataset string) (entity.Publication, error) {
	ds := entity.Dataset(dataset)
	produce, ok := u.producers[ds]
	if !ok {
		return entity.Publication{}, fmt.Errorf("%w: dataset %q", apperr.ErrValidation, dataset)
	}
	if u.sink == nil {
		return entity.Publication{}, ErrSinkUnavailable
	}

	payload, count, err := produce(ctx)
	if err != nil {
		return entity.Publication{}, fmt.Errorf("produce %s: %w", dataset, err)
	}

	refreshed := u.now().UTC()
	dataPath := u.sink.Path(dataset + ".json")
	msg := fmt.Sprintf("Refresh %s (%d records)", dataset, count)

	rev, err := u.sink.Put(ctx, dataPath, payload, msg)
	if err != nil {
		return entity.Publication{}, err
	}

	meta := entity.Meta{Dataset: ds, Count: count, RefreshedAt: refreshed.Format(time.RFC3339)}
	if _, err := u.sink.Put(ctx, u.sink.Path(dataset+".meta.json"), meta, msg); err != nil {
		if rerr := u.sink.Restore(ctx, rev, "Roll back "+dataset); rerr != nil {
			slog.ErrorContext(ctx, "rollback failed", "dataset", dataset, "path", dataPath, "error", rerr)
		}
		return entity.Publication{}, err
	}

	slog.InfoContext(ctx, "dataset published", "dataset", dataset, "count", count, "path", dataPath)
	return entity.Publication{Dataset: ds, Path: dataPath, Count: count, RefreshedAt: refreshed}, nil
}
