package jobs

import (
	"context"
	"errors"
	"log/slog"

	"burgershop/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// orderResyncer pushes locally cached fallback orders to the remote store.
type orderResyncer interface {
	ResyncPending(ctx context.Context) (int, error)
}

// OrderResyncJob periodically re-pushes orders that landed in the local
// fallback cache while PostgreSQL was unreachable.
type OrderResyncJob struct {
	store  orderResyncer
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderResyncJob creates the resync job, scheduled every thirty seconds.
func NewOrderResyncJob(store orderResyncer, logger *slog.Logger) *OrderResyncJob {
	return &OrderResyncJob{
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "order_resync_job"),
	}
}

// Start begins the resync schedule.
func (j *OrderResyncJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		synced, err := j.store.ResyncPending(ctx)
		if err != nil {
			// The database still being down is the normal case here.
			if errors.Is(err, errs.ErrPersistenceUnavailable) {
				j.logger.DebugContext(ctx, "order resync skipped, remote store unavailable", "error", err)
				return
			}
			j.logger.ErrorContext(ctx, "order resync failed", "error", err)
			return
		}

		if synced > 0 {
			j.logger.InfoContext(ctx, "fallback orders resynced to remote store", "count", synced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order resync job started (running every 30 seconds)")
	return nil
}

// Stop stops the resync schedule.
func (j *OrderResyncJob) Stop() {
	j.cron.Stop()
	j.logger.Info("order resync job stopped")
}
