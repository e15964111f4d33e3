package jobs

import (
	"context"
	"log/slog"
	"time"

	"grameego/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NeedByExpiryJob cancels pending unassigned deliveries whose need-by time
// has passed. Runs every minute; deliveries without a need-by time are never
// touched.
type NeedByExpiryJob struct {
	handler commands.ExpireOverdueDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewNeedByExpiryJob creates the expiry sweep job.
func NewNeedByExpiryJob(handler commands.ExpireOverdueDeliveriesCommandHandler, logger *slog.Logger) *NeedByExpiryJob {
	return &NeedByExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "needby_expiry_job"),
		now:     time.Now,
	}
}

// Start schedules the sweep to run every minute.
func (j *NeedByExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireOverdueDeliveriesCommand(j.now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Need-by expiry command rejected", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Need-by expiry sweep failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired overdue deliveries", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Need-by expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *NeedByExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Need-by expiry job stopped")
}
