package jobs

import (
	"context"
	"log/slog"

	"shiplabel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// trackingRefreshSchedule fires at the top of every minute. The carrier
// tracking feed updates on the minute as well, so polling faster buys nothing.
const trackingRefreshSchedule = "0 * * * * *"

// TrackingRefreshJob manages the scheduled refresh of shipment statuses.
// Runs every minute to poll the carrier and advance active expeditions.
type TrackingRefreshJob struct {
	handler commands.RefreshTrackingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTrackingRefreshJob creates a new job for refreshing tracking statuses.
// Uses RefreshTrackingCommandHandler to process all active expeditions.
func NewTrackingRefreshJob(handler commands.RefreshTrackingCommandHandler, logger *slog.Logger) *TrackingRefreshJob {
	return &TrackingRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "tracking_refresh_job"),
	}
}

// Start begins the tracking refresh job to run every minute.
func (j *TrackingRefreshJob) Start() error {
	_, err := j.cron.AddFunc(trackingRefreshSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshTrackingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Tracking refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking refresh job started (running every minute)")
	return nil
}

// Stop stops the tracking refresh job.
func (j *TrackingRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking refresh job stopped")
}
