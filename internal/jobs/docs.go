// Package jobs provides scheduled background tasks for the label subsystem.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TrackingRefreshJob - Runs every minute to poll the carrier for shipment
// status changes and advance affected expeditions.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshTrackingHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A refresh cycle that fails is logged and retried on the next tick; a single
// shipment the carrier cannot answer for is skipped inside the handler and
// does not surface here.
package jobs
