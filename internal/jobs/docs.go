// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the request path cannot do.
//
// # Available Jobs
//
// 1. NeedByExpiryJob - Runs every minute to cancel pending unassigned
// deliveries whose need-by time has passed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job logs sweep failures and keeps running; a delivery that a
// driver accepts between listing and cancellation is skipped, not treated as
// an error.
package jobs
