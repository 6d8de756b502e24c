// Package jobs provides scheduled background tasks for the ordering backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the HTTP request path should not wait on.
//
// # Available Jobs
//
// 1. OrderResyncJob - Runs every thirty seconds to re-push locally cached
// fallback orders to PostgreSQL once it is reachable again
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(store, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The resync job treats a persistence-unavailable error as an expected
// business scenario (the database is simply still down) and logs it at debug
// level; anything else is logged as an error.
package jobs
