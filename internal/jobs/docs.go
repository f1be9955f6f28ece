// Package jobs provides scheduled background tasks for the delivery service.
//
// Jobs are built on github.com/robfig/cron/v3 and log through slog.
//
// # Available Jobs
//
// 1. FlowEvictionJob - closes flows that saw no user operation for FLOW_IDLE_TTL
//
// # Usage
//
//	jobManager := jobs.NewJobManager(evictHandler, "0 * * * * *", 30*time.Minute, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Flow timers are not jobs: they run on the scheduler adapter, one cron entry
// per armed timer.
package jobs
