// Package jobs provides scheduled background tasks for the catalog service.
//
// Jobs are built on github.com/robfig/cron/v3 and log through log/slog.
//
// # Available Jobs
//
// OrderIntegrityJob runs the order integrity query on a schedule (default
// "@every 5m"). Every series whose positions are not exactly 1..N is logged
// at error level and counted in the catalog_series_order_violations gauge.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(violationsHandler, collectors, "@every 5m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// The same check runs once, outside any schedule, through
// OrderIntegrityJob.RunOnce; the verify-order command uses it that way.
package jobs
