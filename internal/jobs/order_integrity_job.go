package jobs

import (
	"context"
	"log/slog"

	"catalog/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOrderCheckSchedule runs the integrity check every five minutes.
const DefaultOrderCheckSchedule = "@every 5m"

// OrderViolationsFinder is the read side the integrity check runs on.
type OrderViolationsFinder interface {
	Handle(ctx context.Context, query queries.GetOrderViolationsQuery) ([]queries.SeriesOrderViolation, error)
}

// IntegrityRecorder receives the outcome of every check run.
type IntegrityRecorder interface {
	RecordIntegrityCheck(violations int, err error)
}

// OrderIntegrityJob periodically verifies that every series holds the
// positions 1..N and reports the series that do not.
type OrderIntegrityJob struct {
	finder   OrderViolationsFinder
	recorder IntegrityRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderIntegrityJob creates the job. An empty schedule falls back to
// DefaultOrderCheckSchedule; any cron expression or descriptor is accepted.
func NewOrderIntegrityJob(
	finder OrderViolationsFinder,
	recorder IntegrityRecorder,
	schedule string,
	logger *slog.Logger,
) *OrderIntegrityJob {
	if schedule == "" {
		schedule = DefaultOrderCheckSchedule
	}
	return &OrderIntegrityJob{
		finder:   finder,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(),
		logger:   loggerOrDefault(logger).With("component", "order_integrity_job"),
	}
}

// Start schedules the check. An invalid schedule is returned as an error.
func (j *OrderIntegrityJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order integrity job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running check to finish.
func (j *OrderIntegrityJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order integrity job stopped")
}

// RunOnce performs one check, logging every broken series at error level.
func (j *OrderIntegrityJob) RunOnce(ctx context.Context) ([]queries.SeriesOrderViolation, error) {
	violations, err := j.finder.Handle(ctx, queries.NewGetOrderViolationsQuery())
	if j.recorder != nil {
		j.recorder.RecordIntegrityCheck(len(violations), err)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Order integrity check failed", "error", err)
		return nil, err
	}

	for _, v := range violations {
		j.logger.ErrorContext(ctx, "Series order is broken",
			"series_id", v.SeriesID.String(),
			"entries", v.Entries,
			"distinct_positions", v.DistinctPositions,
			"min_position", v.MinPosition,
			"max_position", v.MaxPosition,
		)
	}
	if len(violations) == 0 {
		j.logger.DebugContext(ctx, "Series order is intact")
	}

	return violations, nil
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
