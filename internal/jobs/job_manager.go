package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderIntegrityJob *OrderIntegrityJob
}

// NewJobManager creates a job manager with every catalog job.
func NewJobManager(
	finder OrderViolationsFinder,
	recorder IntegrityRecorder,
	orderCheckSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderIntegrityJob: NewOrderIntegrityJob(finder, recorder, orderCheckSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderIntegrityJob.Start(); err != nil {
		return fmt.Errorf("failed to start order integrity job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderIntegrityJob.Stop()
}
