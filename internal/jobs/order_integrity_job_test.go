package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockViolationsFinder struct {
	mock.Mock
}

func (m *MockViolationsFinder) Handle(
	ctx context.Context,
	query queries.GetOrderViolationsQuery,
) ([]queries.SeriesOrderViolation, error) {
	args := m.Called(ctx, query)
	violations, _ := args.Get(0).([]queries.SeriesOrderViolation)
	return violations, args.Error(1)
}

type MockIntegrityRecorder struct {
	mock.Mock
}

func (m *MockIntegrityRecorder) RecordIntegrityCheck(violations int, err error) {
	m.Called(violations, err)
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestOrderIntegrityJob_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("should log every broken series", func(t *testing.T) {
		var buf bytes.Buffer
		seriesID := kernel.NewUUID()
		broken := []queries.SeriesOrderViolation{
			{SeriesID: seriesID, Entries: 3, DistinctPositions: 3, MinPosition: 1, MaxPosition: 5},
		}

		finder := &MockViolationsFinder{}
		finder.On("Handle", ctx, mock.Anything).Return(broken, nil).Once()
		recorder := &MockIntegrityRecorder{}
		recorder.On("RecordIntegrityCheck", 1, nil).Once()

		job := jobs.NewOrderIntegrityJob(finder, recorder, "", newLogger(&buf))
		violations, err := job.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, broken, violations)
		assert.Contains(t, buf.String(), "Series order is broken")
		assert.Contains(t, buf.String(), seriesID.String())
		assert.Contains(t, buf.String(), "max_position=5")
		finder.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("should record a failed check", func(t *testing.T) {
		var buf bytes.Buffer
		boom := errors.New("connection reset")

		finder := &MockViolationsFinder{}
		finder.On("Handle", ctx, mock.Anything).Return(nil, boom).Once()
		recorder := &MockIntegrityRecorder{}
		recorder.On("RecordIntegrityCheck", 0, boom).Once()

		job := jobs.NewOrderIntegrityJob(finder, recorder, "", newLogger(&buf))
		violations, err := job.RunOnce(ctx)

		require.ErrorIs(t, err, boom)
		assert.Nil(t, violations)
		assert.Contains(t, buf.String(), "Order integrity check failed")
		recorder.AssertExpectations(t)
	})

	t.Run("should run without recorder", func(t *testing.T) {
		var buf bytes.Buffer

		finder := &MockViolationsFinder{}
		finder.On("Handle", ctx, mock.Anything).Return([]queries.SeriesOrderViolation{}, nil).Once()

		job := jobs.NewOrderIntegrityJob(finder, nil, "", newLogger(&buf))
		violations, err := job.RunOnce(ctx)

		require.NoError(t, err)
		assert.Empty(t, violations)
		assert.Contains(t, buf.String(), "Series order is intact")
	})

	t.Run("should fall back to the default logger", func(t *testing.T) {
		finder := &MockViolationsFinder{}
		finder.On("Handle", ctx, mock.Anything).Return([]queries.SeriesOrderViolation{}, nil).Once()

		var job *jobs.OrderIntegrityJob
		require.NotPanics(t, func() {
			job = jobs.NewOrderIntegrityJob(finder, nil, "", nil)
		})
		violations, err := job.RunOnce(ctx)

		require.NoError(t, err)
		assert.Empty(t, violations)
	})
}

func TestOrderIntegrityJob_Start(t *testing.T) {
	var buf bytes.Buffer
	finder := &MockViolationsFinder{}

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewOrderIntegrityJob(finder, nil, "every tuesday", newLogger(&buf))
		require.Error(t, job.Start())
	})

	t.Run("should start and stop", func(t *testing.T) {
		manager := jobs.NewJobManager(finder, nil, "@every 1h", newLogger(&buf))
		require.NoError(t, manager.StartAll())
		manager.StopAll()

		assert.Contains(t, buf.String(), "Order integrity job started")
		assert.Contains(t, buf.String(), "schedule=\"@every 1h\"")
		assert.Contains(t, buf.String(), "Order integrity job stopped")
	})
}
