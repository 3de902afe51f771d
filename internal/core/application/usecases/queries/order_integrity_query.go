package queries

import (
	"context"
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOrderViolationsQueryIsNotConstructed = errors.New(
	"GetOrderViolationsQuery must be created via NewGetOrderViolationsQuery constructor",
)

// GetOrderViolationsQuery finds series whose positions are not exactly
// 1..N. On a healthy catalog the result is always empty; anything else means
// entries were written past the ordering engine.
type GetOrderViolationsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderViolationsQuery() GetOrderViolationsQuery {
	return GetOrderViolationsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderViolationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderViolationsQueryIsNotConstructed)
}

// SeriesOrderViolation describes the positions of one broken series.
type SeriesOrderViolation struct {
	SeriesID          kernel.UUID
	Entries           int64
	DistinctPositions int64
	MinPosition       int
	MaxPosition       int
}

type GetOrderViolationsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderViolationsQueryHandler(db *gorm.DB) GetOrderViolationsQueryHandler {
	return GetOrderViolationsQueryHandler{db: db}
}

func (h GetOrderViolationsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderViolationsQuery,
) ([]SeriesOrderViolation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	violations := make([]SeriesOrderViolation, 0)

	// N entries hold 1..N exactly when the smallest is 1, the largest is N
	// and all N are distinct.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			series_id,
			COUNT(*),
			COUNT(DISTINCT position),
			MIN(position),
			MAX(position)
		FROM entries
		GROUP BY series_id
		HAVING MIN(position) <> 1
			OR MAX(position) <> COUNT(*)
			OR COUNT(DISTINCT position) <> COUNT(*)
		ORDER BY series_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v SeriesOrderViolation
		var seriesID uuid.UUID

		if err = rows.Scan(&seriesID, &v.Entries, &v.DistinctPositions, &v.MinPosition, &v.MaxPosition); err != nil {
			return nil, err
		}

		if v.SeriesID, err = kernel.UUIDFromGoogle(seriesID); err != nil {
			return nil, err
		}
		violations = append(violations, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return violations, nil
}
