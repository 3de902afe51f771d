package queries

import (
	"context"
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"gorm.io/gorm"
)

// MaxLimit caps the number of rows of one page.
const MaxLimit = 1000

var (
	ErrNegativeOffset = errs.NewValueIsInvalidErrorWithCause("offset", errors.New("offset can't be a negative value"))
	ErrNegativeLimit  = errs.NewValueIsInvalidErrorWithCause("limit", errors.New("limit can't be a negative value"))

	// ErrEmptyFilter is returned by the search constructors when no filter
	// field is set.
	ErrEmptyFilter = errs.NewValueIsRequiredErrorWithCause("filter", errors.New("at least one field must be set"))
)

// Page selects a window of a list.
type Page struct {
	offset int
	limit  int
}

// NewPage validates offset and limit. A limit above MaxLimit is lowered to
// MaxLimit rather than rejected.
func NewPage(offset, limit int) (Page, error) {
	if offset < 0 {
		return Page{}, ErrNegativeOffset
	}
	if limit < 0 {
		return Page{}, ErrNegativeLimit
	}
	return Page{offset: offset, limit: min(limit, MaxLimit)}, nil
}

// FirstPage returns the first MaxLimit rows.
func FirstPage() Page {
	return Page{limit: MaxLimit}
}

func (p Page) Offset() int {
	return p.offset
}

func (p Page) Limit() int {
	return p.limit
}

// PagedResult is one page of a list. Size counts every row matching the
// filter, not only the rows in Data.
type PagedResult[T any] struct {
	Size   int64
	Limit  int
	Offset int
	Data   []T
}

// listPage counts the rows of table selected by filter and loads one page of
// them in the given order.
func listPage[R, V any](
	ctx context.Context,
	db *gorm.DB,
	table string,
	filter func(*gorm.DB) *gorm.DB,
	order string,
	page Page,
	toView func(R) (V, error),
) (PagedResult[V], error) {
	base := filter(db.WithContext(ctx).Table(table)).Session(&gorm.Session{})

	var size int64
	if err := base.Count(&size).Error; err != nil {
		return PagedResult[V]{}, err
	}

	var rows []R
	if err := base.Order(order).Offset(page.offset).Limit(page.limit).Find(&rows).Error; err != nil {
		return PagedResult[V]{}, err
	}

	data := make([]V, 0, len(rows))
	for _, row := range rows {
		view, err := toView(row)
		if err != nil {
			return PagedResult[V]{}, err
		}
		data = append(data, view)
	}

	return PagedResult[V]{Size: size, Limit: page.limit, Offset: page.offset, Data: data}, nil
}

// getOne loads the row of table with the given id.
func getOne[R, V any](
	ctx context.Context,
	db *gorm.DB,
	table, entity string,
	id kernel.UUID,
	toView func(R) (V, error),
) (V, error) {
	var row R
	err := db.WithContext(ctx).Table(table).Where("id = ?", id.Bytes()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var zero V
		return zero, errs.NewObjectNotFoundError(entity, id.String())
	}
	if err != nil {
		var zero V
		return zero, err
	}
	return toView(row)
}

func whereID(tx *gorm.DB, column string, id *kernel.UUID) *gorm.DB {
	if id == nil {
		return tx
	}
	return tx.Where(column+" = ?", id.Bytes())
}

// whereNameContains is a LIKE substring match; case sensitivity follows the
// database.
func whereNameContains(tx *gorm.DB, column string, s *string) *gorm.DB {
	if s == nil {
		return tx
	}
	return tx.Where(column+" LIKE ?", "%"+*s+"%")
}
