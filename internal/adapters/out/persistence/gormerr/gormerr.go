// Package gormerr maps gorm errors onto the errs taxonomy. The database is
// opened with TranslateError, so driver specific duplicate-key and
// foreign-key failures arrive here as gorm sentinels. SQLite reports a
// RESTRICT violation through its trigger extended code, which gorm leaves
// untranslated, so that one is matched on the driver error.
package gormerr

import (
	"errors"

	"catalog/internal/pkg/errs"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Translate converts err for a write or lookup of entity identified by id.
// Unknown errors are returned unchanged.
func Translate(entity string, id any, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated), isSQLiteForeignKey(err):
		return errs.NewIntegrityViolationErrorWithCause(entity, err)
	default:
		return err
	}
}

func isSQLiteForeignKey(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintTrigger ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

// Affected turns a write that matched no row into a not found error.
func Affected(entity string, id any, result *gorm.DB) error {
	if result.Error != nil {
		return Translate(entity, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return nil
}
