package gormerr_test

import (
	"errors"
	"fmt"
	"testing"

	"catalog/internal/adapters/out/persistence/gormerr"
	"catalog/internal/pkg/errs"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"record not found", gorm.ErrRecordNotFound, errs.ErrObjectNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, errs.ErrIntegrityViolation},
		{"wrapped foreign key", fmt.Errorf("delete: %w", gorm.ErrForeignKeyViolated), errs.ErrIntegrityViolation},
		{
			"sqlite restrict",
			fmt.Errorf("delete: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintTrigger}),
			errs.ErrIntegrityViolation,
		},
		{
			"sqlite foreign key",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey},
			errs.ErrIntegrityViolation,
		},
		{
			"sqlite unique is left alone",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
		},
		{"other", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, gormerr.Translate("series", "42", tt.err), tt.target)
		})
	}

	assert.NoError(t, gormerr.Translate("series", "42", nil))
}

func TestAffected(t *testing.T) {
	assert.ErrorIs(t, gormerr.Affected("entry", "1", &gorm.DB{}), errs.ErrObjectNotFound)
	assert.NoError(t, gormerr.Affected("entry", "1", &gorm.DB{RowsAffected: 1}))
	assert.ErrorIs(t, gormerr.Affected("entry", "1", &gorm.DB{Error: gorm.ErrDuplicatedKey}), errs.ErrIntegrityViolation)
}
