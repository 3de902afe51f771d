package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"catalog/internal/pkg/errs"
)

// MaxNameLength is the longest name or text a catalog record may carry.
const MaxNameLength = 240

// Name is a trimmed, non-empty label of at most MaxNameLength characters.
// Series, entry types, entries and characters are named with it; character
// info text uses the same rules.
type Name struct {
	value string
}

// NewName trims s and validates its length. param names the field in the
// returned error.
func NewName(param, s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Name{}, errs.NewValueIsRequiredError(param)
	}

	if n := utf8.RuneCountInString(trimmed); n > MaxNameLength {
		return Name{}, errs.NewValueIsOutOfRangeErrorWithCause(
			param, n, 1, MaxNameLength,
			fmt.Errorf("%s is longer than %d characters", param, MaxNameLength),
		)
	}

	return Name{value: trimmed}, nil
}

// String returns the name.
func (n Name) String() string {
	return n.value
}

// IsEmpty reports whether n is the zero Name.
func (n Name) IsEmpty() bool {
	return n.value == ""
}

// Validate rejects the zero Name.
func (n Name) Validate(param string) error {
	if n.IsEmpty() {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
