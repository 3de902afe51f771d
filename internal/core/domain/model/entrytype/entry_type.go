// Package entrytype models the kind of an entry: "Book", "Episode", "Movie".
package entrytype

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrEntryTypeIsNotConstructed = errors.New("EntryType must be created via NewEntryType constructor")

// EntryType is a named category shared by entries across all series.
type EntryType struct {
	id    kernel.UUID
	name  kernel.Name
	guard guard.ConstructorGuard
}

func NewEntryType(id kernel.UUID, name string) (*EntryType, error) {
	t := &EntryType{guard: guard.NewConstructorGuard()}

	if err := errors.Join(t.setID(id), t.Rename(name)); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreEntryType rebuilds an EntryType from persisted state.
func RestoreEntryType(id kernel.UUID, name string) (*EntryType, error) {
	return NewEntryType(id, name)
}

func (t *EntryType) ID() kernel.UUID {
	return t.id
}

func (t *EntryType) Name() string {
	return t.name.String()
}

func (t *EntryType) Rename(name string) error {
	n, err := kernel.NewName("name", name)
	if err != nil {
		return err
	}
	t.name = n
	return nil
}

func (t *EntryType) Validate() error {
	if t == nil {
		return ErrEntryTypeIsNotConstructed
	}
	return t.guard.Validate(ErrEntryTypeIsNotConstructed)
}

func (t *EntryType) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}
