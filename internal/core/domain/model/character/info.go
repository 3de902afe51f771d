package character

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

var ErrInfoIsNotConstructed = errors.New("Info must be created via NewInfo constructor")

// Info is a piece of character information valid as of one entry.
type Info struct {
	id          kernel.UUID
	text        kernel.Name
	entryID     kernel.UUID
	characterID kernel.UUID
	guard       guard.ConstructorGuard
}

func NewInfo(id kernel.UUID, text string, entryID, characterID kernel.UUID) (*Info, error) {
	i := &Info{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		i.setID(id),
		i.Rewrite(text),
		i.Reassign(entryID, characterID),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreInfo rebuilds an Info from persisted state.
func RestoreInfo(id kernel.UUID, text string, entryID, characterID kernel.UUID) (*Info, error) {
	return NewInfo(id, text, entryID, characterID)
}

func (i *Info) ID() kernel.UUID {
	return i.id
}

func (i *Info) Text() string {
	return i.text.String()
}

func (i *Info) EntryID() kernel.UUID {
	return i.entryID
}

func (i *Info) CharacterID() kernel.UUID {
	return i.characterID
}

// Rewrite replaces the text; it follows the same length rules as names.
func (i *Info) Rewrite(text string) error {
	t, err := kernel.NewName("text", text)
	if err != nil {
		return err
	}
	i.text = t
	return nil
}

// Reassign points the info at another entry and character.
func (i *Info) Reassign(entryID, characterID kernel.UUID) error {
	var err error
	if e := entryID.Validate(); e != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("entry", e))
	}
	if e := characterID.Validate(); e != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("character", e))
	}
	if err != nil {
		return err
	}

	i.entryID = entryID
	i.characterID = characterID
	return nil
}

func (i *Info) Validate() error {
	if i == nil {
		return ErrInfoIsNotConstructed
	}
	return i.guard.Validate(ErrInfoIsNotConstructed)
}

func (i *Info) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}
