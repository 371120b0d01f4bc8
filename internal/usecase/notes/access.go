package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

// ResolveAccess reports the capability userID holds on the note: owner,
// the capability of a sharing grant, or none. A nonexistent note resolves
// to none; callers must not be able to tell the difference.
func (u *Usecase) ResolveAccess(ctx context.Context, userID, noteID int64) (entity.Access, error) {
	note, err := u.notesRepo.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			return entity.AccessNone, nil
		}
		return entity.AccessNone, fmt.Errorf("usecase resolve access: %w", err)
	}

	return u.resolveNoteAccess(ctx, userID, note)
}

// resolveNoteAccess evaluates capability for a note already loaded from the
// store.
func (u *Usecase) resolveNoteAccess(ctx context.Context, userID int64, note entity.Note) (entity.Access, error) {
	if note.OwnerID == userID {
		return entity.AccessOwner, nil
	}

	share, err := u.sharesRepo.GetShare(ctx, note.ID, userID)
	if err != nil {
		if errors.Is(err, entity.ErrShareNotFound) {
			return entity.AccessNone, nil
		}
		return entity.AccessNone, fmt.Errorf("resolve note access: %w", err)
	}

	return entity.FromPermission(share.Permission), nil
}
