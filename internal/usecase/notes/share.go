package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/logger/slogx"
)

// isShareErr reports whether err is one of the error kinds sharing
// operations surface to callers as-is; anything else is an internal
// failure and gets wrapped.
func isShareErr(err error) bool {
	return errors.Is(err, entity.ErrNoteNotFound) ||
		errors.Is(err, entity.ErrUserNotFound) ||
		errors.Is(err, entity.ErrShareNotFound) ||
		errors.Is(err, entity.ErrAlreadyShared) ||
		errors.Is(err, entity.ErrSelfShare) ||
		errors.Is(err, entity.ErrInvalidPermission)
}

// ShareNote grants granteeID access to the note. Only the owner may share;
// a non-owner caller cannot learn whether the note exists. Re-sharing an
// already shared note is ErrAlreadyShared, not a silent success.
func (u *Usecase) ShareNote(ctx context.Context, ownerID, noteID, granteeID int64, permission entity.Permission) (entity.SharedResponse, error) {
	perm, err := entity.ParsePermission(string(permission))
	if err != nil {
		return entity.SharedResponse{}, err
	}
	if granteeID == ownerID {
		return entity.SharedResponse{}, entity.ErrSelfShare
	}

	var result entity.SharedResponse
	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		note, err := u.notesRepo.GetOwnedNote(ctx, noteID, ownerID)
		if err != nil {
			return err
		}

		grantee, err := u.usersRepo.GetUser(ctx, granteeID)
		if err != nil {
			return err
		}

		share, err := u.sharesRepo.CreateShare(ctx, noteID, granteeID, perm)
		if err != nil {
			return err
		}

		result = entity.SharedResponse{Note: note, User: grantee, Permission: share.Permission}
		return nil
	})
	if err != nil {
		if isShareErr(err) {
			return entity.SharedResponse{}, err
		}
		return entity.SharedResponse{}, fmt.Errorf("usecase share note: %w", err)
	}

	slogx.Info(ctx, "success to share note",
		slogx.UserID(ownerID), slogx.NoteID(noteID),
	)

	return result, nil
}

// UnshareNote revokes the grant. Terminal: no soft delete, no undo. The
// ownership check runs again here even though the note lookup is already
// owner-scoped.
func (u *Usecase) UnshareNote(ctx context.Context, ownerID, noteID, granteeID int64) error {
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		note, err := u.notesRepo.GetOwnedNote(ctx, noteID, ownerID)
		if err != nil {
			return err
		}
		if note.OwnerID != ownerID {
			return entity.ErrNoteNotFound
		}

		return u.sharesRepo.DeleteShare(ctx, noteID, granteeID)
	})
	if err != nil {
		if isShareErr(err) {
			return err
		}
		return fmt.Errorf("usecase unshare note: %w", err)
	}

	slogx.Info(ctx, "success to unshare note",
		slogx.UserID(ownerID), slogx.NoteID(noteID),
	)

	return nil
}

// UpdatePermission overwrites the grant's permission in place; the grant's
// creation time is preserved.
func (u *Usecase) UpdatePermission(ctx context.Context, ownerID, noteID, granteeID int64, permission entity.Permission) (entity.SharedResponse, error) {
	perm, err := entity.ParsePermission(string(permission))
	if err != nil {
		return entity.SharedResponse{}, err
	}

	var result entity.SharedResponse
	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		note, err := u.notesRepo.GetOwnedNote(ctx, noteID, ownerID)
		if err != nil {
			return err
		}
		if note.OwnerID != ownerID {
			return entity.ErrNoteNotFound
		}

		grantee, err := u.usersRepo.GetUser(ctx, granteeID)
		if err != nil {
			return err
		}

		share, err := u.sharesRepo.UpdateSharePermission(ctx, noteID, granteeID, perm)
		if err != nil {
			return err
		}

		result = entity.SharedResponse{Note: note, User: grantee, Permission: share.Permission}
		return nil
	})
	if err != nil {
		if isShareErr(err) {
			return entity.SharedResponse{}, err
		}
		return entity.SharedResponse{}, fmt.Errorf("usecase update permission: %w", err)
	}

	slogx.Info(ctx, "success to update share permission",
		slogx.UserID(ownerID), slogx.NoteID(noteID),
	)

	return result, nil
}
