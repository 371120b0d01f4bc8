package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/logger/slogx"
)

// CreateNote creates a note owned by userID. Id and creation time are
// assigned by the store.
func (u *Usecase) CreateNote(ctx context.Context, userID int64, title, detail string) (entity.Note, error) {
	note, err := u.notesRepo.CreateNote(ctx, userID, title, detail)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slogx.UserID(userID), slogx.NoteID(note.ID))

	return note, nil
}

// UpdateNote overwrites title and detail. Existence is checked before
// capability: a missing note is ErrNoteNotFound, an existing note without
// owner or edit capability is ErrPermissionDenied.
func (u *Usecase) UpdateNote(ctx context.Context, userID, noteID int64, title, detail string) (entity.Note, error) {
	var updated entity.Note
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		note, err := u.notesRepo.GetNote(ctx, noteID)
		if err != nil {
			return err
		}

		access, err := u.resolveNoteAccess(ctx, userID, note)
		if err != nil {
			return err
		}
		if !access.CanEdit() {
			return entity.ErrPermissionDenied
		}

		updated, err = u.notesRepo.UpdateNote(ctx, noteID, title, detail)
		return err
	})
	if err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) || errors.Is(err, entity.ErrPermissionDenied) {
			return entity.Note{}, err
		}
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	return updated, nil
}

// DeleteNote requires the owner capability strictly: a grant holder gets
// ErrPermissionDenied even with edit, while a user with no relationship to
// the note gets ErrNoteNotFound whether it exists or not. Grants on the
// note die with it.
func (u *Usecase) DeleteNote(ctx context.Context, userID, noteID int64) error {
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		note, err := u.notesRepo.GetNote(ctx, noteID)
		if err != nil {
			return err
		}

		access, err := u.resolveNoteAccess(ctx, userID, note)
		if err != nil {
			return err
		}
		switch access {
		case entity.AccessOwner:
		case entity.AccessNone:
			return entity.ErrNoteNotFound
		default:
			return entity.ErrPermissionDenied
		}

		return u.notesRepo.DeleteNote(ctx, noteID, userID)
	})
	if err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) || errors.Is(err, entity.ErrPermissionDenied) {
			return err
		}
		return fmt.Errorf("usecase delete note: %w", err)
	}

	slogx.Info(ctx, "success to delete note", slogx.UserID(userID), slogx.NoteID(noteID))

	return nil
}
