package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

// ListNotes returns one page of the user's own notes, filtered by a
// case-insensitive substring match on title or detail. Shared notes are
// listed by ListSharedNotes, never here. A page past the end yields an
// empty list, not an error.
func (u *Usecase) ListNotes(ctx context.Context, userID int64, query string, page int) (entity.NotesPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	var result entity.NotesPage
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		total, err := u.notesRepo.CountNotes(ctx, userID, query)
		if err != nil {
			return err
		}

		items, err := u.notesRepo.ListNotes(ctx, userID, query, pageSize, offset)
		if err != nil {
			return err
		}

		result = entity.NotesPage{
			Notes:      items,
			TotalPages: total / pageSize,
		}
		return nil
	})
	if err != nil {
		return entity.NotesPage{}, fmt.Errorf("usecase list notes: %w", err)
	}

	return result, nil
}

// GetNote returns the note with its full participant list. The note is
// visible to its owner and to any user holding a grant; everyone else gets
// ErrNoteNotFound whether the note exists or not.
func (u *Usecase) GetNote(ctx context.Context, userID, noteID int64) (entity.NoteWithParticipants, error) {
	var result entity.NoteWithParticipants
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		note, err := u.notesRepo.GetOwnedNote(ctx, noteID, userID)
		if errors.Is(err, entity.ErrNoteNotFound) {
			note, err = u.sharesRepo.GetSharedNote(ctx, noteID, userID)
		}
		if err != nil {
			return err
		}

		participants, err := u.sharesRepo.ListParticipants(ctx, note.ID)
		if err != nil {
			return err
		}

		result = entity.NoteWithParticipants{Note: note, Participants: participants}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			return entity.NoteWithParticipants{}, entity.ErrNoteNotFound
		}
		return entity.NoteWithParticipants{}, fmt.Errorf("usecase get note: %w", err)
	}

	return result, nil
}

// ListSharedNotes returns notes shared to the user, newest first, with
// caller-supplied offset pagination.
func (u *Usecase) ListSharedNotes(ctx context.Context, userID int64, limit, skip int) ([]entity.Note, error) {
	if limit <= 0 {
		limit = defaultSharedLimit
	}
	if limit > maxSharedLimit {
		limit = maxSharedLimit
	}
	if skip < 0 {
		skip = 0
	}

	items, err := u.sharesRepo.ListSharedNotes(ctx, userID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("usecase list shared notes: %w", err)
	}

	return items, nil
}
