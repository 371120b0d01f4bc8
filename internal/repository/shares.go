package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/logger/slogx"
)

const shareColumns = "note_id, user_id, permission, created_at"

func scanShare(row pgx.Row) (entity.SharedNote, error) {
	var s entity.SharedNote
	err := row.Scan(&s.NoteID, &s.UserID, &s.Permission, &s.CreatedAt)

	return s, err
}

func (r *Repo) GetShare(ctx context.Context, noteID, userID int64) (entity.SharedNote, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+shareColumns+` FROM shared_notes WHERE note_id = $1 AND user_id = $2`,
		noteID, userID,
	)

	share, err := scanShare(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.SharedNote{}, entity.ErrShareNotFound
		}
		return entity.SharedNote{}, fmt.Errorf("get share: %v", err)
	}

	return share, nil
}

// CreateShare inserts a grant. The composite primary key on
// (user_id, note_id) makes the loser of a concurrent insert for the same
// pair fail here with ErrAlreadyShared.
func (r *Repo) CreateShare(ctx context.Context, noteID, userID int64, permission entity.Permission) (entity.SharedNote, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO shared_notes (note_id, user_id, permission) VALUES ($1, $2, $3) RETURNING `+shareColumns,
		noteID, userID, permission,
	)

	share, err := scanShare(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.SharedNote{}, entity.ErrAlreadyShared
		}
		return entity.SharedNote{}, fmt.Errorf("create share: %v", err)
	}

	slogx.Debug(ctx, "success to share note", slogx.NoteID(noteID), slogx.UserID(userID))

	return share, nil
}

// UpdateSharePermission overwrites the grant's permission in place,
// leaving created_at untouched.
func (r *Repo) UpdateSharePermission(ctx context.Context, noteID, userID int64, permission entity.Permission) (entity.SharedNote, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE shared_notes SET permission = $3 WHERE note_id = $1 AND user_id = $2 RETURNING `+shareColumns,
		noteID, userID, permission,
	)

	share, err := scanShare(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.SharedNote{}, entity.ErrShareNotFound
		}
		return entity.SharedNote{}, fmt.Errorf("update share permission: %v", err)
	}

	return share, nil
}

func (r *Repo) DeleteShare(ctx context.Context, noteID, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM shared_notes WHERE note_id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete share: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrShareNotFound
	}

	return nil
}

// ListParticipants returns every user the note is shared with, along with
// their permission.
func (r *Repo) ListParticipants(ctx context.Context, noteID int64) ([]entity.Participant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.username, u.email, sn.permission
		 FROM shared_notes sn
		 JOIN users u ON u.id = sn.user_id
		 WHERE sn.note_id = $1`,
		noteID,
	)
	if err != nil {
		return nil, fmt.Errorf("list participants: %v", err)
	}
	defer rows.Close()

	participants := make([]entity.Participant, 0)
	for rows.Next() {
		var p entity.Participant
		if err := rows.Scan(&p.User.ID, &p.User.Username, &p.User.Email, &p.Permission); err != nil {
			return nil, fmt.Errorf("scan participant row: %v", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list participants rows: %v", err)
	}

	return participants, nil
}

// GetSharedNote returns the note only when a grant for userID exists on it.
func (r *Repo) GetSharedNote(ctx context.Context, noteID, userID int64) (entity.Note, error) {
	row := r.db.QueryRow(ctx,
		`SELECT n.id, n.title, n.detail, n.created_at, n.owner_id
		 FROM notes n
		 JOIN shared_notes sn ON sn.note_id = n.id
		 WHERE n.id = $1 AND sn.user_id = $2`,
		noteID, userID,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get shared note: %v", err)
	}

	return note, nil
}

// ListSharedNotes returns notes shared to userID, newest first.
func (r *Repo) ListSharedNotes(ctx context.Context, userID int64, limit, offset int) ([]entity.Note, error) {
	rows, err := r.db.Query(ctx,
		`SELECT n.id, n.title, n.detail, n.created_at, n.owner_id
		 FROM notes n
		 JOIN shared_notes sn ON sn.note_id = n.id
		 WHERE sn.user_id = $1
		 ORDER BY n.created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list shared notes: %v", err)
	}
	defer rows.Close()

	notes := make([]entity.Note, 0, limit)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shared note row: %v", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shared notes rows: %v", err)
	}

	return notes, nil
}
