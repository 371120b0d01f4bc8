package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/logger/slogx"
)

const noteColumns = "id, title, detail, created_at, owner_id"

func scanNote(row pgx.Row) (entity.Note, error) {
	var n entity.Note
	err := row.Scan(&n.ID, &n.Title, &n.Detail, &n.CreatedAt, &n.OwnerID)

	return n, err
}

func (r *Repo) CreateNote(ctx context.Context, ownerID int64, title, detail string) (entity.Note, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO notes (title, detail, owner_id) VALUES ($1, $2, $3) RETURNING `+noteColumns,
		title, detail, ownerID,
	)

	note, err := scanNote(row)
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %v", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.UserID(ownerID), slogx.NoteID(note.ID))

	return note, nil
}

func (r *Repo) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1`,
		id,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %v", err)
	}

	return note, nil
}

// GetOwnedNote returns the note only when ownerID owns it. Absence and
// foreign ownership are indistinguishable to the caller.
func (r *Repo) GetOwnedNote(ctx context.Context, id, ownerID int64) (entity.Note, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get owned note: %v", err)
	}

	return note, nil
}

// ListNotes returns one page of ownerID's notes whose title or detail
// contains query (case-insensitive), newest first.
func (r *Repo) ListNotes(ctx context.Context, ownerID int64, query string, limit, offset int) ([]entity.Note, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+noteColumns+` FROM notes
		 WHERE owner_id = $1 AND (title ILIKE '%' || $2 || '%' OR detail ILIKE '%' || $2 || '%')
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		ownerID, query, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list notes: %v", err)
	}
	defer rows.Close()

	notes := make([]entity.Note, 0, limit)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note row: %v", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes rows: %v", err)
	}

	return notes, nil
}

func (r *Repo) CountNotes(ctx context.Context, ownerID int64, query string) (int, error) {
	row := r.db.QueryRow(ctx,
		`SELECT count(id) FROM notes
		 WHERE owner_id = $1 AND (title ILIKE '%' || $2 || '%' OR detail ILIKE '%' || $2 || '%')`,
		ownerID, query,
	)

	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("count notes: %v", err)
	}

	return total, nil
}

func (r *Repo) UpdateNote(ctx context.Context, id int64, title, detail string) (entity.Note, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE notes SET title = $2, detail = $3 WHERE id = $1 RETURNING `+noteColumns,
		id, title, detail,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("update note: %v", err)
	}

	return note, nil
}

// DeleteNote deletes the note only when ownerID owns it; grant rows go with
// it via the FK cascade.
func (r *Repo) DeleteNote(ctx context.Context, id, ownerID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete note: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrNoteNotFound
	}

	return nil
}
