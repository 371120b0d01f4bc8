package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

func (r *Repo) CreateUser(ctx context.Context, username, email, passwordHash string) (entity.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id, username, email`,
		username, email, passwordHash,
	)

	var u entity.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.User{}, entity.ErrUserExists
		}
		return entity.User{}, fmt.Errorf("create user: %v", err)
	}

	return u, nil
}

func (r *Repo) GetUser(ctx context.Context, id int64) (entity.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, email FROM users WHERE id = $1`,
		id,
	)

	var u entity.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user: %v", err)
	}

	return u, nil
}

// GetUserByUsername is the login lookup; it is the only query that reads
// the password hash.
func (r *Repo) GetUserByUsername(ctx context.Context, username string) (entity.UserWithSecret, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, email, password FROM users WHERE username = $1`,
		username,
	)

	var u entity.UserWithSecret
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.UserWithSecret{}, entity.ErrUserNotFound
		}
		return entity.UserWithSecret{}, fmt.Errorf("get user by username: %v", err)
	}

	return u, nil
}
