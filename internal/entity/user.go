package entity

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user with this name or email already exists")
	ErrInvalidCreds    = errors.New("invalid credentials")
	ErrUnauthenticated = errors.New("unauthenticated")
)

type User struct {
	ID       int64
	Username string
	Email    string
}

// UserWithSecret carries the stored password hash. It never leaves the
// auth path.
type UserWithSecret struct {
	User
	PasswordHash string
}
