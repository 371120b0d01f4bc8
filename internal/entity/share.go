package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrShareNotFound     = errors.New("note is not shared with this user")
	ErrAlreadyShared     = errors.New("note is already shared with this user")
	ErrSelfShare         = errors.New("cannot share a note with its owner")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidPermission = errors.New("invalid permission")
)

type Permission string

const (
	PermissionReadOnly Permission = "read_only"
	PermissionEdit     Permission = "edit"
)

// ParsePermission validates a wire-level permission value. The empty string
// resolves to the default, read_only.
func ParsePermission(s string) (Permission, error) {
	switch Permission(s) {
	case "":
		return PermissionReadOnly, nil
	case PermissionReadOnly:
		return PermissionReadOnly, nil
	case PermissionEdit:
		return PermissionEdit, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidPermission, s)
}

// SharedNote is a sharing grant: at most one exists per (note, user) pair,
// enforced by the store's unique constraint.
type SharedNote struct {
	NoteID     int64
	UserID     int64
	Permission Permission
	CreatedAt  time.Time
}

// SharedResponse is returned by share/update-permission operations.
type SharedResponse struct {
	Note       Note
	User       User
	Permission Permission
}
