package auth

import (
	"context"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

type userIDKey struct{}

func NewUserContext(parent context.Context, userID int64) context.Context {
	return context.WithValue(parent, userIDKey{}, userID)
}

// UserID returns the authenticated user id placed in the context by the
// bearer middleware.
func UserID(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	if !ok {
		return 0, entity.ErrUnauthenticated
	}

	return userID, nil
}
