package auth

import (
	"net/http"
	"strings"

	"github.com/smark-ARK/mind-castle-gql-server/internal/api/respond"
	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

// Middleware verifies the bearer token and puts the authenticated user id
// into the request context. Everything behind it can rely on UserID(ctx).
func (t *Tokens) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respond.Err(w, entity.ErrUnauthenticated)
			return
		}

		claims, err := t.VerifyAccess(token)
		if err != nil {
			respond.Err(w, entity.ErrUnauthenticated)
			return
		}

		ctx := NewUserContext(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}
