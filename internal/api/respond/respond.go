// Package respond writes JSON responses and maps core error kinds to HTTP
// status codes.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/logger/slogx"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slogx.Error(context.Background(), "encode response", slogx.Err(err))
	}
}

func Error(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, errorBody{Detail: detail})
}

// Err maps a core error to its HTTP status and writes it. Not-found and
// no-visibility arrive here already collapsed into the same error kind, so
// unauthorized callers get the same 404 either way.
func Err(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNoteNotFound),
		errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrShareNotFound):
		Error(w, http.StatusNotFound, err.Error())

	case errors.Is(err, entity.ErrPermissionDenied):
		Error(w, http.StatusForbidden, err.Error())

	case errors.Is(err, entity.ErrAlreadyShared):
		Error(w, http.StatusConflict, err.Error())

	case errors.Is(err, entity.ErrSelfShare),
		errors.Is(err, entity.ErrInvalidPermission):
		Error(w, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, entity.ErrUserExists):
		Error(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, entity.ErrInvalidCreds):
		Error(w, http.StatusForbidden, entity.ErrInvalidCreds.Error())

	case errors.Is(err, entity.ErrUnauthenticated):
		Error(w, http.StatusUnauthorized, entity.ErrUnauthenticated.Error())

	default:
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
