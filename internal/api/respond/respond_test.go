package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

func TestErr_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{entity.ErrNoteNotFound, http.StatusNotFound},
		{entity.ErrUserNotFound, http.StatusNotFound},
		{entity.ErrShareNotFound, http.StatusNotFound},
		{entity.ErrPermissionDenied, http.StatusForbidden},
		{entity.ErrAlreadyShared, http.StatusConflict},
		{entity.ErrSelfShare, http.StatusUnprocessableEntity},
		{entity.ErrInvalidPermission, http.StatusUnprocessableEntity},
		{entity.ErrUserExists, http.StatusBadRequest},
		{entity.ErrInvalidCreds, http.StatusForbidden},
		{entity.ErrUnauthenticated, http.StatusUnauthorized},
		{errors.New("pool exhausted"), http.StatusInternalServerError},
	}
	for _, tt := range cases {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			Err(w, tt.err)

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body struct {
				Detail string `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Detail)
		})
	}
}

func TestErr_WrappedErrorKeepsStatus(t *testing.T) {
	w := httptest.NewRecorder()
	Err(w, fmt.Errorf("usecase get note: %w", entity.ErrNoteNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErr_InternalErrorIsOpaque(t *testing.T) {
	w := httptest.NewRecorder()
	Err(w, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestJSON_NilBody(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
