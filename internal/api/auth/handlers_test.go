package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
	authuc "github.com/smark-ARK/mind-castle-gql-server/internal/usecase/auth"
)

type stubAuth struct {
	signup  func(username, email, password string) (entity.User, error)
	login   func(username, password string) (authuc.TokenPair, error)
	refresh func(refreshToken string) (authuc.TokenPair, error)
}

func (s *stubAuth) Signup(_ context.Context, username, email, password string) (entity.User, error) {
	return s.signup(username, email, password)
}

func (s *stubAuth) Login(_ context.Context, username, password string) (authuc.TokenPair, error) {
	return s.login(username, password)
}

func (s *stubAuth) Refresh(_ context.Context, refreshToken string) (authuc.TokenPair, error) {
	return s.refresh(refreshToken)
}

func serve(t *testing.T, stub *stubAuth, target string, body io.Reader, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	New(stub).Routes(mux)

	r := httptest.NewRequest(http.MethodPost, target, body)
	if mutate != nil {
		mutate(r)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	return w
}

func TestHandleSignup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		stub := &stubAuth{
			signup: func(username, email, password string) (entity.User, error) {
				assert.Equal(t, "alice", username)
				return entity.User{ID: 1, Username: username, Email: email}, nil
			},
		}

		w := serve(t, stub, "/api/auth/signup",
			strings.NewReader(`{"username":"alice","email":"a@example.com","password":"s3cret"}`), nil)

		require.Equal(t, http.StatusCreated, w.Code)
		var body userResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "alice", body.Username)
		assert.NotContains(t, w.Body.String(), "s3cret")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := serve(t, &stubAuth{}, "/api/auth/signup",
			strings.NewReader(`{"username":"alice"}`), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate username", func(t *testing.T) {
		stub := &stubAuth{
			signup: func(username, email, password string) (entity.User, error) {
				return entity.User{}, entity.ErrUserExists
			},
		}

		w := serve(t, stub, "/api/auth/signup",
			strings.NewReader(`{"username":"alice","email":"a@example.com","password":"s3cret"}`), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	form := func(username, password string) (io.Reader, func(*http.Request)) {
		values := url.Values{"username": {username}, "password": {password}}
		return strings.NewReader(values.Encode()), func(r *http.Request) {
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}

	t.Run("valid credentials", func(t *testing.T) {
		stub := &stubAuth{
			login: func(username, password string) (authuc.TokenPair, error) {
				assert.Equal(t, "alice", username)
				return authuc.TokenPair{Access: "access-jwt", Refresh: "refresh-jwt"}, nil
			},
		}

		body, mutate := form("alice", "s3cret")
		w := serve(t, stub, "/api/auth/login", body, mutate)

		require.Equal(t, http.StatusOK, w.Code)

		var resp tokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "access-jwt", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)

		// The refresh token travels only in the HttpOnly cookie.
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, refreshCookie, cookies[0].Name)
		assert.Equal(t, "refresh-jwt", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.NotContains(t, w.Body.String(), "refresh-jwt")
	})

	t.Run("bad credentials", func(t *testing.T) {
		stub := &stubAuth{
			login: func(username, password string) (authuc.TokenPair, error) {
				return authuc.TokenPair{}, entity.ErrInvalidCreds
			},
		}

		body, mutate := form("alice", "wrong")
		w := serve(t, stub, "/api/auth/login", body, mutate)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("empty form", func(t *testing.T) {
		body, mutate := form("", "")
		w := serve(t, &stubAuth{}, "/api/auth/login", body, mutate)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandleRefresh(t *testing.T) {
	t.Run("valid cookie rotates tokens", func(t *testing.T) {
		stub := &stubAuth{
			refresh: func(refreshToken string) (authuc.TokenPair, error) {
				assert.Equal(t, "old-refresh", refreshToken)
				return authuc.TokenPair{Access: "new-access", Refresh: "new-refresh"}, nil
			},
		}

		w := serve(t, stub, "/api/auth/refresh", nil, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: refreshCookie, Value: "old-refresh"})
		})

		require.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "new-refresh", cookies[0].Value)
	})

	t.Run("missing cookie", func(t *testing.T) {
		w := serve(t, &stubAuth{}, "/api/auth/refresh", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		stub := &stubAuth{
			refresh: func(refreshToken string) (authuc.TokenPair, error) {
				return authuc.TokenPair{}, entity.ErrUnauthenticated
			},
		}

		w := serve(t, stub, "/api/auth/refresh", nil, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: refreshCookie, Value: "stale"})
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
