// Package auth exposes signup, login and refresh over HTTP. Login follows
// the password-form convention and hands the refresh token back in an
// HttpOnly cookie.
package auth

import (
	"context"
	"net/http"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
	authuc "github.com/smark-ARK/mind-castle-gql-server/internal/usecase/auth"
)

const refreshCookie = "refresh_token"

type authUsecase interface {
	Signup(ctx context.Context, username, email, password string) (entity.User, error)
	Login(ctx context.Context, username, password string) (authuc.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (authuc.TokenPair, error)
}

type Service struct {
	auth authUsecase
}

func New(auth authUsecase) *Service {
	return &Service{auth: auth}
}

// Routes registers the auth endpoints; these stay outside the bearer
// middleware.
func (s *Service) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/refresh", s.handleRefresh)
}
