package auth

import (
	"encoding/json"
	"net/http"

	"github.com/smark-ARK/mind-castle-gql-server/internal/api/respond"
	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
	authuc "github.com/smark-ARK/mind-castle-gql-server/internal/usecase/auth"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Service) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, err := s.auth.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// handleLogin accepts form-encoded credentials (the password flow the
// original clients already speak) and returns the access token; the
// refresh token goes out as an HttpOnly cookie only.
func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		respond.Err(w, entity.ErrInvalidCreds)
		return
	}

	pair, err := s.auth.Login(r.Context(), username, password)
	if err != nil {
		respond.Err(w, err)
		return
	}

	s.writeTokens(w, pair)
}

func (s *Service) handleRefresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookie)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "no refresh token found in cookies")
		return
	}

	pair, err := s.auth.Refresh(r.Context(), cookie.Value)
	if err != nil {
		respond.Err(w, err)
		return
	}

	s.writeTokens(w, pair)
}

func (s *Service) writeTokens(w http.ResponseWriter, pair authuc.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    pair.Refresh,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	respond.JSON(w, http.StatusOK, tokenResponse{
		AccessToken: pair.Access,
		TokenType:   "bearer",
	})
}
