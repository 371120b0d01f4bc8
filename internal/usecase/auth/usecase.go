// Package auth implements signup, login and refresh-token rotation on top
// of the users repository and the JWT issuer.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/smark-ARK/mind-castle-gql-server/internal/auth"
	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/logger/slogx"
)

type usersRepository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (entity.UserWithSecret, error)
	GetUser(ctx context.Context, id int64) (entity.User, error)
}

type tokenIssuer interface {
	NewAccessToken(user entity.User) (string, error)
	NewRefreshToken(user entity.User) (string, error)
	VerifyRefresh(token string) (auth.Claims, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	usersRepo usersRepository `option:"mandatory" validate:"required"`
	tokens    tokenIssuer     `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate auth usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

// TokenPair is what a successful login or refresh hands back; the refresh
// token travels to the client as an HttpOnly cookie.
type TokenPair struct {
	Access  string
	Refresh string
}

func (u *Usecase) Signup(ctx context.Context, username, email, password string) (entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %v", err)
	}

	user, err := u.usersRepo.CreateUser(ctx, username, email, string(hash))
	if err != nil {
		if errors.Is(err, entity.ErrUserExists) {
			return entity.User{}, entity.ErrUserExists
		}
		return entity.User{}, fmt.Errorf("usecase signup: %w", err)
	}

	slogx.Info(ctx, "success to sign up user", slogx.UserID(user.ID))

	return user, nil
}

// Login verifies the credentials and issues a token pair. A missing user
// and a wrong password are both ErrInvalidCreds, so usernames cannot be
// probed through the login endpoint.
func (u *Usecase) Login(ctx context.Context, username, password string) (TokenPair, error) {
	user, err := u.usersRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return TokenPair{}, entity.ErrInvalidCreds
		}
		return TokenPair{}, fmt.Errorf("usecase login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, entity.ErrInvalidCreds
	}

	pair, err := u.issuePair(user.User)
	if err != nil {
		return TokenPair{}, fmt.Errorf("usecase login: %w", err)
	}

	slogx.Info(ctx, "success to log in user", slogx.UserID(user.ID))

	return pair, nil
}

// Refresh rotates the token pair from a valid refresh token. The user is
// re-read so a deleted account cannot keep refreshing.
func (u *Usecase) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, entity.ErrUnauthenticated
	}

	user, err := u.usersRepo.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return TokenPair{}, entity.ErrUnauthenticated
		}
		return TokenPair{}, fmt.Errorf("usecase refresh: %w", err)
	}

	pair, err := u.issuePair(user)
	if err != nil {
		return TokenPair{}, fmt.Errorf("usecase refresh: %w", err)
	}

	return pair, nil
}

func (u *Usecase) issuePair(user entity.User) (TokenPair, error) {
	access, err := u.tokens.NewAccessToken(user)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue access token: %v", err)
	}

	refresh, err := u.tokens.NewRefreshToken(user)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue refresh token: %v", err)
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}
