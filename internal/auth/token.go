package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

// Claims is the payload of both access and refresh tokens.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies the access/refresh token pair. Access and
// refresh tokens are signed with separate secrets so a leaked refresh
// secret cannot mint access tokens and vice versa.
type Tokens struct {
	secret        []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokens(secret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Tokens {
	return &Tokens{
		secret:        []byte(secret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (t *Tokens) NewAccessToken(user entity.User) (string, error) {
	return t.sign(user, t.secret, t.accessTTL)
}

func (t *Tokens) NewRefreshToken(user entity.User) (string, error) {
	return t.sign(user, t.refreshSecret, t.refreshTTL)
}

func (t *Tokens) sign(user entity.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %v", err)
	}

	return signed, nil
}

func (t *Tokens) VerifyAccess(token string) (Claims, error) {
	return verify(token, t.secret)
}

func (t *Tokens) VerifyRefresh(token string) (Claims, error) {
	return verify(token, t.refreshSecret)
}

func verify(token string, secret []byte) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, entity.ErrUnauthenticated
		}
		return Claims{}, fmt.Errorf("%w: %v", entity.ErrUnauthenticated, err)
	}

	return claims, nil
}
