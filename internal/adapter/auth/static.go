package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NanduBolleddu/Todofy-project/internal/core/domain"
	"github.com/NanduBolleddu/Todofy-project/internal/core/ports"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")
)

// StaticVerifier validates HS256 tokens signed with a shared secret. It
// stands in for the identity provider in local development and tests, where
// no realm is reachable.
type StaticVerifier struct {
	secret []byte
}

func NewStaticVerifier(secret []byte) *StaticVerifier {
	return &StaticVerifier{secret: secret}
}

func (v *StaticVerifier) Verify(_ context.Context, rawToken string) (domain.Identity, error) {
	token, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrExpiredToken
		}
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return domain.Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return domain.Identity{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	identity := domain.Identity{Subject: sub}
	if username, ok := claims["preferred_username"].(string); ok {
		identity.Username = username
	}

	return identity, nil
}

// Generate issues a token for the given identity, useful for local dev and
// test fixtures.
func (v *StaticVerifier) Generate(identity domain.Identity, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": identity.Subject,
		"iat": now.Unix(),
		"exp": now.Add(expiresIn).Unix(),
	}
	if identity.Username != "" {
		claims["preferred_username"] = identity.Username
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

var _ ports.TokenVerifier = (*StaticVerifier)(nil)
