package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenKey = "token"

var ErrInvalidInput = errors.New("invalid input")

// LocalStorage persists small string values across runs.
type LocalStorage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Service owns the bearer token the storefront presents to the backend.
type Service struct {
	store LocalStorage
	clock func() time.Time
	log   *slog.Logger
}

func NewService(store LocalStorage, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, clock: time.Now, log: log}
}

// Token returns the stored bearer token. ok is false when none is stored,
// the store cannot be read, or the token is a JWT whose expiry has passed.
// Tokens that are not JWTs are opaque to the client and returned as is.
func (s *Service) Token(ctx context.Context) (string, bool) {
	token, found, err := s.store.Get(ctx, tokenKey)
	if err != nil {
		s.log.Warn("read token failed", slog.Any("err", err))
		return "", false
	}
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}
	if s.expired(token) {
		s.log.Debug("stored token expired")
		return "", false
	}
	return token, true
}

func (s *Service) Save(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidInput
	}
	return s.store.Set(ctx, tokenKey, token)
}

func (s *Service) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, tokenKey)
}

// expired reads the exp claim without verifying the signature; the backend
// remains the authority on whether the token is accepted.
func (s *Service) expired(token string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !s.clock().Before(claims.ExpiresAt.Time)
}
