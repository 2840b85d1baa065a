package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	values map[string]string
	err    error
}

func newMemStorage() *memStorage { return &memStorage{values: map[string]string{}} }

func (m *memStorage) Get(_ context.Context, key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStorage) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(store LocalStorage) *Service {
	svc := NewService(store, logger.Discard())
	svc.clock = func() time.Time { return now }
	return svc
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"user_id": 1}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestTokenAbsent(t *testing.T) {
	_, ok := newTestService(newMemStorage()).Token(context.Background())
	assert.False(t, ok)
}

func TestSaveAndToken(t *testing.T) {
	svc := newTestService(newMemStorage())
	token := signed(t, now.Add(time.Hour))

	require.NoError(t, svc.Save(context.Background(), "  "+token+"\n"))

	got, ok := svc.Token(context.Background())
	require.True(t, ok)
	assert.Equal(t, token, got)
}

func TestSaveRejectsBlank(t *testing.T) {
	err := newTestService(newMemStorage()).Save(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExpiredTokenIsNoCredential(t *testing.T) {
	store := newMemStorage()
	store.values[tokenKey] = signed(t, now.Add(-time.Minute))

	_, ok := newTestService(store).Token(context.Background())
	assert.False(t, ok)
}

func TestTokenWithoutExpiry(t *testing.T) {
	store := newMemStorage()
	store.values[tokenKey] = signed(t, time.Time{})

	_, ok := newTestService(store).Token(context.Background())
	assert.True(t, ok)
}

func TestOpaqueTokenAccepted(t *testing.T) {
	store := newMemStorage()
	store.values[tokenKey] = "not-a-jwt"

	got, ok := newTestService(store).Token(context.Background())
	require.True(t, ok)
	assert.Equal(t, "not-a-jwt", got)
}

func TestStorageFailureIsNoCredential(t *testing.T) {
	store := newMemStorage()
	store.err = errors.New("disk I/O error")

	_, ok := newTestService(store).Token(context.Background())
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	store := newMemStorage()
	svc := newTestService(store)
	require.NoError(t, svc.Save(context.Background(), "tok"))

	require.NoError(t, svc.Clear(context.Background()))

	_, ok := svc.Token(context.Background())
	assert.False(t, ok)
}
