package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NoError(t, h.Verify("s3cret", hash))
	assert.Error(t, h.Verify("wrong", hash))
	assert.Error(t, h.Verify("s3cret", "not-a-hash"))
}

func TestBcryptPasswordHasher_LongPasswordsTruncate(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)
	long := strings.Repeat("a", 100)

	hash, err := h.Hash(long)
	require.NoError(t, err)
	assert.NoError(t, h.Verify(long, hash))
	assert.NoError(t, h.Verify(strings.Repeat("a", 72)+"different tail", hash))
}

func TestNewBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
}

func TestJWTService_RoundTrip(t *testing.T) {
	s := NewJWTService("test-secret", 60)

	token, err := s.Generate(42)
	require.NoError(t, err)

	id, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, time.Hour, s.AccessTTL())
}

func TestJWTService_Rejects(t *testing.T) {
	s := NewJWTService("test-secret", 60)
	other := NewJWTService("other-secret", 60)

	foreign, err := other.Generate(1)
	require.NoError(t, err)
	_, err = s.Verify(foreign)
	assert.Error(t, err, "wrong signature")

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = s.Verify(expired)
	assert.Error(t, err, "expired")

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = s.Verify(noSubject)
	assert.Error(t, err, "missing subject")

	_, err = s.Verify("garbage")
	assert.Error(t, err)
}
