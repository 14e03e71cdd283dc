package usecases

import (
	"context"
	"time"
)

// PasswordHasher hashes and verifies admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues access tokens whose subject is the admin id.
type TokenIssuer interface {
	Generate(adminID uint) (string, error)
	AccessTTL() time.Duration
}

// AttemptLimiter gates login attempts per email and origin address.
type AttemptLimiter interface {
	MayAttempt(ctx context.Context, email, address string) bool
	RecordFailure(ctx context.Context, email, address string)
	Reset(ctx context.Context, email, address string)
}

// PhotoStorage persists profile photos and returns their public path.
type PhotoStorage interface {
	Save(adminID uint, data []byte, contentType string) (string, error)
	Remove(publicPath string)
}
