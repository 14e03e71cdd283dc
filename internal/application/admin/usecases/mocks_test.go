package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"oficina/internal/domain/accesslog"
	"oficina/internal/domain/admin"
)

type mockAdminRepository struct {
	CreateFunc      func(ctx context.Context, a *admin.Admin) error
	GetByIDFunc     func(ctx context.Context, id uint) (*admin.Admin, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*admin.Admin, error)
	UpdatePhotoFunc func(ctx context.Context, id uint, photoPath string) error
	DeleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockAdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAdminRepository) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAdminRepository) UpdatePhoto(ctx context.Context, id uint, photoPath string) error {
	if m.UpdatePhotoFunc != nil {
		return m.UpdatePhotoFunc(ctx, id, photoPath)
	}
	return nil
}

func (m *mockAdminRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockAccessLogRepository struct {
	CreateFunc      func(ctx context.Context, l *accesslog.AccessLog) error
	ListByAdminFunc func(ctx context.Context, adminID uint, page, pageSize int) ([]*accesslog.AccessLog, int64, error)
}

func (m *mockAccessLogRepository) Create(ctx context.Context, l *accesslog.AccessLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	return nil
}

func (m *mockAccessLogRepository) ListByAdmin(ctx context.Context, adminID uint, page, pageSize int) ([]*accesslog.AccessLog, int64, error) {
	if m.ListByAdminFunc != nil {
		return m.ListByAdminFunc(ctx, adminID, page, pageSize)
	}
	return nil, 0, nil
}

// plainHasher treats "hash:<password>" as the hash of password.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(adminID uint) (string, error)
}

func (m *mockTokenIssuer) Generate(adminID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(adminID)
	}
	return "token", nil
}

func (m *mockTokenIssuer) AccessTTL() time.Duration { return time.Hour }

// recordingLimiter counts calls and blocks once failures reach max.
type recordingLimiter struct {
	mu       sync.Mutex
	max      int
	failures map[string]int
	resets   int
}

func newRecordingLimiter(max int) *recordingLimiter {
	return &recordingLimiter{max: max, failures: make(map[string]int)}
}

func (l *recordingLimiter) key(email, address string) string {
	return admin.NormalizeEmail(email) + "|" + address
}

func (l *recordingLimiter) MayAttempt(_ context.Context, email, address string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failures[l.key(email, address)] < l.max
}

func (l *recordingLimiter) RecordFailure(_ context.Context, email, address string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[l.key(email, address)]++
}

func (l *recordingLimiter) Reset(_ context.Context, email, address string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, l.key(email, address))
	l.resets++
}

type mockPhotoStorage struct {
	SaveFunc func(adminID uint, data []byte, contentType string) (string, error)
	removed  []string
}

func (m *mockPhotoStorage) Save(adminID uint, data []byte, contentType string) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(adminID, data, contentType)
	}
	return "/static/fotos/new.png", nil
}

func (m *mockPhotoStorage) Remove(publicPath string) {
	m.removed = append(m.removed, publicPath)
}

func newTestAdmin(t *testing.T, id uint, email, password, photo string) *admin.Admin {
	t.Helper()
	a, err := admin.ReconstructAdmin(id, email, "hash:"+password, photo, time.Now())
	require.NoError(t, err)
	return a
}
