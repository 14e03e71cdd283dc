package admin

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Admin is a shop operator that owns clients.
type Admin struct {
	id           uint
	email        string
	passwordHash string
	photoPath    string
	createdAt    time.Time
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewAdmin(email, passwordHash string) (*Admin, error) {
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email: %s", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	return &Admin{
		email:        email,
		passwordHash: passwordHash,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructAdmin(id uint, email, passwordHash, photoPath string, createdAt time.Time) (*Admin, error) {
	if id == 0 {
		return nil, fmt.Errorf("admin ID cannot be zero")
	}
	return &Admin{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		photoPath:    photoPath,
		createdAt:    createdAt,
	}, nil
}

func (a *Admin) ID() uint             { return a.id }
func (a *Admin) Email() string        { return a.email }
func (a *Admin) PasswordHash() string { return a.passwordHash }
func (a *Admin) PhotoPath() string    { return a.photoPath }
func (a *Admin) CreatedAt() time.Time { return a.createdAt }

func (a *Admin) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("admin ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}
	a.id = id
	return nil
}

// ChangePhoto replaces the profile photo path and returns the previous one.
func (a *Admin) ChangePhoto(path string) string {
	old := a.photoPath
	a.photoPath = path
	return old
}
