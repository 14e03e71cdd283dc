package client

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"oficina/internal/domain/tenant"
)

const (
	maxNameLength     = 255
	maxAddressLength  = 512
	maxNumberLength   = 64
	maxDistrictLength = 255
)

var (
	phonePattern  = regexp.MustCompile(`^\+?\d{10,15}$`)
	phoneStripper = regexp.MustCompile(`\D`)
)

// NormalizePhone keeps digits and an optional leading '+', then requires
// 10 to 15 digits.
func NormalizePhone(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	plus := strings.HasPrefix(s, "+")
	s = phoneStripper.ReplaceAllString(s, "")
	if plus {
		s = "+" + s
	}
	if !phonePattern.MatchString(s) {
		return "", fmt.Errorf("invalid phone: use 10-15 digits, optional +")
	}
	return s, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("invalid email: %s", email)
	}
	return email, nil
}

// Details are the editable fields of a client.
type Details struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	Number   string
	District string
}

// Patch lists the fields to change. Nil fields are left untouched.
type Patch struct {
	Name     *string
	Phone    *string
	Email    *string
	Address  *string
	Number   *string
	District *string
}

// Client is a customer of the shop. Its owner decides which admins can see
// the client and everything below it.
type Client struct {
	id        uint
	details   Details
	owner     tenant.Owner
	createdAt time.Time
}

func NewClient(d Details, owner tenant.Owner) (*Client, error) {
	normalized, err := normalizeDetails(d)
	if err != nil {
		return nil, err
	}
	return &Client{
		details:   normalized,
		owner:     owner,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructClient(id uint, d Details, owner tenant.Owner, createdAt time.Time) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	return &Client{id: id, details: d, owner: owner, createdAt: createdAt}, nil
}

func normalizeDetails(d Details) (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return d, fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(d.Name) > maxNameLength {
		return d, fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}

	phone, err := NormalizePhone(d.Phone)
	if err != nil {
		return d, err
	}
	d.Phone = phone

	if d.Email, err = normalizeEmail(d.Email); err != nil {
		return d, err
	}

	d.Address = strings.TrimSpace(d.Address)
	d.Number = strings.TrimSpace(d.Number)
	d.District = strings.TrimSpace(d.District)
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"address", d.Address, maxAddressLength},
		{"number", d.Number, maxNumberLength},
		{"district", d.District, maxDistrictLength},
	} {
		if utf8.RuneCountInString(f.value) > f.max {
			return d, fmt.Errorf("%s exceeds maximum length of %d characters", f.name, f.max)
		}
	}
	return d, nil
}

func (c *Client) ID() uint             { return c.id }
func (c *Client) Name() string         { return c.details.Name }
func (c *Client) Phone() string        { return c.details.Phone }
func (c *Client) Email() string        { return c.details.Email }
func (c *Client) Address() string      { return c.details.Address }
func (c *Client) Number() string       { return c.details.Number }
func (c *Client) District() string     { return c.details.District }
func (c *Client) Details() Details     { return c.details }
func (c *Client) Owner() tenant.Owner  { return c.owner }
func (c *Client) CreatedAt() time.Time { return c.createdAt }

// VisibleTo applies the ownership rule for clients.
func (c *Client) VisibleTo(adminID uint) bool {
	return c.owner.VisibleTo(adminID)
}

func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

// Apply merges p into the client. It reports whether anything changed and
// leaves the client untouched on validation failure.
func (c *Client) Apply(p Patch) (bool, error) {
	next := c.details
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&next.Name, p.Name)
	set(&next.Phone, p.Phone)
	set(&next.Email, p.Email)
	set(&next.Address, p.Address)
	set(&next.Number, p.Number)
	set(&next.District, p.District)

	normalized, err := normalizeDetails(next)
	if err != nil {
		return false, err
	}
	changed := normalized != c.details
	c.details = normalized
	return changed, nil
}
