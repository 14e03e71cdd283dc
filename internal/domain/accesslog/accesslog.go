package accesslog

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	ActionLogin       = "login"
	ActionGeneratePDF = "gerar_pdf"

	// LevelInfo is the only level recorded today.
	LevelInfo = "INFO"
)

var originPattern = regexp.MustCompile(`IP:\s*([0-9a-fA-F:\.]+)`)

// AccessLog is an audit record of an admin action. It survives deletion of
// the admin.
type AccessLog struct {
	id        uint
	adminID   uint
	action    string
	detail    string
	createdAt time.Time
}

func NewAccessLog(adminID uint, action, detail string) *AccessLog {
	return &AccessLog{
		adminID:   adminID,
		action:    action,
		detail:    detail,
		createdAt: time.Now().UTC(),
	}
}

// IPDetail formats the detail used for login records.
func IPDetail(addr string) string {
	return "IP: " + addr
}

// TicketDetail formats the detail used for ticket scoped records.
func TicketDetail(ticketID uint) string {
	return fmt.Sprintf("Ficha ID: %d", ticketID)
}

func ReconstructAccessLog(id, adminID uint, action, detail string, createdAt time.Time) *AccessLog {
	return &AccessLog{id: id, adminID: adminID, action: action, detail: detail, createdAt: createdAt}
}

func (l *AccessLog) ID() uint             { return l.id }
func (l *AccessLog) AdminID() uint        { return l.adminID }
func (l *AccessLog) Action() string       { return l.action }
func (l *AccessLog) Detail() string       { return l.detail }
func (l *AccessLog) CreatedAt() time.Time { return l.createdAt }

func (l *AccessLog) SetID(id uint) {
	l.id = id
}

// Origin extracts the address embedded as "IP: x" in the detail, or "-".
func (l *AccessLog) Origin() string {
	if m := originPattern.FindStringSubmatch(l.detail); m != nil {
		return m[1]
	}
	return "-"
}

// Message is the action, falling back to the detail, then "-".
func (l *AccessLog) Message() string {
	if a := strings.TrimSpace(l.action); a != "" {
		return a
	}
	if l.detail != "" {
		return l.detail
	}
	return "-"
}
