package updatelog

import (
	"fmt"
	"strings"
	"time"

	"oficina/internal/domain/ticket"
)

// UpdateLog is a history entry attached to a ticket.
type UpdateLog struct {
	id          uint
	ticketID    uint
	statusLabel string
	description string
	changes     []ticket.Change
	createdAt   time.Time
}

func NewUpdateLog(ticketID uint, statusLabel, description string) (*UpdateLog, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	return &UpdateLog{
		ticketID:    ticketID,
		statusLabel: strings.TrimSpace(statusLabel),
		description: strings.TrimSpace(description),
		createdAt:   time.Now().UTC(),
	}, nil
}

// NewChangeLog records the field changes of a ticket update.
func NewChangeLog(ticketID uint, changes []ticket.Change) (*UpdateLog, error) {
	l, err := NewUpdateLog(ticketID, "", ticket.DescribeChanges(changes))
	if err != nil {
		return nil, err
	}
	l.changes = append([]ticket.Change(nil), changes...)
	return l, nil
}

func ReconstructUpdateLog(id, ticketID uint, statusLabel, description string, changes []ticket.Change, createdAt time.Time) *UpdateLog {
	return &UpdateLog{
		id:          id,
		ticketID:    ticketID,
		statusLabel: statusLabel,
		description: description,
		changes:     changes,
		createdAt:   createdAt,
	}
}

func (l *UpdateLog) ID() uint                 { return l.id }
func (l *UpdateLog) TicketID() uint           { return l.ticketID }
func (l *UpdateLog) StatusLabel() string      { return l.statusLabel }
func (l *UpdateLog) Description() string      { return l.description }
func (l *UpdateLog) Changes() []ticket.Change { return l.changes }
func (l *UpdateLog) CreatedAt() time.Time     { return l.createdAt }

func (l *UpdateLog) SetID(id uint) {
	l.id = id
}
