package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TicketStatus is the repair stage of a ticket.
type TicketStatus string

const (
	StatusOpen         TicketStatus = "OPEN"
	StatusInAnalysis   TicketStatus = "IN_ANALYSIS"
	StatusAwaitingPart TicketStatus = "AWAITING_PART"
	StatusInRepair     TicketStatus = "IN_REPAIR"
	StatusFinished     TicketStatus = "FINISHED"
	StatusDelivered    TicketStatus = "DELIVERED"
	StatusCancelled    TicketStatus = "CANCELLED"
)

// AllStatuses lists every status in workflow order.
var AllStatuses = []TicketStatus{
	StatusOpen,
	StatusInAnalysis,
	StatusAwaitingPart,
	StatusInRepair,
	StatusFinished,
	StatusDelivered,
	StatusCancelled,
}

var titleCaser = cases.Title(language.English)

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	for _, s := range AllStatuses {
		if s == ts {
			return true
		}
	}
	return false
}

// IsClosed reports whether no more repair work is expected.
func (ts TicketStatus) IsClosed() bool {
	return ts == StatusFinished || ts == StatusDelivered || ts == StatusCancelled
}

// Label renders the status for people, e.g. "Awaiting Part".
func (ts TicketStatus) Label() string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(string(ts)), "_", " "))
}

// ParseTicketStatus accepts any casing and surrounding whitespace.
func ParseTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
