// Package biztime computes calendar boundaries in the shop's timezone.
// Storage and transport use UTC; only month and day boundaries are derived
// from the business location.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var (
	bizLocation *time.Location
	locationMu  sync.RWMutex
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}
	locationMu.Lock()
	bizLocation = loc
	locationMu.Unlock()
	return nil
}

// Location returns the business timezone, falling back to UTC when Init was
// never called or the default zone is unavailable.
func Location() *time.Location {
	locationMu.RLock()
	loc := bizLocation
	locationMu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		return time.UTC
	}
	return Location()
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfMonthUTC returns the first instant of t's month in the business
// timezone, expressed in UTC.
func StartOfMonthUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, Location()).UTC()
}

// MonthStarts returns the starts of the n months ending with now's month,
// oldest first, each in UTC.
func MonthStarts(now time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	b := now.In(Location())
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		m := time.Date(b.Year(), b.Month()-time.Month(n-1-i), 1, 0, 0, 0, 0, Location())
		out[i] = m.UTC()
	}
	return out
}

// ParseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates. Plain
// dates are read as midnight in the business timezone.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", time.DateOnly} {
		if t, err := time.ParseInLocation(layout, s, Location()); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// Format renders t in the business timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
