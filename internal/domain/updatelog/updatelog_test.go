package updatelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/domain/ticket"
)

func TestNewChangeLog(t *testing.T) {
	changes := []ticket.Change{
		{Field: ticket.FieldStatus, Old: "OPEN", New: "IN_REPAIR"},
		{Field: ticket.FieldBrand, Old: "", New: "HP"},
	}
	l, err := NewChangeLog(5, changes)
	require.NoError(t, err)

	assert.Equal(t, uint(5), l.TicketID())
	assert.Empty(t, l.StatusLabel())
	assert.Equal(t, "status: 'OPEN' -> 'IN_REPAIR'; marca: '' -> 'HP'", l.Description())
	assert.Len(t, l.Changes(), 2)

	changes[0].New = "mutated"
	assert.Equal(t, "IN_REPAIR", l.Changes()[0].New)
}

func TestNewUpdateLog_RequiresTicket(t *testing.T) {
	_, err := NewUpdateLog(0, "x", "y")
	assert.Error(t, err)
}
