package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixbank/account-library/domain"
)

func TestNewAccountCreated(t *testing.T) {
	owner := uuid.New()

	ev := NewAccountCreated("SIX9G7L2B5Q1W", owner)

	assert.Equal(t, "SIX9G7L2B5Q1W", ev.AccountNumber)
	assert.Equal(t, owner, ev.OwnerID)
	assert.NotEqual(t, uuid.Nil, ev.EventID)
	assert.Equal(t, time.UTC, ev.CreatedAt.Location())
	assert.WithinDuration(t, time.Now().UTC(), ev.CreatedAt, time.Minute)
}

func TestNewAccountStatusChanged(t *testing.T) {
	ev := NewAccountStatusChanged("SIX9G7L2B5Q1W", domain.StatusActive, domain.StatusSuspended)

	assert.Equal(t, domain.StatusActive, ev.PreviousStatus)
	assert.Equal(t, domain.StatusSuspended, ev.NewStatus)
	assert.NotEqual(t, uuid.Nil, ev.EventID)
}

func TestNewBalanceUpdated(t *testing.T) {
	previous := decimal.RequireFromString("150.00")
	next := decimal.RequireFromString("99.50")

	ev := NewBalanceUpdated("SIX9G7L2B5Q1W", previous, next)

	assert.True(t, ev.PreviousBalance.Equal(previous))
	assert.True(t, ev.NewBalance.Equal(next))
	assert.NotEqual(t, uuid.Nil, ev.EventID)
}

func TestEventIDsAreUnique(t *testing.T) {
	a := NewAccountCreated("SIX9G7L2B5Q1W", uuid.New())
	b := NewAccountCreated("SIX9G7L2B5Q1W", uuid.New())

	assert.NotEqual(t, a.EventID, b.EventID)
}

func TestAccountStatusChangedWireShape(t *testing.T) {
	// Field names are the contract consumed by producers in other
	// services; a renamed json tag is a breaking change.
	ev := NewAccountStatusChanged("SIX9G7L2B5Q1W", domain.StatusActive, domain.StatusClosed)

	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "SIX9G7L2B5Q1W", decoded["account_number"])
	assert.Equal(t, "ACTIVE", decoded["previous_status"])
	assert.Equal(t, "CLOSED", decoded["new_status"])
	assert.Contains(t, decoded, "event_id")
	assert.Contains(t, decoded, "created_at")
}
