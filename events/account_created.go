package events

import "github.com/google/uuid"

// AccountCreated is published when a new account is opened.
type AccountCreated struct {
	AccountNumber string    `json:"account_number"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Metadata
}

// NewAccountCreated stamps a fresh event id and UTC timestamp.
func NewAccountCreated(accountNumber string, ownerID uuid.UUID) AccountCreated {
	return AccountCreated{
		AccountNumber: accountNumber,
		OwnerID:       ownerID,
		Metadata:      newMetadata(),
	}
}
